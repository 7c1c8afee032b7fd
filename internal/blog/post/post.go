package post

import (
	"time"

	"github.com/inkwell-app/inkwell/internal/blog/tag"
)

// Post is a published article on the blog.
//
// URLHandle is the unique public slug readers use to reach the detail page.
// Tags is the hydrated association set, always join-fetched by the store;
// TagIDs is the write-side set used when creating or replacing associations.
type Post struct {
	ID               string    `json:"id"`
	Heading          string    `json:"heading"`
	PageTitle        string    `json:"page_title"`
	Content          string    `json:"content"`
	ShortDescription string    `json:"short_description"`
	FeaturedImageURL string    `json:"featured_image_url"`
	URLHandle        string    `json:"url_handle"`
	PublishedDate    time.Time `json:"published_date"`
	Author           string    `json:"author"`
	Visible          bool      `json:"visible"`
	Tags             []tag.Tag `json:"tags"`
	TagIDs           []string  `json:"-"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
