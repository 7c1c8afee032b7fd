package engagement

import (
	"time"

	"github.com/inkwell-app/inkwell/internal/blog/tag"
)

// Like records that a user liked a post. At most one exists per
// (post, user) pair, enforced by a unique constraint.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a reader comment on a post. Comments are never edited or
// deleted through this surface.
type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentView is a comment projected for the detail page, with the
// author's username resolved.
type CommentView struct {
	Description string    `json:"description"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// DetailView is the public blog detail page model: the post's fields and
// tags combined with its engagement state.
//
// TotalLikes is always populated; Liked is only computed for signed-in
// readers and stays false for anonymous ones.
type DetailView struct {
	ID               string        `json:"id"`
	Heading          string        `json:"heading"`
	PageTitle        string        `json:"page_title"`
	Content          string        `json:"content"`
	ShortDescription string        `json:"short_description"`
	FeaturedImageURL string        `json:"featured_image_url"`
	URLHandle        string        `json:"url_handle"`
	PublishedDate    time.Time     `json:"published_date"`
	Author           string        `json:"author"`
	Visible          bool          `json:"visible"`
	Tags             []tag.Tag     `json:"tags"`
	TotalLikes       int           `json:"total_likes"`
	Liked            bool          `json:"liked"`
	Comments         []CommentView `json:"comments"`
}
