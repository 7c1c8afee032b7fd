package schema

// BlogPostTable represents the 'blog.post' table
type BlogPostTable struct {
	Table            string
	ID               string
	Heading          string
	PageTitle        string
	Content          string
	ShortDescription string
	FeaturedImageURL string
	URLHandle        string
	PublishedDate    string
	Author           string
	Visible          string
	CreatedAt        string
	UpdatedAt        string
}

// BlogPost is the schema definition for blog.post
var BlogPost = BlogPostTable{
	Table:            "blog.post",
	ID:               "id",
	Heading:          "heading",
	PageTitle:        "pagetitle",
	Content:          "content",
	ShortDescription: "shortdescription",
	FeaturedImageURL: "featuredimageurl",
	URLHandle:        "urlhandle",
	PublishedDate:    "publisheddate",
	Author:           "author",
	Visible:          "visible",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t BlogPostTable) Columns() []string {
	return []string{
		t.ID, t.Heading, t.PageTitle, t.Content, t.ShortDescription,
		t.FeaturedImageURL, t.URLHandle, t.PublishedDate, t.Author,
		t.Visible, t.CreatedAt, t.UpdatedAt,
	}
}
