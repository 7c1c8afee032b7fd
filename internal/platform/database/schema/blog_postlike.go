package schema

// BlogPostLikeTable represents the 'blog.postlike' table
type BlogPostLikeTable struct {
	Table     string
	ID        string
	PostID    string
	UserID    string
	CreatedAt string
}

// BlogPostLike is the schema definition for blog.postlike
var BlogPostLike = BlogPostLikeTable{
	Table:     "blog.postlike",
	ID:        "id",
	PostID:    "postid",
	UserID:    "userid",
	CreatedAt: "createdat",
}

func (t BlogPostLikeTable) Columns() []string {
	return []string{t.ID, t.PostID, t.UserID, t.CreatedAt}
}
