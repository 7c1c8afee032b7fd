package schema

// BlogPostCommentTable represents the 'blog.postcomment' table
type BlogPostCommentTable struct {
	Table       string
	ID          string
	PostID      string
	UserID      string
	Description string
	CreatedAt   string
}

// BlogPostComment is the schema definition for blog.postcomment
var BlogPostComment = BlogPostCommentTable{
	Table:       "blog.postcomment",
	ID:          "id",
	PostID:      "postid",
	UserID:      "userid",
	Description: "description",
	CreatedAt:   "createdat",
}

func (t BlogPostCommentTable) Columns() []string {
	return []string{t.ID, t.PostID, t.UserID, t.Description, t.CreatedAt}
}
