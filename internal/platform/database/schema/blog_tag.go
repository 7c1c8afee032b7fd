package schema

// BlogTagTable represents the 'blog.tag' table
type BlogTagTable struct {
	Table       string
	ID          string
	Name        string
	DisplayName string
	CreatedAt   string
	UpdatedAt   string
}

// BlogTag is the schema definition for blog.tag
var BlogTag = BlogTagTable{
	Table:       "blog.tag",
	ID:          "id",
	Name:        "name",
	DisplayName: "displayname",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t BlogTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.DisplayName, t.CreatedAt, t.UpdatedAt}
}
