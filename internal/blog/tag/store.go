package tag

import "context"

// Filter carries the admin listing's search and sort parameters.
//
// SortBy recognizes exactly "Name" and "DisplayName" (compared
// case-insensitively); any other value leaves the result in natural order.
// SortDirection is descending only when it case-insensitively equals "Desc".
type Filter struct {
	Search        string
	SortBy        string
	SortDirection string
}

type Repository interface {
	Add(context context.Context, tag *Tag) error
	FindByID(context context.Context, id string) (*Tag, error)
	List(context context.Context, filter Filter, limit, offset int) ([]*Tag, error)
	ListAll(context context.Context) ([]*Tag, error)
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id string) (*Tag, error)

	// Count returns the total tag count ignoring any filter. Page counts
	// derived from it overstate the page range while a search is active;
	// the admin listing depends on that number, so it stays unfiltered.
	Count(context context.Context) (int, error)
}
