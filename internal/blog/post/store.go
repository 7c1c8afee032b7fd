package post

import "context"

type Repository interface {
	Create(context context.Context, post *Post) error
	ListAll(context context.Context) ([]*Post, error)
	FindByID(context context.Context, id string) (*Post, error)
	FindByURLHandle(context context.Context, handle string) (*Post, error)

	// Update fully overwrites every scalar field and replaces the tag
	// association set wholesale. A merge is deliberately not offered.
	Update(context context.Context, post *Post) error

	Delete(context context.Context, id string) error
}
