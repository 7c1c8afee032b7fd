package home

import (
	"context"
	"log/slog"

	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/blog/tag"
)

// PostCatalog is the read surface the landing page needs from the post layer.
type PostCatalog interface {
	ListAll(ctx context.Context) ([]*post.Post, error)
}

// TagCatalog is the read surface the landing page needs from the tag layer.
type TagCatalog interface {
	ListAll(ctx context.Context) ([]*tag.Tag, error)
}

type Service struct {
	posts  PostCatalog
	tags   TagCatalog
	logger *slog.Logger
}

func NewService(posts PostCatalog, tags TagCatalog, logger *slog.Logger) *Service {
	return &Service{
		posts:  posts,
		tags:   tags,
		logger: logger,
	}
}

/*
Index assembles the landing page: every post (newest first, as the post
store orders them) combined with the complete tag catalog.

Returns:
  - *View: posts and tags in a single payload
  - error: storage errors from either catalog
*/
func (service *Service) Index(ctx context.Context) (*View, error) {
	posts, err := service.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := service.tags.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &View{
		Posts: posts,
		Tags:  tags,
	}, nil
}
