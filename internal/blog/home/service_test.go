package home_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/blog/home"
	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/blog/tag"
)

type fakePosts struct {
	posts []*post.Post
}

func (f *fakePosts) ListAll(_ context.Context) ([]*post.Post, error) {
	return f.posts, nil
}

type fakeTags struct {
	tags []*tag.Tag
}

func (f *fakeTags) ListAll(_ context.Context) ([]*tag.Tag, error) {
	return f.tags, nil
}

func TestIndex_CombinesPostsAndTags(t *testing.T) {
	posts := &fakePosts{posts: []*post.Post{
		{ID: "p1", Heading: "First"},
		{ID: "p2", Heading: "Second"},
	}}
	tags := &fakeTags{tags: []*tag.Tag{
		{ID: "t1", Name: "go", DisplayName: "Go"},
	}}
	service := home.NewService(posts, tags, slog.Default())

	view, err := service.Index(context.Background())

	require.NoError(t, err)
	assert.Len(t, view.Posts, 2)
	assert.Len(t, view.Tags, 1)
}
