// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package post_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/blog/tag"
	"github.com/inkwell-app/inkwell/internal/platform/apperr"
)

const knownTagID = "0198c5e4-0000-7000-8000-000000000001"

// fakeRepository is an in-memory post Repository.
type fakeRepository struct {
	posts map[string]*post.Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[string]*post.Post)}
}

func (f *fakeRepository) Create(_ context.Context, p *post.Post) error {
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*post.Post, error) {
	all := make([]*post.Post, 0, len(f.posts))
	for _, p := range f.posts {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Blog post")
}

func (f *fakeRepository) FindByURLHandle(_ context.Context, handle string) (*post.Post, error) {
	for _, p := range f.posts {
		if p.URLHandle == handle {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Blog post")
}

func (f *fakeRepository) Update(_ context.Context, p *post.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return apperr.NotFound("Blog post")
	}
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Blog post")
	}
	delete(f.posts, id)
	return nil
}

// fakeCatalog serves a fixed tag catalogue.
type fakeCatalog struct {
	tags []*tag.Tag
}

func (f *fakeCatalog) ListAll(_ context.Context) ([]*tag.Tag, error) {
	return f.tags, nil
}

func newTestService(repo *fakeRepository) *post.Service {
	catalog := &fakeCatalog{tags: []*tag.Tag{
		{ID: knownTagID, Name: "go", DisplayName: "Go"},
	}}
	return post.NewService(repo, catalog, slog.Default())
}

func validInput() post.Input {
	return post.Input{
		Heading:       "Getting Started",
		PageTitle:     "Getting Started | Inkwell",
		Content:       "Hello world.",
		URLHandle:     "getting-started",
		Author:        "jane",
		PublishedDate: time.Now(),
	}
}

/*
TestCreate_SilentlyDropsUnresolvedTagIDs verifies the selection mapping.

One valid catalogue id plus one malformed string and one well-formed but
unknown UUID must produce a tag set with only the valid id and no error.
*/
func TestCreate_SilentlyDropsUnresolvedTagIDs(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := validInput()
	input.SelectedTagIDs = []string{
		knownTagID,
		"not-a-uuid",
		"0198c5e4-0000-7000-8000-00000000dead",
	}

	created, err := service.Create(context.Background(), input)

	require.NoError(t, err)
	stored := repo.posts[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, []string{knownTagID}, stored.TagIDs)
}

/*
TestCreate_DerivesURLHandleFromHeading verifies slug derivation for a
blank handle.
*/
func TestCreate_DerivesURLHandleFromHeading(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := validInput()
	input.URLHandle = ""

	created, err := service.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "getting-started", created.URLHandle)
}

/*
TestCreate_RequiresHeading verifies shape validation fires before storage.
*/
func TestCreate_RequiresHeading(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := validInput()
	input.Heading = ""
	input.URLHandle = "still-set"

	_, err := service.Create(context.Background(), input)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repo.posts)
}

/*
TestUpdate_ReplacesTagSetWholesale verifies the edit path swaps the whole
association set rather than merging.
*/
func TestUpdate_ReplacesTagSetWholesale(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), func() post.Input {
		input := validInput()
		input.SelectedTagIDs = []string{knownTagID}
		return input
	}())
	require.NoError(t, err)

	input := validInput()
	input.Heading = "Getting Started v2"
	input.SelectedTagIDs = nil

	updated, err := service.Update(context.Background(), created.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Getting Started v2", updated.Heading)
	assert.Empty(t, repo.posts[created.ID].TagIDs)
}

/*
TestUpdate_MissingPost verifies NOT_FOUND surfaces for an unknown id.
*/
func TestUpdate_MissingPost(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Update(context.Background(), "missing", validInput())

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestEditForm_SelectedIDs verifies the edit view carries the current tag ids.
*/
func TestEditForm_SelectedIDs(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), func() post.Input {
		input := validInput()
		input.SelectedTagIDs = []string{knownTagID}
		return input
	}())
	require.NoError(t, err)

	// Hydrate tags the way the real store would on read.
	repo.posts[created.ID].Tags = []tag.Tag{{ID: knownTagID, Name: "go", DisplayName: "Go"}}

	view, err := service.EditForm(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{knownTagID}, view.SelectedTagIDs)
	require.Len(t, view.Tags, 1)
}
