// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package tag_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/blog/tag"
	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/pkg/pagination"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	tags       []*tag.Tag
	lastLimit  int
	lastOffset int
	lastFilter tag.Filter
}

func (f *fakeRepository) Add(_ context.Context, t *tag.Tag) error {
	f.tags = append(f.tags, t)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*tag.Tag, error) {
	for _, t := range f.tags {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, apperr.NotFound("tag")
}

func (f *fakeRepository) List(_ context.Context, filter tag.Filter, limit, offset int) ([]*tag.Tag, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset

	if offset < 0 || offset >= len(f.tags) {
		return []*tag.Tag{}, nil
	}
	end := offset + limit
	if end > len(f.tags) {
		end = len(f.tags)
	}
	return f.tags[offset:end], nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*tag.Tag, error) {
	return f.tags, nil
}

func (f *fakeRepository) Update(_ context.Context, updated *tag.Tag) error {
	for _, t := range f.tags {
		if t.ID == updated.ID {
			t.Name = updated.Name
			t.DisplayName = updated.DisplayName
			return nil
		}
	}
	return apperr.NotFound("tag")
}

func (f *fakeRepository) Delete(_ context.Context, id string) (*tag.Tag, error) {
	for i, t := range f.tags {
		if t.ID == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return t, nil
		}
	}
	return nil, apperr.NotFound("tag")
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.tags), nil
}

func newTestService(repo *fakeRepository) *tag.Service {
	return tag.NewService(repo, slog.Default())
}

func seedTags(repo *fakeRepository, count int) {
	for i := 0; i < count; i++ {
		repo.tags = append(repo.tags, &tag.Tag{
			ID:          string(rune('a' + i)),
			Name:        string(rune('a' + i)),
			DisplayName: "Tag " + string(rune('A'+i)),
		})
	}
}

/*
TestCreate_RejectsMatchingDisplayName verifies the display-name rule.

A tag whose display name equals its name must be rejected with a
field-level error on display_name, not a generic failure.
*/
func TestCreate_RejectsMatchingDisplayName(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.Create(context.Background(), tag.Input{Name: "x", DisplayName: "x"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "display_name", appError.Details[0].Field)
}

/*
TestCreate_AcceptsDistinctDisplayName verifies the happy path assigns an id.
*/
func TestCreate_AcceptsDistinctDisplayName(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	created, err := service.Create(context.Background(), tag.Input{Name: "x", DisplayName: "y"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.tags, 1)
}

/*
TestAdminList_PageNudge verifies the single-step page self-correction.

With 6 tags and pageSize 3 there are 2 total pages. Requesting page 5 must
produce an effective page of 4 (one decrement, not a clamp to 2), which in
turn queries an offset past the data and yields an empty page.
*/
func TestAdminList_PageNudge(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 6)
	service := newTestService(repo)

	tags, meta, err := service.AdminList(context.Background(), tag.Filter{}, pagination.Params{Page: 5, Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, 4, meta.Page)
	assert.Equal(t, 9, repo.lastOffset)
	assert.Empty(t, tags)
}

/*
TestAdminList_NegativePageNudge verifies the below-range correction is also
a single step: page -5 becomes -4.
*/
func TestAdminList_NegativePageNudge(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 6)
	service := newTestService(repo)

	_, meta, err := service.AdminList(context.Background(), tag.Filter{}, pagination.Params{Page: -5, Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, -4, meta.Page)
}

/*
TestAdminList_Offset verifies skip = (pageNumber-1) * pageSize.

pageSize 3 and pageNumber 2 over 7 tags returns the tags at offsets 3..5.
*/
func TestAdminList_Offset(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 7)
	service := newTestService(repo)

	tags, meta, err := service.AdminList(context.Background(), tag.Filter{}, pagination.Params{Page: 2, Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, repo.lastOffset)
	require.Len(t, tags, 3)
	assert.Equal(t, repo.tags[3], tags[0])
	assert.Equal(t, repo.tags[5], tags[2])
}

/*
TestAdminList_TotalIgnoresSearch verifies the page count derives from the
unfiltered total even while a search is active.
*/
func TestAdminList_TotalIgnoresSearch(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 7)
	service := newTestService(repo)

	_, meta, err := service.AdminList(context.Background(),
		tag.Filter{Search: "zzz-no-match"}, pagination.Params{Page: 1, Limit: 3})

	require.NoError(t, err)
	assert.Equal(t, 7, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, "zzz-no-match", repo.lastFilter.Search)
}

/*
TestUpdate_Validates verifies edit applies the same form rules as create.
*/
func TestUpdate_Validates(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 1)
	service := newTestService(repo)

	_, err := service.Update(context.Background(), repo.tags[0].ID, tag.Input{Name: "go", DisplayName: "go"})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

/*
TestDelete_ReturnsRemovedTag verifies delete hands back the removed entity.
*/
func TestDelete_ReturnsRemovedTag(t *testing.T) {
	repo := &fakeRepository{}
	seedTags(repo, 2)
	service := newTestService(repo)

	removed, err := service.Delete(context.Background(), repo.tags[0].ID)

	require.NoError(t, err)
	assert.Equal(t, "a", removed.Name)
	assert.Len(t, repo.tags, 1)
}
