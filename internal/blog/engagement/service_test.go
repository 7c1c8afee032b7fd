// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package engagement_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell/internal/blog/engagement"
	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/platform/apperr"
)

const (
	postID   = "0198c5e4-0000-7000-8000-0000000000aa"
	readerID = "0198c5e4-0000-7000-8000-0000000000bb"
	otherID  = "0198c5e4-0000-7000-8000-0000000000cc"
)

// fakePosts serves one known post.
type fakePosts struct {
	post *post.Post
}

func (f *fakePosts) FindByID(_ context.Context, id string) (*post.Post, error) {
	if f.post != nil && f.post.ID == id {
		return f.post, nil
	}
	return nil, apperr.NotFound("Blog post")
}

func (f *fakePosts) FindByURLHandle(_ context.Context, handle string) (*post.Post, error) {
	if f.post != nil && f.post.URLHandle == handle {
		return f.post, nil
	}
	return nil, apperr.NotFound("Blog post")
}

// fakeLikes enforces the one-like-per-user constraint in memory.
type fakeLikes struct {
	likes []*engagement.Like
}

func (f *fakeLikes) Create(_ context.Context, like *engagement.Like) error {
	for _, existing := range f.likes {
		if existing.PostID == like.PostID && existing.UserID == like.UserID {
			return nil // conflict: no-op
		}
	}
	f.likes = append(f.likes, like)
	return nil
}

func (f *fakeLikes) CountForPost(_ context.Context, id string) (int, error) {
	count := 0
	for _, like := range f.likes {
		if like.PostID == id {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikes) ListForPost(_ context.Context, id string) ([]*engagement.Like, error) {
	matches := make([]*engagement.Like, 0)
	for _, like := range f.likes {
		if like.PostID == id {
			matches = append(matches, like)
		}
	}
	return matches, nil
}

// fakeComments stores comments in order.
type fakeComments struct {
	comments []*engagement.Comment
}

func (f *fakeComments) Create(_ context.Context, comment *engagement.Comment) error {
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeComments) ListForPost(_ context.Context, id string) ([]*engagement.Comment, error) {
	matches := make([]*engagement.Comment, 0)
	for _, comment := range f.comments {
		if comment.PostID == id {
			matches = append(matches, comment)
		}
	}
	return matches, nil
}

// fakeCache records read-through traffic.
type fakeCache struct {
	counts      map[string]int
	invalidated int
	sets        int
}

func newFakeCache() *fakeCache {
	return &fakeCache{counts: make(map[string]int)}
}

func (f *fakeCache) GetCount(_ context.Context, id string) (int, bool) {
	count, ok := f.counts[id]
	return count, ok
}

func (f *fakeCache) SetCount(_ context.Context, id string, count int, _ time.Duration) {
	f.counts[id] = count
	f.sets++
}

func (f *fakeCache) Invalidate(_ context.Context, id string) {
	delete(f.counts, id)
	f.invalidated++
}

// fakeDirectory resolves a fixed username map and counts calls.
type fakeDirectory struct {
	usernames map[string]string
	calls     int
}

func (f *fakeDirectory) UsernamesFor(_ context.Context, ids []string) (map[string]string, error) {
	f.calls++
	result := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := f.usernames[id]; ok {
			result[id] = name
		}
	}
	return result, nil
}

type fixture struct {
	service   *engagement.Service
	likes     *fakeLikes
	comments  *fakeComments
	cache     *fakeCache
	directory *fakeDirectory
}

func newFixture() *fixture {
	posts := &fakePosts{post: &post.Post{
		ID:        postID,
		Heading:   "Getting Started",
		URLHandle: "getting-started",
	}}
	likes := &fakeLikes{}
	comments := &fakeComments{}
	cache := newFakeCache()
	directory := &fakeDirectory{usernames: map[string]string{
		readerID: "jane",
		otherID:  "sam",
	}}

	return &fixture{
		service:   engagement.NewService(posts, likes, comments, cache, directory, slog.Default()),
		likes:     likes,
		comments:  comments,
		cache:     cache,
		directory: directory,
	}
}

/*
TestDetail_LikeCountZeroThenOne verifies the like total moves 0 → 1 after
a single like and that the cache is invalidated in between.
*/
func TestDetail_LikeCountZeroThenOne(t *testing.T) {
	f := newFixture()

	view, err := f.service.Detail(context.Background(), "getting-started", "")
	require.NoError(t, err)
	assert.Equal(t, 0, view.TotalLikes)

	total, err := f.service.AddLike(context.Background(), readerID, engagement.LikeInput{PostID: postID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, f.cache.invalidated)

	view, err = f.service.Detail(context.Background(), "getting-started", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalLikes)
}

/*
TestAddLike_DuplicateStaysAtOne verifies liking twice is a no-op.
*/
func TestAddLike_DuplicateStaysAtOne(t *testing.T) {
	f := newFixture()

	_, err := f.service.AddLike(context.Background(), readerID, engagement.LikeInput{PostID: postID})
	require.NoError(t, err)

	total, err := f.service.AddLike(context.Background(), readerID, engagement.LikeInput{PostID: postID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, f.likes.likes, 1)
}

/*
TestDetail_LikedOnlyForViewer verifies Liked reflects the signed-in viewer
and stays false both for other users and anonymous readers.
*/
func TestDetail_LikedOnlyForViewer(t *testing.T) {
	f := newFixture()

	_, err := f.service.AddLike(context.Background(), readerID, engagement.LikeInput{PostID: postID})
	require.NoError(t, err)

	view, err := f.service.Detail(context.Background(), "getting-started", readerID)
	require.NoError(t, err)
	assert.True(t, view.Liked)

	view, err = f.service.Detail(context.Background(), "getting-started", otherID)
	require.NoError(t, err)
	assert.False(t, view.Liked)

	view, err = f.service.Detail(context.Background(), "getting-started", "")
	require.NoError(t, err)
	assert.False(t, view.Liked)
}

/*
TestDetail_CachedCountSkipsStore verifies the read-through path serves a
warm cache entry without recounting.
*/
func TestDetail_CachedCountSkipsStore(t *testing.T) {
	f := newFixture()
	f.cache.counts[postID] = 42

	view, err := f.service.Detail(context.Background(), "getting-started", "")

	require.NoError(t, err)
	assert.Equal(t, 42, view.TotalLikes)
	assert.Zero(t, f.cache.sets)
}

/*
TestAddComment_CreatesAndLists verifies a signed-in comment lands with the
caller's id and shows up in the detail view with a resolved username.
*/
func TestAddComment_CreatesAndLists(t *testing.T) {
	f := newFixture()

	comment, err := f.service.AddComment(context.Background(), readerID, engagement.CommentInput{
		PostID:      postID,
		Description: "Great read!",
		URLHandle:   "getting-started",
	})

	require.NoError(t, err)
	assert.Equal(t, readerID, comment.UserID)
	assert.False(t, comment.CreatedAt.IsZero())

	view, err := f.service.Detail(context.Background(), "getting-started", "")
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "Great read!", view.Comments[0].Description)
	assert.Equal(t, "jane", view.Comments[0].Username)
}

/*
TestDetail_BatchesUsernameLookup verifies usernames resolve through one
directory call regardless of comment count.
*/
func TestDetail_BatchesUsernameLookup(t *testing.T) {
	f := newFixture()

	for _, userID := range []string{readerID, otherID, readerID} {
		_, err := f.service.AddComment(context.Background(), userID, engagement.CommentInput{
			PostID:      postID,
			Description: "hi",
			URLHandle:   "getting-started",
		})
		require.NoError(t, err)
	}

	view, err := f.service.Detail(context.Background(), "getting-started", "")

	require.NoError(t, err)
	require.Len(t, view.Comments, 3)
	assert.Equal(t, 1, f.directory.calls)
}

/*
TestAddComment_UnknownPost verifies commenting on a missing post 404s.
*/
func TestAddComment_UnknownPost(t *testing.T) {
	f := newFixture()

	_, err := f.service.AddComment(context.Background(), readerID, engagement.CommentInput{
		PostID:      otherID, // a valid UUID that is not a post
		Description: "hello",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}
