package engagement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/platform/constants"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
)

// PostFinder is the slice of the post repository the engagement service
// needs to hydrate the detail page.
type PostFinder interface {
	FindByID(context context.Context, id string) (*post.Post, error)
	FindByURLHandle(context context.Context, handle string) (*post.Post, error)
}

// UsernameDirectory resolves commenter ids to usernames in one batch,
// replacing the per-comment lookup the detail page would otherwise need.
type UsernameDirectory interface {
	UsernamesFor(context context.Context, ids []string) (map[string]string, error)
}

// CommentInput is the submitted comment form.
type CommentInput struct {
	PostID      string `json:"post_id"`
	Description string `json:"description"`
	URLHandle   string `json:"url_handle"`
}

// LikeInput identifies the post being liked.
type LikeInput struct {
	PostID string `json:"post_id"`
}

type Service struct {
	posts     PostFinder
	likes     LikeRepository
	comments  CommentRepository
	cache     LikeCache
	directory UsernameDirectory
	logger    *slog.Logger
}

func NewService(posts PostFinder, likes LikeRepository, comments CommentRepository, cache LikeCache, directory UsernameDirectory, logger *slog.Logger) *Service {
	return &Service{
		posts:     posts,
		likes:     likes,
		comments:  comments,
		cache:     cache,
		directory: directory,
		logger:    logger,
	}
}

/*
Detail composes the public blog detail page for a URL handle.

Description: The total like count is always present and read through the
Redis cache; whether the viewer liked the post is only computed when
viewerID is non-empty (signed-in readers). Comments are listed in
creation order with their authors' usernames resolved by one batched
directory lookup.

Parameters:
  - context: context.Context
  - urlHandle: string public slug
  - viewerID: string, empty for anonymous readers

Returns:
  - *DetailView: the composed page model
  - error: apperr.NotFound for an unknown handle
*/
func (service *Service) Detail(context context.Context, urlHandle string, viewerID string) (*DetailView, error) {
	found, err := service.posts.FindByURLHandle(context, urlHandle)
	if err != nil {
		return nil, err
	}

	totalLikes, err := service.likeCount(context, found.ID)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerID != "" {
		likesForPost, err := service.likes.ListForPost(context, found.ID)
		if err != nil {
			return nil, err
		}
		for _, like := range likesForPost {
			if like.UserID == viewerID {
				liked = true
				break
			}
		}
	}

	commentViews, err := service.commentViews(context, found.ID)
	if err != nil {
		return nil, err
	}

	return &DetailView{
		ID:               found.ID,
		Heading:          found.Heading,
		PageTitle:        found.PageTitle,
		Content:          found.Content,
		ShortDescription: found.ShortDescription,
		FeaturedImageURL: found.FeaturedImageURL,
		URLHandle:        found.URLHandle,
		PublishedDate:    found.PublishedDate,
		Author:           found.Author,
		Visible:          found.Visible,
		Tags:             found.Tags,
		TotalLikes:       totalLikes,
		Liked:            liked,
		Comments:         commentViews,
	}, nil
}

/*
AddComment stores a comment for a signed-in user.

The handler rejects anonymous callers before this runs; userID is always
a real account id here. The comment is stamped with the current time by
the storage layer.

Returns:
  - *Comment: the created comment
  - error: apperr.ValidationError, apperr.NotFound for an unknown post
*/
func (service *Service) AddComment(context context.Context, userID string, input CommentInput) (*Comment, error) {
	v := &validate.Validator{}
	if err := v.
		Required("post_id", input.PostID).
		UUID("post_id", input.PostID).
		Required("description", input.Description).
		Err(); err != nil {
		return nil, err
	}

	// Confirm the post exists before attaching a comment to it.
	if _, err := service.posts.FindByID(context, input.PostID); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:          newID(),
		PostID:      input.PostID,
		UserID:      userID,
		Description: input.Description,
	}

	if err := service.comments.Create(context, comment); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "comment_created",
		slog.String("post_id", comment.PostID),
		slog.String("user_id", userID),
	)

	return comment, nil
}

/*
AddLike records a like and invalidates the cached total.

A duplicate like from the same user is an idempotent no-op; the count
never moves past one per user.

Returns:
  - int: the fresh like total after the operation
  - error: apperr.NotFound for an unknown post
*/
func (service *Service) AddLike(context context.Context, userID string, input LikeInput) (int, error) {
	v := &validate.Validator{}
	if err := v.
		Required("post_id", input.PostID).
		UUID("post_id", input.PostID).
		Err(); err != nil {
		return 0, err
	}

	if _, err := service.posts.FindByID(context, input.PostID); err != nil {
		return 0, err
	}

	like := &Like{
		ID:     newID(),
		PostID: input.PostID,
		UserID: userID,
	}

	if err := service.likes.Create(context, like); err != nil {
		return 0, err
	}

	service.cache.Invalidate(context, input.PostID)

	total, err := service.likeCount(context, input.PostID)
	if err != nil {
		return 0, err
	}

	service.logger.InfoContext(context, "post_liked",
		slog.String("post_id", input.PostID),
		slog.String("user_id", userID),
		slog.Int("total_likes", total),
	)

	return total, nil
}

// likeCount reads the like total through the cache.
func (service *Service) likeCount(context context.Context, postID string) (int, error) {
	if count, ok := service.cache.GetCount(context, postID); ok {
		return count, nil
	}

	count, err := service.likes.CountForPost(context, postID)
	if err != nil {
		return 0, err
	}

	service.cache.SetCount(context, postID, count, constants.LikeCountCacheTTL)
	return count, nil
}

// commentViews lists a post's comments with usernames batch-resolved.
func (service *Service) commentViews(context context.Context, postID string) ([]CommentView, error) {
	comments, err := service.comments.ListForPost(context, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	seen := make(map[string]struct{}, len(comments))
	for _, comment := range comments {
		if _, ok := seen[comment.UserID]; !ok {
			seen[comment.UserID] = struct{}{}
			ids = append(ids, comment.UserID)
		}
	}

	usernames := map[string]string{}
	if len(ids) > 0 {
		usernames, err = service.directory.UsernamesFor(context, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, CommentView{
			Description: comment.Description,
			Username:    usernames[comment.UserID],
			CreatedAt:   comment.CreatedAt,
		})
	}

	return views, nil
}

// newID generates a UUIDv7, falling back to v4 if the clock source fails.
func newID() string {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return uuidV7.String()
}
