package engagement

import (
	"context"
	"time"
)

type LikeRepository interface {
	// Create inserts a like; a duplicate (post, user) pair is a no-op.
	Create(context context.Context, like *Like) error

	CountForPost(context context.Context, postID string) (int, error)
	ListForPost(context context.Context, postID string) ([]*Like, error)
}

type CommentRepository interface {
	Create(context context.Context, comment *Comment) error

	// ListForPost returns comments in ascending creation order.
	ListForPost(context context.Context, postID string) ([]*Comment, error)
}

// LikeCache is the volatile read-through cache for per-post like totals.
//
// A cache miss is signalled by ok=false, never by an error; Redis outages
// degrade to counting in Postgres.
type LikeCache interface {
	GetCount(context context.Context, postID string) (count int, ok bool)
	SetCount(context context.Context, postID string, count int, ttl time.Duration)
	Invalidate(context context.Context, postID string)
}
