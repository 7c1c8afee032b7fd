/*
Package engagement provides the PostgreSQL stores for likes and comments.

Like inserts rely on the UNIQUE (postid, userid) constraint with
ON CONFLICT DO NOTHING, making a duplicate like from the same user an
idempotent no-op at the storage layer.
*/
package engagement

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// postgresLikeRepository implements [LikeRepository] using pgx.
type postgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository constructs a PostgreSQL backed like store.
func NewPostgresLikeRepository(pool *pgxpool.Pool) LikeRepository {
	return &postgresLikeRepository{pool: pool}
}

/*
Create inserts a like. A second like from the same user on the same post
hits the unique constraint and is swallowed by ON CONFLICT DO NOTHING.
*/
func (repository *postgresLikeRepository) Create(context context.Context, like *Like) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.BlogPostLike.Table,
		schema.BlogPostLike.ID, schema.BlogPostLike.PostID, schema.BlogPostLike.UserID,
		schema.BlogPostLike.PostID, schema.BlogPostLike.UserID,
	)

	if _, err := repository.pool.Exec(context, query, like.ID, like.PostID, like.UserID); err != nil {
		return dberr.Wrap(err, "create_like")
	}

	return nil
}

/*
CountForPost returns the total likes for a post; 0 when none exist.
*/
func (repository *postgresLikeRepository) CountForPost(context context.Context, postID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.BlogPostLike.Table, schema.BlogPostLike.PostID)

	var total int
	if err := repository.pool.QueryRow(context, query, postID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_likes")
	}

	return total, nil
}

/*
ListForPost returns every like row for a post, used to test whether the
current reader is among the likers.
*/
func (repository *postgresLikeRepository) ListForPost(context context.Context, postID string) ([]*Like, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BlogPostLike.ID, schema.BlogPostLike.PostID,
		schema.BlogPostLike.UserID, schema.BlogPostLike.CreatedAt,
		schema.BlogPostLike.Table, schema.BlogPostLike.PostID,
	)

	rows, err := repository.pool.Query(context, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_likes")
	}
	defer rows.Close()

	likes := make([]*Like, 0)
	for rows.Next() {
		like := &Like{}
		if err := rows.Scan(&like.ID, &like.PostID, &like.UserID, &like.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_like")
		}
		likes = append(likes, like)
	}

	return likes, nil
}

// postgresCommentRepository implements [CommentRepository] using pgx.
type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository constructs a PostgreSQL backed comment store.
func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

/*
Create inserts a comment with the caller's id and the current timestamp.
*/
func (repository *postgresCommentRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.BlogPostComment.Table,
		schema.BlogPostComment.ID, schema.BlogPostComment.PostID,
		schema.BlogPostComment.UserID, schema.BlogPostComment.Description,
		schema.BlogPostComment.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ID, comment.PostID, comment.UserID, comment.Description,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_comment")
	}

	return nil
}

/*
ListForPost returns a post's comments in ascending creation order.
*/
func (repository *postgresCommentRepository) ListForPost(context context.Context, postID string) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC
	`,
		schema.BlogPostComment.ID, schema.BlogPostComment.PostID,
		schema.BlogPostComment.UserID, schema.BlogPostComment.Description,
		schema.BlogPostComment.CreatedAt,
		schema.BlogPostComment.Table, schema.BlogPostComment.PostID,
		schema.BlogPostComment.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		comment := &Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Description, &comment.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
