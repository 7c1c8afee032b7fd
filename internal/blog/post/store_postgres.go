/*
Package post provides the PostgreSQL implementation for blog post storage.

It leans on two Postgres features the rest of the data layer also uses:
  - JSON Aggregation: tags are join-fetched into each row via a json_agg
    sub-query, avoiding N+1 round-trips.
  - ACID Transactions: create and update run the post row and its junction
    rewrites inside one transaction so partial saves cannot occur.
*/
package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/apperr"
	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed post store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// selectWithTags builds the shared SELECT head including the tag aggregation.
func selectWithTags() string {
	return fmt.Sprintf(`
		SELECT
			p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			p.%s, p.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s, 'display_name', t.%s))
				FROM %s t
				JOIN %s pt ON t.%s = pt.%s
				WHERE pt.%s = p.%s
			), '[]') AS tags
		FROM %s p
	`,
		schema.BlogPost.ID, schema.BlogPost.Heading, schema.BlogPost.PageTitle,
		schema.BlogPost.Content, schema.BlogPost.ShortDescription,
		schema.BlogPost.FeaturedImageURL, schema.BlogPost.URLHandle,
		schema.BlogPost.PublishedDate, schema.BlogPost.Author, schema.BlogPost.Visible,
		schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.Table,
		schema.BlogPostTag.Table, schema.BlogTag.ID, schema.BlogPostTag.TagID,
		schema.BlogPostTag.PostID, schema.BlogPost.ID,
		schema.BlogPost.Table,
	)
}

// scanPost maps one SELECT row (including the tags JSON column) into a Post.
func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	var tagsJSON []byte

	err := row.Scan(
		&post.ID, &post.Heading, &post.PageTitle, &post.Content,
		&post.ShortDescription, &post.FeaturedImageURL, &post.URLHandle,
		&post.PublishedDate, &post.Author, &post.Visible,
		&post.CreatedAt, &post.UpdatedAt,
		&tagsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &post.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal tags: %w", err)
	}

	return post, nil
}

/*
Create persists a new post and its tag associations atomically.

Description: Runs the core insert and the junction batch inside a single
transaction; if any junction write fails, the post row rolls back with it.

Parameters:
  - context: context.Context
  - post: *Post with a pre-generated UUID and resolved TagIDs

Returns:
  - error: execution errors; CONFLICT on duplicate url handle
*/
func (repository *postgresRepository) Create(context context.Context, post *Post) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s, %s
	`,
		schema.BlogPost.Table,
		schema.BlogPost.ID, schema.BlogPost.Heading, schema.BlogPost.PageTitle,
		schema.BlogPost.Content, schema.BlogPost.ShortDescription,
		schema.BlogPost.FeaturedImageURL, schema.BlogPost.URLHandle,
		schema.BlogPost.PublishedDate, schema.BlogPost.Author, schema.BlogPost.Visible,
		schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		post.ID, post.Heading, post.PageTitle, post.Content,
		post.ShortDescription, post.FeaturedImageURL, post.URLHandle,
		post.PublishedDate, post.Author, post.Visible,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_post")
	}

	if err := repository.updateJunction(context, transaction, post.ID, post.TagIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
ListAll returns every post with its tags, newest published first.

The home page shows everything; there is deliberately no filter or
pagination on this query.
*/
func (repository *postgresRepository) ListAll(context context.Context) ([]*Post, error) {
	query := selectWithTags() + fmt.Sprintf(" ORDER BY p.%s DESC", schema.BlogPost.PublishedDate)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}

	return posts, nil
}

/*
FindByID retrieves a post by primary key, tags included.

Returns:
  - *Post: the hydrated post
  - error: apperr.NotFound on miss
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	query := selectWithTags() + fmt.Sprintf(" WHERE p.%s = $1", schema.BlogPost.ID)

	post, err := scanPost(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Blog post")
		}
		return nil, fmt.Errorf("postgres: failed to find post by id: %w", err)
	}

	return post, nil
}

/*
FindByURLHandle retrieves a post by its public slug, tags included.

Returns:
  - *Post: the hydrated post
  - error: apperr.NotFound on miss
*/
func (repository *postgresRepository) FindByURLHandle(context context.Context, handle string) (*Post, error) {
	query := selectWithTags() + fmt.Sprintf(" WHERE p.%s = $1", schema.BlogPost.URLHandle)

	post, err := scanPost(repository.pool.QueryRow(context, query, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Blog post")
		}
		return nil, fmt.Errorf("postgres: failed to find post by url handle: %w", err)
	}

	return post, nil
}

/*
Update fully overwrites a post's scalar fields and replaces its tag set.

Description: Every scalar column is written unconditionally (no PATCH
semantics) and the junction table is cleared and re-inserted wholesale,
all inside one transaction. This mirrors the edit form, which always
submits the complete post.

Returns:
  - error: apperr.NotFound when the id does not exist
*/
func (repository *postgresRepository) Update(context context.Context, post *Post) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $10
	`,
		schema.BlogPost.Table,
		schema.BlogPost.Heading, schema.BlogPost.PageTitle, schema.BlogPost.Content,
		schema.BlogPost.ShortDescription, schema.BlogPost.FeaturedImageURL,
		schema.BlogPost.URLHandle, schema.BlogPost.PublishedDate,
		schema.BlogPost.Author, schema.BlogPost.Visible, schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID,
	)

	result, err := transaction.Exec(context, query,
		post.Heading, post.PageTitle, post.Content,
		post.ShortDescription, post.FeaturedImageURL,
		post.URLHandle, post.PublishedDate, post.Author, post.Visible,
		post.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_post")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Blog post")
	}

	if err := repository.updateJunction(context, transaction, post.ID, post.TagIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

/*
Delete removes a post by id. Junction rows cascade; tags survive.

Returns:
  - error: apperr.NotFound on miss
*/
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.BlogPost.Table, schema.BlogPost.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Blog post")
	}

	return nil
}

/*
updateJunction synchronizes the post↔tag association set.

Description: "Clear and Insert" strategy — flush all junction rows for the
post, then queue the new pairs through a single [pgx.Batch] to bound the
rewrite to one network round-trip.

Parameters:
  - transaction: pgx.Tx (the active transaction boundary)
  - postID: string parent post UUID
  - tagIDs: []string resolved tag UUIDs to associate
*/
func (repository *postgresRepository) updateJunction(context context.Context, transaction pgx.Tx, postID string, tagIDs []string) error {
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.BlogPostTag.Table, schema.BlogPostTag.PostID)
	if _, err := transaction.Exec(context, delQuery, postID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", schema.BlogPostTag.Table, err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.BlogPostTag.Table, schema.BlogPostTag.PostID, schema.BlogPostTag.TagID)
	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(insQuery, postID, tagID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", schema.BlogPostTag.Table, err)
	}

	return nil
}
