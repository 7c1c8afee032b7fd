/*
Package tag provides the PostgreSQL implementation for the tag catalogue's data access.

The listing query is assembled dynamically: the substring filter matches the
name OR the display name, the ORDER BY clause is derived from a closed set of
recognized sort keys, and pagination is a plain LIMIT/OFFSET with no range
clamping (out-of-range pages return an empty slice).
*/
package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/constants"
	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tag store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
Add inserts a new tag row.

Parameters:
  - context: context.Context
  - tag: *Tag with a pre-generated UUID

Returns:
  - error: CONFLICT on duplicate, otherwise execution errors
*/
func (repository *postgresRepository) Add(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.BlogTag.Table,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, tag.ID, tag.Name, tag.DisplayName).
		Scan(&tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "add_tag")
	}

	return nil
}

/*
FindByID retrieves a tag by its primary key.

Returns:
  - *Tag: the tag entity
  - error: apperr.NotFound if the id does not exist
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
		schema.BlogTag.Table, schema.BlogTag.ID,
	)

	tag := &Tag{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&tag.ID, &tag.Name, &tag.DisplayName, &tag.CreatedAt, &tag.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_id")
	}

	return tag, nil
}

/*
List returns a filtered, sorted, paginated slice of tags.

Description: The WHERE and ORDER BY fragments are built from [Filter] via
[buildListClauses]. Pagination performs no clamping: skip is exactly
(pageNumber-1)*pageSize as computed by the caller, and an out-of-range
offset yields an empty page rather than an error.

Parameters:
  - context: context.Context
  - filter: Filter (search substring, sort key, sort direction)
  - limit: int
  - offset: int

Returns:
  - []*Tag: the page of tags
  - error: execution errors
*/
func (repository *postgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Tag, error) {
	whereClause, orderClause, args := buildListClauses(filter)

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s%s%s LIMIT $%d OFFSET $%d`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
		schema.BlogTag.Table, whereClause, orderClause,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.DisplayName, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

/*
ListAll returns the tag catalogue in name order, used by post forms and the
home feed. The result is capped at [constants.RepositoryTagPageSize]; callers
treat it as "effectively everything".
*/
func (repository *postgresRepository) ListAll(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC LIMIT %d`,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
		schema.BlogTag.Table, schema.BlogTag.Name,
		constants.RepositoryTagPageSize,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_all_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.DisplayName, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

/*
Update fully replaces the name and display name of an existing tag.

Returns:
  - error: apperr.NotFound if the id does not exist
*/
func (repository *postgresRepository) Update(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = NOW()
		WHERE %s = $3
		RETURNING %s, %s
	`,
		schema.BlogTag.Table,
		schema.BlogTag.Name, schema.BlogTag.DisplayName, schema.BlogTag.UpdatedAt,
		schema.BlogTag.ID,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, tag.Name, tag.DisplayName, tag.ID).
		Scan(&tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_tag")
	}

	return nil
}

/*
Delete removes a tag by id and returns the removed entity.

Post associations referencing the tag are removed by the junction table's
ON DELETE CASCADE; the posts themselves are untouched.

Returns:
  - *Tag: the deleted tag
  - error: apperr.NotFound if the id does not exist
*/
func (repository *postgresRepository) Delete(context context.Context, id string) (*Tag, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.BlogTag.Table, schema.BlogTag.ID,
		schema.BlogTag.ID, schema.BlogTag.Name, schema.BlogTag.DisplayName,
		schema.BlogTag.CreatedAt, schema.BlogTag.UpdatedAt,
	)

	tag := &Tag{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&tag.ID, &tag.Name, &tag.DisplayName, &tag.CreatedAt, &tag.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_tag")
	}

	return tag, nil
}

/*
Count returns the total number of tags, deliberately ignoring any filter.
*/
func (repository *postgresRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.BlogTag.Table)

	var total int
	if err := repository.pool.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_tags")
	}

	return total, nil
}

/*
buildListClauses derives the WHERE and ORDER BY fragments from a [Filter].

Sort semantics:
  - The key comparison is case-insensitive; only "Name" and "DisplayName"
    are recognized. Anything else produces no ORDER BY at all, leaving the
    rows in natural order.
  - The direction is DESC only when the direction string case-insensitively
    equals "Desc"; every other value (including empty) means ASC.
*/
func buildListClauses(filter Filter) (whereClause, orderClause string, args []any) {
	if filter.Search != "" {
		whereClause = fmt.Sprintf(" WHERE (%s LIKE $1 OR %s LIKE $1)",
			schema.BlogTag.Name, schema.BlogTag.DisplayName)
		args = append(args, "%"+filter.Search+"%")
	}

	var sortColumn string
	switch {
	case strings.EqualFold(filter.SortBy, "Name"):
		sortColumn = schema.BlogTag.Name
	case strings.EqualFold(filter.SortBy, "DisplayName"):
		sortColumn = schema.BlogTag.DisplayName
	}

	if sortColumn != "" {
		direction := "ASC"
		if strings.EqualFold(filter.SortDirection, "Desc") {
			direction = "DESC"
		}
		orderClause = fmt.Sprintf(" ORDER BY %s %s", sortColumn, direction)
	}

	return whereClause, orderClause, args
}
