package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/validate"
	"github.com/inkwell-app/inkwell/pkg/pagination"
)

// Input carries the admin form fields for creating or editing a tag.
type Input struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Create validates and persists a new tag.

The display name must differ from the name; violations surface as a
field-level error on display_name, matching the admin form contract.

Returns:
  - *Tag: the persisted tag with its generated id
  - error: apperr.ValidationError on rule violations, storage errors otherwise
*/
func (service *Service) Create(context context.Context, input Input) (*Tag, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tag := &Tag{
		ID:          newID(),
		Name:        input.Name,
		DisplayName: input.DisplayName,
	}

	if err := service.repo.Add(context, tag); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_created",
		slog.String("tag_id", tag.ID),
		slog.String("name", tag.Name),
	)

	return tag, nil
}

/*
AdminList returns the admin tag listing with search, sort, and the
single-step page self-correction.

Description: The total count is taken over ALL tags regardless of the
active search, and totalPages derives from that unfiltered count. The
requested page is then nudged one step toward the valid range (never
clamped) before the offset is computed. Both quirks are load-bearing for
the admin pager and are kept intact.

Parameters:
  - context: context.Context
  - filter: Filter (search, sort key, sort direction)
  - params: pagination.Params with the raw, unclamped page number

Returns:
  - []*Tag: the effective page of tags
  - pagination.Meta: metadata carrying the corrected page number
  - error: storage errors
*/
func (service *Service) AdminList(context context.Context, filter Filter, params pagination.Params) ([]*Tag, pagination.Meta, error) {
	total, err := service.repo.Count(context)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	meta := pagination.NewMeta(params.Page, params.Limit, total)
	params.Page = pagination.Nudge(params.Page, meta.TotalPages)
	meta.Page = params.Page

	tags, err := service.repo.List(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return tags, meta, nil
}

// Get retrieves a single tag for the edit form.
func (service *Service) Get(context context.Context, id string) (*Tag, error) {
	return service.repo.FindByID(context, id)
}

// ListAll returns every tag, used by post forms and the public surface.
func (service *Service) ListAll(context context.Context) ([]*Tag, error) {
	return service.repo.ListAll(context)
}

/*
Update validates and fully replaces an existing tag's fields.

Returns:
  - *Tag: the updated tag
  - error: apperr.ValidationError or apperr.NotFound
*/
func (service *Service) Update(context context.Context, id string, input Input) (*Tag, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tag := &Tag{
		ID:          id,
		Name:        input.Name,
		DisplayName: input.DisplayName,
	}

	if err := service.repo.Update(context, tag); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_updated", slog.String("tag_id", tag.ID))

	return tag, nil
}

/*
Delete removes a tag and returns the removed entity.

Returns:
  - *Tag: the deleted tag
  - error: apperr.NotFound if the id does not exist
*/
func (service *Service) Delete(context context.Context, id string) (*Tag, error) {
	tag, err := service.repo.Delete(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_deleted", slog.String("tag_id", tag.ID))

	return tag, nil
}

// validateInput applies the shared create/edit form rules.
func validateInput(input Input) error {
	v := &validate.Validator{}
	return v.
		Required("name", input.Name).
		Required("display_name", input.DisplayName).
		NotEqual("display_name", input.DisplayName, input.Name, "Name cannot be the same as DisplayName").
		Err()
}

// newID generates a UUIDv7, falling back to v4 if the clock source fails.
func newID() string {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return uuidV7.String()
}
