package post

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/blog/tag"
	"github.com/inkwell-app/inkwell/internal/platform/validate"
	"github.com/inkwell-app/inkwell/pkg/query"
	"github.com/inkwell-app/inkwell/pkg/slug"
)

// TagCatalog is the slice of the tag repository the post service needs to
// resolve selected tag ids against the catalogue.
type TagCatalog interface {
	ListAll(context context.Context) ([]*tag.Tag, error)
}

// Input carries the admin form fields for creating or editing a post.
//
// SelectedTagIDs arrive as raw strings from the form's multi-select;
// malformed or unresolved entries are dropped without error, a behavior
// the edit form relies on when tags vanish between render and submit.
type Input struct {
	Heading          string    `json:"heading"`
	PageTitle        string    `json:"page_title"`
	Content          string    `json:"content"`
	ShortDescription string    `json:"short_description"`
	FeaturedImageURL string    `json:"featured_image_url"`
	URLHandle        string    `json:"url_handle"`
	PublishedDate    time.Time `json:"published_date"`
	Author           string    `json:"author"`
	Visible          bool      `json:"visible"`
	SelectedTagIDs   []string  `json:"selected_tag_ids"`
}

// FormView is the add-form view model: the selectable tag options.
type FormView struct {
	Tags []*tag.Tag `json:"tags"`
}

// EditView is the edit-form view model: the post plus all tag options and
// the currently selected ids.
type EditView struct {
	Post           *Post      `json:"post"`
	Tags           []*tag.Tag `json:"tags"`
	SelectedTagIDs []string   `json:"selected_tag_ids"`
}

type Service struct {
	repo    Repository
	catalog TagCatalog
	logger  *slog.Logger
}

func NewService(repo Repository, catalog TagCatalog, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

/*
NewForm returns the add-form view model with every tag as an option.
*/
func (service *Service) NewForm(context context.Context) (*FormView, error) {
	tags, err := service.catalog.ListAll(context)
	if err != nil {
		return nil, err
	}
	return &FormView{Tags: tags}, nil
}

/*
Create validates and persists a new post with its resolved tag set.

Description: Selected tag ids are resolved against the catalogue first;
anything malformed or unknown is silently dropped. A blank URL handle is
derived from the heading, and a missing published date defaults to now.

Returns:
  - *Post: the persisted post, tags hydrated
  - error: apperr.ValidationError, CONFLICT on duplicate handle
*/
func (service *Service) Create(context context.Context, input Input) (*Post, error) {
	normalizeInput(&input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tagIDs, err := service.resolveTagIDs(context, input.SelectedTagIDs)
	if err != nil {
		return nil, err
	}

	post := inputToPost(newID(), input, tagIDs)
	if err := service.repo.Create(context, post); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "post_created",
		slog.String("post_id", post.ID),
		slog.String("url_handle", post.URLHandle),
		slog.Int("tag_count", len(tagIDs)),
	)

	return service.repo.FindByID(context, post.ID)
}

// ListAll returns every post with tags for the admin listing.
func (service *Service) ListAll(context context.Context) ([]*Post, error) {
	return service.repo.ListAll(context)
}

/*
EditForm returns the edit view model: the post, all tag options, and the
ids currently selected.
*/
func (service *Service) EditForm(context context.Context, id string) (*EditView, error) {
	post, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	tags, err := service.catalog.ListAll(context)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		selected = append(selected, t.ID)
	}

	return &EditView{Post: post, Tags: tags, SelectedTagIDs: selected}, nil
}

/*
Update fully replaces a post's scalar fields and tag associations.

The tag set is replaced wholesale with the resolved selection, never
merged with the existing set.

Returns:
  - *Post: the updated post, tags hydrated
  - error: apperr.ValidationError or apperr.NotFound
*/
func (service *Service) Update(context context.Context, id string, input Input) (*Post, error) {
	normalizeInput(&input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tagIDs, err := service.resolveTagIDs(context, input.SelectedTagIDs)
	if err != nil {
		return nil, err
	}

	post := inputToPost(id, input, tagIDs)
	if err := service.repo.Update(context, post); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "post_updated", slog.String("post_id", id))

	return service.repo.FindByID(context, id)
}

/*
Delete removes a post. Tag associations cascade; tags survive.
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "post_deleted", slog.String("post_id", id))
	return nil
}

/*
resolveTagIDs maps raw selected ids to existing catalogue tags.

An id that fails to parse as a UUID, or parses but matches no tag, is
dropped without surfacing an error.
*/
func (service *Service) resolveTagIDs(context context.Context, rawIDs []string) ([]string, error) {
	if len(rawIDs) == 0 {
		return nil, nil
	}

	tags, err := service.catalog.ListAll(context)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		known[t.ID] = struct{}{}
	}

	parsed := query.UUIDList(rawIDs)
	resolved := make([]string, 0, len(parsed))
	for _, id := range parsed {
		if _, ok := known[id]; ok {
			resolved = append(resolved, id)
		}
	}

	return resolved, nil
}

// normalizeInput fills derivable fields before validation.
func normalizeInput(input *Input) {
	if input.URLHandle == "" {
		input.URLHandle = slug.From(input.Heading)
	}
	if input.PublishedDate.IsZero() {
		input.PublishedDate = time.Now()
	}
}

// validateInput applies the shared create/edit form rules.
func validateInput(input Input) error {
	v := &validate.Validator{}
	return v.
		Required("heading", input.Heading).
		Required("page_title", input.PageTitle).
		Required("content", input.Content).
		Required("url_handle", input.URLHandle).
		Slug("url_handle", input.URLHandle).
		Required("author", input.Author).
		Err()
}

// inputToPost maps validated form fields onto the domain entity.
func inputToPost(id string, input Input, tagIDs []string) *Post {
	return &Post{
		ID:               id,
		Heading:          input.Heading,
		PageTitle:        input.PageTitle,
		Content:          input.Content,
		ShortDescription: input.ShortDescription,
		FeaturedImageURL: input.FeaturedImageURL,
		URLHandle:        input.URLHandle,
		PublishedDate:    input.PublishedDate,
		Author:           input.Author,
		Visible:          input.Visible,
		TagIDs:           tagIDs,
	}
}

// newID generates a UUIDv7, falling back to v4 if the clock source fails.
func newID() string {
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return uuidV7.String()
}
