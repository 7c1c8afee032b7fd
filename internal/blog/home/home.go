package home

import (
	"github.com/inkwell-app/inkwell/internal/blog/post"
	"github.com/inkwell-app/inkwell/internal/blog/tag"
)

// View is the landing page payload: the full list of published posts
// alongside the tag catalog used for the sidebar.
type View struct {
	Posts []*post.Post `json:"posts"`
	Tags  []*tag.Tag   `json:"tags"`
}

// PrivacyView is the static privacy policy payload.
type PrivacyView struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ErrorView mirrors the generic error page, carrying the correlation id
// so readers can report it.
type ErrorView struct {
	RequestID     string `json:"request_id"`
	ShowRequestID bool   `json:"show_request_id"`
}
