package tag

import "time"

// Tag is a categorization label applied to blog posts.
//
// Name is the short machine key used in URLs and filters; DisplayName is the
// human label shown to readers. The two must differ, enforced at validation
// time rather than in storage.
type Tag struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
