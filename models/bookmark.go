package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is the record type synchronized by the bundled client.
type Bookmark struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	URL     string    `json:"url"`
	Created time.Time `json:"created"`

	systemFields []byte
}

// NewBookmark creates a never-synced bookmark with a fresh identifier.
func NewBookmark(title, url string) Bookmark {
	return Bookmark{
		ID:      uuid.NewString(),
		Title:   title,
		URL:     url,
		Created: time.Now().UTC(),
	}
}

// RecordName implements [Record].
func (b Bookmark) RecordName() string {
	return b.ID
}

// SystemFields implements [Record].
func (b Bookmark) SystemFields() []byte {
	return b.systemFields
}

// WithSystemFields returns a copy of b carrying the given metadata blob.
func (b Bookmark) WithSystemFields(blob []byte) Bookmark {
	b.systemFields = append([]byte(nil), blob...)
	if len(blob) == 0 {
		b.systemFields = nil
	}
	return b
}
