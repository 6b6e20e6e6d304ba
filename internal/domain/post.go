package domain

import (
	"strings"
	"time"
)

// MediaKind is the media type tag reported by the content source.
// Unknown values are stored as-is but are never publishable.
type MediaKind string

const (
	MediaKindImage    MediaKind = "IMAGE"
	MediaKindVideo    MediaKind = "VIDEO"
	MediaKindCarousel MediaKind = "CAROUSEL_ALBUM"
)

// PublishableKinds is the set of media kinds eligible for publishing.
// Posts of any other kind are stored but never selected.
func PublishableKinds() []MediaKind {
	return []MediaKind{MediaKindImage, MediaKindVideo, MediaKindCarousel}
}

func (k MediaKind) Publishable() bool {
	for _, pk := range PublishableKinds() {
		if k == pk {
			return true
		}
	}
	return false
}

type Post struct {
	ID         int64      `db:"id"`
	AccountID  string     `db:"account_id"`
	ExternalID string     `db:"external_id"`
	MediaURL   *string    `db:"media_url"`
	Caption    *string    `db:"caption"`
	CapturedAt *time.Time `db:"captured_at"`
	MediaKind  MediaKind  `db:"media_kind"`
	Permalink  *string    `db:"permalink"`
	IsSynced   bool       `db:"is_synced"`
	SyncedAt   *time.Time `db:"synced_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// HasCaption reports whether the post carries a non-blank caption.
func (p *Post) HasCaption() bool {
	return p.Caption != nil && strings.TrimSpace(*p.Caption) != ""
}
