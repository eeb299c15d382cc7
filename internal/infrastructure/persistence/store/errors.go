package store

import "errors"

var (
	// ErrSlugConflict is returned when a slug cannot be made unique even
	// after exhausting the suffix attempts and the timestamp fallback.
	ErrSlugConflict = errors.New("slug conflict")
)
