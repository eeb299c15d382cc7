package store

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxSlugLength caps every allocated slug, suffixes included.
	MaxSlugLength = 120

	maxSlugAttempts = 200
)

// slugFolder decomposes accented characters and strips the combining marks,
// so "Café" folds to "Cafe" before the charset pass.
var slugFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes s into URL-safe form: lowercase ASCII letters and digits
// with single hyphens between runs, no leading/trailing hyphens, truncated to
// MaxSlugLength. Returns "" when nothing usable remains.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(slugFolder, s); err == nil {
		s = folded
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return truncateSlug(b.String(), MaxSlugLength)
}

// truncateSlug trims a slug to max characters without leaving a trailing hyphen
func truncateSlug(slug string, max int) string {
	if len(slug) > max {
		slug = slug[:max]
	}
	return strings.TrimRight(slug, "-")
}

// UniqueSlug derives a slug from basis (falling back to fallback when basis
// normalizes to nothing) and makes it unique against taken by appending -2,
// -3, ... and finally a nanosecond timestamp. User-supplied slugs go through
// the same normalization, so a caller can neither force a duplicate nor
// bypass the charset restriction.
func UniqueSlug(basis, fallback string, taken map[string]struct{}) (string, error) {
	candidate := Slugify(basis)
	if candidate == "" {
		candidate = Slugify(fallback)
	}
	if candidate == "" {
		return "", fmt.Errorf("%w: empty slug basis and fallback", ErrSlugConflict)
	}

	if _, used := taken[candidate]; !used {
		return candidate, nil
	}

	for n := 2; n <= maxSlugAttempts; n++ {
		suffix := fmt.Sprintf("-%d", n)
		next := truncateSlug(candidate, MaxSlugLength-len(suffix)) + suffix
		if _, used := taken[next]; !used {
			return next, nil
		}
	}

	// Pathological collision space: fall back to a high-resolution timestamp.
	suffix := fmt.Sprintf("-%d", time.Now().UnixNano())
	next := truncateSlug(candidate, MaxSlugLength-len(suffix)) + suffix
	if _, used := taken[next]; used {
		return "", fmt.Errorf("%w: could not allocate unique slug for %q", ErrSlugConflict, basis)
	}
	return next, nil
}
