// Package content defines the application's core content-related domain
// entities: the bilingual record types behind each content area and their
// single-language projections.
package content

import "fmt"

// Lang selects one side of a bilingual record.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// ParseLang validates a language query value against the closed {en, ar} set.
// An empty value defaults to English.
func ParseLang(s string) (Lang, bool) {
	switch s {
	case "", string(LangEnglish):
		return LangEnglish, true
	case string(LangArabic):
		return LangArabic, true
	default:
		return "", false
	}
}

// Localized is a bilingual text field stored as a parallel en/ar pair.
type Localized struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Pick projects the field to a single language
func (l Localized) Pick(lang Lang) string {
	if lang == LangArabic {
		return l.Ar
	}
	return l.En
}

// Base carries the shared identity fields of every stored record. Ids are
// immutable and never reused; non-null slugs are unique within a store;
// display order is (sortOrder asc, id desc).
type Base struct {
	ID        int     `json:"id"`
	Slug      *string `json:"slug"`
	SortOrder int     `json:"sortOrder"`
}

func (b *Base) GetID() int   { return b.ID }
func (b *Base) SetID(id int) { b.ID = id }

func (b *Base) GetSlug() string {
	if b.Slug == nil {
		return ""
	}
	return *b.Slug
}

func (b *Base) SetSlug(slug string) { b.Slug = &slug }

func (b *Base) GetSortOrder() int { return b.SortOrder }

// PlaceholderImageURL is served when a record has neither an upload nor a
// literal image URL.
const PlaceholderImageURL = "/static/placeholder.svg"

// UploadURL resolves an upload-id reference to its display URL, preferring
// the upload, then a stored literal URL, then the placeholder.
func UploadURL(uploadID *int, literal string) string {
	if uploadID != nil {
		return fmt.Sprintf("/api/uploads/%d", *uploadID)
	}
	if literal != "" {
		return literal
	}
	return PlaceholderImageURL
}

// UploadURLs resolves a gallery of upload ids
func UploadURLs(uploadIDs []int) []string {
	urls := make([]string, 0, len(uploadIDs))
	for _, id := range uploadIDs {
		urls = append(urls, fmt.Sprintf("/api/uploads/%d", id))
	}
	return urls
}
