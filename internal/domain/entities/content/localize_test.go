package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLang(t *testing.T) {
	lang, ok := ParseLang("")
	require.True(t, ok)
	assert.Equal(t, LangEnglish, lang)

	lang, ok = ParseLang("en")
	require.True(t, ok)
	assert.Equal(t, LangEnglish, lang)

	lang, ok = ParseLang("ar")
	require.True(t, ok)
	assert.Equal(t, LangArabic, lang)

	_, ok = ParseLang("fr")
	assert.False(t, ok)

	_, ok = ParseLang("EN")
	assert.False(t, ok)
}

func TestLocalizedPick(t *testing.T) {
	l := Localized{En: "Tower", Ar: "برج"}
	assert.Equal(t, "Tower", l.Pick(LangEnglish))
	assert.Equal(t, "برج", l.Pick(LangArabic))
}

func TestUploadURL(t *testing.T) {
	id := 7
	assert.Equal(t, "/api/uploads/7", UploadURL(&id, "https://cdn.example.com/x.jpg"))
	assert.Equal(t, "https://cdn.example.com/x.jpg", UploadURL(nil, "https://cdn.example.com/x.jpg"))
	assert.Equal(t, PlaceholderImageURL, UploadURL(nil, ""))
}

func TestProjectLocalize(t *testing.T) {
	coverID := 3
	p := &Project{
		Title:            Localized{En: "Al-Hamra Tower", Ar: "برج الحمراء"},
		Summary:          Localized{En: "Landmark tower", Ar: "برج بارز"},
		Category:         Localized{En: "Commercial", Ar: "تجاري"},
		Location:         Localized{En: "Kuwait City", Ar: "مدينة الكويت"},
		Year:             2011,
		Published:        true,
		CoverUploadID:    &coverID,
		GalleryUploadIDs: []int{4, 5},
	}
	p.SetID(1)
	p.SetSlug("al-hamra-tower")

	en := p.Localize(LangEnglish)
	assert.Equal(t, 1, en.ID)
	assert.Equal(t, "al-hamra-tower", en.Slug)
	assert.Equal(t, "Al-Hamra Tower", en.Title)
	assert.Equal(t, "Kuwait City", en.Location)
	assert.Equal(t, "/api/uploads/3", en.CoverURL)
	assert.Equal(t, []string{"/api/uploads/4", "/api/uploads/5"}, en.GalleryURLs)

	ar := p.Localize(LangArabic)
	assert.Equal(t, "برج الحمراء", ar.Title)
	assert.Equal(t, "مدينة الكويت", ar.Location)
	// Slug and structural fields are language-independent.
	assert.Equal(t, en.Slug, ar.Slug)
	assert.Equal(t, en.Year, ar.Year)
}

func TestMediaItemLocalize_ExternalVideo(t *testing.T) {
	m := &MediaItem{
		Title:       Localized{En: "Site flyover", Ar: "جولة جوية"},
		Kind:        "video",
		ExternalURL: "https://youtu.be/abc123",
		Published:   true,
	}
	m.SetID(2)

	view := m.Localize(LangEnglish)
	assert.Equal(t, "video", view.Kind)
	assert.Equal(t, "https://youtu.be/abc123", view.URL)
}

func TestSectionSettingsLocalize(t *testing.T) {
	s := &SectionSettings{
		PageTitle: Localized{En: "Our Projects", Ar: "مشاريعنا"},
		Intro:     Localized{En: "What we build", Ar: "ما نبنيه"},
	}

	view := s.Localize(LangArabic)
	assert.Equal(t, "مشاريعنا", view.PageTitle)
	assert.Equal(t, "ما نبنيه", view.Intro)
}
