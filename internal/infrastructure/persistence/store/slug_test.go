package store

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "al-hamra-tower", Slugify("Al-Hamra Tower"))
	assert.Equal(t, "hello-world-42", Slugify("  Hello --- World__ 42 "))
	assert.Equal(t, "abc", Slugify("ABC"))
}

func TestSlugify_Diacritics(t *testing.T) {
	assert.Equal(t, "cafe-deja-vu", Slugify("Café Déjà Vu"))
	assert.Equal(t, "senor-garcia", Slugify("Señor García"))
}

func TestSlugify_NothingUsable(t *testing.T) {
	assert.Equal(t, "", Slugify("برج الحمراء"))
	assert.Equal(t, "", Slugify("!!! ***"))
	assert.Equal(t, "", Slugify(""))
}

func TestSlugify_Truncates(t *testing.T) {
	long := strings.Repeat("abcde ", 50)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), MaxSlugLength)
	assert.True(t, slugPattern.MatchString(slug), "slug %q must match pattern", slug)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestUniqueSlug_NoCollision(t *testing.T) {
	slug, err := UniqueSlug("Al-Hamra Tower", "project-1", map[string]struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "al-hamra-tower", slug)
}

func TestUniqueSlug_Suffixes(t *testing.T) {
	taken := map[string]struct{}{
		"test":   {},
		"test-2": {},
	}
	slug, err := UniqueSlug("Test", "x", taken)
	require.NoError(t, err)
	assert.Equal(t, "test-3", slug)
}

func TestUniqueSlug_FallbackBasis(t *testing.T) {
	slug, err := UniqueSlug("برج الحمراء", "project-7", map[string]struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "project-7", slug)
}

func TestUniqueSlug_EmptyBasisAndFallback(t *testing.T) {
	_, err := UniqueSlug("", "!!!", map[string]struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlugConflict)
}

func TestUniqueSlug_TimestampFallback(t *testing.T) {
	taken := map[string]struct{}{"test": {}}
	for n := 2; n <= 200; n++ {
		taken[fmt.Sprintf("test-%d", n)] = struct{}{}
	}

	slug, err := UniqueSlug("Test", "x", taken)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "test-"))
	assert.True(t, slugPattern.MatchString(slug), "slug %q must match pattern", slug)
	assert.LessOrEqual(t, len(slug), MaxSlugLength)
	_, used := taken[slug]
	assert.False(t, used)
}

func TestUniqueSlug_SuffixRespectsMaxLength(t *testing.T) {
	basis := strings.Repeat("a", MaxSlugLength)
	taken := map[string]struct{}{Slugify(basis): {}}

	slug, err := UniqueSlug(basis, "x", taken)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slug), MaxSlugLength)
	assert.True(t, strings.HasSuffix(slug, "-2"))
}
