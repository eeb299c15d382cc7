package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

func TestProjectRepository_SeedsWithSlugs(t *testing.T) {
	repo := NewProjectRepository(t.TempDir(), store.NewLockManager())

	projects, err := repo.List(store.ListOptions[*content.Project]{})
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, 1, projects[0].ID)
	assert.Equal(t, "al-hamra-tower", projects[0].GetSlug())
	assert.Equal(t, "Al-Hamra Tower", projects[0].Title.En)
	assert.Equal(t, "برج الحمراء", projects[0].Title.Ar)

	settings, err := repo.Settings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Our Projects", settings.PageTitle.En)
}

func TestPageRepository_SeedsSiteSettings(t *testing.T) {
	repo := NewPageRepository(t.TempDir(), store.NewLockManager())

	pages, err := repo.List(store.ListOptions[*content.Page]{})
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "home", pages[0].GetSlug())

	settings, err := repo.Settings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.NotEmpty(t, settings.SiteName.En)
	assert.NotEmpty(t, settings.ContactEmail)
}

func TestMessageRepository_NoSlugsNoSeeds(t *testing.T) {
	repo := NewMessageRepository(t.TempDir(), store.NewLockManager())

	messages, err := repo.List(store.ListOptions[*content.Message]{})
	require.NoError(t, err)
	assert.Empty(t, messages)

	created, err := repo.Create(&content.Message{Name: "Sara", Email: "sara@example.com", Body: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.Slug)
}

func TestTitleBasis(t *testing.T) {
	assert.Equal(t, "Al-Hamra Tower", titleBasis(content.Localized{En: "Al-Hamra Tower", Ar: "برج الحمراء"}))
	assert.Equal(t, "برج الحمراء", titleBasis(content.Localized{Ar: "برج الحمراء"}))
	assert.Equal(t, "", titleBasis(content.Localized{}))
}

func TestRepositories_SeededAreasAreDisjointFiles(t *testing.T) {
	dir := t.TempDir()
	locks := store.NewLockManager()

	projectRepo := NewProjectRepository(dir, locks)
	newsRepo := NewNewsRepository(dir, locks)

	_, err := projectRepo.List(store.ListOptions[*content.Project]{})
	require.NoError(t, err)
	_, err = newsRepo.List(store.ListOptions[*content.NewsItem]{})
	require.NoError(t, err)

	assert.NotEqual(t, projectRepo.Path(), newsRepo.Path())

	// Mutating one area must not disturb another.
	created, err := projectRepo.Create(&content.Project{Title: content.Localized{En: "New Build"}})
	require.NoError(t, err)
	assert.Equal(t, "new-build", created.GetSlug())

	news, err := newsRepo.List(store.ListOptions[*content.NewsItem]{})
	require.NoError(t, err)
	assert.Len(t, news, 2)
}
