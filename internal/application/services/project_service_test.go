package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

func newProjectFixture(t *testing.T) *ProjectService {
	t.Helper()
	repo := persistence.NewProjectRepository(t.TempDir(), store.NewLockManager())
	return NewProjectService(repo, testLogger(t))
}

func TestProjectList_LocalizedAndFiltered(t *testing.T) {
	svc := newProjectFixture(t)

	draft := &content.Project{Title: content.Localized{En: "Unannounced Tower"}}
	_, err := svc.Create(draft)
	require.NoError(t, err)

	all, err := svc.List(content.LangEnglish, false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	published, err := svc.List(content.LangArabic, true, 0)
	require.NoError(t, err)
	require.Len(t, published, 3)
	assert.Equal(t, "برج الحمراء", published[0].Title)

	limited, err := svc.List(content.LangEnglish, true, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestProjectGetBySlug_Localized(t *testing.T) {
	svc := newProjectFixture(t)

	view, err := svc.GetBySlug("al-hamra-tower", content.LangEnglish)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "Al-Hamra Tower", view.Title)

	view, err = svc.GetBySlug("missing", content.LangEnglish)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestProjectSettings_Localized(t *testing.T) {
	svc := newProjectFixture(t)

	settings, err := svc.Settings(content.LangArabic)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "مشاريعنا", settings.PageTitle)
}
