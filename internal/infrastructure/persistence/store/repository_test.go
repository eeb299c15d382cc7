package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID        int     `json:"id"`
	Slug      *string `json:"slug"`
	SortOrder int     `json:"sortOrder"`
	Title     string  `json:"title"`
	Published bool    `json:"published"`
}

func (r *testRecord) GetID() int        { return r.ID }
func (r *testRecord) SetID(id int)      { r.ID = id }
func (r *testRecord) GetSortOrder() int { return r.SortOrder }

func (r *testRecord) GetSlug() string {
	if r.Slug == nil {
		return ""
	}
	return *r.Slug
}

func (r *testRecord) SetSlug(s string) { r.Slug = &s }

type testSettings struct {
	Heading string `json:"heading"`
}

func newTestRepo(t *testing.T, seed func() *Document[*testRecord, testSettings]) *Repository[*testRecord, testSettings] {
	t.Helper()
	return NewRepository(Config[*testRecord, testSettings]{
		Path:      filepath.Join(t.TempDir(), "items.json"),
		Kind:      "item",
		Seed:      seed,
		SlugBasis: func(r *testRecord) string { return r.Title },
	}, NewLockManager())
}

func seedThree() *Document[*testRecord, testSettings] {
	return &Document[*testRecord, testSettings]{
		Items: []*testRecord{
			{Title: "First Item", SortOrder: 1},
			{Title: "Second Item", SortOrder: 2},
			{Title: "Third Item", SortOrder: 3},
		},
	}
}

func TestRepository_SeedsOnFirstAccess(t *testing.T) {
	repo := newTestRepo(t, seedThree)

	items, err := repo.List(ListOptions[*testRecord]{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "first-item", items[0].GetSlug())
	assert.Equal(t, 3, items[2].ID)
	assert.Equal(t, "third-item", items[2].GetSlug())

	// The seed is persisted, not just returned.
	_, err = os.Stat(repo.Path())
	require.NoError(t, err)

	created, err := repo.Create(&testRecord{Title: "Fourth"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestRepository_CreateAssignsIDAndSlug(t *testing.T) {
	repo := newTestRepo(t, nil)

	created, err := repo.Create(&testRecord{Title: "Al-Hamra Tower"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "al-hamra-tower", created.GetSlug())

	second, err := repo.Create(&testRecord{Title: "Al-Hamra Tower"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "al-hamra-tower-2", second.GetSlug())
}

func TestRepository_CreateNormalizesExplicitSlug(t *testing.T) {
	repo := newTestRepo(t, nil)

	item := &testRecord{Title: "Anything"}
	item.SetSlug("My Custom Slug!")
	created, err := repo.Create(item)
	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", created.GetSlug())
}

func TestRepository_CreateArabicTitleFallsBack(t *testing.T) {
	repo := newTestRepo(t, nil)

	created, err := repo.Create(&testRecord{Title: "برج الحمراء"})
	require.NoError(t, err)
	assert.Equal(t, "item-1", created.GetSlug())
}

func TestRepository_UpdatePreservesSlug(t *testing.T) {
	repo := newTestRepo(t, nil)
	created, err := repo.Create(&testRecord{Title: "Al-Hamra Tower"})
	require.NoError(t, err)

	// Title changes but the caller sends no slug: the public URL stays.
	updated, err := repo.Update(created.ID, &testRecord{Title: "Renamed Tower", Published: true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "al-hamra-tower", updated.GetSlug())
	assert.True(t, updated.Published)
}

func TestRepository_UpdateWithNewSlug(t *testing.T) {
	repo := newTestRepo(t, nil)
	created, err := repo.Create(&testRecord{Title: "Al-Hamra Tower"})
	require.NoError(t, err)
	_, err = repo.Create(&testRecord{Title: "Sea City"})
	require.NoError(t, err)

	item := &testRecord{Title: "Al-Hamra Tower"}
	item.SetSlug("Landmark Tower")
	updated, err := repo.Update(created.ID, item)
	require.NoError(t, err)
	assert.Equal(t, "landmark-tower", updated.GetSlug())

	// Colliding with another record's slug gets suffixed, never duplicated.
	item2 := &testRecord{Title: "Al-Hamra Tower"}
	item2.SetSlug("sea-city")
	updated, err = repo.Update(created.ID, item2)
	require.NoError(t, err)
	assert.Equal(t, "sea-city-2", updated.GetSlug())
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepo(t, nil)

	updated, err := repo.Update(99, &testRecord{Title: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRepository_DeleteIsIdempotentAndIDsNeverReused(t *testing.T) {
	repo := newTestRepo(t, nil)
	created, err := repo.Create(&testRecord{Title: "One"})
	require.NoError(t, err)

	removed, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	next, err := repo.Create(&testRecord{Title: "Two"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID)
}

func TestRepository_ListFilterSortLimit(t *testing.T) {
	repo := newTestRepo(t, nil)
	for _, r := range []*testRecord{
		{Title: "A", SortOrder: 2, Published: true},
		{Title: "B", SortOrder: 1, Published: false},
		{Title: "C", SortOrder: 1, Published: true},
		{Title: "D", SortOrder: 1, Published: true},
	} {
		_, err := repo.Create(r)
		require.NoError(t, err)
	}

	items, err := repo.List(ListOptions[*testRecord]{
		Filter: func(r *testRecord) bool { return r.Published },
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// sortOrder ascending, newer ids first within the same order.
	assert.Equal(t, "D", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
	assert.Equal(t, "A", items[2].Title)

	limited, err := repo.List(ListOptions[*testRecord]{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRepository_GetByIDAndSlug(t *testing.T) {
	repo := newTestRepo(t, nil)
	created, err := repo.Create(&testRecord{Title: "Al-Hamra Tower"})
	require.NoError(t, err)

	byID, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Al-Hamra Tower", byID.Title)

	bySlug, err := repo.GetBySlug("al-hamra-tower")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID, bySlug.ID)

	absent, err := repo.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, absent)

	absent, err = repo.GetBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestRepository_SettingsUpsert(t *testing.T) {
	repo := newTestRepo(t, nil)

	settings, err := repo.Settings()
	require.NoError(t, err)
	assert.Nil(t, settings)

	require.NoError(t, repo.UpsertSettings(&testSettings{Heading: "Our Work"}))

	settings, err = repo.Settings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Our Work", settings.Heading)
}

func TestRepository_ConcurrentCreates(t *testing.T) {
	repo := newTestRepo(t, nil)

	var wg sync.WaitGroup
	results := make([]*testRecord, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := repo.Create(&testRecord{Title: "Test"})
			if assert.NoError(t, err) {
				results[i] = created
			}
		}(i)
	}
	wg.Wait()
	require.NotNil(t, results[0])
	require.NotNil(t, results[1])

	assert.NotEqual(t, results[0].ID, results[1].ID)
	slugs := map[string]bool{results[0].GetSlug(): true, results[1].GetSlug(): true}
	assert.True(t, slugs["test"])
	assert.True(t, slugs["test-2"])
}

func TestRepository_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	locks := NewLockManager()
	cfg := Config[*testRecord, testSettings]{
		Path:      path,
		Kind:      "item",
		SlugBasis: func(r *testRecord) string { return r.Title },
	}

	first := NewRepository(cfg, locks)
	created, err := first.Create(&testRecord{Title: "Durable"})
	require.NoError(t, err)

	second := NewRepository(cfg, locks)
	loaded, err := second.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Durable", loaded.Title)
	assert.Equal(t, "durable", loaded.GetSlug())
}

func TestRepository_CorruptStoreFileIsHardError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	repo := NewRepository(Config[*testRecord, testSettings]{
		Path: path,
		Kind: "item",
		Seed: seedThree,
	}, NewLockManager())

	_, err := repo.List(ListOptions[*testRecord]{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	// The corrupt file is left for the operator, never overwritten by seeds.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{broken", string(data))
}
