package store

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

// Record is the capability set a stored entity must provide. Entities embed
// content.Base (or an equivalent) by pointer to satisfy it.
type Record interface {
	GetID() int
	SetID(int)
	GetSlug() string
	SetSlug(string)
	GetSortOrder() int
}

// Document is the on-disk shape of one content area: an optional singleton
// settings record, the ordered items, the id watermark and the timestamp of
// the last successful write.
type Document[T Record, S any] struct {
	Settings  *S     `json:"settings"`
	Items     []T    `json:"items"`
	NextID    int    `json:"nextId"`
	UpdatedAt string `json:"updatedAt"`
}

// Config describes one content area's repository.
type Config[T Record, S any] struct {
	Path string // store file path
	Kind string // singular noun, used for synthetic slug fallbacks and error context

	// Seed builds the zero-state document on first access. Ids and slugs of
	// the seeded items are assigned by the repository; the factory stays pure.
	Seed func() *Document[T, S]

	// SlugBasis extracts the preferred slug basis (typically the English
	// title) from an entity. Nil disables slug management for the area and
	// slugs stay null.
	SlugBasis func(T) string
}

// Repository wraps the lock, atomic file I/O and slug primitives with typed
// CRUD operations for one content area. Reads are lock-free snapshots; every
// mutation re-reads the document under the path lock before writing.
type Repository[T Record, S any] struct {
	path      string
	kind      string
	seed      func() *Document[T, S]
	slugBasis func(T) string
	locks     *LockManager
}

// NewRepository creates a repository for one content area. Repositories that
// share a store path must share the lock manager.
func NewRepository[T Record, S any](cfg Config[T, S], locks *LockManager) *Repository[T, S] {
	return &Repository[T, S]{
		path:      cfg.Path,
		kind:      cfg.Kind,
		seed:      cfg.Seed,
		slugBasis: cfg.SlugBasis,
		locks:     locks,
	}
}

// Path returns the backing file path
func (r *Repository[T, S]) Path() string { return r.path }

// errNoChange signals a mutation that found nothing to do; the document is
// not rewritten and the caller reports the outcome through its own result.
var errNoChange = errors.New("no change")

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// seedDocument builds the zero-state document: sequential ids from 1, slugs
// derived in seed order so later seeds see earlier seeds' slugs, and the
// watermark just past the last seeded id.
func (r *Repository[T, S]) seedDocument() (*Document[T, S], error) {
	var doc *Document[T, S]
	if r.seed != nil {
		doc = r.seed()
	} else {
		doc = &Document[T, S]{}
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}

	taken := make(map[string]struct{}, len(doc.Items))
	for i, item := range doc.Items {
		item.SetID(i + 1)
		if r.slugBasis == nil {
			continue
		}
		basis := item.GetSlug()
		if basis == "" {
			basis = r.slugBasis(item)
		}
		slug, err := UniqueSlug(basis, fmt.Sprintf("%s-%d", r.kind, i+1), taken)
		if err != nil {
			return nil, fmt.Errorf("seeding %s store: %w", r.kind, err)
		}
		item.SetSlug(slug)
		taken[slug] = struct{}{}
	}

	doc.NextID = len(doc.Items) + 1
	return doc, nil
}

// loadLocked reads the document, seeding and persisting it when the file does
// not exist yet. Must be called with the path lock held.
func (r *Repository[T, S]) loadLocked() (*Document[T, S], error) {
	doc := new(Document[T, S])
	err := ReadJSON(r.path, doc)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	seeded, err := r.seedDocument()
	if err != nil {
		return nil, err
	}
	seeded.UpdatedAt = nowStamp()
	if err := WriteJSON(r.path, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// load reads a snapshot of the document. First access takes the path lock so
// concurrent first reads seed the file exactly once; after that reads are
// lock-free since the file is replaced atomically.
func (r *Repository[T, S]) load() (*Document[T, S], error) {
	doc := new(Document[T, S])
	err := ReadJSON(r.path, doc)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var seeded *Document[T, S]
	lockErr := r.locks.WithLock(r.path, func() error {
		var err error
		seeded, err = r.loadLocked()
		return err
	})
	if lockErr != nil {
		return nil, lockErr
	}
	return seeded, nil
}

// mutate runs fn against a fresh document under the path lock and persists
// the result. fn returning errNoChange skips the write.
func (r *Repository[T, S]) mutate(fn func(doc *Document[T, S]) error) error {
	return r.locks.WithLock(r.path, func() error {
		doc, err := r.loadLocked()
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			if errors.Is(err, errNoChange) {
				return nil
			}
			return err
		}
		doc.UpdatedAt = nowStamp()
		return WriteJSON(r.path, doc)
	})
}

// ListOptions narrows and truncates a listing.
type ListOptions[T Record] struct {
	Filter func(T) bool
	Limit  int
}

// List returns the items matching opts.Filter, sorted by sortOrder ascending
// with id descending as the tie-break, truncated to opts.Limit when positive.
func (r *Repository[T, S]) List(opts ListOptions[T]) ([]T, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(doc.Items))
	for _, item := range doc.Items {
		if opts.Filter == nil || opts.Filter(item) {
			items = append(items, item)
		}
	}

	sortRecords(items)

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

func sortRecords[T Record](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].GetSortOrder() != items[j].GetSortOrder() {
			return items[i].GetSortOrder() < items[j].GetSortOrder()
		}
		return items[i].GetID() > items[j].GetID()
	})
}

// GetByID returns the item with the given id, or the zero value when absent.
func (r *Repository[T, S]) GetByID(id int) (T, error) {
	var zero T
	doc, err := r.load()
	if err != nil {
		return zero, err
	}
	for _, item := range doc.Items {
		if item.GetID() == id {
			return item, nil
		}
	}
	return zero, nil
}

// GetBySlug returns the item with the given non-empty slug, or the zero value.
func (r *Repository[T, S]) GetBySlug(slug string) (T, error) {
	var zero T
	if slug == "" {
		return zero, nil
	}
	doc, err := r.load()
	if err != nil {
		return zero, err
	}
	for _, item := range doc.Items {
		if item.GetSlug() == slug {
			return item, nil
		}
	}
	return zero, nil
}

// Create allocates the next id, derives a unique slug from the caller's slug
// (when supplied) or the area's slug basis, appends the item and persists.
func (r *Repository[T, S]) Create(item T) (T, error) {
	var zero T
	err := r.mutate(func(doc *Document[T, S]) error {
		item.SetID(doc.NextID)

		if r.slugBasis != nil {
			basis := item.GetSlug()
			if basis == "" {
				basis = r.slugBasis(item)
			}
			slug, err := UniqueSlug(basis, fmt.Sprintf("%s-%d", r.kind, item.GetID()), r.takenSlugs(doc, 0))
			if err != nil {
				return fmt.Errorf("creating %s: %w", r.kind, err)
			}
			item.SetSlug(slug)
		}

		doc.Items = append(doc.Items, item)
		doc.NextID++
		return nil
	})
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the record with the given id wholesale, preserving its slug
// unless the caller supplied a new non-empty slug value. An explicit slug is
// authoritative over the area's derived default. Returns the zero value when
// no record has that id.
func (r *Repository[T, S]) Update(id int, item T) (T, error) {
	var zero T
	found := false
	err := r.mutate(func(doc *Document[T, S]) error {
		idx := indexByID(doc.Items, id)
		if idx < 0 {
			return errNoChange
		}
		found = true
		current := doc.Items[idx]
		item.SetID(id)

		if r.slugBasis != nil {
			if supplied := item.GetSlug(); supplied != "" && supplied != current.GetSlug() {
				slug, err := UniqueSlug(supplied, fmt.Sprintf("%s-%d", r.kind, id), r.takenSlugs(doc, id))
				if err != nil {
					return fmt.Errorf("updating %s %d: %w", r.kind, id, err)
				}
				item.SetSlug(slug)
			} else if current.GetSlug() != "" {
				// Slugs are public URLs: never regenerate on unrelated edits.
				item.SetSlug(current.GetSlug())
			}
		}

		doc.Items[idx] = item
		return nil
	})
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, nil
	}
	return item, nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op reported through the bool result, not an error. Ids are never reused.
func (r *Repository[T, S]) Delete(id int) (bool, error) {
	removed := false
	err := r.mutate(func(doc *Document[T, S]) error {
		idx := indexByID(doc.Items, id)
		if idx < 0 {
			return errNoChange
		}
		doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
		removed = true
		return nil
	})
	return removed, err
}

// Settings returns the area's singleton settings record, nil before first save.
func (r *Repository[T, S]) Settings() (*S, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Settings, nil
}

// UpsertSettings replaces the singleton settings record wholesale.
func (r *Repository[T, S]) UpsertSettings(settings *S) error {
	return r.mutate(func(doc *Document[T, S]) error {
		doc.Settings = settings
		return nil
	})
}

func (r *Repository[T, S]) takenSlugs(doc *Document[T, S], excludeID int) map[string]struct{} {
	taken := make(map[string]struct{}, len(doc.Items))
	for _, item := range doc.Items {
		if item.GetID() == excludeID {
			continue
		}
		if slug := item.GetSlug(); slug != "" {
			taken[slug] = struct{}{}
		}
	}
	return taken
}

func indexByID[T Record](items []T, id int) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
