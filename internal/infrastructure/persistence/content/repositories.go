// Package content provides the per-area JSON-file repositories: one store
// file per content area, instantiated from the generic store repository with
// the area's seed data and slug basis.
package content

import (
	"path/filepath"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

type (
	ProjectRepository = store.Repository[*content.Project, content.SectionSettings]
	NewsRepository    = store.Repository[*content.NewsItem, content.SectionSettings]
	BlogRepository    = store.Repository[*content.BlogPost, content.SectionSettings]
	CareerRepository  = store.Repository[*content.Career, content.SectionSettings]
	MediaRepository   = store.Repository[*content.MediaItem, content.SectionSettings]
	ClientRepository  = store.Repository[*content.Client, content.SectionSettings]
	PageRepository    = store.Repository[*content.Page, content.SiteSettings]
	MessageRepository = store.Repository[*content.Message, content.SectionSettings]
	UploadRepository  = store.Repository[*content.Upload, content.SectionSettings]
)

// titleBasis prefers the English title for slugs; an Arabic-only title
// normalizes to nothing and falls through to the synthetic kind-id form.
func titleBasis(title content.Localized) string {
	if title.En != "" {
		return title.En
	}
	return title.Ar
}

func NewProjectRepository(dir string, locks *store.LockManager) *ProjectRepository {
	return store.NewRepository(store.Config[*content.Project, content.SectionSettings]{
		Path:      filepath.Join(dir, "projects.json"),
		Kind:      "project",
		Seed:      seedProjects,
		SlugBasis: func(p *content.Project) string { return titleBasis(p.Title) },
	}, locks)
}

func NewNewsRepository(dir string, locks *store.LockManager) *NewsRepository {
	return store.NewRepository(store.Config[*content.NewsItem, content.SectionSettings]{
		Path:      filepath.Join(dir, "news.json"),
		Kind:      "news",
		Seed:      seedNews,
		SlugBasis: func(n *content.NewsItem) string { return titleBasis(n.Title) },
	}, locks)
}

func NewBlogRepository(dir string, locks *store.LockManager) *BlogRepository {
	return store.NewRepository(store.Config[*content.BlogPost, content.SectionSettings]{
		Path:      filepath.Join(dir, "blog.json"),
		Kind:      "post",
		Seed:      seedBlog,
		SlugBasis: func(b *content.BlogPost) string { return titleBasis(b.Title) },
	}, locks)
}

func NewCareerRepository(dir string, locks *store.LockManager) *CareerRepository {
	return store.NewRepository(store.Config[*content.Career, content.SectionSettings]{
		Path:      filepath.Join(dir, "careers.json"),
		Kind:      "career",
		Seed:      seedCareers,
		SlugBasis: func(c *content.Career) string { return titleBasis(c.Title) },
	}, locks)
}

func NewMediaRepository(dir string, locks *store.LockManager) *MediaRepository {
	return store.NewRepository(store.Config[*content.MediaItem, content.SectionSettings]{
		Path:      filepath.Join(dir, "media.json"),
		Kind:      "media",
		Seed:      seedMedia,
		SlugBasis: func(m *content.MediaItem) string { return titleBasis(m.Title) },
	}, locks)
}

func NewClientRepository(dir string, locks *store.LockManager) *ClientRepository {
	return store.NewRepository(store.Config[*content.Client, content.SectionSettings]{
		Path:      filepath.Join(dir, "clients.json"),
		Kind:      "client",
		Seed:      seedClients,
		SlugBasis: func(c *content.Client) string { return titleBasis(c.Name) },
	}, locks)
}

func NewPageRepository(dir string, locks *store.LockManager) *PageRepository {
	return store.NewRepository(store.Config[*content.Page, content.SiteSettings]{
		Path:      filepath.Join(dir, "pages.json"),
		Kind:      "page",
		Seed:      seedPages,
		SlugBasis: func(p *content.Page) string { return titleBasis(p.Title) },
	}, locks)
}

// Messages have no slugs; SlugBasis stays nil and slugs remain null.
func NewMessageRepository(dir string, locks *store.LockManager) *MessageRepository {
	return store.NewRepository(store.Config[*content.Message, content.SectionSettings]{
		Path: filepath.Join(dir, "messages.json"),
		Kind: "message",
	}, locks)
}

// Uploads are a ledger of stored files; no slugs, no seed.
func NewUploadRepository(dir string, locks *store.LockManager) *UploadRepository {
	return store.NewRepository(store.Config[*content.Upload, content.SectionSettings]{
		Path: filepath.Join(dir, "uploads.json"),
		Kind: "upload",
	}, locks)
}
