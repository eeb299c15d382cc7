package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// PageService serves the editable site pages and site-wide settings
type PageService struct {
	repo   *persistence.PageRepository
	logger *logging.ChanneledLogger
}

func NewPageService(repo *persistence.PageRepository, logger *logging.ChanneledLogger) *PageService {
	return &PageService{repo: repo, logger: logger}
}

// List returns localized pages; menuOnly narrows to the navigation set
func (s *PageService) List(lang content.Lang, menuOnly bool) ([]*content.PageView, error) {
	opts := store.ListOptions[*content.Page]{}
	if menuOnly {
		opts.Filter = func(p *content.Page) bool { return p.ShowInMenu }
	}

	pages, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.PageView, 0, len(pages))
	for _, p := range pages {
		views = append(views, p.Localize(lang))
	}
	return views, nil
}

func (s *PageService) GetByID(id int, lang content.Lang) (*content.PageView, error) {
	p, err := s.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Localize(lang), nil
}

func (s *PageService) GetBySlug(slug string, lang content.Lang) (*content.PageView, error) {
	p, err := s.repo.GetBySlug(slug)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Localize(lang), nil
}

// SiteSettings returns the localized site-wide settings, nil before first save
func (s *PageService) SiteSettings(lang content.Lang) (*content.SiteSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *PageService) ListRaw() ([]*content.Page, error) {
	return s.repo.List(store.ListOptions[*content.Page]{})
}

func (s *PageService) GetRaw(id int) (*content.Page, error) {
	return s.repo.GetByID(id)
}

func (s *PageService) Create(p *content.Page) (*content.Page, error) {
	created, err := s.repo.Create(p)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Page created", "id", created.ID, "slug", created.GetSlug())
	return created, nil
}

func (s *PageService) Update(id int, p *content.Page) (*content.Page, error) {
	return s.repo.Update(id, p)
}

func (s *PageService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *PageService) SiteSettingsRaw() (*content.SiteSettings, error) {
	return s.repo.Settings()
}

func (s *PageService) UpsertSiteSettings(settings *content.SiteSettings) error {
	return s.repo.UpsertSettings(settings)
}
