// Package services provides application-level orchestration services
package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// ProjectService serves the projects content area
type ProjectService struct {
	repo   *persistence.ProjectRepository
	logger *logging.ChanneledLogger
}

// NewProjectService creates a new project service
func NewProjectService(repo *persistence.ProjectRepository, logger *logging.ChanneledLogger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// List returns localized projects, optionally published-only, capped at limit
func (s *ProjectService) List(lang content.Lang, publishedOnly bool, limit int) ([]*content.ProjectView, error) {
	opts := store.ListOptions[*content.Project]{Limit: limit}
	if publishedOnly {
		opts.Filter = func(p *content.Project) bool { return p.Published }
	}

	projects, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, p.Localize(lang))
	}
	return views, nil
}

// GetByID returns one localized project, nil when absent
func (s *ProjectService) GetByID(id int, lang content.Lang) (*content.ProjectView, error) {
	p, err := s.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Localize(lang), nil
}

// GetBySlug returns one localized project, nil when absent
func (s *ProjectService) GetBySlug(slug string, lang content.Lang) (*content.ProjectView, error) {
	p, err := s.repo.GetBySlug(slug)
	if err != nil || p == nil {
		return nil, err
	}
	return p.Localize(lang), nil
}

// Settings returns the localized projects page settings, nil before first save
func (s *ProjectService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

// ListRaw returns the full bilingual records for the dashboard
func (s *ProjectService) ListRaw() ([]*content.Project, error) {
	return s.repo.List(store.ListOptions[*content.Project]{})
}

// GetRaw returns one bilingual record, nil when absent
func (s *ProjectService) GetRaw(id int) (*content.Project, error) {
	return s.repo.GetByID(id)
}

// Create persists a new project
func (s *ProjectService) Create(p *content.Project) (*content.Project, error) {
	created, err := s.repo.Create(p)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Project created", "id", created.ID, "slug", created.GetSlug())
	return created, nil
}

// Update replaces a project wholesale, nil when absent
func (s *ProjectService) Update(id int, p *content.Project) (*content.Project, error) {
	updated, err := s.repo.Update(id, p)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		s.logger.Content().Info("Project updated", "id", id, "slug", updated.GetSlug())
	}
	return updated, nil
}

// Delete removes a project; false when nothing matched
func (s *ProjectService) Delete(id int) (bool, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Content().Info("Project deleted", "id", id)
	}
	return removed, nil
}

// SettingsRaw returns the bilingual settings record
func (s *ProjectService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

// UpsertSettings replaces the projects page settings wholesale
func (s *ProjectService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
