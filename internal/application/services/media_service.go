package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// MediaService serves the media gallery content area
type MediaService struct {
	repo   *persistence.MediaRepository
	logger *logging.ChanneledLogger
}

func NewMediaService(repo *persistence.MediaRepository, logger *logging.ChanneledLogger) *MediaService {
	return &MediaService{repo: repo, logger: logger}
}

func (s *MediaService) List(lang content.Lang, publishedOnly bool, limit int) ([]*content.MediaItemView, error) {
	opts := store.ListOptions[*content.MediaItem]{Limit: limit}
	if publishedOnly {
		opts.Filter = func(m *content.MediaItem) bool { return m.Published }
	}

	items, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.MediaItemView, 0, len(items))
	for _, m := range items {
		views = append(views, m.Localize(lang))
	}
	return views, nil
}

func (s *MediaService) GetByID(id int, lang content.Lang) (*content.MediaItemView, error) {
	m, err := s.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Localize(lang), nil
}

func (s *MediaService) GetBySlug(slug string, lang content.Lang) (*content.MediaItemView, error) {
	m, err := s.repo.GetBySlug(slug)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Localize(lang), nil
}

func (s *MediaService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *MediaService) ListRaw() ([]*content.MediaItem, error) {
	return s.repo.List(store.ListOptions[*content.MediaItem]{})
}

func (s *MediaService) GetRaw(id int) (*content.MediaItem, error) {
	return s.repo.GetByID(id)
}

func (s *MediaService) Create(m *content.MediaItem) (*content.MediaItem, error) {
	created, err := s.repo.Create(m)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Media item created", "id", created.ID, "kind", created.Kind)
	return created, nil
}

func (s *MediaService) Update(id int, m *content.MediaItem) (*content.MediaItem, error) {
	return s.repo.Update(id, m)
}

func (s *MediaService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *MediaService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

func (s *MediaService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
