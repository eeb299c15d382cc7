package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// NewsService serves the news content area
type NewsService struct {
	repo   *persistence.NewsRepository
	logger *logging.ChanneledLogger
}

func NewNewsService(repo *persistence.NewsRepository, logger *logging.ChanneledLogger) *NewsService {
	return &NewsService{repo: repo, logger: logger}
}

func (s *NewsService) List(lang content.Lang, publishedOnly bool, limit int) ([]*content.NewsItemView, error) {
	opts := store.ListOptions[*content.NewsItem]{Limit: limit}
	if publishedOnly {
		opts.Filter = func(n *content.NewsItem) bool { return n.Published }
	}

	items, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.NewsItemView, 0, len(items))
	for _, n := range items {
		views = append(views, n.Localize(lang))
	}
	return views, nil
}

func (s *NewsService) GetByID(id int, lang content.Lang) (*content.NewsItemView, error) {
	n, err := s.repo.GetByID(id)
	if err != nil || n == nil {
		return nil, err
	}
	return n.Localize(lang), nil
}

func (s *NewsService) GetBySlug(slug string, lang content.Lang) (*content.NewsItemView, error) {
	n, err := s.repo.GetBySlug(slug)
	if err != nil || n == nil {
		return nil, err
	}
	return n.Localize(lang), nil
}

func (s *NewsService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *NewsService) ListRaw() ([]*content.NewsItem, error) {
	return s.repo.List(store.ListOptions[*content.NewsItem]{})
}

func (s *NewsService) GetRaw(id int) (*content.NewsItem, error) {
	return s.repo.GetByID(id)
}

func (s *NewsService) Create(n *content.NewsItem) (*content.NewsItem, error) {
	created, err := s.repo.Create(n)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("News item created", "id", created.ID, "slug", created.GetSlug())
	return created, nil
}

func (s *NewsService) Update(id int, n *content.NewsItem) (*content.NewsItem, error) {
	return s.repo.Update(id, n)
}

func (s *NewsService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *NewsService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

func (s *NewsService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
