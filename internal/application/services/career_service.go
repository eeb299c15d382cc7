package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// CareerService serves the careers content area
type CareerService struct {
	repo   *persistence.CareerRepository
	logger *logging.ChanneledLogger
}

func NewCareerService(repo *persistence.CareerRepository, logger *logging.ChanneledLogger) *CareerService {
	return &CareerService{repo: repo, logger: logger}
}

// List returns localized positions; openOnly narrows to open vacancies
func (s *CareerService) List(lang content.Lang, openOnly bool, limit int) ([]*content.CareerView, error) {
	opts := store.ListOptions[*content.Career]{Limit: limit}
	if openOnly {
		opts.Filter = func(c *content.Career) bool { return c.Open }
	}

	careers, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.CareerView, 0, len(careers))
	for _, c := range careers {
		views = append(views, c.Localize(lang))
	}
	return views, nil
}

func (s *CareerService) GetByID(id int, lang content.Lang) (*content.CareerView, error) {
	c, err := s.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return c.Localize(lang), nil
}

func (s *CareerService) GetBySlug(slug string, lang content.Lang) (*content.CareerView, error) {
	c, err := s.repo.GetBySlug(slug)
	if err != nil || c == nil {
		return nil, err
	}
	return c.Localize(lang), nil
}

func (s *CareerService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *CareerService) ListRaw() ([]*content.Career, error) {
	return s.repo.List(store.ListOptions[*content.Career]{})
}

func (s *CareerService) GetRaw(id int) (*content.Career, error) {
	return s.repo.GetByID(id)
}

func (s *CareerService) Create(c *content.Career) (*content.Career, error) {
	created, err := s.repo.Create(c)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Career created", "id", created.ID, "slug", created.GetSlug())
	return created, nil
}

func (s *CareerService) Update(id int, c *content.Career) (*content.Career, error) {
	return s.repo.Update(id, c)
}

func (s *CareerService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *CareerService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

func (s *CareerService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
