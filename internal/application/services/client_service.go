package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// ClientService serves the clients/partners content area
type ClientService struct {
	repo   *persistence.ClientRepository
	logger *logging.ChanneledLogger
}

func NewClientService(repo *persistence.ClientRepository, logger *logging.ChanneledLogger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// List returns localized clients; menuOnly narrows to the homepage strip
func (s *ClientService) List(lang content.Lang, menuOnly bool, limit int) ([]*content.ClientView, error) {
	opts := store.ListOptions[*content.Client]{Limit: limit}
	if menuOnly {
		opts.Filter = func(c *content.Client) bool { return c.ShowInMenu }
	}

	clients, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, c.Localize(lang))
	}
	return views, nil
}

func (s *ClientService) GetByID(id int, lang content.Lang) (*content.ClientView, error) {
	c, err := s.repo.GetByID(id)
	if err != nil || c == nil {
		return nil, err
	}
	return c.Localize(lang), nil
}

func (s *ClientService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *ClientService) ListRaw() ([]*content.Client, error) {
	return s.repo.List(store.ListOptions[*content.Client]{})
}

func (s *ClientService) GetRaw(id int) (*content.Client, error) {
	return s.repo.GetByID(id)
}

func (s *ClientService) Create(c *content.Client) (*content.Client, error) {
	created, err := s.repo.Create(c)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Client created", "id", created.ID)
	return created, nil
}

func (s *ClientService) Update(id int, c *content.Client) (*content.Client, error) {
	return s.repo.Update(id, c)
}

func (s *ClientService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *ClientService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

func (s *ClientService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
