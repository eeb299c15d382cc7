package services

import (
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// BlogService serves the blog content area
type BlogService struct {
	repo   *persistence.BlogRepository
	logger *logging.ChanneledLogger
}

func NewBlogService(repo *persistence.BlogRepository, logger *logging.ChanneledLogger) *BlogService {
	return &BlogService{repo: repo, logger: logger}
}

func (s *BlogService) List(lang content.Lang, publishedOnly bool, limit int) ([]*content.BlogPostView, error) {
	opts := store.ListOptions[*content.BlogPost]{Limit: limit}
	if publishedOnly {
		opts.Filter = func(b *content.BlogPost) bool { return b.Published }
	}

	posts, err := s.repo.List(opts)
	if err != nil {
		return nil, err
	}

	views := make([]*content.BlogPostView, 0, len(posts))
	for _, b := range posts {
		views = append(views, b.Localize(lang))
	}
	return views, nil
}

func (s *BlogService) GetByID(id int, lang content.Lang) (*content.BlogPostView, error) {
	b, err := s.repo.GetByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	return b.Localize(lang), nil
}

func (s *BlogService) GetBySlug(slug string, lang content.Lang) (*content.BlogPostView, error) {
	b, err := s.repo.GetBySlug(slug)
	if err != nil || b == nil {
		return nil, err
	}
	return b.Localize(lang), nil
}

func (s *BlogService) Settings(lang content.Lang) (*content.SectionSettingsView, error) {
	settings, err := s.repo.Settings()
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Localize(lang), nil
}

func (s *BlogService) ListRaw() ([]*content.BlogPost, error) {
	return s.repo.List(store.ListOptions[*content.BlogPost]{})
}

func (s *BlogService) GetRaw(id int) (*content.BlogPost, error) {
	return s.repo.GetByID(id)
}

func (s *BlogService) Create(b *content.BlogPost) (*content.BlogPost, error) {
	created, err := s.repo.Create(b)
	if err != nil {
		return nil, err
	}
	s.logger.Content().Info("Blog post created", "id", created.ID, "slug", created.GetSlug())
	return created, nil
}

func (s *BlogService) Update(id int, b *content.BlogPost) (*content.BlogPost, error) {
	return s.repo.Update(id, b)
}

func (s *BlogService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

func (s *BlogService) SettingsRaw() (*content.SectionSettings, error) {
	return s.repo.Settings()
}

func (s *BlogService) UpsertSettings(settings *content.SectionSettings) error {
	return s.repo.UpsertSettings(settings)
}
