// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/email"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/media"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content services (stateless singletons)
	ProjectService *services.ProjectService
	NewsService    *services.NewsService
	BlogService    *services.BlogService
	CareerService  *services.CareerService
	MediaService   *services.MediaService
	ClientService  *services.ClientService
	PageService    *services.PageService
	ContactService *services.ContactService
	UploadService  *services.UploadService
	AuthService    *services.AuthService

	// Infrastructure
	Locks       *store.LockManager
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *Container {
	locks := store.NewLockManager()
	contentDir := config.ContentDir

	projectRepo := persistence.NewProjectRepository(contentDir, locks)
	newsRepo := persistence.NewNewsRepository(contentDir, locks)
	blogRepo := persistence.NewBlogRepository(contentDir, locks)
	careerRepo := persistence.NewCareerRepository(contentDir, locks)
	mediaRepo := persistence.NewMediaRepository(contentDir, locks)
	clientRepo := persistence.NewClientRepository(contentDir, locks)
	pageRepo := persistence.NewPageRepository(contentDir, locks)
	messageRepo := persistence.NewMessageRepository(contentDir, locks)
	uploadRepo := persistence.NewUploadRepository(contentDir, locks)

	processor := media.NewProcessor(config.UploadDir, config.ImageMaxWidth, config.WebPQuality)

	// Contact notifications degrade to store-only when email is unconfigured.
	mailer, err := email.NewService(config.ResendAPIKey, config.EmailFrom, config.EmailFromName, config.ContactToEmail)
	if err != nil {
		logger.Mail().Warn("Email disabled", "reason", err.Error())
		mailer = nil
	}

	return &Container{
		ProjectService: services.NewProjectService(projectRepo, logger),
		NewsService:    services.NewNewsService(newsRepo, logger),
		BlogService:    services.NewBlogService(blogRepo, logger),
		CareerService:  services.NewCareerService(careerRepo, logger),
		MediaService:   services.NewMediaService(mediaRepo, logger),
		ClientService:  services.NewClientService(clientRepo, logger),
		PageService:    services.NewPageService(pageRepo, logger),
		ContactService: services.NewContactService(messageRepo, mailer, logger),
		UploadService:  services.NewUploadService(uploadRepo, processor, logger),
		AuthService:    services.NewAuthService(config.JWTSecret, config.AdminPassword, config.EditorPassword, config.TokenTTL, logger),

		Locks:       locks,
		Logger:      logger,
		PerfTracker: perfTracker,
	}
}
