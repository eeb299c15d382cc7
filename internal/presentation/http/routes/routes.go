// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/container"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/presentation/http/handlers"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Placeholder and other fixed assets used by upload-less records.
	r.Static("/static", "web/static")

	projectHandlers := handlers.NewProjectHandlers(c.ProjectService, c.Logger, c.PerfTracker)
	newsHandlers := handlers.NewNewsHandlers(c.NewsService, c.Logger, c.PerfTracker)
	blogHandlers := handlers.NewBlogHandlers(c.BlogService, c.Logger, c.PerfTracker)
	careerHandlers := handlers.NewCareerHandlers(c.CareerService, c.Logger, c.PerfTracker)
	mediaHandlers := handlers.NewMediaHandlers(c.MediaService, c.Logger, c.PerfTracker)
	clientHandlers := handlers.NewClientHandlers(c.ClientService, c.Logger, c.PerfTracker)
	pageHandlers := handlers.NewPageHandlers(c.PageService, c.Logger, c.PerfTracker)
	contactHandlers := handlers.NewContactHandlers(c.ContactService, c.Logger, c.PerfTracker)
	uploadHandlers := handlers.NewUploadHandlers(c.UploadService, c.Logger, c.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.Logger)

	r.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored upload binaries, publicly addressable by ledger id.
	r.GET("/api/uploads/:id", uploadHandlers.Serve)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.Login)
			auth.GET("/status", middleware.AdminAuth(c.AuthService), authHandlers.Status)
		}

		api.POST("/contact", contactHandlers.Submit)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandlers.List)
			projects.GET("/settings", projectHandlers.GetSettings)
			projects.GET("/slug/:slug", projectHandlers.GetBySlug)
			projects.GET("/:id", projectHandlers.GetByID)
		}

		news := api.Group("/news")
		{
			news.GET("", newsHandlers.List)
			news.GET("/settings", newsHandlers.GetSettings)
			news.GET("/slug/:slug", newsHandlers.GetBySlug)
			news.GET("/:id", newsHandlers.GetByID)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogHandlers.List)
			blog.GET("/settings", blogHandlers.GetSettings)
			blog.GET("/slug/:slug", blogHandlers.GetBySlug)
			blog.GET("/:id", blogHandlers.GetByID)
		}

		careers := api.Group("/careers")
		{
			careers.GET("", careerHandlers.List)
			careers.GET("/settings", careerHandlers.GetSettings)
			careers.GET("/slug/:slug", careerHandlers.GetBySlug)
			careers.GET("/:id", careerHandlers.GetByID)
		}

		mediaGroup := api.Group("/media")
		{
			mediaGroup.GET("", mediaHandlers.List)
			mediaGroup.GET("/settings", mediaHandlers.GetSettings)
			mediaGroup.GET("/slug/:slug", mediaHandlers.GetBySlug)
			mediaGroup.GET("/:id", mediaHandlers.GetByID)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clientHandlers.List)
			clients.GET("/settings", clientHandlers.GetSettings)
			clients.GET("/:id", clientHandlers.GetByID)
		}

		pages := api.Group("/pages")
		{
			pages.GET("", pageHandlers.List)
			pages.GET("/slug/:slug", pageHandlers.GetBySlug)
			pages.GET("/:id", pageHandlers.GetByID)
		}

		api.GET("/site-settings", pageHandlers.GetSiteSettings)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuth(c.AuthService))
	{
		adminProjects := admin.Group("/projects")
		{
			adminProjects.GET("", projectHandlers.AdminList)
			adminProjects.POST("", projectHandlers.AdminCreate)
			adminProjects.GET("/settings", projectHandlers.AdminGetSettings)
			adminProjects.PUT("/settings", projectHandlers.AdminUpdateSettings)
			adminProjects.GET("/:id", projectHandlers.AdminGet)
			adminProjects.PUT("/:id", projectHandlers.AdminUpdate)
			adminProjects.DELETE("/:id", projectHandlers.AdminDelete)
		}

		adminNews := admin.Group("/news")
		{
			adminNews.GET("", newsHandlers.AdminList)
			adminNews.POST("", newsHandlers.AdminCreate)
			adminNews.GET("/settings", newsHandlers.AdminGetSettings)
			adminNews.PUT("/settings", newsHandlers.AdminUpdateSettings)
			adminNews.GET("/:id", newsHandlers.AdminGet)
			adminNews.PUT("/:id", newsHandlers.AdminUpdate)
			adminNews.DELETE("/:id", newsHandlers.AdminDelete)
		}

		adminBlog := admin.Group("/blog")
		{
			adminBlog.GET("", blogHandlers.AdminList)
			adminBlog.POST("", blogHandlers.AdminCreate)
			adminBlog.GET("/settings", blogHandlers.AdminGetSettings)
			adminBlog.PUT("/settings", blogHandlers.AdminUpdateSettings)
			adminBlog.GET("/:id", blogHandlers.AdminGet)
			adminBlog.PUT("/:id", blogHandlers.AdminUpdate)
			adminBlog.DELETE("/:id", blogHandlers.AdminDelete)
		}

		adminCareers := admin.Group("/careers")
		{
			adminCareers.GET("", careerHandlers.AdminList)
			adminCareers.POST("", careerHandlers.AdminCreate)
			adminCareers.GET("/settings", careerHandlers.AdminGetSettings)
			adminCareers.PUT("/settings", careerHandlers.AdminUpdateSettings)
			adminCareers.GET("/:id", careerHandlers.AdminGet)
			adminCareers.PUT("/:id", careerHandlers.AdminUpdate)
			adminCareers.DELETE("/:id", careerHandlers.AdminDelete)
		}

		adminMedia := admin.Group("/media")
		{
			adminMedia.GET("", mediaHandlers.AdminList)
			adminMedia.POST("", mediaHandlers.AdminCreate)
			adminMedia.GET("/settings", mediaHandlers.AdminGetSettings)
			adminMedia.PUT("/settings", mediaHandlers.AdminUpdateSettings)
			adminMedia.GET("/:id", mediaHandlers.AdminGet)
			adminMedia.PUT("/:id", mediaHandlers.AdminUpdate)
			adminMedia.DELETE("/:id", mediaHandlers.AdminDelete)
		}

		adminClients := admin.Group("/clients")
		{
			adminClients.GET("", clientHandlers.AdminList)
			adminClients.POST("", clientHandlers.AdminCreate)
			adminClients.GET("/settings", clientHandlers.AdminGetSettings)
			adminClients.PUT("/settings", clientHandlers.AdminUpdateSettings)
			adminClients.GET("/:id", clientHandlers.AdminGet)
			adminClients.PUT("/:id", clientHandlers.AdminUpdate)
			adminClients.DELETE("/:id", clientHandlers.AdminDelete)
		}

		adminPages := admin.Group("/pages")
		{
			adminPages.GET("", pageHandlers.AdminList)
			adminPages.POST("", pageHandlers.AdminCreate)
			adminPages.GET("/:id", pageHandlers.AdminGet)
			adminPages.PUT("/:id", pageHandlers.AdminUpdate)
			adminPages.DELETE("/:id", pageHandlers.AdminDelete)
		}

		admin.GET("/site-settings", pageHandlers.AdminGetSiteSettings)
		admin.PUT("/site-settings", pageHandlers.AdminUpdateSiteSettings)

		adminMessages := admin.Group("/messages")
		{
			adminMessages.GET("", contactHandlers.AdminList)
			adminMessages.GET("/:id", contactHandlers.AdminGet)
			adminMessages.PUT("/:id/read", contactHandlers.AdminMarkRead)
			adminMessages.DELETE("/:id", contactHandlers.AdminDelete)
		}

		adminUploads := admin.Group("/uploads")
		{
			adminUploads.GET("", uploadHandlers.AdminList)
			adminUploads.POST("", uploadHandlers.Upload)
			adminUploads.DELETE("/:id", uploadHandlers.AdminDelete)
		}
	}

	return r
}
