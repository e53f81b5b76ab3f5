// cmd/server/main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wedding-back/internal/config"
	"wedding-back/internal/handlers"
	"wedding-back/internal/mail"
	"wedding-back/internal/media"
	"wedding-back/internal/middleware"
	"wedding-back/internal/progress"
	"wedding-back/internal/storage"
	"wedding-back/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Initialize the JSON-file record store and repositories
	recordStore, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize record store:", err)
	}
	weddingRepo := store.NewWeddingRepo(recordStore, cfg.MediaDir)
	siteRepo := store.NewSiteRepo(recordStore)

	// Thumbnail batches report through the in-memory progress tracker;
	// it is process-local and not shared across instances.
	tracker := progress.NewTracker(progress.DefaultTTL)
	generator := media.NewGenerator(tracker, cfg.MediaDir, cfg.ThumbnailWidth)

	guard := media.Guard{
		MaxImageBytes: cfg.MaxImageUploadBytes,
		MaxVideoBytes: cfg.MaxVideoUploadBytes,
	}

	var minioClient *storage.MinIOClient
	if cfg.BackupEnabled() {
		minioClient, err = storage.NewMinIOClient(cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatal("Failed to initialize MinIO client:", err)
		}
	}

	var sender *mail.Sender
	if cfg.MailEnabled() {
		sender = mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser,
			cfg.SMTPPassword, cfg.ContactTo)
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// SEO documents
	r.GET("/sitemap.xml", handlers.Sitemap(weddingRepo, siteRepo, cfg))
	r.GET("/robots.txt", handlers.Robots(cfg))

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/login", handlers.Login(cfg))
		public.POST("/logout", handlers.Logout(cfg))
		public.GET("/mariages", handlers.ListWeddings(weddingRepo, cfg.JWTSecret))
		public.GET("/mariage/:id", handlers.GetWedding(weddingRepo, cfg.JWTSecret))
		public.GET("/profile", handlers.GetProfile(siteRepo))
		public.GET("/availability", handlers.GetAvailability(siteRepo))
		public.GET("/settings", handlers.GetSettings(siteRepo))
		public.GET("/social", handlers.GetSocial(siteRepo))
		public.GET("/custom-pages", handlers.ListPages(siteRepo, cfg.JWTSecret))
		public.GET("/custom-pages/:slug", handlers.GetPage(siteRepo, cfg.JWTSecret))
		public.GET("/images", handlers.ServeImage(cfg))
		public.POST("/contact", handlers.Contact(sender))
	}

	// Protected admin routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.PUT("/mariage/:id", handlers.UpdateWedding(weddingRepo))
		protected.POST("/newEvent", handlers.NewEvent(weddingRepo))
		protected.POST("/deleteEvent", handlers.DeleteEvent(weddingRepo))
		protected.POST("/updateVisibility", handlers.UpdateVisibility(weddingRepo))
		protected.POST("/updateImagesOrder", handlers.UpdateImagesOrder(weddingRepo))
		protected.POST("/updateWeddingsOrder", handlers.UpdateWeddingsOrder(weddingRepo))
		protected.POST("/updateInputs", handlers.UpdateInputs(weddingRepo))
		protected.POST("/addUrl", handlers.AddUrl(weddingRepo))
		protected.POST("/update", handlers.RemoveImage(weddingRepo))
		protected.POST("/updateCover", handlers.UpdateCover(weddingRepo))

		protected.POST("/upload", handlers.UploadMedia(weddingRepo, guard, cfg))
		protected.POST("/generate-thumbnails", handlers.GenerateThumbnails(weddingRepo, generator))
		protected.GET("/thumbnail-progress", handlers.ThumbnailProgress(tracker))

		protected.POST("/profile", handlers.UpdateProfile(siteRepo))
		protected.POST("/availability", handlers.UpdateAvailability(siteRepo))
		protected.POST("/settings", handlers.UpdateSettings(siteRepo))
		protected.POST("/social", handlers.UpdateSocial(siteRepo))

		protected.POST("/custom-pages", handlers.CreatePage(siteRepo))
		protected.PUT("/custom-pages/:id", handlers.UpdatePage(siteRepo))
		protected.DELETE("/custom-pages/:id", handlers.DeletePage(siteRepo))

		protected.POST("/backup", handlers.Backup(minioClient, cfg))
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
