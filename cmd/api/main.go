// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventflow-ifc/eventflow-backend/internal/api/handlers"
	"github.com/eventflow-ifc/eventflow-backend/internal/api/middleware"
	"github.com/eventflow-ifc/eventflow-backend/internal/config"
	"github.com/eventflow-ifc/eventflow-backend/internal/cron"
	"github.com/eventflow-ifc/eventflow-backend/internal/db"
	"github.com/eventflow-ifc/eventflow-backend/internal/repository"
	"github.com/eventflow-ifc/eventflow-backend/internal/seed"
	"github.com/eventflow-ifc/eventflow-backend/internal/service"
	"github.com/eventflow-ifc/eventflow-backend/internal/socket"
	"github.com/eventflow-ifc/eventflow-backend/internal/upload"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	pg, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer pg.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(pg.Pool)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Object Storage (optional)
	// ============================================
	var uploader upload.Uploader
	if cfg.StorageBucket != "" {
		gcs, err := upload.NewGCSUploader(context.Background(), cfg.StorageBucket)
		if err != nil {
			log.Fatalf("❌ Failed to initialize object storage: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
	} else {
		log.Println("⚠️  Object storage not configured (STORAGE_BUCKET not set)")
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)
	wsHandler := socket.NewHandler(hub, cfg.JWTSecret)
	log.Println("🔌 WebSocket hub initialized")

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		log.Println("🌱 Seeding development data...")
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		Cache:       redisDB,
		Broadcaster: broadcaster,
	})
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services, uploader, cfg.MaxUploadBytes)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(repos.ResourceRepo)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"database":   "connected",
			"cache":      getCacheStatus(redisDB),
			"websocket":  "active",
			"ws_clients": hub.GetConnectedClientsCount(),
			"storage":    getStorageStatus(uploader),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// WebSocket route
		api.GET("/ws", wsHandler.HandleWebSocket)

		// ============================================
		// Public read routes
		// ============================================
		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)
		api.GET("/projects/:id/resources", h.Resource.ListByProject)
		api.GET("/calendar-events", h.Calendar.Events)

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			projects := protected.Group("/projects")
			{
				projects.POST("", h.Project.Create)
				projects.PUT("/:id", h.Project.Update)
				projects.DELETE("/:id", h.Project.Delete)
				projects.POST("/:id/duplicate", h.Project.Duplicate)
				projects.POST("/:id/image", h.Project.UploadImage)
				projects.POST("/:id/resources", h.Resource.Create)
			}

			resources := protected.Group("/resources")
			{
				resources.DELETE("/:id", h.Resource.Delete)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func getStorageStatus(uploader upload.Uploader) string {
	if uploader != nil {
		return "configured"
	}
	return "disabled"
}
