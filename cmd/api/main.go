package main

import (
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/kaiwenliu/careconnect-go/docs"
	"github.com/kaiwenliu/careconnect-go/internal/api/handlers"
	"github.com/kaiwenliu/careconnect-go/internal/api/middleware"
	"github.com/kaiwenliu/careconnect-go/internal/api/routes"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/config"
	"github.com/kaiwenliu/careconnect-go/internal/config/db"
	"github.com/kaiwenliu/careconnect-go/internal/domain/audit"
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/domain/shortlist"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/viewtrack"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&category.Category{},
		&request.Request{},
		&shortlist.Shortlist{},
		&history.ServiceHistory{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// View tracking keeps per-session state in Redis
	tracker, err := viewtrack.NewRedisTracker(config.RedisURL, config.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer tracker.Close()

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, tracker)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, handlers.New(services))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
