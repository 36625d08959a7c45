package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Neeraj-Gupta12/PropBot/internal/catalog"
	"github.com/Neeraj-Gupta12/PropBot/internal/config"
	"github.com/Neeraj-Gupta12/PropBot/internal/datasource"
	"github.com/Neeraj-Gupta12/PropBot/internal/handler"
	"github.com/Neeraj-Gupta12/PropBot/internal/nlp"
	"github.com/Neeraj-Gupta12/PropBot/internal/repository"
	"github.com/Neeraj-Gupta12/PropBot/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("PropBot Property Search Engine")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Select the property data source
	var source datasource.Source
	var logger service.QueryLogger
	switch cfg.Data.Source {
	case "postgres":
		repo, err := repository.NewPostgresRepository(
			cfg.PostgresDSN(),
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		source = repo
		logger = repo
		log.Println("✅ Connected to PostgreSQL database")
	default:
		source = datasource.NewJSONFiles(cfg.Data.Dir)
		log.Printf("✅ Using JSON data source at %s", cfg.Data.Dir)
	}

	// Build the initial catalog snapshot
	store := catalog.NewStore(source)
	if _, err := store.Rebuild(context.Background()); err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	snapshot := store.Snapshot()
	log.Printf("✅ Catalog built: %d properties", snapshot.Len())

	// Seed the place gazetteer from the catalog locations
	extractor := nlp.NewRuleBased(catalogPlaces(snapshot)...)
	interpreter := nlp.NewInterpreter(extractor)

	// Initialize services
	propertyService := service.NewPropertyService(store, logger)
	chatService := service.NewChatService(store, interpreter, logger)
	suggestionResolver := service.NewSuggestionResolver()

	log.Println("✅ Services initialized")

	// Initialize handlers
	propertyHandler := handler.NewPropertyHandler(
		propertyService,
		suggestionResolver,
		cfg.Search.DefaultPageSize,
		cfg.Search.MaxPageSize,
	)
	chatHandler := handler.NewChatHandler(chatService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "propbot-engine",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/properties/all", propertyHandler.GetAll)
		api.GET("/properties/filter", propertyHandler.Filter)
		api.GET("/property/:id", propertyHandler.Get)

		api.POST("/chatbot/chat", chatHandler.Chat)
		api.GET("/chatbot/chat/suggestions", propertyHandler.Suggestions)
		api.GET("/chatbot/suggestion", propertyHandler.Suggest)

		api.POST("/admin/reload", propertyHandler.Reload)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API base: http://localhost:%d/api", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

// catalogPlaces collects distinct location names for the extractor
// gazetteer, splitting compound "City, Region" values into their parts.
func catalogPlaces(snapshot *catalog.Catalog) []string {
	var places []string
	for i := range snapshot.Items {
		loc := snapshot.Items[i].Location
		if loc == "" {
			continue
		}
		places = append(places, loc)
		for _, part := range strings.Split(loc, ",") {
			if part = strings.TrimSpace(part); part != "" {
				places = append(places, part)
			}
		}
	}
	return places
}
