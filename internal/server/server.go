package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"schemaviz/internal/config"
	"schemaviz/internal/database"
	"schemaviz/internal/handlers"
	"schemaviz/internal/repositories"
	"schemaviz/internal/routes"
	"schemaviz/internal/services"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Redis is optional: without it every parse request runs the scanner
	// directly, which is still cheap.
	var cache *repositories.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable at %s, parse caching disabled: %v", addr, err)
		} else {
			cache = repositories.NewCacheRepository(rdb)
			log.Println("Connected to Redis successfully")
		}
	}

	// Dependency injection
	parseService := services.NewParseService(cache)

	var analysisService *services.AnalysisService
	if analysisCfg, err := config.Analysis(); err != nil {
		log.Printf("Schema analysis disabled: %v", err)
	} else {
		analysisService = services.NewAnalysisService(analysisCfg)
	}

	snapshotRepo := repositories.NewSnapshotRepository(pool)
	snapshotService := services.NewSnapshotService(snapshotRepo, parseService)

	schemaHandler := handlers.NewSchemaHandler(parseService, analysisService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(router, schemaHandler, snapshotHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

// corsConfig allows the diagram frontend's origin(s) from CORS_ALLOWED_ORIGINS,
// falling back to allowing all origins for local development.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
