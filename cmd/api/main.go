package main

import (
	"fmt"
	"log"
	"os"

	"field-optimizer/internal/api/handlers"
	"field-optimizer/internal/api/middleware"
	"field-optimizer/internal/config"
	"field-optimizer/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// The operation catalog is fixed at process start: built-in by default,
	// or loaded from OPERATIONS_FILE.
	catalog := model.DefaultCatalog()
	advisorEndpoint := os.Getenv("ADVISOR_ENDPOINT")
	advisorModel := os.Getenv("ADVISOR_MODEL")

	if opsFile := os.Getenv("OPERATIONS_FILE"); opsFile != "" {
		profiles, err := config.LoadOperations(opsFile)
		if err != nil {
			log.Fatalf("Failed to load operations file %s: %v", opsFile, err)
		}
		catalog, err = model.NewCatalog(profiles)
		if err != nil {
			log.Fatalf("Invalid operations file %s: %v", opsFile, err)
		}
		log.Printf("Loaded %d operations from %s", catalog.Len(), opsFile)
	}

	// Note: the advisor API key is passed through from client requests; the
	// server never holds one.

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	optimizeHandler := handlers.NewOptimizeHandler(catalog)
	fleetHandler := handlers.NewFleetHandler(catalog)
	lpHandler := handlers.NewLPHandler()
	operationsHandler := handlers.NewOperationsHandler(catalog)
	rankHandler := handlers.NewRankHandler(catalog)
	metricsHandler := handlers.NewMetricsHandler(catalog)
	projectionHandler := handlers.NewProjectionHandler()
	suggestHandler := handlers.NewSuggestHandler(advisorEndpoint, advisorModel)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/optimize", optimizeHandler.RunOptimize)
		api.POST("/optimize/compare", optimizeHandler.CompareOptimizations)

		api.POST("/fleet", fleetHandler.SizeFleet)
		api.POST("/lp", lpHandler.Solve)
		api.POST("/metrics", metricsHandler.ComputeMetrics)
		api.POST("/projection", projectionHandler.Project)

		api.GET("/operations", operationsHandler.ListOperations)
		api.GET("/operations/:key", operationsHandler.GetOperation)
		api.GET("/rank", rankHandler.RankOperations)

		api.POST("/suggest", suggestHandler.Suggest)
	}

	// Serve the dashboard bundle from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
