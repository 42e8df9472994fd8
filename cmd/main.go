package main

import (
	"log"
	"net/http"
	"os"
	"symptotrack/database"
	"symptotrack/docs"
	"symptotrack/internal/cache"
	"symptotrack/internal/controllers"
	"symptotrack/internal/repository"
	"symptotrack/routes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "SymptoTrack API"
	docs.SwaggerInfo.Description = "Fever follow-up tracking for hospital staff: patients, symptom check-ins, and risk reports."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(database.DB)
	patientRepo := repository.NewPatientRepository(database.DB)
	entryRepo := repository.NewEntryRepository(database.DB)

	// Redis is best-effort: reports fall back to the database without it
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, overview caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Initialize controllers
	authController := controllers.NewAuthController(accountRepo)
	patientController := controllers.NewPatientController(patientRepo)
	checkinController := controllers.NewCheckinController(entryRepo, patientRepo)
	reportController := controllers.NewReportController(patientRepo, entryRepo, redisClient)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "SymptoTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterPatientRoutes(router, patientController, checkinController)
	routes.RegisterCheckinRoutes(router, checkinController)
	routes.RegisterReportRoutes(router, reportController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("SymptoTrack API started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
