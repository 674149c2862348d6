package main

import (
	"log"
	"net/http"

	"pdfshare-api/config"
	"pdfshare-api/handlers"
	"pdfshare-api/middleware"
	"pdfshare-api/repositories"
	"pdfshare-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	pdfRepo := repositories.NewPDFRepository(db)
	voteRepo := repositories.NewVoteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	pdfService := services.NewPDFService(pdfRepo)
	voteService := services.NewVoteService(voteRepo, pdfRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	pdfHandler := handlers.NewPDFHandler(pdfService)
	voteHandler := handlers.NewVoteHandler(voteService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public catalog routes
		v1.GET("/pdfs", pdfHandler.SearchPDFs)
		v1.GET("/pdfs/top", voteHandler.TopPDFs)
		v1.GET("/pdfs/:id", pdfHandler.GetPDF)

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/my/pdfs", pdfHandler.GetMyPDFs)

			protected.POST("/pdfs", pdfHandler.CreatePDF)
			protected.PUT("/pdfs/:id", pdfHandler.EditPDF)
			protected.DELETE("/pdfs/:id", pdfHandler.DeletePDF)

			protected.POST("/pdfs/:id/upvote", voteHandler.Upvote)
			protected.POST("/pdfs/:id/downvote", voteHandler.Downvote)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
