package main

import (
	"log"
	"net/http"

	"blog-article-api/config"
	"blog-article-api/handlers"
	"blog-article-api/helper"
	"blog-article-api/middleware"
	"blog-article-api/repositories"
	"blog-article-api/services"
	"blog-article-api/storage"

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
	db := config.InitDB()

	// Initialize collaborators
	articleRepo := repositories.NewArticleRepository(db)
	files, err := storage.NewDiskStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	// Initialize service and handler
	articleService := services.NewArticleService(articleRepo, files, helper.NewValidator())
	articleHandler := handlers.NewArticleHandler(articleService)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
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
	api := router.Group("/api")
	{
		articles := api.Group("/blog-articles")
		{
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.PATCH("/:id", articleHandler.UpdateArticle)
			articles.DELETE("/:id", articleHandler.DeleteArticle)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
