package http

import (
	"github.com/gin-gonic/gin"

	"bookcatalog/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Read routes are open; every mutating route sits behind the API key
// middleware, so rejected requests never reach the store.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Store)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to the Book Catalog API!",
			"books":   "/api/books",
			"stats":   "/api/books/stats",
			"health":  "/health",
		})
	})

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", booksController.ListBooks)
	router.GET("/api/books/stats", booksController.GetBookStats)
	router.GET("/api/books/:id", booksController.GetBook)

	protected := router.Group("/api", auth.RequireAPIKey(cfg.APIKey))
	protected.POST("/books", booksController.CreateBook)
	protected.PUT("/books/:id", booksController.ReplaceBook)
	protected.PATCH("/books/:id", booksController.PatchBook)
	protected.DELETE("/books/:id", booksController.DeleteBook)

	return router
}
