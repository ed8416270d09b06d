package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupBookRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupBorrowingRoutes(api, c)
	}

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.POST("", c.BookHandler.CreateBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
		authors.POST("", c.AuthorHandler.CreateAuthor)
		authors.GET("/:id/books", c.AuthorHandler.AuthorBooks)
	}
}

// ========================================
// BORROWING ROUTES
// ========================================
func setupBorrowingRoutes(api *gin.RouterGroup, c *container.Container) {
	borrowings := api.Group("/borrowings")
	{
		borrowings.GET("", c.BorrowingHandler.ListBorrowings)
		borrowings.GET("/overdue", c.BorrowingHandler.OverdueBorrowings)
		borrowings.POST("", c.BorrowingHandler.BorrowBook)
		borrowings.PUT("/:id/return", c.BorrowingHandler.ReturnBook)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"collections": gin.H{
				"books":      len(appCtx.Books.Snapshot()),
				"authors":    len(appCtx.Authors.Snapshot()),
				"borrowings": len(appCtx.Borrowings.Snapshot()),
			},
		})
	}
}
