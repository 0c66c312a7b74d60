package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupRentalRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/id/:id", c.BookHandler.GetByID)
		books.GET("/title/:title", c.BookHandler.FindByTitle)
		books.GET("/author/:author", c.BookHandler.FindByAuthor)
	}

	// Catalog mutations require an authenticated admin.
	adminBooks := v1.Group("/books")
	adminBooks.Use(middleware.BasicAuth(c.UserService), middleware.AdminOnly())
	{
		adminBooks.POST("", c.BookHandler.Create)
		adminBooks.PUT("/:id", c.BookHandler.Update)
		adminBooks.DELETE("/:id", c.BookHandler.Delete)
	}
}

func setupRentalRoutes(v1 *gin.RouterGroup, c *container.Container) {
	rentals := v1.Group("/rentals")
	{
		rentals.GET("", c.RentalHandler.List)
	}

	authRentals := v1.Group("/rentals")
	authRentals.Use(middleware.BasicAuth(c.UserService))
	{
		authRentals.POST("/rent/:id", c.RentalHandler.Rent)
		authRentals.POST("/return/:id", c.RentalHandler.Return)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.POST("/register", c.UserHandler.Register)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		health["services"] = gin.H{"database": dbStatus}

		c.JSON(statusCode, health)
	}
}
