package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-api/internal/shared/middleware"
	"bookcatalog-api/internal/shared/response"
	"bookcatalog-api/pkg/container"
)

// SetupRouter wires the HTTP surface. Catalog reads are anonymous; every
// write route requires an authenticated Administrator.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		auth := v1.Group("/auth")
		{
			auth.POST("/login", c.UserHandler.Login)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", c.AuthorHandler.GetAll)
			authors.GET("/:id", c.AuthorHandler.GetByID)
		}
		authorsAdmin := authors.Group("",
			middleware.Auth(c.JWTManager),
			middleware.RequireRole(middleware.RoleAdministrator),
		)
		{
			authorsAdmin.POST("", c.AuthorHandler.Create)
			authorsAdmin.PUT("/:id", c.AuthorHandler.Update)
			authorsAdmin.DELETE("/:id", c.AuthorHandler.Delete)
		}

		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.GetAll)
			books.GET("/:id", c.BookHandler.GetByID)
		}
		booksAdmin := books.Group("",
			middleware.Auth(c.JWTManager),
			middleware.RequireRole(middleware.RoleAdministrator),
		)
		{
			booksAdmin.POST("", c.BookHandler.Create)
			booksAdmin.PUT("/:id", c.BookHandler.Update)
			booksAdmin.DELETE("/:id", c.BookHandler.Delete)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":   "ok",
			"app":      c.Config.App.Name,
			"database": "ok",
			"cache":    "ok",
		}
		degraded := false

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			degraded = true
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = "unreachable"
			degraded = true
		}

		if degraded {
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable,
				"SERVICE_UNAVAILABLE", "service degraded", status)
			return
		}
		response.Success(ctx, http.StatusOK, status)
	}
}
