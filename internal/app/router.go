package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"courier/internal/handler"
	"courier/internal/middleware"
	"courier/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	ReportHandler    *handler.ReportHandler
	AuthService      *service.AuthService
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes (no session required).
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
		}

		// Everything below requires an operator session.
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.AuthService))

		// Dashboard routes.
		dashboard := authed.Group("/dashboard")
		{
			dashboard.GET("/summary", deps.DashboardHandler.Summary)
			dashboard.GET("/records", deps.DashboardHandler.Records)
			dashboard.GET("/subtotals", deps.DashboardHandler.Subtotals)
			dashboard.GET("/map", deps.DashboardHandler.Map)
			dashboard.GET("/employees", deps.DashboardHandler.Employees)
			dashboard.POST("/refresh", deps.DashboardHandler.Refresh)
		}

		// Report routes.
		reports := authed.Group("/reports")
		{
			reports.POST("", deps.ReportHandler.Export)
			reports.GET("", deps.ReportHandler.GetAll)
			reports.GET("/:id", deps.ReportHandler.GetReport)
		}
	}

	return router
}
