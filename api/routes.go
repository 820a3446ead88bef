package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-forge/api/health"
	"github.com/killallgit/podcast-forge/api/productions"
	"github.com/killallgit/podcast-forge/api/types"
	"github.com/killallgit/podcast-forge/api/version"
	_ "github.com/killallgit/podcast-forge/docs/swagger"
	"github.com/killallgit/podcast-forge/internal/services/jobs"
	productionService "github.com/killallgit/podcast-forge/internal/services/production"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	if deps.DB != nil && deps.DB.DB != nil {
		if deps.JobService == nil {
			deps.JobService = jobs.NewService(jobs.NewRepository(deps.DB.DB))
		}
		if deps.ProductionService == nil {
			deps.ProductionService = productionService.NewService(
				productionService.NewRepository(deps.DB.DB), deps.JobService)
		}

		// Production submission includes audio uploads and kicks off real
		// rendering work, so it gets a tight rate limit (2 req/s, burst 5).
		// Status polling gets a looser one (10 req/s, burst 20).
		submitMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5)
		pollMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)

		productionGroup := v1.Group("/productions")
		productions.RegisterRoutes(productionGroup, deps, submitMiddleware, pollMiddleware)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
