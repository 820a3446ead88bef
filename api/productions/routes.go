package productions

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-forge/api/types"
)

// RegisterRoutes registers production-related routes. Submission gets its own
// tighter rate limit than status polling.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, submitMiddleware, pollMiddleware gin.HandlerFunc) {
	router.POST("", submitMiddleware, CreateProduction(deps))       // Submit a script
	router.GET("", pollMiddleware, ListProductions(deps))           // List recent runs
	router.GET("/:uuid", pollMiddleware, GetProduction(deps))       // Run status
	router.GET("/:uuid/audio", pollMiddleware, GetProductionAudio(deps)) // Download finished MP3
	router.DELETE("/:uuid", submitMiddleware, DeleteProduction(deps))    // Remove run and audio
}
