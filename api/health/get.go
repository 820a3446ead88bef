package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-forge/api/types"
)

// Get handles health check requests
// @Summary Health check
// @Description Reports service health including database and ffmpeg availability
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse "Service health details"
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.FFmpeg != nil {
			response["ffmpeg"] = getFFmpegStatus(deps)
		} else {
			response["ffmpeg"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// getFFmpegStatus reports whether the ffmpeg and ffprobe binaries resolve
func getFFmpegStatus(deps *types.Dependencies) gin.H {
	if err := deps.FFmpeg.ValidateBinaries(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}
	return gin.H{"status": "healthy"}
}
