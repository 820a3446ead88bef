package types

import (
	"github.com/killallgit/podcast-forge/internal/database"
	"github.com/killallgit/podcast-forge/internal/services/jobs"
	"github.com/killallgit/podcast-forge/internal/services/production"
	"github.com/killallgit/podcast-forge/internal/services/workers"
	"github.com/killallgit/podcast-forge/pkg/ffmpeg"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	ProductionService production.Service
	JobService        jobs.Service
	WorkerPool        *workers.WorkerPool
	FFmpeg            *ffmpeg.FFmpeg
}
