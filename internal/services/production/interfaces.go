package production

import (
	"context"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
)

// Service defines the business logic interface for production operations
type Service interface {
	// CreateProduction validates and persists a new production run and
	// enqueues its render job.
	CreateProduction(ctx context.Context, script models.Script, options models.ProductionOptions) (*models.Production, error)

	// GetProduction retrieves a production by UUID
	GetProduction(ctx context.Context, uuid string) (*models.Production, error)

	// ListProductions retrieves recent productions, newest first
	ListProductions(ctx context.Context, limit int) ([]*models.Production, error)

	// DeleteProduction removes a production record and its exported file
	DeleteProduction(ctx context.Context, uuid string) error
}

// Repository defines the interface for production persistence
type Repository interface {
	Create(ctx context.Context, production *models.Production) error
	GetByUUID(ctx context.Context, uuid string) (*models.Production, error)
	List(ctx context.Context, limit int) ([]*models.Production, error)
	Delete(ctx context.Context, uuid string) error

	// Run state updates, written by the render processor
	UpdateRunState(ctx context.Context, uuid string, status, stage string, progress int) error
	SetResult(ctx context.Context, uuid string, manifest models.Manifest, outputPath, suggestedFilename string, durationMs int) error
	SetFailed(ctx context.Context, uuid string, manifest models.Manifest, errorMsg string) error
}

// ClipEncoder writes a finished clip to an MP3 file. Satisfied by
// audio.Codec; faked in tests.
type ClipEncoder interface {
	EncodeMP3(ctx context.Context, clip *audio.Clip, bitrate string, outputPath string) error
}
