package production

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-forge/internal/models"
)

// ErrProductionNotFound is returned when no production matches the UUID
var ErrProductionNotFound = errors.New("production not found")

// repository implements Repository backed by gorm
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new production repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, production *models.Production) error {
	return r.db.WithContext(ctx).Create(production).Error
}

func (r *repository) GetByUUID(ctx context.Context, uuid string) (*models.Production, error) {
	var production models.Production
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&production).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductionNotFound
		}
		return nil, fmt.Errorf("getting production: %w", err)
	}
	return &production, nil
}

func (r *repository) List(ctx context.Context, limit int) ([]*models.Production, error) {
	var productions []*models.Production
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&productions).Error; err != nil {
		return nil, fmt.Errorf("listing productions: %w", err)
	}
	return productions, nil
}

func (r *repository) Delete(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.Production{})
	if result.Error != nil {
		return fmt.Errorf("deleting production: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductionNotFound
	}
	return nil
}

func (r *repository) UpdateRunState(ctx context.Context, uuid string, status, stage string, progress int) error {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	result := r.db.WithContext(ctx).
		Model(&models.Production{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":   status,
			"stage":    stage,
			"progress": progress,
		})

	if result.Error != nil {
		return fmt.Errorf("updating production run state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductionNotFound
	}
	return nil
}

func (r *repository) SetResult(ctx context.Context, uuid string, manifest models.Manifest, outputPath, suggestedFilename string, durationMs int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Production{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":             models.ProductionStatusDone,
			"stage":              models.StageDone,
			"progress":           100,
			"manifest":           models.ManifestPayload(manifest),
			"output_path":        outputPath,
			"suggested_filename": suggestedFilename,
			"duration_ms":        durationMs,
		})

	if result.Error != nil {
		return fmt.Errorf("storing production result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductionNotFound
	}
	return nil
}

func (r *repository) SetFailed(ctx context.Context, uuid string, manifest models.Manifest, errorMsg string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Production{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":        models.ProductionStatusFailed,
			"stage":         models.StageFailed,
			"manifest":      models.ManifestPayload(manifest),
			"error_message": errorMsg,
		})

	if result.Error != nil {
		return fmt.Errorf("marking production failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductionNotFound
	}
	return nil
}
