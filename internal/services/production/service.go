package production

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/jobs"
)

type service struct {
	repo       Repository
	jobService jobs.Service
}

// NewService creates a production service
func NewService(repo Repository, jobService jobs.Service) Service {
	return &service{
		repo:       repo,
		jobService: jobService,
	}
}

func (s *service) CreateProduction(ctx context.Context, script models.Script, options models.ProductionOptions) (*models.Production, error) {
	script.Normalize()
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	production := &models.Production{
		Script:  models.ScriptPayload(script),
		Options: models.OptionsPayload(options),
		Status:  models.ProductionStatusPending,
		Stage:   models.StageIdle,
	}

	if err := s.repo.Create(ctx, production); err != nil {
		return nil, fmt.Errorf("creating production: %w", err)
	}

	// One render job per production; re-submitting the same UUID is a no-op
	// while a job is still in flight.
	_, err := s.jobService.EnqueueUniqueJob(ctx, models.JobTypeProductionRender,
		models.JobPayload{"production_uuid": production.UUID}, "production_uuid")
	if err != nil {
		return nil, fmt.Errorf("enqueueing render job: %w", err)
	}

	log.Printf("[DEBUG] Created production %s with %d lines", production.UUID, len(script.Lines))

	return production, nil
}

func (s *service) GetProduction(ctx context.Context, uuid string) (*models.Production, error) {
	return s.repo.GetByUUID(ctx, uuid)
}

func (s *service) ListProductions(ctx context.Context, limit int) ([]*models.Production, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, limit)
}

func (s *service) DeleteProduction(ctx context.Context, uuid string) error {
	production, err := s.repo.GetByUUID(ctx, uuid)
	if err != nil {
		return err
	}

	if production.OutputPath != "" {
		if err := os.Remove(production.OutputPath); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to remove output file %s: %v", production.OutputPath, err)
		}
	}

	return s.repo.Delete(ctx, uuid)
}
