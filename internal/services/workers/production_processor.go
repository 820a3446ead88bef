package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/jobs"
	"github.com/killallgit/podcast-forge/internal/services/production"
)

// ProductionProcessor renders queued productions through the pipeline
// orchestrator and mirrors run state into the production record.
type ProductionProcessor struct {
	jobService     jobs.Service
	productionRepo production.Repository
	orchestrator   *production.Orchestrator
	outputDir      string
}

// NewProductionProcessor creates a production render processor
func NewProductionProcessor(
	jobService jobs.Service,
	productionRepo production.Repository,
	orchestrator *production.Orchestrator,
	outputDir string,
) *ProductionProcessor {
	return &ProductionProcessor{
		jobService:     jobService,
		productionRepo: productionRepo,
		orchestrator:   orchestrator,
		outputDir:      outputDir,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *ProductionProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeProductionRender
}

// ProcessJob renders one production. Returned errors mark the job failed;
// run state lands on the production record either way.
func (p *ProductionProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	uuid, err := p.parseProductionUUID(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid job payload: %w", err)
	}

	log.Printf("Processing production render job %d (production: %s)", job.ID, uuid)

	prod, err := p.productionRepo.GetByUUID(ctx, uuid)
	if err != nil {
		return fmt.Errorf("loading production %s: %w", uuid, err)
	}
	if prod.IsTerminal() {
		// Completes the job record too, so a re-claimed job never sits in
		// processing after the production already reached a final state.
		log.Printf("Production %s already %s, completing job %d", uuid, prod.Status, job.ID)
		return p.jobService.CompleteJob(ctx, job.ID)
	}

	status := func(stage string, progress int, message string) {
		if err := p.productionRepo.UpdateRunState(ctx, uuid, models.ProductionStatusProcessing, stage, progress); err != nil {
			log.Printf("[WARN] Failed to update production %s state: %v", uuid, err)
		}
		if err := p.jobService.UpdateProgress(ctx, job.ID, progress); err != nil {
			log.Printf("[WARN] Failed to update job %d progress: %v", job.ID, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, uuid+".mp3")
	result, err := p.orchestrator.Run(ctx, models.Script(prod.Script), models.ProductionOptions(prod.Options), outputPath, status)
	if err != nil {
		// A RunError carries the per-line manifest collected before the
		// failure; persist it so callers can see which lines failed.
		var manifest models.Manifest
		var runErr *production.RunError
		if errors.As(err, &runErr) {
			manifest = runErr.Manifest
		}
		if failErr := p.productionRepo.SetFailed(ctx, uuid, manifest, err.Error()); failErr != nil {
			log.Printf("[WARN] Failed to mark production %s failed: %v", uuid, failErr)
		}
		return fmt.Errorf("rendering production %s: %w", uuid, err)
	}

	if err := p.productionRepo.SetResult(ctx, uuid, result.Manifest,
		result.OutputPath, result.SuggestedFilename, result.DurationMs); err != nil {
		return fmt.Errorf("storing production %s result: %w", uuid, err)
	}

	return p.jobService.CompleteJob(ctx, job.ID)
}

// parseProductionUUID extracts the production UUID from a job payload
func (p *ProductionProcessor) parseProductionUUID(payload models.JobPayload) (string, error) {
	raw, ok := payload["production_uuid"]
	if !ok {
		return "", fmt.Errorf("missing production_uuid")
	}
	uuid, ok := raw.(string)
	if !ok || uuid == "" {
		return "", fmt.Errorf("production_uuid is not a string")
	}
	return uuid, nil
}
