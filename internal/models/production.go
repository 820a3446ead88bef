package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Production status constants
const (
	ProductionStatusPending    = "pending"    // Created, awaiting a worker
	ProductionStatusProcessing = "processing" // Pipeline is running
	ProductionStatusDone       = "done"       // Exported audio is ready
	ProductionStatusFailed     = "failed"     // Run failed (no audio produced or precondition error)
)

// Production pipeline stages, reported while processing
const (
	StageIdle         = "idle"
	StageSynthesizing = "synthesizing"
	StageMixing       = "mixing"
	StageBracketing   = "bracketing"
	StageExporting    = "exporting"
	StageDone         = "done"
	StageFailed       = "failed"
)

// Production represents one dialogue-to-audio production run submitted
// through the API. The script and options are snapshotted at creation and
// never change afterwards.
type Production struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Input snapshot
	Script  ScriptPayload  `json:"script" gorm:"type:json"`
	Options OptionsPayload `json:"options" gorm:"type:json"`

	// Run state
	Status   string `json:"status" gorm:"default:pending;size:20;index"`
	Stage    string `json:"stage" gorm:"default:idle;size:20"`
	Progress int    `json:"progress" gorm:"default:0"` // 0-100

	// Output
	Manifest          ManifestPayload `json:"manifest" gorm:"type:json"`
	OutputPath        string          `json:"-" gorm:"size:500"`
	SuggestedFilename string          `json:"suggested_filename" gorm:"size:255"`
	DurationMs        int             `json:"duration_ms"`

	// Optional error message if the run failed
	ErrorMessage string `json:"error_message,omitempty" gorm:"size:500"`
}

// BeforeCreate generates a UUID before creating a new production
func (p *Production) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// IsTerminal returns true if the production has finished, successfully or not
func (p *Production) IsTerminal() bool {
	return p.Status == ProductionStatusDone || p.Status == ProductionStatusFailed
}
