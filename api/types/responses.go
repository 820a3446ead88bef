package types

import "github.com/killallgit/podcast-forge/internal/models"

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// ProductionResponse describes one production run
type ProductionResponse struct {
	UUID              string           `json:"uuid"`
	Status            string           `json:"status"`
	Stage             string           `json:"stage"`
	Progress          int              `json:"progress"`
	SuggestedFilename string           `json:"suggested_filename,omitempty"`
	DurationMs        int              `json:"duration_ms,omitempty"`
	Manifest          *models.Manifest `json:"manifest,omitempty"`
	ErrorMessage      string           `json:"error_message,omitempty"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

// ProductionsResponse for production lists
type ProductionsResponse struct {
	BaseResponse
	Productions []ProductionResponse `json:"productions"`
	Count       int                  `json:"count"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
