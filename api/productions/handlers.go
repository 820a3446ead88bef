package productions

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-forge/api/types"
	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/production"
)

// DialogueLineRequest is one scripted line in a submission
// @Description A single dialogue line attributed to a speaker role
type DialogueLineRequest struct {
	Speaker string `json:"speaker" binding:"required" example:"Host 1" description:"Speaker role label"`
	Text    string `json:"text" example:"Welcome back to the show." description:"Line text to synthesize"`
}

// CreateProductionRequest represents the request to start a production run
// @Description Request body for submitting a dialogue script for audio production
type CreateProductionRequest struct {
	Title    string                   `json:"title" example:"AI News Weekly" description:"Episode title, used for the suggested filename"`
	Dialogue []DialogueLineRequest    `json:"dialogue" binding:"required,min=1" description:"Ordered dialogue lines"`
	Options  models.ProductionOptions `json:"options" description:"Voices, music bed, intro/outro and pacing options"`
}

// toProductionResponse maps a production record to its API shape
func toProductionResponse(p *models.Production) types.ProductionResponse {
	response := types.ProductionResponse{
		UUID:              p.UUID,
		Status:            p.Status,
		Stage:             p.Stage,
		Progress:          p.Progress,
		SuggestedFilename: p.SuggestedFilename,
		DurationMs:        p.DurationMs,
		ErrorMessage:      p.ErrorMessage,
		CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:         p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.IsTerminal() {
		manifest := models.Manifest(p.Manifest)
		response.Manifest = &manifest
	}
	return response
}

// CreateProduction handles production submission
// @Summary Submit a dialogue script for audio production
// @Description Accepts a multi-speaker dialogue script plus style options and queues it for
// @Description rendering. Synthesis, mixing and export run asynchronously; poll the returned
// @Description UUID for status, then fetch the finished audio from the audio endpoint. Lines
// @Description that permanently fail synthesis are skipped and reported in the manifest.
// @Tags productions
// @Accept json
// @Produce json
// @Param request body CreateProductionRequest true "Dialogue script and production options"
// @Success 202 {object} types.ProductionResponse "Production accepted and queued"
// @Failure 400 {object} types.ErrorResponse "Invalid script or options"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/productions [post]
func CreateProduction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		script := models.Script{Title: req.Title}
		for _, line := range req.Dialogue {
			script.Lines = append(script.Lines, models.DialogueLine{
				Speaker: line.Speaker,
				Text:    line.Text,
			})
		}

		prod, err := deps.ProductionService.CreateProduction(c.Request.Context(), script, req.Options)
		if err != nil {
			types.SendBadRequest(c, fmt.Sprintf("Failed to create production: %v", err))
			return
		}

		types.SendAccepted(c, toProductionResponse(prod))
	}
}

// GetProduction retrieves production status
// @Summary Get production status by UUID
// @Description Retrieve the current status of a production run: pipeline stage, progress,
// @Description and, once finished, the per-line manifest and suggested filename.
// @Tags productions
// @Produce json
// @Param uuid path string true "Production identifier (UUID format)"
// @Success 200 {object} types.ProductionResponse "Production status"
// @Failure 404 {object} types.ErrorResponse "Production not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/productions/{uuid} [get]
func GetProduction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("uuid")

		prod, err := deps.ProductionService.GetProduction(c.Request.Context(), uuid)
		if err != nil {
			if errors.Is(err, production.ErrProductionNotFound) {
				types.SendNotFound(c, "Production not found")
				return
			}
			types.SendInternalError(c, fmt.Sprintf("Failed to get production: %v", err))
			return
		}

		types.SendSuccess(c, toProductionResponse(prod))
	}
}

// ListProductions lists recent productions
// @Summary List recent productions
// @Description Retrieve recent production runs, newest first.
// @Tags productions
// @Produce json
// @Param limit query int false "Maximum results (default 20, max 100)"
// @Success 200 {object} types.ProductionsResponse "Recent productions"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/productions [get]
func ListProductions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			if _, err := fmt.Sscanf(raw, "%d", &limit); err != nil {
				types.SendBadRequest(c, "Invalid limit")
				return
			}
		}

		prods, err := deps.ProductionService.ListProductions(c.Request.Context(), limit)
		if err != nil {
			types.SendInternalError(c, fmt.Sprintf("Failed to list productions: %v", err))
			return
		}

		response := types.ProductionsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Count:        len(prods),
		}
		for _, p := range prods {
			response.Productions = append(response.Productions, toProductionResponse(p))
		}

		types.SendSuccess(c, response)
	}
}

// GetProductionAudio serves the exported MP3
// @Summary Download the finished audio
// @Description Serve the exported MP3 for a completed production as a file attachment
// @Description using the suggested filename derived from the script title.
// @Tags productions
// @Produce audio/mpeg
// @Param uuid path string true "Production identifier (UUID format)"
// @Success 200 {file} file "Exported MP3 audio"
// @Failure 404 {object} types.ErrorResponse "Production not found or audio not ready"
// @Failure 409 {object} types.ErrorResponse "Production is still processing"
// @Router /api/v1/productions/{uuid}/audio [get]
func GetProductionAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("uuid")

		prod, err := deps.ProductionService.GetProduction(c.Request.Context(), uuid)
		if err != nil {
			if errors.Is(err, production.ErrProductionNotFound) {
				types.SendNotFound(c, "Production not found")
				return
			}
			types.SendInternalError(c, fmt.Sprintf("Failed to get production: %v", err))
			return
		}

		if !prod.IsTerminal() {
			c.JSON(http.StatusConflict, types.ErrorResponse{
				Error: fmt.Sprintf("Production is %s, audio not ready", prod.Status),
			})
			return
		}
		if prod.Status == models.ProductionStatusFailed || prod.OutputPath == "" {
			types.SendNotFound(c, "No audio available for this production")
			return
		}
		if _, err := os.Stat(prod.OutputPath); err != nil {
			types.SendNotFound(c, "Exported audio file is missing")
			return
		}

		filename := prod.SuggestedFilename
		if filename == "" {
			filename = production.DefaultOutputFilename
		}
		c.FileAttachment(prod.OutputPath, filename)
	}
}

// DeleteProduction removes a production
// @Summary Delete a production
// @Description Delete a production record and its exported audio file.
// @Tags productions
// @Produce json
// @Param uuid path string true "Production identifier (UUID format)"
// @Success 200 {object} types.BaseResponse "Production deleted"
// @Failure 404 {object} types.ErrorResponse "Production not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/productions/{uuid} [delete]
func DeleteProduction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("uuid")

		if err := deps.ProductionService.DeleteProduction(c.Request.Context(), uuid); err != nil {
			if errors.Is(err, production.ErrProductionNotFound) {
				types.SendNotFound(c, "Production not found")
				return
			}
			types.SendInternalError(c, fmt.Sprintf("Failed to delete production: %v", err))
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Production deleted",
		})
	}
}
