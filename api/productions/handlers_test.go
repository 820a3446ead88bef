package productions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-forge/api/types"
	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/production"
)

// fakeService is an in-memory production.Service for handler tests.
type fakeService struct {
	productions map[string]*models.Production
	createErr   error
	created     *models.Production
}

func newFakeService() *fakeService {
	return &fakeService{productions: make(map[string]*models.Production)}
}

func (s *fakeService) CreateProduction(ctx context.Context, script models.Script, options models.ProductionOptions) (*models.Production, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	prod := &models.Production{
		UUID:      "test-uuid-1",
		Script:    models.ScriptPayload(script),
		Options:   models.OptionsPayload(options),
		Status:    models.ProductionStatusPending,
		Stage:     models.StageIdle,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.created = prod
	s.productions[prod.UUID] = prod
	return prod, nil
}

func (s *fakeService) GetProduction(ctx context.Context, uuid string) (*models.Production, error) {
	prod, ok := s.productions[uuid]
	if !ok {
		return nil, production.ErrProductionNotFound
	}
	return prod, nil
}

func (s *fakeService) ListProductions(ctx context.Context, limit int) ([]*models.Production, error) {
	var out []*models.Production
	for _, p := range s.productions {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeService) DeleteProduction(ctx context.Context, uuid string) error {
	if _, ok := s.productions[uuid]; !ok {
		return production.ErrProductionNotFound
	}
	delete(s.productions, uuid)
	return nil
}

func setupRouter(service production.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	deps := &types.Dependencies{ProductionService: service}
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(engine.Group("/api/v1/productions"), deps, noop, noop)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateProduction(t *testing.T) {
	service := newFakeService()
	engine := setupRouter(service)

	w := postJSON(t, engine, "/api/v1/productions", CreateProductionRequest{
		Title: "Test Episode",
		Dialogue: []DialogueLineRequest{
			{Speaker: "Host 1", Text: "Hello."},
			{Speaker: "Host 2", Text: "Hi there."},
		},
		Options: models.ProductionOptions{Style: "npr"},
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	var response types.ProductionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "test-uuid-1", response.UUID)
	assert.Equal(t, models.ProductionStatusPending, response.Status)
	// Pending runs expose no manifest yet.
	assert.Nil(t, response.Manifest)

	require.NotNil(t, service.created)
	script := models.Script(service.created.Script)
	assert.Len(t, script.Lines, 2)
	assert.Equal(t, "Test Episode", script.Title)
}

func TestCreateProductionMissingDialogue(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := postJSON(t, engine, "/api/v1/productions", gin.H{"title": "No lines"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductionServiceError(t *testing.T) {
	service := newFakeService()
	service.createErr = errors.New("invalid script: dialogue line 0 has empty speaker")
	engine := setupRouter(service)

	w := postJSON(t, engine, "/api/v1/productions", CreateProductionRequest{
		Dialogue: []DialogueLineRequest{{Speaker: " ", Text: "orphan line"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProduction(t *testing.T) {
	service := newFakeService()
	service.productions["done-uuid"] = &models.Production{
		UUID:              "done-uuid",
		Status:            models.ProductionStatusDone,
		Stage:             models.StageDone,
		Progress:          100,
		SuggestedFilename: "episode.mp3",
		DurationMs:        120000,
		Manifest:          models.ManifestPayload{TotalLines: 3, Succeeded: []models.LineReport{{}, {}, {}}},
	}
	engine := setupRouter(service)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/productions/done-uuid", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response types.ProductionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.ProductionStatusDone, response.Status)
	assert.Equal(t, 120000, response.DurationMs)
	require.NotNil(t, response.Manifest)
	assert.Equal(t, 3, response.Manifest.TotalLines)
}

func TestGetProductionNotFound(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/productions/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductionAudio(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "episode.mp3")
	require.NoError(t, os.WriteFile(outputPath, []byte("mp3-bytes"), 0644))

	service := newFakeService()
	service.productions["done-uuid"] = &models.Production{
		UUID:              "done-uuid",
		Status:            models.ProductionStatusDone,
		OutputPath:        outputPath,
		SuggestedFilename: "my_episode.mp3",
	}
	engine := setupRouter(service)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/productions/done-uuid/audio", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mp3-bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "my_episode.mp3")
}

func TestGetProductionAudioNotReady(t *testing.T) {
	service := newFakeService()
	service.productions["busy-uuid"] = &models.Production{
		UUID:   "busy-uuid",
		Status: models.ProductionStatusProcessing,
		Stage:  models.StageSynthesizing,
	}
	engine := setupRouter(service)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/productions/busy-uuid/audio", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetProductionAudioFailedRun(t *testing.T) {
	service := newFakeService()
	service.productions["failed-uuid"] = &models.Production{
		UUID:         "failed-uuid",
		Status:       models.ProductionStatusFailed,
		ErrorMessage: "no dialogue lines produced audio",
	}
	engine := setupRouter(service)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/productions/failed-uuid/audio", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduction(t *testing.T) {
	service := newFakeService()
	service.productions["doomed"] = &models.Production{UUID: "doomed"}
	engine := setupRouter(service)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/productions/doomed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, service.productions)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/productions/doomed", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
