package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// HTTPBackendConfig configures the HTTP synthesis backend client.
type HTTPBackendConfig struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit int // Requests per second against the backend (0 = unlimited)
	RateBurst int
}

// HTTPBackend calls a TTS service over HTTP: JSON request in, raw encoded
// audio bytes out. Calls are rate limited so concurrent line synthesis
// cannot hammer the backend past its quota.
type HTTPBackend struct {
	cfg     HTTPBackendConfig
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPBackend creates a new HTTP synthesis backend client
func NewHTTPBackend(cfg HTTPBackendConfig) *HTTPBackend {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &HTTPBackend{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// synthesizeRequest is the JSON body sent to the backend
type synthesizeRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed,omitempty"`
}

// Synthesize sends one line of text to the backend and returns the encoded
// audio bytes. Non-2xx responses and transport errors are wrapped in
// BackendError so the retry layer can classify them.
func (b *HTTPBackend) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if req.Text == "" {
		return nil, ErrEmptyInput
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(synthesizeRequest{
		Text:  req.Text,
		Voice: req.VoiceID,
		Speed: req.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding synthesis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.BaseURL+"/v1/synthesize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating synthesis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	if b.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &BackendError{Status: resp.StatusCode, Body: string(snippet)}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	if len(audio) == 0 {
		return nil, &BackendError{Status: resp.StatusCode, Body: "empty audio response"}
	}

	return audio, nil
}
