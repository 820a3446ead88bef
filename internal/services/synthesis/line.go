package synthesis

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/pkg/retry"
)

// ClipDecoder decodes an audio file on disk into a pipeline clip.
// Implemented by the ffmpeg adapter; faked in tests.
type ClipDecoder interface {
	Decode(ctx context.Context, path string) (*audio.Clip, error)
}

// Voice holds the resolved synthesis parameters for one line.
type Voice struct {
	VoiceID string
	Speed   float64
}

// Result is the outcome of synthesizing one dialogue line. It is consumed
// immediately by the assembler and not persisted.
type Result struct {
	Line     models.DialogueLine
	Clip     *audio.Clip // nil on failure or skip
	Path     string      // Scratch file holding the raw backend audio
	Attempts int
	Skipped  bool // Text was empty after sanitization; not an error
	Err      error
}

// LineSynthesizer synthesizes single dialogue lines with bounded retry,
// writing each clip into a caller-supplied scratch directory.
type LineSynthesizer struct {
	backend    Backend
	decoder    ClipDecoder
	policy     retry.Policy
	scratchDir string
}

// NewLineSynthesizer creates a line synthesizer
func NewLineSynthesizer(backend Backend, decoder ClipDecoder, policy retry.Policy, scratchDir string) *LineSynthesizer {
	return &LineSynthesizer{
		backend:    backend,
		decoder:    decoder,
		policy:     policy,
		scratchDir: scratchDir,
	}
}

// SynthesizeLine synthesizes one dialogue line. Backend failures are retried
// per the policy; after the final attempt the line is reported as a permanent
// failure and the caller decides what that means (it is never fatal to the
// run). Empty sanitized text short-circuits to a skip.
func (s *LineSynthesizer) SynthesizeLine(ctx context.Context, line models.DialogueLine, voice Voice) Result {
	result := Result{Line: line}

	text := Sanitize(line.Text)
	if text == "" {
		result.Skipped = true
		return result
	}

	var audioBytes []byte
	attempts, err := s.policy.Do(ctx, func(ctx context.Context) error {
		data, synthErr := s.backend.Synthesize(ctx, Request{
			Text:    text,
			VoiceID: voice.VoiceID,
			Speed:   voice.Speed,
		})
		if synthErr != nil {
			return synthErr
		}
		audioBytes = data
		return nil
	}, Retryable)

	result.Attempts = attempts
	if err != nil {
		result.Err = fmt.Errorf("synthesizing line %d: %w", line.Index, err)
		return result
	}

	path := filepath.Join(s.scratchDir, fmt.Sprintf("line_%d.mp3", line.Index))
	if err := os.WriteFile(path, audioBytes, 0644); err != nil {
		result.Err = fmt.Errorf("writing line %d clip: %w", line.Index, err)
		return result
	}
	result.Path = path

	clip, err := s.decoder.Decode(ctx, path)
	if err != nil {
		result.Err = fmt.Errorf("decoding line %d clip: %w", line.Index, err)
		return result
	}
	result.Clip = clip

	if attempts > 1 {
		log.Printf("[DEBUG] Line %d synthesized after %d attempts", line.Index, attempts)
	}

	return result
}
