package production

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/mixer"
	"github.com/killallgit/podcast-forge/internal/services/synthesis"
	"github.com/killallgit/podcast-forge/internal/services/voices"
	"github.com/killallgit/podcast-forge/pkg/config"
	"github.com/killallgit/podcast-forge/pkg/retry"
)

// DefaultOutputFilename is used when the script has no usable title.
const DefaultOutputFilename = "podcast_output.mp3"

// RunConfig is the immutable per-run pipeline configuration, snapshotted
// before the run starts so config reloads never affect a run in flight.
type RunConfig struct {
	SynthWorkers       int
	PauseMs            int
	InsertPlaceholders bool
	Retry              retry.Policy
	Bitrate            string
	MusicGainDb        int
	MusicFadeOutMs     int
	MusicLeadInMs      int
	MusicLoopAheadMs   int
	MusicTailMarginMs  int
}

// RunConfigFromSettings builds a RunConfig from the loaded settings.
func RunConfigFromSettings(cfg *config.Config) RunConfig {
	return RunConfig{
		SynthWorkers:       cfg.Pipeline.SynthConcurrency,
		PauseMs:            cfg.Pipeline.PauseMs,
		InsertPlaceholders: cfg.Pipeline.InsertPlaceholders,
		Retry: retry.Policy{
			MaxAttempts: cfg.Pipeline.RetryAttempts,
			Delay:       cfg.Pipeline.RetryDelay,
		},
		Bitrate:           cfg.Pipeline.Bitrate,
		MusicGainDb:       cfg.Pipeline.MusicGainDb,
		MusicFadeOutMs:    cfg.Pipeline.MusicFadeOutMs,
		MusicLeadInMs:     cfg.Pipeline.MusicLeadInMs,
		MusicLoopAheadMs:  cfg.Pipeline.MusicLoopAheadMs,
		MusicTailMarginMs: cfg.Pipeline.MusicTailMarginMs,
	}
}

// StatusFunc receives stage transitions and overall progress (0-100) as the
// run advances. Called synchronously from the pipeline goroutine.
type StatusFunc func(stage string, progress int, message string)

// Result is the outcome of a completed production run.
type Result struct {
	OutputPath        string
	SuggestedFilename string
	DurationMs        int
	Manifest          models.Manifest
}

// RunError is a fatal pipeline error carrying the manifest collected before
// the failure, so per-line outcomes survive a failed run.
type RunError struct {
	Manifest models.Manifest
	Err      error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Orchestrator drives a full production run: synthesis fan-out, dialogue
// assembly, music bed, bracketing and MP3 export.
type Orchestrator struct {
	backend synthesis.Backend
	decoder mixer.ClipDecoder
	encoder ClipEncoder
	fetcher mixer.AssetFetcher
	cfg     RunConfig
}

// NewOrchestrator creates an orchestrator
func NewOrchestrator(backend synthesis.Backend, decoder mixer.ClipDecoder, encoder ClipEncoder, fetcher mixer.AssetFetcher, cfg RunConfig) *Orchestrator {
	return &Orchestrator{
		backend: backend,
		decoder: decoder,
		encoder: encoder,
		fetcher: fetcher,
		cfg:     cfg,
	}
}

// Progress split across stages. Synthesis dominates wall time so it gets the
// bulk of the bar.
const (
	progressSynthEnd   = 70
	progressMixEnd     = 85
	progressBracketEnd = 90
)

// Run executes the pipeline for one script and writes the exported MP3 to
// outputPath. Line failures and missing optional assets degrade and are
// recorded in the manifest; only an invalid script, zero synthesized lines,
// export failure or cancellation are fatal.
func (o *Orchestrator) Run(ctx context.Context, script models.Script, options models.ProductionOptions, outputPath string, status StatusFunc) (*Result, error) {
	if status == nil {
		status = func(string, int, string) {}
	}

	script.Normalize()
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	scratchDir, err := os.MkdirTemp("", "forge-run-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			log.Printf("[WARN] Failed to remove scratch dir %s: %v", scratchDir, err)
		}
	}()

	pauseMs := o.cfg.PauseMs
	if options.PauseMs > 0 {
		pauseMs = options.PauseMs
	}

	router := voices.FromOptions(options)
	lineSynth := synthesis.NewLineSynthesizer(o.backend, o.decoder, o.cfg.Retry, scratchDir)
	assembler := mixer.NewAssembler(lineSynth, router, mixer.AssemblerConfig{
		Workers:            o.cfg.SynthWorkers,
		PauseMs:            pauseMs,
		InsertPlaceholders: o.cfg.InsertPlaceholders || options.InsertPlaceholders,
	})

	status(models.StageSynthesizing, 0, fmt.Sprintf("synthesizing %d lines", len(script.Lines)))
	dialogue, manifest, err := assembler.Assemble(ctx, script, func(completed, total int) {
		status(models.StageSynthesizing, completed*progressSynthEnd/total,
			fmt.Sprintf("synthesized line %d/%d", completed, total))
	})
	if err != nil {
		return nil, &RunError{Manifest: manifest, Err: err}
	}

	loader := mixer.NewAssetLoader(o.fetcher, o.decoder, scratchDir)

	// Request options win over configured music defaults
	if options.Music.GainDb == nil && o.cfg.MusicGainDb != 0 {
		gain := o.cfg.MusicGainDb
		options.Music.GainDb = &gain
	}
	if options.Music.FadeOutMs == 0 {
		options.Music.FadeOutMs = o.cfg.MusicFadeOutMs
	}
	if options.Music.LeadInMs == 0 {
		options.Music.LeadInMs = o.cfg.MusicLeadInMs
	}

	status(models.StageMixing, progressSynthEnd, "mixing music bed")
	music := mixer.NewMusicMixer(loader).WithTiming(o.cfg.MusicLoopAheadMs, o.cfg.MusicTailMarginMs)
	program := music.Mix(ctx, dialogue, options.Music, &manifest)
	if err := ctx.Err(); err != nil {
		return nil, &RunError{Manifest: manifest, Err: err}
	}

	status(models.StageBracketing, progressMixEnd, "adding intro and outro")
	program = mixer.NewBracketer(loader).Bracket(ctx, program, options.Intro, options.Outro, &manifest)
	if err := ctx.Err(); err != nil {
		return nil, &RunError{Manifest: manifest, Err: err}
	}

	status(models.StageExporting, progressBracketEnd, "encoding MP3")
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := o.encoder.EncodeMP3(ctx, program, o.cfg.Bitrate, outputPath); err != nil {
		return nil, &RunError{Manifest: manifest, Err: fmt.Errorf("encoding output: %w", err)}
	}

	result := &Result{
		OutputPath:        outputPath,
		SuggestedFilename: SuggestedFilename(script.Title),
		DurationMs:        program.DurationMs(),
		Manifest:          manifest,
	}

	status(models.StageDone, 100, "done")
	log.Printf("[DEBUG] Production complete: %s (%dms, %d/%d lines)",
		outputPath, result.DurationMs, manifest.SucceededCount(), manifest.TotalLines)

	return result, nil
}

// SuggestedFilename derives a download filename from the script title.
// Non-alphanumeric runs collapse to single underscores; an unusable title
// falls back to the default name.
func SuggestedFilename(title string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return DefaultOutputFilename
	}
	return name + ".mp3"
}
