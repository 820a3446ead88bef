package mixer

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/synthesis"
	"github.com/killallgit/podcast-forge/internal/services/voices"
)

// ErrNoAudioProduced means every line failed or was skipped; there is nothing
// to assemble and the run cannot continue.
var ErrNoAudioProduced = errors.New("no dialogue lines produced audio")

// LineSynth synthesizes a single dialogue line. Satisfied by
// synthesis.LineSynthesizer; faked in tests.
type LineSynth interface {
	SynthesizeLine(ctx context.Context, line models.DialogueLine, voice synthesis.Voice) synthesis.Result
}

// ProgressFunc reports assembly progress as lines complete.
type ProgressFunc func(completed, total int)

// Assembler fans dialogue lines out to a bounded set of synthesis workers and
// reassembles the results in script order.
type Assembler struct {
	synth              LineSynth
	router             *voices.Router
	workers            int
	pauseMs            int
	insertPlaceholders bool
}

// AssemblerConfig holds the assembly knobs for one run.
type AssemblerConfig struct {
	Workers            int
	PauseMs            int
	InsertPlaceholders bool
}

// NewAssembler creates an assembler
func NewAssembler(synth LineSynth, router *voices.Router, cfg AssemblerConfig) *Assembler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.PauseMs < 0 {
		cfg.PauseMs = 0
	}
	return &Assembler{
		synth:              synth,
		router:             router,
		workers:            cfg.Workers,
		pauseMs:            cfg.PauseMs,
		insertPlaceholders: cfg.InsertPlaceholders,
	}
}

// Assemble synthesizes every line of the script concurrently and concatenates
// the successful clips in script order, an inter-line pause after each one.
// Individual line failures are recorded in the manifest and never abort the
// run; only zero successes is fatal. Cancellation is observed at line
// boundaries.
func (a *Assembler) Assemble(ctx context.Context, script models.Script, progress ProgressFunc) (*audio.Clip, models.Manifest, error) {
	manifest := models.Manifest{TotalLines: len(script.Lines)}
	results := make([]synthesis.Result, len(script.Lines))

	jobs := make(chan int)
	var wg sync.WaitGroup
	var done int
	var doneMu sync.Mutex

	report := func() {
		if progress == nil {
			return
		}
		doneMu.Lock()
		done++
		progress(done, len(script.Lines))
		doneMu.Unlock()
	}

	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				line := script.Lines[i]
				assignment := a.router.Resolve(line.Speaker)
				result := a.synth.SynthesizeLine(ctx, line, synthesis.Voice{
					VoiceID: assignment.VoiceID,
					Speed:   assignment.Speed,
				})
				if result.Clip != nil && assignment.PostFilter != voices.FilterNone {
					result.Clip = voices.ApplyFilter(result.Clip, assignment.PostFilter)
				}
				results[i] = result
				report()
			}
		}()
	}

feed:
	for i := range script.Lines {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, manifest, err
	}

	pause := audio.Silence(a.pauseMs, audio.PipelineSampleRate)
	pieces := make([]*audio.Clip, 0, 2*len(script.Lines))
	var successDurationMs int

	for i, result := range results {
		line := script.Lines[i]
		entry := models.LineReport{Index: line.Index, Speaker: line.Speaker, Attempts: result.Attempts}

		switch {
		case result.Skipped:
			entry.Skipped = true
			manifest.Skipped = append(manifest.Skipped, entry)
		case result.Err != nil:
			entry.Error = result.Err.Error()
			manifest.Failed = append(manifest.Failed, entry)
			log.Printf("[ERROR] Line %d (%s) failed after %d attempts: %v",
				line.Index, line.Speaker, result.Attempts, result.Err)
		default:
			manifest.Succeeded = append(manifest.Succeeded, entry)
			pieces = append(pieces, result.Clip, pause)
			successDurationMs += result.Clip.DurationMs()
		}
	}

	if manifest.SucceededCount() == 0 {
		return nil, manifest, ErrNoAudioProduced
	}

	if a.insertPlaceholders && manifest.FailedCount() > 0 {
		pieces = a.insertFailurePlaceholders(pieces, results, successDurationMs/manifest.SucceededCount(), pause)
	}

	return audio.Concat(pieces...), manifest, nil
}

// insertFailurePlaceholders rebuilds the piece list with a silence stand-in
// (the average successful clip length) plus the usual pause wherever a line
// permanently failed, keeping the script's rhythm roughly intact.
func (a *Assembler) insertFailurePlaceholders(pieces []*audio.Clip, results []synthesis.Result, avgMs int, pause *audio.Clip) []*audio.Clip {
	placeholder := audio.Silence(avgMs, audio.PipelineSampleRate)
	out := make([]*audio.Clip, 0, len(pieces)+2*len(results))
	next := 0
	for _, result := range results {
		switch {
		case result.Skipped:
		case result.Err != nil:
			out = append(out, placeholder, pause)
		default:
			out = append(out, pieces[next], pieces[next+1])
			next += 2
		}
	}
	return out
}
