package mixer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/synthesis"
	"github.com/killallgit/podcast-forge/internal/services/voices"
)

// fakeSynth produces canned results per line index.
type fakeSynth struct {
	durationMs map[int]int  // clip duration per index
	fail       map[int]bool // permanent failure per index

	mu    sync.Mutex
	calls int
}

func (f *fakeSynth) SynthesizeLine(ctx context.Context, line models.DialogueLine, voice synthesis.Voice) synthesis.Result {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	result := synthesis.Result{Line: line, Attempts: 1}
	if line.Text == "" {
		result.Skipped = true
		result.Attempts = 0
		return result
	}
	if f.fail[line.Index] {
		result.Attempts = 3
		result.Err = fmt.Errorf("synthesizing line %d: backend unavailable", line.Index)
		return result
	}

	durationMs := 1000
	if d, ok := f.durationMs[line.Index]; ok {
		durationMs = d
	}
	// Encode the line index into the signal so ordering is observable.
	n := int(int64(durationMs) * audio.PipelineSampleRate / 1000)
	samples := make([]float32, n)
	amplitude := 0.01 * float32(line.Index+1)
	for i := range samples {
		samples[i] = amplitude
	}
	result.Clip = audio.New(samples, audio.PipelineSampleRate)
	return result
}

func testRouter() *voices.Router {
	return voices.NewRouter(nil, voices.Assignment{VoiceID: "test-voice", Speed: 1.0})
}

func testScript(texts ...string) models.Script {
	script := models.Script{Title: "Test Episode"}
	for _, text := range texts {
		script.Lines = append(script.Lines, models.DialogueLine{Speaker: "Host 1", Text: text})
	}
	script.Normalize()
	return script
}

func TestAssembleAllLinesSucceed(t *testing.T) {
	synth := &fakeSynth{}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 2, PauseMs: 350})

	clip, manifest, err := assembler.Assemble(context.Background(), testScript("Hello.", "World."), nil)

	require.NoError(t, err)
	// Two 1000ms clips each followed by the 350ms pause.
	assert.Equal(t, 2700, clip.DurationMs())
	assert.Equal(t, 2, manifest.TotalLines)
	assert.Equal(t, 2, manifest.SucceededCount())
	assert.Equal(t, 0, manifest.FailedCount())
}

func TestAssemblePreservesScriptOrder(t *testing.T) {
	synth := &fakeSynth{}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 4, PauseMs: 100})

	script := testScript("One.", "Two.", "Three.", "Four.")
	clip, _, err := assembler.Assemble(context.Background(), script, nil)
	require.NoError(t, err)

	// Each line's clip carries amplitude 0.01*(index+1); check the first
	// sample of each 1100ms segment comes out in script order.
	samples := clip.Samples()
	segment := int(int64(1100) * audio.PipelineSampleRate / 1000)
	for i := 0; i < 4; i++ {
		expected := 0.01 * float32(i+1)
		assert.InDelta(t, float64(expected), float64(samples[i*segment]), 1e-6, "segment %d", i)
	}
}

func TestAssembleFailedLineOmitted(t *testing.T) {
	synth := &fakeSynth{fail: map[int]bool{1: true}}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 2, PauseMs: 350})

	clip, manifest, err := assembler.Assemble(context.Background(), testScript("Works.", "Breaks."), nil)

	require.NoError(t, err)
	// Only the surviving line and its pause remain.
	assert.Equal(t, 1350, clip.DurationMs())
	assert.Equal(t, 1, manifest.SucceededCount())
	require.Equal(t, 1, manifest.FailedCount())
	assert.Equal(t, 1, manifest.Failed[0].Index)
	assert.Equal(t, 3, manifest.Failed[0].Attempts)
	assert.Contains(t, manifest.Failed[0].Error, "backend unavailable")
}

func TestAssemblePlaceholderSilence(t *testing.T) {
	synth := &fakeSynth{fail: map[int]bool{1: true}}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{
		Workers: 2, PauseMs: 350, InsertPlaceholders: true,
	})

	clip, manifest, err := assembler.Assemble(context.Background(), testScript("Works.", "Breaks."), nil)

	require.NoError(t, err)
	// The failed line is stood in for by average-length silence plus a pause.
	assert.Equal(t, 2700, clip.DurationMs())
	assert.Equal(t, 1, manifest.FailedCount())
}

func TestAssembleSkippedLine(t *testing.T) {
	synth := &fakeSynth{}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 1, PauseMs: 350})

	clip, manifest, err := assembler.Assemble(context.Background(), testScript("Spoken.", ""), nil)

	require.NoError(t, err)
	assert.Equal(t, 1350, clip.DurationMs())
	assert.Equal(t, 1, manifest.SucceededCount())
	assert.Equal(t, 0, manifest.FailedCount())
	require.Len(t, manifest.Skipped, 1)
	assert.True(t, manifest.Skipped[0].Skipped)
}

func TestAssembleNoAudioProduced(t *testing.T) {
	synth := &fakeSynth{fail: map[int]bool{0: true, 1: true}}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 2, PauseMs: 350})

	clip, manifest, err := assembler.Assemble(context.Background(), testScript("A.", "B."), nil)

	assert.Nil(t, clip)
	assert.ErrorIs(t, err, ErrNoAudioProduced)
	assert.Equal(t, 2, manifest.FailedCount())
}

func TestAssembleReportsProgress(t *testing.T) {
	synth := &fakeSynth{}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 2, PauseMs: 350})

	var mu sync.Mutex
	var reports []int
	progress := func(completed, total int) {
		mu.Lock()
		reports = append(reports, completed)
		assert.Equal(t, 3, total)
		mu.Unlock()
	}

	_, _, err := assembler.Assemble(context.Background(), testScript("A.", "B.", "C."), progress)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, reports)
}

func TestAssembleCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	synth := &fakeSynth{}
	assembler := NewAssembler(synth, testRouter(), AssemblerConfig{Workers: 1, PauseMs: 350})

	_, _, err := assembler.Assemble(ctx, testScript("A.", "B."), nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
