package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilenceDuration(t *testing.T) {
	tests := []struct {
		name       string
		durationMs int
		expected   int
	}{
		{"one second", 1000, 1000},
		{"sub-second", 350, 350},
		{"zero", 0, 0},
		{"negative clamps to zero", -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := Silence(tt.durationMs, PipelineSampleRate)
			assert.Equal(t, tt.expected, clip.DurationMs())
			assert.Equal(t, float32(0), clip.Peak())
		})
	}
}

func TestAppendAndConcatDurations(t *testing.T) {
	a := Silence(1000, PipelineSampleRate)
	b := Silence(350, PipelineSampleRate)

	assert.Equal(t, 1350, a.Append(b).DurationMs())
	assert.Equal(t, 2700, Concat(a, b, a, b).DurationMs())
	assert.Equal(t, 0, Concat().DurationMs())

	// Inputs untouched.
	assert.Equal(t, 1000, a.DurationMs())
	assert.Equal(t, 350, b.DurationMs())
}

func TestTrimMs(t *testing.T) {
	clip := Silence(3000, PipelineSampleRate)

	assert.Equal(t, 1000, clip.TrimMs(1000).DurationMs())
	// Trimming past the end is a no-op.
	assert.Equal(t, 3000, clip.TrimMs(5000).DurationMs())
	assert.Equal(t, 0, clip.TrimMs(0).DurationMs())
}

func TestGain(t *testing.T) {
	clip := New([]float32{0.5, -0.5, 1.0}, PipelineSampleRate)

	attenuated := clip.Gain(-20) // factor 0.1
	assert.InDelta(t, 0.05, float64(attenuated.Samples()[0]), 1e-6)
	assert.InDelta(t, -0.05, float64(attenuated.Samples()[1]), 1e-6)
	assert.InDelta(t, 0.1, float64(attenuated.Samples()[2]), 1e-6)

	// 0dB is identity.
	unity := clip.Gain(0)
	assert.InDelta(t, 0.5, float64(unity.Samples()[0]), 1e-6)
}

func TestFadeOut(t *testing.T) {
	samples := make([]float32, PipelineSampleRate) // 1s of full scale
	for i := range samples {
		samples[i] = 1.0
	}
	clip := New(samples, PipelineSampleRate)

	faded := clip.FadeOut(500)
	out := faded.Samples()

	// First half untouched, level decreases monotonically over the ramp,
	// final sample is effectively silent.
	assert.Equal(t, float32(1.0), out[len(out)/2-1])
	start := len(out) / 2
	for i := start + 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i], out[i-1])
	}
	assert.InDelta(t, 0, float64(out[len(out)-1]), 1e-3)

	// Fade longer than the clip ramps the whole clip.
	whole := clip.FadeOut(5000)
	assert.Equal(t, clip.DurationMs(), whole.DurationMs())
	assert.InDelta(t, 0, float64(whole.Samples()[len(out)-1]), 1e-3)
}

func TestOverlay(t *testing.T) {
	dialogue := New([]float32{0.5, 0.5, 0.5, 0.5}, PipelineSampleRate)
	music := New([]float32{0.1, 0.1}, PipelineSampleRate)

	mixed := dialogue.Overlay(music)
	require.Len(t, mixed.Samples(), 4)
	assert.InDelta(t, 0.6, float64(mixed.Samples()[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(mixed.Samples()[2]), 1e-6)

	// Overlay never shortens nor extends beyond the longer clip.
	longer := New([]float32{0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, PipelineSampleRate)
	extended := dialogue.Overlay(longer)
	assert.Len(t, extended.Samples(), 6)

	// Sums clamp to full scale.
	hot := New([]float32{0.9}, PipelineSampleRate)
	clipped := hot.Overlay(hot)
	assert.Equal(t, float32(1.0), clipped.Samples()[0])
	cold := New([]float32{-0.9}, PipelineSampleRate)
	assert.Equal(t, float32(-1.0), cold.Overlay(cold).Samples()[0])
}

func TestOverlayPreservesDialoguePeak(t *testing.T) {
	dialogue := New([]float32{0.8, -0.8, 0.8}, PipelineSampleRate)
	quiet := Silence(100, PipelineSampleRate)

	mixed := dialogue.Overlay(quiet.TrimMs(0))
	assert.Equal(t, float32(0.8), mixed.Peak())
}

func TestLoopToMs(t *testing.T) {
	clip := Silence(700, PipelineSampleRate)

	looped := clip.LoopToMs(3000)
	assert.GreaterOrEqual(t, looped.DurationMs(), 3000)
	// Self-append doubling: 700 -> 1400 -> 2800 -> 5600.
	assert.Equal(t, 5600, looped.DurationMs())

	// Already long enough is a no-op.
	assert.Equal(t, 700, clip.LoopToMs(500).DurationMs())

	// Empty clips loop to silence of the requested length.
	empty := New(nil, PipelineSampleRate)
	assert.Equal(t, 1000, empty.LoopToMs(1000).DurationMs())
}

func TestPeak(t *testing.T) {
	assert.Equal(t, float32(0.7), New([]float32{0.1, -0.7, 0.3}, PipelineSampleRate).Peak())
	assert.Equal(t, float32(0), New(nil, PipelineSampleRate).Peak())
}
