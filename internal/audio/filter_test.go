package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sine builds a test tone at the given frequency and amplitude.
func sine(freqHz float64, durationMs int, amplitude float32) *Clip {
	n := int(int64(durationMs) * PipelineSampleRate / 1000)
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = amplitude * float32(math.Sin(2*math.Pi*freqHz*float64(i)/PipelineSampleRate))
	}
	return New(samples, PipelineSampleRate)
}

func TestTelephonePreservesDuration(t *testing.T) {
	clip := sine(1000, 500, 0.5)
	filtered := Telephone(clip)

	assert.Equal(t, clip.DurationMs(), filtered.DurationMs())
	assert.Equal(t, clip.SampleRate(), filtered.SampleRate())
}

func TestTelephoneBandPass(t *testing.T) {
	// Mid-band speech frequencies pass through with modest loss while
	// rumble and hiss outside the band are strongly attenuated.
	mid := Telephone(sine(1000, 500, 0.5)).Peak()
	low := Telephone(sine(50, 500, 0.5)).Peak()
	high := Telephone(sine(15000, 500, 0.5)).Peak()

	assert.Greater(t, mid, float32(0.15))
	assert.Less(t, low, mid/2)
	assert.Less(t, high, mid/2)
}

func TestTelephoneEmptyClip(t *testing.T) {
	empty := New(nil, PipelineSampleRate)
	assert.Equal(t, 0, Telephone(empty).DurationMs())
}
