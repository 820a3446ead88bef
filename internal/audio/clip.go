package audio

import "math"

// PipelineSampleRate is the internal processing rate. Everything entering the
// pipeline is decoded to mono float32 at this rate; mixing never resamples.
const PipelineSampleRate = 44100

// Clip is an immutable mono audio buffer. Operations return new clips and
// never mutate their receivers, so clips can be shared across goroutines.
type Clip struct {
	samples []float32
	rate    int
}

// New wraps a sample buffer in a Clip. The caller must not modify samples
// after the call.
func New(samples []float32, rate int) *Clip {
	if rate <= 0 {
		rate = PipelineSampleRate
	}
	return &Clip{samples: samples, rate: rate}
}

// Silence returns a clip of the given duration containing only zero samples.
func Silence(durationMs int, rate int) *Clip {
	if rate <= 0 {
		rate = PipelineSampleRate
	}
	if durationMs < 0 {
		durationMs = 0
	}
	n := int(int64(durationMs) * int64(rate) / 1000)
	return &Clip{samples: make([]float32, n), rate: rate}
}

// Samples returns the underlying buffer. Callers must treat it as read-only.
func (c *Clip) Samples() []float32 {
	return c.samples
}

// SampleRate returns the clip's sample rate in Hz.
func (c *Clip) SampleRate() int {
	return c.rate
}

// DurationMs returns the clip length in whole milliseconds.
func (c *Clip) DurationMs() int {
	return int(int64(len(c.samples)) * 1000 / int64(c.rate))
}

// Append returns a new clip with other's samples following c's.
func (c *Clip) Append(other *Clip) *Clip {
	out := make([]float32, 0, len(c.samples)+len(other.samples))
	out = append(out, c.samples...)
	out = append(out, other.samples...)
	return &Clip{samples: out, rate: c.rate}
}

// Concat joins clips in order. An empty input yields an empty clip at the
// pipeline rate.
func Concat(clips ...*Clip) *Clip {
	total := 0
	rate := PipelineSampleRate
	for _, clip := range clips {
		total += len(clip.samples)
		rate = clip.rate
	}
	out := make([]float32, 0, total)
	for _, clip := range clips {
		out = append(out, clip.samples...)
	}
	return &Clip{samples: out, rate: rate}
}

// TrimMs returns the first durationMs of the clip. Clips shorter than the
// requested duration are returned unchanged.
func (c *Clip) TrimMs(durationMs int) *Clip {
	n := int(int64(durationMs) * int64(c.rate) / 1000)
	if n >= len(c.samples) {
		return c
	}
	if n < 0 {
		n = 0
	}
	return &Clip{samples: c.samples[:n], rate: c.rate}
}

// Gain returns a copy scaled by db decibels. Negative values attenuate.
func (c *Clip) Gain(db float64) *Clip {
	factor := float32(math.Pow(10, db/20))
	out := make([]float32, len(c.samples))
	for i, s := range c.samples {
		out[i] = s * factor
	}
	return &Clip{samples: out, rate: c.rate}
}

// FadeOut returns a copy with a linear fade over the final durationMs.
func (c *Clip) FadeOut(durationMs int) *Clip {
	out := make([]float32, len(c.samples))
	copy(out, c.samples)
	n := int(int64(durationMs) * int64(c.rate) / 1000)
	if n > len(out) {
		n = len(out)
	}
	if n <= 0 {
		return &Clip{samples: out, rate: c.rate}
	}
	start := len(out) - n
	for i := 0; i < n; i++ {
		out[start+i] *= float32(n-1-i) / float32(n)
	}
	return &Clip{samples: out, rate: c.rate}
}

// Overlay mixes other onto c additively starting at sample 0. The result has
// the length of the longer clip; samples are clamped to [-1, 1].
func (c *Clip) Overlay(other *Clip) *Clip {
	n := len(c.samples)
	if len(other.samples) > n {
		n = len(other.samples)
	}
	out := make([]float32, n)
	copy(out, c.samples)
	for i, s := range other.samples {
		v := out[i] + s
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = v
	}
	return &Clip{samples: out, rate: c.rate}
}

// LoopToMs repeats the clip by self-appending until it is at least
// durationMs long. An empty clip loops to silence.
func (c *Clip) LoopToMs(durationMs int) *Clip {
	if len(c.samples) == 0 {
		return Silence(durationMs, c.rate)
	}
	out := c
	for out.DurationMs() < durationMs {
		out = out.Append(out)
	}
	return out
}

// Peak returns the maximum absolute sample value.
func (c *Clip) Peak() float32 {
	var peak float32
	for _, s := range c.samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}
