package audio

import "math"

// Telephone band-limits a clip to the 300-3000Hz range of a narrowband phone
// call: a high-pass at 300Hz followed by a low-pass at 3000Hz.
func Telephone(c *Clip) *Clip {
	return lowPass(highPass(c, 300), 3000)
}

// lowPass applies a one-pole RC low-pass filter with the given cutoff.
func lowPass(c *Clip, cutoffHz float64) *Clip {
	if len(c.samples) == 0 {
		return c
	}
	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / float64(c.rate)
	alpha := float32(dt / (rc + dt))

	out := make([]float32, len(c.samples))
	out[0] = alpha * c.samples[0]
	for i := 1; i < len(c.samples); i++ {
		out[i] = out[i-1] + alpha*(c.samples[i]-out[i-1])
	}
	return &Clip{samples: out, rate: c.rate}
}

// highPass applies a one-pole RC high-pass filter with the given cutoff.
func highPass(c *Clip, cutoffHz float64) *Clip {
	if len(c.samples) == 0 {
		return c
	}
	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / float64(c.rate)
	alpha := float32(rc / (rc + dt))

	out := make([]float32, len(c.samples))
	out[0] = c.samples[0]
	for i := 1; i < len(c.samples); i++ {
		out[i] = alpha * (out[i-1] + c.samples[i] - c.samples[i-1])
	}
	return &Clip{samples: out, rate: c.rate}
}
