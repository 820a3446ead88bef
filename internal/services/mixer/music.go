package mixer

import (
	"context"
	"fmt"
	"log"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
)

// Music bed constants. The bed is looped a little past the dialogue
// before trimming so the final fade never runs off the end of source audio.
const (
	DefaultMusicGainDb    = -25
	DefaultMusicFadeOutMs = 2000
	MusicLoopAheadMs      = 5000
	MusicTailMarginMs     = 1000
)

// musicPresets maps preset names to hosted track URLs.
var musicPresets = map[string]string{
	"lofi":    "https://cdn.pixabay.com/download/audio/2022/05/27/audio_1808fbf07a.mp3",
	"ambient": "https://cdn.pixabay.com/download/audio/2022/03/10/audio_4db47a6a10.mp3",
	"jazz":    "https://cdn.pixabay.com/download/audio/2023/07/30/audio_e0908e8569.mp3",
}

// MusicPresetURL resolves a preset name to its track URL.
func MusicPresetURL(name string) (string, bool) {
	url, ok := musicPresets[name]
	return url, ok
}

// MusicMixer lays a background bed under assembled dialogue.
type MusicMixer struct {
	loader       *AssetLoader
	loopAheadMs  int
	tailMarginMs int
}

// NewMusicMixer creates a music mixer
func NewMusicMixer(loader *AssetLoader) *MusicMixer {
	return &MusicMixer{
		loader:       loader,
		loopAheadMs:  MusicLoopAheadMs,
		tailMarginMs: MusicTailMarginMs,
	}
}

// WithTiming overrides the loop-ahead and tail-margin windows. Values of
// zero or less keep the defaults.
func (m *MusicMixer) WithTiming(loopAheadMs, tailMarginMs int) *MusicMixer {
	if loopAheadMs > 0 {
		m.loopAheadMs = loopAheadMs
	}
	if tailMarginMs > 0 {
		m.tailMarginMs = tailMarginMs
	}
	return m
}

// Mix overlays the configured music bed under the dialogue. The bed is
// attenuated, padded with any lead-in, looped until it covers the dialogue
// with margin, trimmed just past the dialogue and faded out. Music problems
// never fail the run: they degrade to dialogue-only with a manifest warning.
func (m *MusicMixer) Mix(ctx context.Context, dialogue *audio.Clip, options models.MusicOptions, manifest *models.Manifest) *audio.Clip {
	bed, err := m.acquire(ctx, options)
	if err != nil {
		log.Printf("[WARN] Music bed unavailable, continuing without music: %v", err)
		manifest.AddWarning(fmt.Sprintf("music bed unavailable: %v", err))
		return dialogue
	}
	if bed == nil {
		return dialogue
	}

	gainDb := DefaultMusicGainDb
	if options.GainDb != nil {
		gainDb = *options.GainDb
	}
	fadeMs := options.FadeOutMs
	if fadeMs <= 0 {
		fadeMs = DefaultMusicFadeOutMs
	}

	bed = bed.Gain(float64(gainDb))

	// Lead-in delays the dialogue so the bed is audible before the first line.
	if options.LeadInMs > 0 {
		dialogue = audio.Silence(options.LeadInMs, dialogue.SampleRate()).Append(dialogue)
	}

	finalMs := dialogue.DurationMs()
	bed = bed.LoopToMs(finalMs + m.loopAheadMs)
	bed = bed.TrimMs(finalMs + m.tailMarginMs)
	bed = bed.FadeOut(fadeMs)

	return dialogue.Overlay(bed)
}

// acquire resolves the music source to a decoded clip, or nil when no music
// was requested.
func (m *MusicMixer) acquire(ctx context.Context, options models.MusicOptions) (*audio.Clip, error) {
	switch options.Source {
	case "", models.MusicSourceNone:
		return nil, nil
	case models.MusicSourcePreset:
		url, ok := MusicPresetURL(options.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown music preset %q", options.Preset)
		}
		return m.loader.LoadURL(ctx, url, "music")
	case models.MusicSourceUpload:
		if len(options.Data) == 0 {
			return nil, fmt.Errorf("music upload selected but no data provided")
		}
		return m.loader.LoadBytes(ctx, options.Data, "music")
	default:
		return nil, fmt.Errorf("unknown music source %q", options.Source)
	}
}
