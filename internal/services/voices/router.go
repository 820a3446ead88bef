package voices

import (
	"log"
	"strings"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
)

// Role is a normalized speaker role tag. Free-form speaker strings from the
// script generator are folded into this type at the router boundary.
type Role string

// NormalizeRole folds a free-form speaker label into a Role. Labels are
// matched case-insensitively with surrounding whitespace ignored, so
// producer-model typos like " host 1" still resolve.
func NormalizeRole(speaker string) Role {
	return Role(strings.ToLower(strings.Join(strings.Fields(speaker), " ")))
}

// Assignment holds the synthesis parameters for one role.
type Assignment struct {
	VoiceID    string
	Speed      float64
	PostFilter string // FX tag, e.g. FilterTelephone
}

// FX tags
const (
	FilterNone      = ""
	FilterTelephone = "telephone"
)

// Router maps speaker roles to voices and post filters. Unknown roles fall
// back to the default assignment deterministically; an unexpected label must
// degrade gracefully, never crash the run.
type Router struct {
	assignments map[Role]Assignment
	fallback    Assignment
}

// NewRouter builds a router from explicit role assignments plus a fallback.
func NewRouter(assignments map[Role]Assignment, fallback Assignment) *Router {
	if assignments == nil {
		assignments = make(map[Role]Assignment)
	}
	return &Router{assignments: assignments, fallback: fallback}
}

// FromOptions builds a router from production options: the style preset
// provides the base assignments, explicit per-role voices override it.
func FromOptions(options models.ProductionOptions) *Router {
	preset := PresetByName(options.Style)
	assignments := make(map[Role]Assignment, len(preset.Assignments))
	for role, assignment := range preset.Assignments {
		assignments[role] = assignment
	}

	for speaker, voice := range options.Voices {
		speed := voice.Speed
		if speed <= 0 {
			speed = 1.0
		}
		assignments[NormalizeRole(speaker)] = Assignment{
			VoiceID:    voice.VoiceID,
			Speed:      speed,
			PostFilter: voice.PostFilter,
		}
	}

	return NewRouter(assignments, preset.Fallback)
}

// Resolve returns the assignment for a speaker label. Unknown labels get the
// fallback voice and are logged once per call site, not treated as errors.
func (r *Router) Resolve(speaker string) Assignment {
	role := NormalizeRole(speaker)
	if assignment, ok := r.assignments[role]; ok {
		return assignment
	}
	log.Printf("[WARN] Unknown speaker role %q, using default voice", speaker)
	return r.fallback
}

// ApplyFilter applies an assignment's post filter to a decoded clip.
// Unknown tags pass the clip through unchanged.
func ApplyFilter(clip *audio.Clip, filter string) *audio.Clip {
	switch filter {
	case FilterTelephone:
		return audio.Telephone(clip)
	default:
		return clip
	}
}
