package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// MusicSource selects where the background track comes from.
type MusicSource string

const (
	MusicSourceNone   MusicSource = "none"
	MusicSourcePreset MusicSource = "preset"
	MusicSourceUpload MusicSource = "upload"
)

// MusicOptions describes the background music bed. Zero value means no music.
type MusicOptions struct {
	Source      MusicSource `json:"source"`
	Preset      string      `json:"preset,omitempty"`       // Preset name resolved to a URL
	Data        []byte      `json:"data,omitempty"`         // Uploaded bytes (base64 over the API)
	GainDb      *int        `json:"gain_db,omitempty"`      // Attenuation in dB; nil means the default
	FadeOutMs   int         `json:"fade_out_ms,omitempty"`  // Trailing fade
	LeadInMs    int         `json:"lead_in_ms,omitempty"`   // Silence before the first line
}

// AssetOptions describes an optional one-shot clip (intro or outro),
// either fetched from a URL or supplied as raw bytes.
type AssetOptions struct {
	URL  string `json:"url,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// IsSet reports whether the asset was requested at all.
func (a AssetOptions) IsSet() bool {
	return a.URL != "" || len(a.Data) > 0
}

// VoiceOptions maps a speaker role to synthesis parameters. PostFilter is an
// FX tag applied to the decoded clip ("telephone" or empty).
type VoiceOptions struct {
	VoiceID    string  `json:"voice_id"`
	Speed      float64 `json:"speed,omitempty"`
	PostFilter string  `json:"post_filter,omitempty"`
}

// ProductionOptions is the full set of user-selected style options for one
// production run. The orchestrator snapshots it at run start; it is never
// mutated mid-run.
type ProductionOptions struct {
	Style              string                  `json:"style,omitempty"`  // Voice style preset name
	Voices             map[string]VoiceOptions `json:"voices,omitempty"` // Explicit role assignments, override the preset
	Music              MusicOptions            `json:"music"`
	Intro              AssetOptions            `json:"intro"`
	Outro              AssetOptions            `json:"outro"`
	PauseMs            int                     `json:"pause_ms,omitempty"`
	InsertPlaceholders bool                    `json:"insert_placeholders,omitempty"`
}

// OptionsPayload stores ProductionOptions as JSON in the database.
type OptionsPayload ProductionOptions

// Value implements driver.Valuer for OptionsPayload
func (p OptionsPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for OptionsPayload
func (p *OptionsPayload) Scan(value interface{}) error {
	if value == nil {
		*p = OptionsPayload{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}
