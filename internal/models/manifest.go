package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// LineReport records the outcome of one dialogue line's synthesis.
type LineReport struct {
	Index    int    `json:"index"`
	Speaker  string `json:"speaker"`
	Attempts int    `json:"attempts"`
	Skipped  bool   `json:"skipped,omitempty"` // Empty after sanitization, no synthesis attempted
	Error    string `json:"error,omitempty"`
}

// Manifest is the per-run record of which lines succeeded or permanently
// failed, plus soft-failure warnings from optional assets. It is produced
// once per run for user-facing reporting.
type Manifest struct {
	TotalLines int          `json:"total_lines"`
	Succeeded  []LineReport `json:"succeeded"`
	Failed     []LineReport `json:"failed"`
	Skipped    []LineReport `json:"skipped,omitempty"` // Empty after sanitization
	Warnings   []string     `json:"warnings,omitempty"`
}

// SucceededCount returns the number of successfully synthesized lines.
func (m *Manifest) SucceededCount() int {
	return len(m.Succeeded)
}

// FailedCount returns the number of permanently failed lines.
func (m *Manifest) FailedCount() int {
	return len(m.Failed)
}

// AddWarning appends a soft-failure warning.
func (m *Manifest) AddWarning(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// ManifestPayload stores a Manifest as JSON in the database.
type ManifestPayload Manifest

// Value implements driver.Valuer for ManifestPayload
func (p ManifestPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for ManifestPayload
func (p *ManifestPayload) Scan(value interface{}) error {
	if value == nil {
		*p = ManifestPayload{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}
