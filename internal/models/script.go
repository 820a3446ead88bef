package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DialogueLine is one turn of scripted speech attributed to a speaker role.
// Index is the line's stable ordinal position, assigned when the script is
// loaded; it is immutable once production starts.
type DialogueLine struct {
	Index   int    `json:"index"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Script is an ordered dialogue plus a display title.
type Script struct {
	Title string         `json:"title"`
	Lines []DialogueLine `json:"dialogue"`
}

// Normalize assigns sequential indexes and trims speaker labels. Call once
// after decoding, before the script reaches the pipeline.
func (s *Script) Normalize() {
	for i := range s.Lines {
		s.Lines[i].Index = i
		s.Lines[i].Speaker = strings.TrimSpace(s.Lines[i].Speaker)
	}
}

// Validate checks the script satisfies run preconditions.
func (s *Script) Validate() error {
	if len(s.Lines) == 0 {
		return errors.New("script has no dialogue lines")
	}
	for i, line := range s.Lines {
		if strings.TrimSpace(line.Speaker) == "" {
			return fmt.Errorf("dialogue line %d has empty speaker", i)
		}
	}
	return nil
}

// ScriptPayload stores a Script as JSON in the database.
type ScriptPayload Script

// Value implements driver.Valuer for ScriptPayload
func (p ScriptPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for ScriptPayload
func (p *ScriptPayload) Scan(value interface{}) error {
	if value == nil {
		*p = ScriptPayload{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}
