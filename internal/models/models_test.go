package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptNormalize(t *testing.T) {
	script := Script{
		Title: "Test Episode",
		Lines: []DialogueLine{
			{Speaker: " Host 1 ", Text: "Hello"},
			{Speaker: "Host 2", Text: "Hi there"},
		},
	}

	script.Normalize()

	assert.Equal(t, 0, script.Lines[0].Index)
	assert.Equal(t, 1, script.Lines[1].Index)
	assert.Equal(t, "Host 1", script.Lines[0].Speaker)
}

func TestScriptValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  Script
		wantErr bool
	}{
		{
			name: "valid",
			script: Script{Lines: []DialogueLine{
				{Speaker: "Host 1", Text: "Hello"},
			}},
			wantErr: false,
		},
		{
			name:    "no lines",
			script:  Script{},
			wantErr: true,
		},
		{
			name: "empty speaker",
			script: Script{Lines: []DialogueLine{
				{Speaker: "  ", Text: "Hello"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.script.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScriptPayloadRoundTrip(t *testing.T) {
	payload := ScriptPayload{
		Title: "Round Trip",
		Lines: []DialogueLine{{Index: 0, Speaker: "Host 1", Text: "Hello"}},
	}

	value, err := payload.Value()
	require.NoError(t, err)

	var decoded ScriptPayload
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, payload, decoded)

	// nil scans to zero value
	var empty ScriptPayload
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty.Lines)
}

func TestManifestCounts(t *testing.T) {
	manifest := Manifest{
		TotalLines: 3,
		Succeeded:  []LineReport{{Index: 0}, {Index: 2}},
		Failed:     []LineReport{{Index: 1, Error: "backend down", Attempts: 3}},
	}

	assert.Equal(t, 2, manifest.SucceededCount())
	assert.Equal(t, 1, manifest.FailedCount())
	assert.Equal(t, manifest.TotalLines, manifest.SucceededCount()+manifest.FailedCount())
}

func TestProductionIsTerminal(t *testing.T) {
	assert.False(t, (&Production{Status: ProductionStatusPending}).IsTerminal())
	assert.False(t, (&Production{Status: ProductionStatusProcessing}).IsTerminal())
	assert.True(t, (&Production{Status: ProductionStatusDone}).IsTerminal())
	assert.True(t, (&Production{Status: ProductionStatusFailed}).IsTerminal())
}

func TestAssetOptionsIsSet(t *testing.T) {
	assert.False(t, AssetOptions{}.IsSet())
	assert.True(t, AssetOptions{URL: "https://example.com/intro.mp3"}.IsSet())
	assert.True(t, AssetOptions{Data: []byte{1, 2, 3}}.IsSet())
}

func TestProductionOptionsJSON(t *testing.T) {
	gain := -25
	options := ProductionOptions{
		Style: "npr",
		Music: MusicOptions{Source: MusicSourcePreset, Preset: "lofi", GainDb: &gain},
		Voices: map[string]VoiceOptions{
			"Caller": {VoiceID: "en-US-GuyNeural", Speed: 1.0, PostFilter: "telephone"},
		},
	}

	data, err := json.Marshal(options)
	require.NoError(t, err)

	var decoded ProductionOptions
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, options.Music.Preset, decoded.Music.Preset)
	assert.Equal(t, "telephone", decoded.Voices["Caller"].PostFilter)
}
