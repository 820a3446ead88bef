package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-forge/internal/models"
)

func TestProduceCommandRequiresScript(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"produce"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestProduceCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	produceCmd, _, err := cmd.Find([]string{"produce"})
	require.NoError(t, err)

	for _, name := range []string{"script", "output", "style", "music-preset", "music-file", "intro-url", "outro-url", "pause-ms"} {
		if produceCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %q flag to be registered", name)
		}
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "episode.json")
	content := `{
		"title": "Morning Brief",
		"dialogue": [
			{"speaker": "Host 1", "text": "Good morning."},
			{"speaker": "Host 2", "text": "And welcome back."}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	script, err := loadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "Morning Brief", script.Title)
	require.Len(t, script.Lines, 2)
	assert.Equal(t, "Host 1", script.Lines[0].Speaker)
	assert.Equal(t, "And welcome back.", script.Lines[1].Text)
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := loadScript(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = loadScript(path)
	assert.Error(t, err)
}

func TestProduceOptions(t *testing.T) {
	t.Cleanup(func() {
		produceStyle = ""
		produceMusicPreset = ""
		produceMusicFile = ""
		produceIntroURL = ""
		produceOutroURL = ""
		producePauseMs = 0
	})

	produceStyle = "morning-radio"
	produceMusicPreset = "lofi"
	produceIntroURL = "https://example.com/intro.mp3"
	producePauseMs = 500

	options, err := produceOptions()
	require.NoError(t, err)
	assert.Equal(t, "morning-radio", options.Style)
	assert.Equal(t, models.MusicSourcePreset, options.Music.Source)
	assert.Equal(t, "lofi", options.Music.Preset)
	assert.True(t, options.Intro.IsSet())
	assert.False(t, options.Outro.IsSet())
	assert.Equal(t, 500, options.PauseMs)
}

func TestProduceOptionsMusicFile(t *testing.T) {
	t.Cleanup(func() {
		produceMusicPreset = ""
		produceMusicFile = ""
	})

	path := filepath.Join(t.TempDir(), "bed.mp3")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xFB, 0x90}, 0o644))

	produceMusicFile = path
	produceMusicPreset = "lofi" // file takes precedence

	options, err := produceOptions()
	require.NoError(t, err)
	assert.Equal(t, models.MusicSourceUpload, options.Music.Source)
	assert.NotEmpty(t, options.Music.Data)
}
