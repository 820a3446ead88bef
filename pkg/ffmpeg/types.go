package ffmpeg

import "time"

// AudioMetadata represents metadata extracted from an audio file
type AudioMetadata struct {
	Duration   float64 `json:"duration"`    // Duration in seconds
	SampleRate int     `json:"sample_rate"` // Sample rate in Hz
	Channels   int     `json:"channels"`    // Number of audio channels
	Bitrate    int     `json:"bitrate"`     // Bitrate in bits per second
	Format     string  `json:"format"`      // Container format (mp3, m4a, etc.)
	Codec      string  `json:"codec"`       // Audio codec
	Size       int64   `json:"size"`        // File size in bytes
}

// DecodeOptions defines options for decoding audio to raw PCM
type DecodeOptions struct {
	SampleRate  int           `json:"sample_rate"`  // Target sample rate for the decoded stream
	MaxDuration time.Duration `json:"max_duration"` // Maximum duration to accept (0 = no limit)
	TempDir     string        `json:"temp_dir"`     // Directory for intermediate raw files
}

// DefaultDecodeOptions returns sensible defaults for pipeline decoding
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		SampleRate:  44100,
		MaxDuration: 2 * time.Hour,
		TempDir:     "/tmp",
	}
}

// EncodeOptions defines options for encoding raw PCM to a transport format
type EncodeOptions struct {
	SampleRate int    `json:"sample_rate"` // Sample rate of the input samples
	Bitrate    string `json:"bitrate"`     // Constant bitrate, e.g. "192k"
	TempDir    string `json:"temp_dir"`    // Directory for intermediate raw files
}

// DefaultEncodeOptions returns the fixed export format: MP3 CBR 192k
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		SampleRate: 44100,
		Bitrate:    "192k",
		TempDir:    "/tmp",
	}
}
