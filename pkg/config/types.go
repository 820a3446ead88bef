package config

import "time"

// Config is the root configuration structure
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Processing  ProcessingConfig `mapstructure:"processing"`
	Synthesis   SynthesisConfig  `mapstructure:"synthesis"`
	Pipeline    PipelineConfig   `mapstructure:"pipeline"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// ProcessingConfig holds job worker and ffmpeg settings
type ProcessingConfig struct {
	Workers       int           `mapstructure:"workers"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	JobTimeout    time.Duration `mapstructure:"job_timeout"`
	FFmpegPath    string        `mapstructure:"ffmpeg_path"`
	FFprobePath   string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout time.Duration `mapstructure:"ffmpeg_timeout"`
}

// SynthesisConfig holds TTS backend settings
type SynthesisConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit int           `mapstructure:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst"`
}

// PipelineConfig holds the mixing pipeline's tuning knobs
type PipelineConfig struct {
	SynthConcurrency   int           `mapstructure:"synth_concurrency"`
	RetryAttempts      int           `mapstructure:"retry_attempts"`
	RetryDelay         time.Duration `mapstructure:"retry_delay"`
	PauseMs            int           `mapstructure:"pause_ms"`
	InsertPlaceholders bool          `mapstructure:"insert_placeholders"`
	MusicGainDb        int           `mapstructure:"music_gain_db"`
	MusicFadeOutMs     int           `mapstructure:"music_fade_out_ms"`
	MusicLeadInMs      int           `mapstructure:"music_lead_in_ms"`
	MusicLoopAheadMs   int           `mapstructure:"music_loop_ahead_ms"`
	MusicTailMarginMs  int           `mapstructure:"music_tail_margin_ms"`
	DownloadTimeout    time.Duration `mapstructure:"download_timeout"`
	Bitrate            string        `mapstructure:"bitrate"`
	OutputDir          string        `mapstructure:"output_dir"`
}
