package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("FORGE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		// The one-shot produce command runs without a database
		fmt.Println("Warning: No database path configured")
	}

	if viper.GetString("synthesis.api_key") == "" {
		fmt.Println("Warning: synthesis.api_key is not set; backend calls will be unauthenticated")
	}

	// Auto-correct invalid worker count
	if viper.GetInt("processing.workers") <= 0 {
		viper.Set("processing.workers", 2)
	}

	// Auto-correct invalid synthesis concurrency
	if viper.GetInt("pipeline.synth_concurrency") <= 0 {
		viper.Set("pipeline.synth_concurrency", 4)
	}

	if viper.GetInt("pipeline.retry_attempts") <= 0 {
		viper.Set("pipeline.retry_attempts", 3)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Processing.Workers <= 0 {
		c.Processing.Workers = 2
	}

	if c.Pipeline.SynthConcurrency <= 0 {
		c.Pipeline.SynthConcurrency = 4
	}

	if c.Pipeline.RetryAttempts <= 0 {
		c.Pipeline.RetryAttempts = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/forge.db")
	viper.SetDefault("database.verbose", false)

	// Job processing defaults
	viper.SetDefault("processing.workers", 2)
	viper.SetDefault("processing.poll_interval", 2*time.Second)
	viper.SetDefault("processing.job_timeout", 30*time.Minute)
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")
	viper.SetDefault("processing.ffmpeg_timeout", 5*time.Minute)

	// Synthesis backend defaults
	viper.SetDefault("synthesis.base_url", "http://localhost:5002")
	viper.SetDefault("synthesis.api_key", "")
	viper.SetDefault("synthesis.timeout", 30*time.Second)
	viper.SetDefault("synthesis.rate_limit", 4)  // requests per second
	viper.SetDefault("synthesis.rate_burst", 8)

	// Mixing pipeline defaults
	viper.SetDefault("pipeline.synth_concurrency", 4)
	viper.SetDefault("pipeline.retry_attempts", 3)
	viper.SetDefault("pipeline.retry_delay", 1*time.Second)
	viper.SetDefault("pipeline.pause_ms", 350)
	viper.SetDefault("pipeline.insert_placeholders", false)
	viper.SetDefault("pipeline.music_gain_db", -25)
	viper.SetDefault("pipeline.music_fade_out_ms", 2000)
	viper.SetDefault("pipeline.music_lead_in_ms", 0)
	viper.SetDefault("pipeline.music_loop_ahead_ms", 5000)
	viper.SetDefault("pipeline.music_tail_margin_ms", 1000)
	viper.SetDefault("pipeline.download_timeout", 10*time.Second)
	viper.SetDefault("pipeline.bitrate", "192k")
	viper.SetDefault("pipeline.output_dir", "./data/productions")
}
