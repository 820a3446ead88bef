package cmd

import (
	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/services/production"
	"github.com/killallgit/podcast-forge/internal/services/synthesis"
	"github.com/killallgit/podcast-forge/pkg/config"
	"github.com/killallgit/podcast-forge/pkg/download"
	"github.com/killallgit/podcast-forge/pkg/ffmpeg"
)

// buildFFmpeg constructs the ffmpeg wrapper from config
func buildFFmpeg(cfg *config.Config) *ffmpeg.FFmpeg {
	return ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
}

// buildOrchestrator wires the full production pipeline from config
func buildOrchestrator(cfg *config.Config, ff *ffmpeg.FFmpeg) *production.Orchestrator {
	backend := synthesis.NewHTTPBackend(synthesis.HTTPBackendConfig{
		BaseURL:   cfg.Synthesis.BaseURL,
		APIKey:    cfg.Synthesis.APIKey,
		Timeout:   cfg.Synthesis.Timeout,
		RateLimit: cfg.Synthesis.RateLimit,
		RateBurst: cfg.Synthesis.RateBurst,
	})

	codec := audio.NewCodec(ff)

	downloadOptions := download.DefaultOptions()
	downloadOptions.Timeout = cfg.Pipeline.DownloadTimeout
	fetcher := download.NewDownloader(downloadOptions)

	return production.NewOrchestrator(backend, codec, codec, fetcher,
		production.RunConfigFromSettings(cfg))
}
