package mixer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/pkg/download"
)

// ClipDecoder decodes an audio file on disk into a pipeline clip.
type ClipDecoder interface {
	Decode(ctx context.Context, path string) (*audio.Clip, error)
}

// AssetFetcher fetches a remote audio asset to temporary storage.
// Satisfied by download.Downloader.
type AssetFetcher interface {
	DownloadToTemp(ctx context.Context, url string, name string) (*download.DownloadResult, error)
}

// AssetLoader turns asset references (URL or raw bytes) into decoded clips.
// Every intermediate file lands in the run's scratch directory, which the
// orchestrator removes when the run ends.
type AssetLoader struct {
	fetcher    AssetFetcher
	decoder    ClipDecoder
	scratchDir string
}

// NewAssetLoader creates an asset loader
func NewAssetLoader(fetcher AssetFetcher, decoder ClipDecoder, scratchDir string) *AssetLoader {
	return &AssetLoader{fetcher: fetcher, decoder: decoder, scratchDir: scratchDir}
}

// LoadURL fetches and decodes a remote asset.
func (l *AssetLoader) LoadURL(ctx context.Context, url string, name string) (*audio.Clip, error) {
	result, err := l.fetcher.DownloadToTemp(ctx, url, name)
	if err != nil {
		return nil, fmt.Errorf("downloading %s asset: %w", name, err)
	}
	defer download.CleanupTempFile(result.FilePath)

	clip, err := l.decoder.Decode(ctx, result.FilePath)
	if err != nil {
		return nil, fmt.Errorf("decoding %s asset: %w", name, err)
	}
	return clip, nil
}

// LoadBytes writes uploaded audio bytes to scratch and decodes them.
func (l *AssetLoader) LoadBytes(ctx context.Context, data []byte, name string) (*audio.Clip, error) {
	path := filepath.Join(l.scratchDir, fmt.Sprintf("asset_%s", name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s asset: %w", name, err)
	}

	clip, err := l.decoder.Decode(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s asset: %w", name, err)
	}
	return clip, nil
}
