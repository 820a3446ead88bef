package mixer

import (
	"context"
	"fmt"
	"log"

	"github.com/killallgit/podcast-forge/internal/audio"
	"github.com/killallgit/podcast-forge/internal/models"
)

// Bracketer prepends an intro clip and appends an outro clip around the mixed
// program.
type Bracketer struct {
	loader *AssetLoader
}

// NewBracketer creates a bracketer
func NewBracketer(loader *AssetLoader) *Bracketer {
	return &Bracketer{loader: loader}
}

// Bracket wraps the program with the configured intro and outro. Either asset
// failing to load degrades to omitting it with a manifest warning; the main
// program is never lost to a broken bumper.
func (b *Bracketer) Bracket(ctx context.Context, program *audio.Clip, intro, outro models.AssetOptions, manifest *models.Manifest) *audio.Clip {
	if clip := b.load(ctx, intro, "intro", manifest); clip != nil {
		program = clip.Append(program)
	}
	if clip := b.load(ctx, outro, "outro", manifest); clip != nil {
		program = program.Append(clip)
	}
	return program
}

func (b *Bracketer) load(ctx context.Context, asset models.AssetOptions, name string, manifest *models.Manifest) *audio.Clip {
	if !asset.IsSet() {
		return nil
	}

	var clip *audio.Clip
	var err error
	if len(asset.Data) > 0 {
		clip, err = b.loader.LoadBytes(ctx, asset.Data, name)
	} else {
		clip, err = b.loader.LoadURL(ctx, asset.URL, name)
	}
	if err != nil {
		log.Printf("[WARN] %s clip unavailable, continuing without it: %v", name, err)
		manifest.AddWarning(fmt.Sprintf("%s clip unavailable: %v", name, err))
		return nil
	}
	return clip
}
