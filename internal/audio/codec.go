package audio

import (
	"context"

	"github.com/killallgit/podcast-forge/pkg/ffmpeg"
)

// Codec adapts the ffmpeg wrapper to the pipeline's Clip type. All decoding
// normalizes to mono float32 at PipelineSampleRate so downstream mixing never
// has to resample.
type Codec struct {
	ff *ffmpeg.FFmpeg
}

// NewCodec creates a codec backed by the given ffmpeg wrapper.
func NewCodec(ff *ffmpeg.FFmpeg) *Codec {
	return &Codec{ff: ff}
}

// Decode reads an audio file into a pipeline clip.
func (c *Codec) Decode(ctx context.Context, path string) (*Clip, error) {
	options := ffmpeg.DefaultDecodeOptions()
	options.SampleRate = PipelineSampleRate

	samples, err := c.ff.DecodePCM(ctx, path, options)
	if err != nil {
		return nil, err
	}
	return New(samples, PipelineSampleRate), nil
}

// EncodeMP3 writes a clip to an MP3 file at the given bitrate.
func (c *Codec) EncodeMP3(ctx context.Context, clip *Clip, bitrate string, outputPath string) error {
	options := ffmpeg.DefaultEncodeOptions()
	options.SampleRate = clip.SampleRate()
	if bitrate != "" {
		options.Bitrate = bitrate
	}
	return c.ff.EncodeMP3(ctx, clip.Samples(), options, outputPath)
}
