package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"time"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}

	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}

	return nil
}

// DecodePCM decodes an audio file into raw mono float32 samples at the
// target sample rate. Any container/codec ffmpeg understands is accepted.
func (f *FFmpeg) DecodePCM(ctx context.Context, inputFile string, options DecodeOptions) ([]float32, error) {
	if options.SampleRate <= 0 {
		options.SampleRate = 44100
	}

	if options.MaxDuration > 0 {
		metadata, err := f.GetMetadata(ctx, inputFile)
		if err != nil {
			return nil, err
		}
		if time.Duration(metadata.Duration)*time.Second > options.MaxDuration {
			return nil, fmt.Errorf("%w: duration %.1fs exceeds limit %.1fs",
				ErrAudioTooLong, metadata.Duration, options.MaxDuration.Seconds())
		}
	}

	rawFile, err := os.CreateTemp(options.TempDir, "decode_*.raw")
	if err != nil {
		return nil, NewProcessingError("temp_file_creation", inputFile, err, "")
	}
	rawPath := rawFile.Name()
	rawFile.Close()
	defer os.Remove(rawPath)

	// Convert to raw PCM: 32-bit float little-endian, mono, resampled
	args := []string{
		"-i", inputFile,
		"-f", "f32le",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", options.SampleRate),
		"-y",
		rawPath,
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewProcessingError("pcm_decode", inputFile, err, stderr.String())
	}

	samples, err := readRawFloat32(rawPath)
	if err != nil {
		return nil, NewProcessingError("pcm_read", inputFile, err, "")
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyAudio, inputFile)
	}

	return samples, nil
}

// EncodeMP3 encodes raw mono float32 samples to an MP3 file at a constant
// bitrate. The raw stream is staged to a temp file and fed through ffmpeg.
func (f *FFmpeg) EncodeMP3(ctx context.Context, samples []float32, options EncodeOptions, outputPath string) error {
	if options.SampleRate <= 0 {
		options.SampleRate = 44100
	}
	if options.Bitrate == "" {
		options.Bitrate = "192k"
	}

	rawFile, err := os.CreateTemp(options.TempDir, "encode_*.raw")
	if err != nil {
		return NewProcessingError("temp_file_creation", outputPath, err, "")
	}
	rawPath := rawFile.Name()
	defer os.Remove(rawPath)

	if err := writeRawFloat32(rawFile, samples); err != nil {
		rawFile.Close()
		return NewProcessingError("pcm_write", outputPath, err, "")
	}
	rawFile.Close()

	args := []string{
		"-f", "f32le",
		"-ar", fmt.Sprintf("%d", options.SampleRate),
		"-ac", "1",
		"-i", rawPath,
		"-c:a", "libmp3lame",
		"-b:a", options.Bitrate,
		"-y",
		outputPath,
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return NewProcessingError("mp3_encode", outputPath, err, stderr.String())
	}

	return nil
}

// readRawFloat32 reads a raw f32le file into a sample slice
func readRawFloat32(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	totalSamples := stat.Size() / 4 // 4 bytes per float32 sample
	samples := make([]float32, 0, totalSamples)

	buffer := make([]byte, 64*1024)
	for {
		n, err := file.Read(buffer)
		for i := 0; i+4 <= n; i += 4 {
			samples = append(samples, bytesToFloat32(buffer[i:i+4]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return samples, nil
}

// writeRawFloat32 writes samples as raw f32le
func writeRawFloat32(w io.Writer, samples []float32) error {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	_, err := w.Write(buf)
	return err
}

// Helper functions

// bytesToFloat32 converts 4 bytes to a float32 in little-endian format
func bytesToFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
