package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-forge/internal/models"
	"github.com/killallgit/podcast-forge/internal/services/production"
	"github.com/killallgit/podcast-forge/pkg/config"
)

var (
	produceScriptPath  string
	produceOutputPath  string
	produceStyle       string
	produceMusicPreset string
	produceMusicFile   string
	produceIntroURL    string
	produceOutroURL    string
	producePauseMs     int
)

// produceCmd represents the produce command
var produceCmd = &cobra.Command{
	Use:   "produce",
	Short: "Render a dialogue script to an MP3 from the command line",
	Long: `Render a single dialogue script synchronously, without the API server
or database. The script is a JSON file:

  {
    "title": "AI News Weekly",
    "dialogue": [
      {"speaker": "Host 1", "text": "Welcome back to the show."},
      {"speaker": "Host 2", "text": "Great to be here."}
    ]
  }

Example:
  podcast-forge produce --script episode.json --output episode.mp3
  podcast-forge produce --script episode.json --music-preset lofi --style morning-radio`,
	RunE: runProduce,
}

func init() {
	rootCmd.AddCommand(produceCmd)

	produceCmd.Flags().StringVar(&produceScriptPath, "script", "", "path to the dialogue script JSON (required)")
	produceCmd.Flags().StringVarP(&produceOutputPath, "output", "o", "", "output MP3 path (default: derived from the script title)")
	produceCmd.Flags().StringVar(&produceStyle, "style", "", "voice style preset (npr, morning-radio, british-documentary)")
	produceCmd.Flags().StringVar(&produceMusicPreset, "music-preset", "", "background music preset name")
	produceCmd.Flags().StringVar(&produceMusicFile, "music-file", "", "background music file (overrides --music-preset)")
	produceCmd.Flags().StringVar(&produceIntroURL, "intro-url", "", "intro clip URL")
	produceCmd.Flags().StringVar(&produceOutroURL, "outro-url", "", "outro clip URL")
	produceCmd.Flags().IntVar(&producePauseMs, "pause-ms", 0, "inter-line pause in milliseconds (overrides config)")

	_ = produceCmd.MarkFlagRequired("script")
}

func runProduce(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ff := buildFFmpeg(cfg)
	if err := ff.ValidateBinaries(); err != nil {
		return err
	}

	script, err := loadScript(produceScriptPath)
	if err != nil {
		return err
	}

	options, err := produceOptions()
	if err != nil {
		return err
	}

	outputPath := produceOutputPath
	if outputPath == "" {
		outputPath = production.SuggestedFilename(script.Title)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	orchestrator := buildOrchestrator(cfg, ff)
	result, err := orchestrator.Run(ctx, script, options, outputPath, func(stage string, progress int, message string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%3d%%] %-13s %s\n", progress, stage, message)
	})
	if err != nil {
		return fmt.Errorf("production failed: %w", err)
	}

	printManifest(cmd, result)
	return nil
}

// loadScript reads and decodes a script JSON file
func loadScript(path string) (models.Script, error) {
	var script models.Script

	data, err := os.ReadFile(path)
	if err != nil {
		return script, fmt.Errorf("reading script: %w", err)
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return script, fmt.Errorf("parsing script: %w", err)
	}
	return script, nil
}

// produceOptions assembles production options from the command flags
func produceOptions() (models.ProductionOptions, error) {
	options := models.ProductionOptions{
		Style:   produceStyle,
		PauseMs: producePauseMs,
	}

	switch {
	case produceMusicFile != "":
		data, err := os.ReadFile(produceMusicFile)
		if err != nil {
			return options, fmt.Errorf("reading music file: %w", err)
		}
		options.Music = models.MusicOptions{Source: models.MusicSourceUpload, Data: data}
	case produceMusicPreset != "":
		options.Music = models.MusicOptions{Source: models.MusicSourcePreset, Preset: produceMusicPreset}
	}

	if produceIntroURL != "" {
		options.Intro = models.AssetOptions{URL: produceIntroURL}
	}
	if produceOutroURL != "" {
		options.Outro = models.AssetOptions{URL: produceOutroURL}
	}

	return options, nil
}

// printManifest summarizes the run for the terminal
func printManifest(cmd *cobra.Command, result *production.Result) {
	out := cmd.OutOrStdout()
	manifest := result.Manifest

	fmt.Fprintf(out, "\nWrote %s (%.1fs)\n", result.OutputPath, float64(result.DurationMs)/1000)
	fmt.Fprintf(out, "Lines: %d synthesized, %d failed, %d skipped of %d\n",
		manifest.SucceededCount(), manifest.FailedCount(), len(manifest.Skipped), manifest.TotalLines)

	for _, line := range manifest.Failed {
		fmt.Fprintf(out, "  line %d (%s) failed after %d attempts: %s\n",
			line.Index, line.Speaker, line.Attempts, line.Error)
	}
	for _, warning := range manifest.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", warning)
	}
}
