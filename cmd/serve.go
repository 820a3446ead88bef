package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-forge/api"
	"github.com/killallgit/podcast-forge/api/types"
	"github.com/killallgit/podcast-forge/internal/database"
	"github.com/killallgit/podcast-forge/internal/services/jobs"
	"github.com/killallgit/podcast-forge/internal/services/production"
	"github.com/killallgit/podcast-forge/internal/services/workers"
	"github.com/killallgit/podcast-forge/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Forge API server with the configured settings.

Submitted scripts are persisted and rendered by a background worker
pool; clients poll production status and download the finished audio.

Example:
  podcast-forge serve
  podcast-forge serve --port 9090
  podcast-forge serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	ff := buildFFmpeg(cfg)
	if err := ff.ValidateBinaries(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v - productions will fail until ffmpeg is available\n", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	// Wire the services the handlers and workers share
	jobService := jobs.NewService(jobs.NewRepository(db.DB))
	productionRepo := production.NewRepository(db.DB)
	productionService := production.NewService(productionRepo, jobService)
	orchestrator := buildOrchestrator(cfg, ff)

	if err := os.MkdirAll(cfg.Pipeline.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Start the background worker pool
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewProductionProcessor(jobService, productionRepo, orchestrator, cfg.Pipeline.OutputDir))
	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Stop()

	// Build the HTTP server
	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(&types.Dependencies{
		DB:                db,
		ProductionService: productionService,
		JobService:        jobService,
		WorkerPool:        pool,
		FFmpeg:            ff,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	fmt.Printf("Starting Podcast Forge API server on %s:%d\n", serverHost, serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
