package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/planebound/planebound-api/internal/clients/cardapi"
	"github.com/planebound/planebound-api/internal/content"
	"github.com/planebound/planebound-api/internal/generator"
	"github.com/planebound/planebound-api/internal/handlers/api"
	"github.com/planebound/planebound-api/internal/narrator"
	redisclient "github.com/planebound/planebound-api/internal/redis"
	"github.com/planebound/planebound-api/internal/repositories/saves"
	"github.com/planebound/planebound-api/internal/session"
)

// serverConfig is populated from the environment
type serverConfig struct {
	HTTPPort       int    `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddress   string `env:"REDIS_ADDRESS"`
	CardAPIBaseURL string `env:"CARD_API_BASE_URL"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the Planebound API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	pools, err := content.LoadPools()
	if err != nil {
		return fmt.Errorf("failed to load content pools: %w", err)
	}

	gen, err := generator.New(&generator.Config{Pools: pools})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	narr, err := narrator.New(&narrator.Config{Generator: gen})
	if err != nil {
		return fmt.Errorf("failed to create narrator: %w", err)
	}

	store, err := session.New(&session.Config{})
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	savesRepo, err := buildSavesRepository(cfg)
	if err != nil {
		return err
	}

	var cards cardapi.Client
	if cfg.CardAPIBaseURL != "" {
		cards, err = cardapi.New(&cardapi.Config{BaseURL: cfg.CardAPIBaseURL})
		if err != nil {
			return fmt.Errorf("failed to create card API client: %w", err)
		}
	} else {
		slog.Warn("no card API base URL configured, card endpoints disabled")
	}

	server, err := api.NewServer(&api.Config{
		Store:     store,
		Generator: gen,
		Narrator:  narr,
		Saves:     savesRepo,
		Cards:     cards,
	})
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, forcing close", "error", err)
			_ = httpServer.Close()
		}
		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildSavesRepository wires Redis persistence when an address is
// configured and falls back to in-memory otherwise
func buildSavesRepository(cfg serverConfig) (saves.Repository, error) {
	if cfg.RedisAddress == "" {
		slog.Warn("no Redis address configured, saves are in-memory only")
		return saves.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}

	repo, err := saves.NewRedis(&saves.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create saves repository: %w", err)
	}
	return repo, nil
}
