// Command gophcert-devnet запускает локальный ledger-шлюз с модулем certificates.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gophcert/internal/config"
	"github.com/iudanet/gophcert/internal/server"
	"github.com/iudanet/gophcert/internal/server/ledger"
	"github.com/iudanet/gophcert/internal/server/metrics"
	"github.com/iudanet/gophcert/internal/server/middleware"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "gophcert-devnet",
		Short:         "Local ledger gateway hosting the certificates module",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDevnet(configFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("gophcert-devnet\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		Version, BuildDate, GitCommit))
	cmd.Flags().StringVar(&configFile, "config", "", "path to config file (default ~/.gophcert/devnet.yaml)")

	return cmd
}

func run(ctx context.Context, cfg *config.DevnetConfig) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("Starting devnet gateway",
		slog.String("version", Version),
		slog.String("addr", cfg.ListenAddr()),
		slog.String("module", cfg.ModuleAddress),
		slog.String("db", cfg.DatabasePath),
	)

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", slog.Any("error", err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	l := ledger.New(cfg.ModuleAddress, store, store, logger, ledger.WithRecorder(m))
	producer := ledger.NewBlockProducer(l, cfg.BlockInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: cfg.ListenAddr(),
		Handler: server.NewRouter(server.Deps{
			Ledger:      l,
			Tokens:      store,
			Gatherer:    registry,
			Metrics:     m,
			Limiter:     limiter,
			Logger:      logger,
			Version:     Version,
			TokenMaxAge: cfg.TokenMaxAge,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return producer.Run(gctx)
	})

	g.Go(func() error {
		sweepTokens(gctx, store, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down devnet gateway")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("Devnet gateway stopped")
	return nil
}

// sweepTokens удаляет истёкшие jti, защита от повтора для них уже не нужна
func sweepTokens(ctx context.Context, tokens storage.TokenStorage, logger *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := tokens.DeleteExpiredTokens(ctx, now)
			if err != nil {
				logger.Error("Failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.Debug("Expired tokens deleted", slog.Int("count", n))
			}
		}
	}
}
