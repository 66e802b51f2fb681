// Command gophcert клиент сертификатов: кошелёк, шаблоны, выпуск и claim.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/client/cli"
	"github.com/iudanet/gophcert/internal/client/iocli"
	"github.com/iudanet/gophcert/internal/client/storage/boltdb"
	"github.com/iudanet/gophcert/internal/client/wallet"
	"github.com/iudanet/gophcert/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	root := cli.NewRootCommand(openDeps)
	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("gophcert\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		Version, BuildDate, GitCommit))

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openDeps открывает BoltDB и собирает зависимости команд
func openDeps(ctx context.Context, cfg *config.Config) (*cli.Deps, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))

	if dir := filepath.Dir(cfg.DatabasePath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	store, err := boltdb.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", cfg.DatabasePath)

	gateway := func(tokens chain.TokenSource) cli.Gateway {
		opts := []chain.Option{
			chain.WithPollInterval(cfg.ConfirmPollInterval, cfg.ConfirmMaxInterval),
		}
		if tokens != nil {
			opts = append(opts, chain.WithTokenSource(tokens))
		}
		if cfg.RequestTimeout > 0 {
			opts = append(opts, chain.WithTimeout(cfg.RequestTimeout))
		}
		return chain.NewClient(cfg.GatewayURL, opts...)
	}

	return &cli.Deps{
		IO:        iocli.NewStdio(),
		Logger:    logger,
		Wallet:    wallet.NewService(store),
		Snapshots: store,
		Metadata:  store,
		Gateway:   gateway,
		Close:     store.Close,
	}, nil
}
