package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/config"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/validation"
)

func newConnectCommand(app *App) *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect an account and load its certificates",
		Long:  "Connect the wallet account (or any --account in read-only mode), run all scans and cache the result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			account := models.Address(validation.NormalizeText(accountFlag))
			if account == "" {
				info, err := app.deps.Wallet.Info(ctx)
				if err != nil {
					if errors.Is(err, storage.ErrWalletNotFound) {
						return fmt.Errorf("no wallet found. Run 'gophcert wallet new' or pass --account")
					}
					return err
				}
				account = models.Address(info.Address)
			}
			if err := validation.ValidateAddress(account.String()); err != nil {
				return fmt.Errorf("invalid account: %w", err)
			}

			if err := app.deps.Metadata.SaveActiveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to save active account: %w", err)
			}

			svc := app.syncService(ctx, app.deps.Gateway(nil), account)
			syncErr := svc.SyncAll(ctx)
			renderSyncSummary(app.io(), svc.Snapshot())
			if syncErr != nil {
				return fmt.Errorf("sync incomplete: %w", syncErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "account address to connect (default: wallet address)")
	return cmd
}

func newDisconnectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the connected account and its cached data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			account, err := app.account(ctx)
			if err != nil {
				if errors.Is(err, ErrNotConnected) {
					app.io().Println("Not connected.")
					return nil
				}
				return err
			}

			if err := app.syncService(ctx, nil, account).Discard(ctx); err != nil {
				return fmt.Errorf("failed to discard cached data: %w", err)
			}
			if err := app.deps.Metadata.ClearActiveAccount(ctx); err != nil {
				return fmt.Errorf("failed to clear active account: %w", err)
			}
			app.io().Printf("Disconnected %s\n", account)
			return nil
		},
	}
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show gateway, wallet and connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			view := statusView{
				GatewayURL:    cfg.GatewayURL,
				ModuleAddress: cfg.ModuleAddress,
			}

			if !app.opts.Offline {
				health, err := app.deps.Gateway(nil).Health(ctx)
				if err != nil {
					view.GatewayErr = err
				} else {
					view.LedgerVersion = health.LedgerVersion
				}
			} else {
				view.GatewayErr = errors.New("offline mode")
			}

			if info, err := app.deps.Wallet.Info(ctx); err == nil {
				view.Wallet = info.Address
			} else if !errors.Is(err, storage.ErrWalletNotFound) {
				return err
			}

			account, err := app.account(ctx)
			if err != nil && !errors.Is(err, ErrNotConnected) {
				return err
			}
			view.Account = account
			if account != "" {
				if snap, err := app.cachedSnapshot(ctx, account); err == nil {
					view.SyncedAt = snap.SyncedAt
				}
			}

			renderStatus(app.io(), view)
			return nil
		},
	}
}
