package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/client/storage"
	clientsync "github.com/iudanet/gophcert/internal/client/sync"
)

// refresh загружает снимок подключённого аккаунта. В режиме --offline
// возвращает кеш, иначе выполняет scan поверх кеша.
func (a *App) refresh(ctx context.Context, scan func(ctx context.Context, svc clientsync.Service) error) (*readmodel.Snapshot, error) {
	account, err := a.account(ctx)
	if err != nil {
		return nil, err
	}
	if a.opts.Offline {
		return a.cachedSnapshot(ctx, account)
	}

	svc := a.syncService(ctx, a.deps.Gateway(nil), account)
	if err := svc.Restore(ctx); err != nil && !errors.Is(err, storage.ErrSnapshotNotFound) {
		a.deps.Logger.Warn("failed to restore snapshot", "account", account, "error", err)
	}
	if err := scan(ctx, svc); err != nil {
		return nil, err
	}
	return svc.Snapshot(), nil
}

func newMineCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List certificates you claimed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.refresh(cmd.Context(), func(ctx context.Context, svc clientsync.Service) error {
				return svc.SyncOwned(ctx)
			})
			if err != nil {
				return err
			}
			renderOwned(app.io(), snap)
			return nil
		},
	}
}

func newIssuedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issued",
		Short: "List certificates you issued",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.refresh(cmd.Context(), func(ctx context.Context, svc clientsync.Service) error {
				// имена шаблонов для списка
				svc.SyncTemplates(ctx)
				return svc.SyncIssued(ctx)
			})
			if err != nil {
				return err
			}
			renderIssued(app.io(), snap)
			return nil
		},
	}
}

func newTemplatesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List your certificate templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.refresh(cmd.Context(), func(ctx context.Context, svc clientsync.Service) error {
				svc.SyncTemplates(ctx)
				return nil
			})
			if err != nil {
				return err
			}
			renderTemplates(app.io(), snap)
			return nil
		},
	}
}
