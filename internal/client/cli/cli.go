// Package cli реализует команды клиента gophcert поверх cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/client/iocli"
	"github.com/iudanet/gophcert/internal/client/mutation"
	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/client/storage"
	clientsync "github.com/iudanet/gophcert/internal/client/sync"
	"github.com/iudanet/gophcert/internal/client/wallet"
	"github.com/iudanet/gophcert/internal/config"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/pkg/api"
)

// ErrNotConnected is returned by commands that need a connected account
var ErrNotConnected = errors.New("not connected. Run 'gophcert connect' first")

// Gateway шлюз ledger'а, которым пользуются команды
type Gateway interface {
	chain.Gateway
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// WalletService операции над локальным кошельком
type WalletService interface {
	Create(ctx context.Context, passphrase string) (*wallet.Info, error)
	Info(ctx context.Context) (*wallet.Info, error)
	Unlock(ctx context.Context, passphrase string) (*wallet.Signer, error)
}

// Deps зависимости команд. Открываются один раз на запуск.
type Deps struct {
	IO        iocli.IO
	Logger    *slog.Logger
	Wallet    WalletService
	Snapshots storage.SnapshotStorage
	Metadata  storage.MetadataStorage
	// Gateway создаёт клиента шлюза; tokens == nil для read-only команд
	Gateway func(tokens chain.TokenSource) Gateway
	Close   func() error
}

// Factory открывает зависимости по загруженной конфигурации
type Factory func(ctx context.Context, cfg *config.Config) (*Deps, error)

// RootOptions глобальные флаги
type RootOptions struct {
	ConfigFile     string
	GatewayURL     string
	PassphraseFile string
	Passphrase     string
	Debug          bool
	Offline        bool
}

// App состояние одного запуска CLI
type App struct {
	factory Factory
	deps    *Deps
	opts    *RootOptions
	now     func() time.Time
}

// NewRootCommand создаёт корневую команду gophcert
func NewRootCommand(factory Factory) *cobra.Command {
	app := &App{
		factory: factory,
		opts:    &RootOptions{},
		now:     time.Now,
	}

	cmd := &cobra.Command{
		Use:           "gophcert",
		Short:         "gophcert - on-chain certificates of achievement",
		Long:          "Create certificate templates, issue certificates to recipients and claim certificates issued to you.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.teardown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.opts.ConfigFile, "config", "", "path to config file (default ~/.gophcert/gophcert.yaml)")
	flags.StringVar(&app.opts.GatewayURL, "gateway", "", "ledger gateway URL (overrides config)")
	flags.StringVar(&app.opts.PassphraseFile, "passphrase-file", "", "path to file containing wallet passphrase")
	flags.StringVar(&app.opts.Passphrase, "passphrase", "", "wallet passphrase (not recommended, use env var or file)")
	flags.BoolVar(&app.opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&app.opts.Offline, "offline", false, "render the cached snapshot without contacting the gateway")

	cmd.AddCommand(
		newWalletCommand(app),
		newConnectCommand(app),
		newDisconnectCommand(app),
		newStatusCommand(app),
		newMineCommand(app),
		newIssuedCommand(app),
		newTemplatesCommand(app),
		newTemplateCommand(app),
		newIssueCommand(app),
		newClaimCommand(app),
		newShareCommand(app),
	)

	return cmd
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.ConfigFile)
	if err != nil {
		return err
	}
	if a.opts.GatewayURL != "" {
		cfg.GatewayURL = a.opts.GatewayURL
	}
	if a.opts.PassphraseFile != "" {
		cfg.WalletPassphraseFile = a.opts.PassphraseFile
	}
	if a.opts.Debug {
		cfg.LogLevel = "debug"
	}

	ctx := config.WithContext(cmd.Context(), cfg)
	cmd.SetContext(ctx)

	deps, err := a.factory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	a.deps = deps
	return nil
}

func (a *App) teardown() error {
	if a.deps == nil || a.deps.Close == nil {
		return nil
	}
	return a.deps.Close()
}

func (a *App) io() iocli.IO {
	return a.deps.IO
}

// passphrase получает пароль кошелька с приоритетом:
// 1. переменная окружения GOPHCERT_WALLET_PASSPHRASE
// 2. файл (--passphrase-file или walletPassphraseFile)
// 3. флаг --passphrase
// 4. интерактивный ввод
func (a *App) passphrase(ctx context.Context, prompt string) (string, error) {
	cfg := config.FromContext(ctx)
	if cfg != nil {
		pass, err := cfg.Passphrase()
		if err != nil {
			return "", err
		}
		if pass != "" {
			return pass, nil
		}
	}
	if a.opts.Passphrase != "" {
		return a.opts.Passphrase, nil
	}

	pass, err := a.io().ReadSecret(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if pass == "" {
		return "", fmt.Errorf("passphrase cannot be empty")
	}
	return pass, nil
}

// interactivePassphrase сообщает, будет ли пароль запрошен у пользователя
func (a *App) interactivePassphrase(ctx context.Context) bool {
	if a.opts.Passphrase != "" {
		return false
	}
	cfg := config.FromContext(ctx)
	return cfg == nil || (cfg.WalletPassphrase == "" && cfg.WalletPassphraseFile == "")
}

// account возвращает подключённый аккаунт
func (a *App) account(ctx context.Context) (models.Address, error) {
	account, err := a.deps.Metadata.GetActiveAccount(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read active account: %w", err)
	}
	if account == "" {
		return "", ErrNotConnected
	}
	return account, nil
}

func (a *App) module(ctx context.Context) chain.Module {
	address := config.DefaultModuleAddress
	if cfg := config.FromContext(ctx); cfg != nil {
		address = cfg.ModuleAddress
	}
	return chain.NewModule(address)
}

// syncService собирает синхронизатор для аккаунта поверх шлюза
func (a *App) syncService(ctx context.Context, gateway chain.Viewer, account models.Address) clientsync.Service {
	views := chain.NewViews(gateway, a.module(ctx))
	model := readmodel.New(account)
	return clientsync.NewService(views, model, a.deps.Snapshots, a.deps.Logger)
}

// cachedSnapshot загружает сохранённый снимок аккаунта без обращения к шлюзу
func (a *App) cachedSnapshot(ctx context.Context, account models.Address) (*readmodel.Snapshot, error) {
	svc := a.syncService(ctx, nil, account)
	if err := svc.Restore(ctx); err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return nil, fmt.Errorf("no cached data for %s. Run 'gophcert connect' first", account)
		}
		return nil, err
	}
	return svc.Snapshot(), nil
}

// signer разблокирует кошелёк для отправки транзакций
func (a *App) signer(ctx context.Context) (*wallet.Signer, error) {
	if _, err := a.deps.Wallet.Info(ctx); err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			return nil, fmt.Errorf("no wallet found. Run 'gophcert wallet new' first")
		}
		return nil, err
	}
	pass, err := a.passphrase(ctx, "Wallet passphrase: ")
	if err != nil {
		return nil, err
	}
	return a.deps.Wallet.Unlock(ctx, pass)
}

// orchestrator готовит мутации от имени разблокированного кошелька
func (a *App) orchestrator(ctx context.Context) (*mutation.Orchestrator, clientsync.Service, error) {
	signer, err := a.signer(ctx)
	if err != nil {
		return nil, nil, err
	}
	account := models.Address(signer.Address())
	gateway := a.deps.Gateway(signer)
	svc := a.syncService(ctx, gateway, account)
	// Мутация обновляет коллекции; поверх сохранённого снимка ресинхронизация
	// меняет только затронутую коллекцию.
	if err := svc.Restore(ctx); err != nil && !errors.Is(err, storage.ErrSnapshotNotFound) {
		a.deps.Logger.Warn("failed to restore snapshot", "account", account, "error", err)
	}
	notifier := &consoleNotifier{io: a.io()}
	orch := mutation.NewOrchestrator(gateway, a.module(ctx), account, svc, a.deps.Logger,
		mutation.WithNotifier(notifier),
		mutation.WithStateObserver(func(s mutation.State) {
			a.deps.Logger.Debug("mutation state", "state", s)
		}),
	)
	return orch, svc, nil
}

// consoleNotifier печатает уведомления в консоль
type consoleNotifier struct {
	io iocli.IO
}

func (n *consoleNotifier) Notify(msg mutation.Notification) {
	n.io.Println(msg.String())
}
