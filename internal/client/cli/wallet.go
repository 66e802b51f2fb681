package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/client/wallet"
	"github.com/iudanet/gophcert/internal/validation"
)

func newWalletCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local wallet",
	}
	cmd.AddCommand(newWalletNewCommand(app), newWalletShowCommand(app))
	return cmd
}

func newWalletNewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new wallet encrypted with a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := app.io()

			pass, err := app.passphrase(ctx, "New wallet passphrase: ")
			if err != nil {
				return err
			}
			if err := validation.ValidatePassphrase(pass); err != nil {
				return fmt.Errorf("invalid passphrase: %w", err)
			}
			if app.interactivePassphrase(ctx) {
				confirm, err := out.ReadSecret("Repeat passphrase: ")
				if err != nil {
					return fmt.Errorf("failed to read passphrase: %w", err)
				}
				if confirm != pass {
					return fmt.Errorf("passphrases do not match")
				}
			}

			info, err := app.deps.Wallet.Create(ctx, pass)
			if err != nil {
				if errors.Is(err, wallet.ErrWalletExists) {
					return fmt.Errorf("%w. Use 'gophcert wallet show' to see its address", err)
				}
				return err
			}

			out.Println("✓ Wallet created")
			out.Printf("Address: %s\n", info.Address)
			out.Println()
			out.Println("Keep your passphrase safe: it cannot be recovered.")
			return nil
		},
	}
}

func newWalletShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.deps.Wallet.Info(cmd.Context())
			if err != nil {
				if errors.Is(err, storage.ErrWalletNotFound) {
					return fmt.Errorf("no wallet found. Run 'gophcert wallet new' first")
				}
				return err
			}
			out := app.io()
			out.Printf("Address:    %s\n", info.Address)
			out.Printf("Public key: %s\n", info.PublicKey)
			out.Printf("Created:    %s\n", info.CreatedAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
}
