package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/validation"
)

// findPrintCert ищет сертификат в снимке: сначала среди выпущенных
// аккаунтом, затем среди заявленных
func findPrintCert(snap *readmodel.Snapshot, ref models.CertRef) (models.PrintCert, bool) {
	if ref.Issuer == snap.Account {
		for _, item := range snap.Issued {
			if item.Index == ref.Index {
				name, _ := snap.TemplateName(item.Cert.TemplateIndex)
				return models.PrintCert{Issuer: ref.Issuer, Index: ref.Index, Cert: item.Cert, TemplateName: name}, true
			}
		}
	}
	if cert, ok := snap.Detail(ref); ok {
		return models.PrintCert{Issuer: ref.Issuer, Index: ref.Index, Cert: cert}, true
	}
	return models.PrintCert{}, false
}

func newShareCommand(app *App) *cobra.Command {
	var issuerFlag, indexFlag string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Show a certificate and the message to share with its recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			account, err := app.account(ctx)
			if err != nil {
				return err
			}

			issuer := models.Address(validation.NormalizeText(issuerFlag))
			if issuer == "" {
				issuer = account
			}
			if err := validation.ValidateAddress(issuer.String()); err != nil {
				return fmt.Errorf("invalid issuer: %w", err)
			}
			index, err := validation.ParseIndex(indexFlag)
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}
			ref := models.CertRef{Issuer: issuer, Index: index}

			if snap, err := app.cachedSnapshot(ctx, account); err == nil {
				if p, ok := findPrintCert(snap, ref); ok {
					renderShare(app.io(), p)
					return nil
				}
			}
			if app.opts.Offline {
				return fmt.Errorf("certificate %s is not in the cache", ref)
			}

			views := chain.NewViews(app.deps.Gateway(nil), app.module(ctx))
			cert, err := views.Certificate(ctx, ref.Issuer, ref.Index)
			if err != nil {
				return fmt.Errorf("failed to load certificate %s: %w", ref, err)
			}
			p := models.PrintCert{Issuer: ref.Issuer, Index: ref.Index, Cert: cert}
			if tmpl, err := views.Template(ctx, ref.Issuer, cert.TemplateIndex); err == nil {
				p.TemplateName = tmpl.Name
			}
			renderShare(app.io(), p)
			return nil
		},
	}

	cmd.Flags().StringVar(&issuerFlag, "issuer", "", "issuer address (default: connected account)")
	cmd.Flags().StringVar(&indexFlag, "index", "", "certificate index")
	return cmd
}
