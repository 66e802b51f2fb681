package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/gophcert/internal/client/mutation"
)

// printResult печатает подтверждение транзакции и предупреждение о ресинхронизации
func (a *App) printResult(res *mutation.Result) {
	out := a.io()
	out.Printf("Transaction %s confirmed at version %d\n", res.TxHash, res.Version)
	if res.ResyncErr != nil {
		out.Printf("Warning: failed to refresh local data: %v\n", res.ResyncErr)
	}
}

func newTemplateCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage certificate templates",
	}
	cmd.AddCommand(newTemplateCreateCommand(app))
	return cmd
}

func newTemplateCreateCommand(app *App) *cobra.Command {
	var form mutation.TemplateForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a certificate template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, _, err := app.orchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.SetTemplateForm(form)
			res, err := orch.CreateTemplate(cmd.Context())
			if err != nil {
				return err
			}
			app.printResult(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "template name")
	cmd.Flags().StringVar(&form.Description, "description", "", "template description")
	return cmd
}

func newIssueCommand(app *App) *cobra.Command {
	form := mutation.IssueForm{TemplateIndex: "0"}

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a certificate to a recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, svc, err := app.orchestrator(cmd.Context())
			if err != nil {
				return err
			}
			// индекс шаблона проверяется по актуальному списку шаблонов
			svc.SyncTemplates(cmd.Context())
			orch.SetIssueForm(form)
			res, err := orch.IssueCertificate(cmd.Context())
			if err != nil {
				return err
			}
			app.printResult(res)
			renderLastIssued(app.io(), res.LastIssued)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.TemplateIndex, "template", form.TemplateIndex, "template index")
	flags.StringVar(&form.Recipient, "recipient", "", "recipient address")
	flags.StringVar(&form.StudentName, "student", "", "student name")
	flags.StringVar(&form.ClassName, "class", "", "class or course name")
	flags.StringVar(&form.Grades, "grades", "", "grades, free form")
	return cmd
}

func newClaimCommand(app *App) *cobra.Command {
	var form mutation.ClaimForm

	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim a certificate issued to you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, _, err := app.orchestrator(cmd.Context())
			if err != nil {
				return err
			}
			orch.SetClaimForm(form)
			res, err := orch.ClaimCertificate(cmd.Context())
			if err != nil {
				return err
			}
			app.printResult(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Issuer, "issuer", "", "issuer address")
	cmd.Flags().StringVar(&form.Index, "index", "", "certificate index")
	return cmd
}
