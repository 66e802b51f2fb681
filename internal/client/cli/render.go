package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/models"
)

// Адреса в списках сокращаются до первых 8 и последних 6 символов
const (
	shortHead = 8
	shortTail = 6
)

func short(a models.Address) string {
	return models.ShortAddress(a, shortHead, shortTail)
}

func classAndGrades(c models.Certificate) string {
	return fmt.Sprintf("Class: %s · Grades: %s", models.OrDash(c.ClassName), models.OrDash(c.Grades))
}

// renderOwned печатает сертификаты, заявленные аккаунтом
func renderOwned(w io.Writer, snap *readmodel.Snapshot) {
	fmt.Fprintln(w, "=== Your certificates ===")
	fmt.Fprintln(w)

	if len(snap.Owned) == 0 {
		fmt.Fprintln(w, "No certificates yet. Claim one with 'gophcert claim --issuer <address> --index <n>'.")
		return
	}

	for i, ref := range snap.Owned {
		cert, ok := snap.Detail(ref)
		if !ok {
			fmt.Fprintf(w, "%d. (details unavailable)\n", i+1)
			fmt.Fprintf(w, "   Issuer: %s · Index: %d\n\n", short(ref.Issuer), ref.Index)
			continue
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, cert.StudentName)
		fmt.Fprintf(w, "   %s\n", classAndGrades(cert))
		fmt.Fprintf(w, "   Issuer: %s · Index: %d\n\n", short(ref.Issuer), ref.Index)
	}
}

// renderIssued печатает сертификаты, выпущенные аккаунтом
func renderIssued(w io.Writer, snap *readmodel.Snapshot) {
	fmt.Fprintln(w, "=== Certificates you issued ===")
	fmt.Fprintln(w)

	if len(snap.Issued) == 0 {
		fmt.Fprintln(w, "No certificates issued yet. Use 'gophcert issue' to issue one.")
		return
	}

	for _, item := range snap.Issued {
		fmt.Fprintf(w, "#%d %s\n", item.Index, item.Cert.StudentName)
		if name, ok := snap.TemplateName(item.Cert.TemplateIndex); ok {
			fmt.Fprintf(w, "   Template: %s\n", name)
		}
		fmt.Fprintf(w, "   %s\n", classAndGrades(item.Cert))
		fmt.Fprintf(w, "   Index: %d · To: %s\n", item.Index, short(item.Cert.Recipient))
		fmt.Fprintf(w, "   Share with recipient: your address + index %d\n\n", item.Index)
	}
}

// renderTemplates печатает шаблоны аккаунта
func renderTemplates(w io.Writer, snap *readmodel.Snapshot) {
	fmt.Fprintln(w, "=== Your templates ===")
	fmt.Fprintln(w)

	if len(snap.Templates) == 0 {
		fmt.Fprintln(w, "No templates yet. Create one with 'gophcert template create --name <name>'.")
		return
	}

	for i, t := range snap.Templates {
		fmt.Fprintf(w, "[%d] %s\n", i, t.Name)
		if t.Description != "" {
			fmt.Fprintf(w, "    %s\n", t.Description)
		}
	}
}

// renderLastIssued печатает баннер о последнем выпущенном сертификате
func renderLastIssued(w io.Writer, last *models.LastIssued) {
	if last == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Certificate #%d issued to %s.\n", last.Index, last.RecipientName)
	fmt.Fprintf(w, "Share your address and index %d with %s so they can claim it:\n", last.Index, last.RecipientName)
	fmt.Fprintf(w, "  issuer: %s\n", last.Issuer)
	fmt.Fprintf(w, "  index:  %d\n", last.Index)
}

// renderShare печатает карточку сертификата и сообщение для получателя
func renderShare(w io.Writer, p models.PrintCert) {
	fmt.Fprintln(w, "=== Certificate of Achievement ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Student:  %s\n", p.Cert.StudentName)
	if p.TemplateName != "" {
		fmt.Fprintf(w, "Template: %s\n", p.TemplateName)
	}
	fmt.Fprintf(w, "Class:    %s\n", models.OrDash(p.Cert.ClassName))
	fmt.Fprintf(w, "Grades:   %s\n", models.OrDash(p.Cert.Grades))
	fmt.Fprintf(w, "Issuer:   %s\n", p.Issuer)
	fmt.Fprintf(w, "Index:    %d\n", p.Index)
	fmt.Fprintln(w)
	fmt.Fprintln(w, models.ShareMessage(p))
}

// renderSyncSummary краткая сводка по коллекциям после connect
func renderSyncSummary(w io.Writer, snap *readmodel.Snapshot) {
	fmt.Fprintf(w, "Connected as %s\n", snap.Account)
	fmt.Fprintf(w, "  certificates owned:  %d\n", len(snap.Owned))
	fmt.Fprintf(w, "  templates:           %d\n", len(snap.Templates))
	fmt.Fprintf(w, "  certificates issued: %d\n", len(snap.Issued))
}

// statusView данные команды status
type statusView struct {
	SyncedAt      time.Time
	GatewayErr    error
	GatewayURL    string
	ModuleAddress string
	Wallet        string
	Account       models.Address
	LedgerVersion uint64
}

func renderStatus(w io.Writer, s statusView) {
	fmt.Fprintln(w, "=== Status ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Gateway: %s\n", s.GatewayURL)
	if s.GatewayErr != nil {
		fmt.Fprintf(w, "  unreachable: %v\n", s.GatewayErr)
	} else {
		fmt.Fprintf(w, "  ok, ledger version %d\n", s.LedgerVersion)
	}
	fmt.Fprintf(w, "Module:  %s\n", s.ModuleAddress)
	fmt.Fprintf(w, "Wallet:  %s\n", models.OrDash(s.Wallet))

	if s.Account == "" {
		fmt.Fprintln(w, "Account: not connected")
		return
	}
	fmt.Fprintf(w, "Account: %s\n", s.Account)
	if s.SyncedAt.IsZero() {
		fmt.Fprintln(w, "Cache:   empty")
	} else {
		fmt.Fprintf(w, "Cache:   synced at %s\n", s.SyncedAt.UTC().Format(time.RFC3339))
	}
}
