package chain

import (
	"strconv"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/pkg/api"
)

// ModuleName имя модуля сертификатов внутри адреса модуля
const ModuleName = "certificates"

// View-функции модуля
const (
	FnGetRecipientCertCount = "get_recipient_cert_count"
	FnGetRecipientCertRef   = "get_recipient_cert_ref"
	FnGetCertificate        = "get_certificate"
	FnIsIssuer              = "is_issuer"
	FnGetTemplateCount      = "get_template_count"
	FnGetTemplate           = "get_template"
	FnGetCertificateCount   = "get_certificate_count"
)

// Entry-функции модуля (транзакции)
const (
	FnCreateTemplate   = "create_template"
	FnIssueCertificate = "issue_certificate"
	FnClaimCertificate = "claim_certificate"
)

// Module адресует модуль certificates, опубликованный по фиксированному адресу
type Module struct {
	Address string
}

// NewModule creates a module reference for the given module address.
func NewModule(address string) Module {
	return Module{Address: address}
}

// Function возвращает полное имя функции "<module>::certificates::<name>"
func (m Module) Function(name string) string {
	return m.Address + "::" + ModuleName + "::" + name
}

// ViewCall строит view-запрос; type_arguments всегда пустой
func (m Module) ViewCall(name string, args ...string) api.ViewRequest {
	if args == nil {
		args = []string{}
	}
	return api.ViewRequest{
		Function:          m.Function(name),
		TypeArguments:     []string{},
		FunctionArguments: args,
	}
}

// EntryCall строит транзакцию; все аргументы передаются строками
func (m Module) EntryCall(name string, args ...string) api.SubmitRequest {
	if args == nil {
		args = []string{}
	}
	return api.SubmitRequest{
		Function:      m.Function(name),
		TypeArguments: []string{},
		Arguments:     args,
	}
}

// CreateTemplate builds the create_template transaction.
func (m Module) CreateTemplate(name, description string) api.SubmitRequest {
	return m.EntryCall(FnCreateTemplate, name, description)
}

// IssueCertificate builds the issue_certificate transaction.
func (m Module) IssueCertificate(templateIndex uint64, recipient models.Address, studentName, className, grades string) api.SubmitRequest {
	return m.EntryCall(FnIssueCertificate,
		strconv.FormatUint(templateIndex, 10),
		recipient.String(),
		studentName,
		className,
		grades,
	)
}

// ClaimCertificate builds the claim_certificate transaction.
func (m Module) ClaimCertificate(issuer models.Address, index uint64) api.SubmitRequest {
	return m.EntryCall(FnClaimCertificate, issuer.String(), strconv.FormatUint(index, 10))
}
