package ledger

import (
	"fmt"
	"strings"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/validation"
)

const moduleName = "certificates"

// Имена функций модуля
const (
	fnGetRecipientCertCount = "get_recipient_cert_count"
	fnGetRecipientCertRef   = "get_recipient_cert_ref"
	fnGetCertificate        = "get_certificate"
	fnIsIssuer              = "is_issuer"
	fnGetTemplateCount      = "get_template_count"
	fnGetTemplate           = "get_template"
	fnGetCertificateCount   = "get_certificate_count"

	fnCreateTemplate   = "create_template"
	fnIssueCertificate = "issue_certificate"
	fnClaimCertificate = "claim_certificate"
)

// arity число аргументов каждой функции
var (
	viewArity = map[string]int{
		fnGetRecipientCertCount: 1,
		fnGetRecipientCertRef:   2,
		fnGetCertificate:        2,
		fnIsIssuer:              1,
		fnGetTemplateCount:      1,
		fnGetTemplate:           2,
		fnGetCertificateCount:   1,
	}
	entryArity = map[string]int{
		fnCreateTemplate:   2,
		fnIssueCertificate: 5,
		fnClaimCertificate: 2,
	}
)

// resolve проверяет полное имя "<module>::certificates::<name>" и возвращает name
func (l *Ledger) resolve(function string) (string, error) {
	parts := strings.Split(function, "::")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: malformed function name %q", ErrUnknownFunction, function)
	}
	if !strings.EqualFold(parts[0], l.module) || parts[1] != moduleName {
		return "", fmt.Errorf("%w: %s::%s", ErrUnknownModule, parts[0], parts[1])
	}
	return parts[2], nil
}

func checkArity(arity map[string]int, name string, args []string) error {
	want, ok := arity[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	if len(args) != want {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidArguments, name, want, len(args))
	}
	return nil
}

func parseAddress(s string) (models.Address, error) {
	if err := validation.ValidateAddress(s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return models.Address(s), nil
}

func parseIndex(s string) (uint64, error) {
	n, err := validation.ParseIndex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return n, nil
}

func checkText(field, value string, required bool) error {
	if err := validation.ValidateText(field, value, required); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

// validateEntry проверяет аргументы транзакции до приёма в пул
func validateEntry(name string, args []string) error {
	if err := checkArity(entryArity, name, args); err != nil {
		return err
	}

	switch name {
	case fnCreateTemplate:
		if err := checkText("template name", args[0], true); err != nil {
			return err
		}
		return checkText("description", args[1], false)
	case fnIssueCertificate:
		if _, err := parseIndex(args[0]); err != nil {
			return err
		}
		if _, err := parseAddress(args[1]); err != nil {
			return err
		}
		if err := checkText("student name", args[2], true); err != nil {
			return err
		}
		if err := checkText("class name", args[3], false); err != nil {
			return err
		}
		return checkText("grades", args[4], false)
	case fnClaimCertificate:
		if _, err := parseAddress(args[0]); err != nil {
			return err
		}
		_, err := parseIndex(args[1])
		return err
	}

	return nil
}
