package ledger

import "errors"

// AbortError прерывание выполнения функции модуля с кодом ошибки.
// Для транзакций код попадает в vm_status, состояние не меняется.
type AbortError struct {
	Code string
}

func (e *AbortError) Error() string {
	return "execution aborted: " + e.Code
}

// Is matches abort errors by code.
func (e *AbortError) Is(target error) bool {
	t, ok := target.(*AbortError)
	return ok && t.Code == e.Code
}

// Коды abort модуля certificates
var (
	ErrNotIssuer           = &AbortError{Code: "ENOT_ISSUER"}
	ErrTemplateNotFound    = &AbortError{Code: "ETEMPLATE_NOT_FOUND"}
	ErrCertificateNotFound = &AbortError{Code: "ECERTIFICATE_NOT_FOUND"}
	ErrNotRecipient        = &AbortError{Code: "ENOT_RECIPIENT"}
	ErrAlreadyClaimed      = &AbortError{Code: "EALREADY_CLAIMED"}
	ErrRefNotFound         = &AbortError{Code: "EREF_NOT_FOUND"}
)

// Ошибки запроса: вызов отклоняется до выполнения
var (
	// ErrUnknownModule indicates that the function is not published under the module address
	ErrUnknownModule = errors.New("unknown module")

	// ErrUnknownFunction indicates that the module has no such function
	ErrUnknownFunction = errors.New("unknown function")

	// ErrInvalidArguments indicates wrong argument count or format
	ErrInvalidArguments = errors.New("invalid function arguments")

	// ErrTypeArguments indicates non-empty type arguments
	ErrTypeArguments = errors.New("type arguments are not supported")
)
