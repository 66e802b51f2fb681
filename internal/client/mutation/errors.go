package mutation

import "errors"

// ErrBusy возвращается, если другая операция ещё выполняется
var ErrBusy = errors.New("another operation is in progress")

// ValidationError локальная ошибка ввода: обращений к шлюзу не было.
// Message показывается пользователю как есть.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
