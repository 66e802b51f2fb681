package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// AddressPattern определяет допустимый формат адреса аккаунта:
// префикс 0x и от 1 до 64 шестнадцатеричных цифр
var AddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

const (
	// MaxTextLen максимальная длина текстового поля в символах
	MaxTextLen = 256
	// MinPassphraseLen минимальная длина пароля кошелька
	MinPassphraseLen = 12
)

// NormalizeText обрезает пробелы по краям и приводит строку к NFC,
// чтобы одинаково выглядящие имена давали одинаковые байты в ledger
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ValidateAddress проверяет формат адреса аккаунта
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !AddressPattern.MatchString(address) {
		return fmt.Errorf("address must be 0x followed by 1 to 64 hex digits")
	}

	return nil
}

// ParseIndex разбирает неотрицательный десятичный индекс
func ParseIndex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("index cannot be empty")
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("index must be a non-negative integer")
	}

	return n, nil
}

// ValidateText проверяет длину текстового поля; required запрещает пустое значение
func ValidateText(field, value string, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	if utf8.RuneCountInString(value) > MaxTextLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxTextLen)
	}

	return nil
}

// ValidatePassphrase проверяет минимальные требования к паролю кошелька
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}

	if len(passphrase) < MinPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", MinPassphraseLen)
	}

	return nil
}
