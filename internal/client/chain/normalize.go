package chain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/iudanet/gophcert/internal/models"
)

// Unwrap нормализует конверт ответа view-вызова.
// Последовательность длины 1 раскрывается в единственный элемент,
// последовательность другой длины возвращается как есть, скаляр
// оборачивается и, следовательно, возвращается без изменений.
// Ошибок здесь нет: несоответствие формы всплывает у потребителя.
func Unwrap(raw any) any {
	arr, ok := raw.([]any)
	if !ok {
		arr = []any{raw}
	}
	if len(arr) == 1 {
		return arr[0]
	}
	return arr
}

// Tuple раскрывает ответ и проверяет, что это кортеж из n значений
func Tuple(raw any, n int) ([]any, error) {
	v := Unwrap(raw)
	if n == 1 {
		return []any{v}, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected tuple of %d values, got %T", n, v)
	}
	if len(arr) != n {
		return nil, fmt.Errorf("expected tuple of %d values, got %d", n, len(arr))
	}
	return arr, nil
}

// Count приводит ответ счётчика к числу.
// Отсутствующее значение (null, пустая строка, пустой список) считается нулём.
func Count(raw any) (uint64, error) {
	v := Unwrap(raw)
	switch t := v.(type) {
	case nil:
		return 0, nil
	case string:
		if t == "" {
			return 0, nil
		}
	case []any:
		if len(t) == 0 {
			return 0, nil
		}
	}
	return AsUint64(v)
}

// AsUint64 приводит значение к uint64.
// u64 приходит строкой, но допускаются и JSON-числа.
func AsUint64(v any) (uint64, error) {
	switch t := v.(type) {
	case string:
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid u64 value %q: %w", t, err)
		}
		return n, nil
	case json.Number:
		n, err := strconv.ParseUint(t.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid u64 value %q: %w", t.String(), err)
		}
		return n, nil
	case float64:
		if t < 0 || t != math.Trunc(t) || t >= math.MaxUint64 {
			return 0, fmt.Errorf("invalid u64 value %v", t)
		}
		return uint64(t), nil
	case int:
		if t < 0 {
			return 0, fmt.Errorf("invalid u64 value %d", t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("invalid u64 value %d", t)
		}
		return uint64(t), nil
	case uint64:
		return t, nil
	default:
		return 0, fmt.Errorf("expected u64, got %T", v)
	}
}

// AsString приводит значение к строке
func AsString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// AsAddress приводит значение к адресу аккаунта
func AsAddress(v any) (models.Address, error) {
	s, err := AsString(v)
	if err != nil {
		return "", fmt.Errorf("invalid address: %w", err)
	}
	return models.Address(s), nil
}

// AsBool приводит значение к bool
func AsBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("invalid bool value %q: %w", t, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected bool, got %T", v)
	}
}
