package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CertKeyDelimiter разделитель компонент составного ключа сертификата.
// Адреса не содержат ':', индексы неотрицательны, поэтому ключ однозначен.
const CertKeyDelimiter = ":"

// CertRef ссылка на сертификат, записанная у recipient'а при claim.
// Это ребро recipient -> certificate, независимое от поля Certificate.Recipient.
type CertRef struct {
	Issuer Address `json:"issuer"`
	Index  uint64  `json:"index"`
}

// Key возвращает составной ключ "<issuer>:<index>"
func (r CertRef) Key() string {
	return string(r.Issuer) + CertKeyDelimiter + strconv.FormatUint(r.Index, 10)
}

// Equal reports whether both components match.
func (r CertRef) Equal(other CertRef) bool {
	return r.Issuer == other.Issuer && r.Index == other.Index
}

// String implements fmt.Stringer.
func (r CertRef) String() string {
	return r.Key()
}

// ParseCertKey разбирает ключ, полученный из CertRef.Key
func ParseCertKey(key string) (CertRef, error) {
	pos := strings.LastIndex(key, CertKeyDelimiter)
	if pos <= 0 {
		return CertRef{}, fmt.Errorf("invalid certificate key %q: missing issuer or delimiter", key)
	}

	index, err := strconv.ParseUint(key[pos+1:], 10, 64)
	if err != nil {
		return CertRef{}, fmt.Errorf("invalid certificate key %q: %w", key, err)
	}

	return CertRef{
		Issuer: Address(key[:pos]),
		Index:  index,
	}, nil
}
