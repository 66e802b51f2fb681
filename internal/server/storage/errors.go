package storage

import "errors"

// Common storage errors
var (
	// ErrTemplateNotFound indicates that the issuer has no template with this index
	ErrTemplateNotFound = errors.New("template not found")

	// ErrCertificateNotFound indicates that the issuer has no certificate with this index
	ErrCertificateNotFound = errors.New("certificate not found")

	// ErrRefNotFound indicates that the recipient has no certificate reference with this index
	ErrRefNotFound = errors.New("certificate reference not found")

	// ErrTransactionNotFound indicates that no transaction has this hash
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionExists indicates that a transaction with this hash was already submitted
	ErrTransactionExists = errors.New("transaction already exists")

	// ErrTokenReused indicates that the session token id was already presented
	ErrTokenReused = errors.New("session token already used")
)
