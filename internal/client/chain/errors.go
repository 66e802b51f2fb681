package chain

import "errors"

var (
	// ErrTransactionFailed indicates that the transaction was confirmed but aborted
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrNoTokenSource indicates that no wallet is configured for submission
	ErrNoTokenSource = errors.New("no wallet configured for transaction submission")

	// errTxPending используется внутри опроса статуса транзакции
	errTxPending = errors.New("transaction is pending")
)
