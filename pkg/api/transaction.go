package api

// SubmitRequest представляет транзакцию, вызывающую entry-функцию модуля
type SubmitRequest struct {
	Function      string   `json:"function"`       // <module>::certificates::<name>
	TypeArguments []string `json:"type_arguments"` // всегда пустой список
	Arguments     []string `json:"arguments"`      // аргументы в строковом представлении
}

// TxStatus статус транзакции в ledger
type TxStatus string

const (
	TxStatusPending TxStatus = "pending" // принята, ещё не подтверждена
	TxStatusSuccess TxStatus = "success" // подтверждена и применена
	TxStatusFailed  TxStatus = "failed"  // подтверждена, но выполнение прервано (abort)
)

// IsFinal reports whether the status will not change anymore.
func (s TxStatus) IsFinal() bool {
	return s == TxStatusSuccess || s == TxStatusFailed
}

// TxReceipt представляет квитанцию транзакции.
// Квитанция не содержит индексов, назначенных ledger'ом при выполнении.
type TxReceipt struct {
	Hash     string   `json:"hash"`                // sha3-256 хеш транзакции (hex, 0x-prefixed)
	Sender   string   `json:"sender"`              // адрес отправителя
	Function string   `json:"function"`            // вызванная функция
	Status   TxStatus `json:"status"`              // текущий статус
	VMStatus string   `json:"vm_status,omitempty"` // причина abort для failed
	Version  uint64   `json:"version,omitempty"`   // версия ledger, в которой транзакция подтверждена
}
