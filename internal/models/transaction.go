package models

import (
	"time"

	"github.com/iudanet/gophcert/pkg/api"
)

// Transaction представляет транзакцию, принятую devnet-шлюзом
type Transaction struct {
	SubmittedAt time.Time    `json:"submitted_at"` // время приёма
	Hash        string       `json:"hash"`         // sha3-256 хеш (hex, 0x-prefixed)
	Sender      Address      `json:"sender"`       // адрес отправителя
	Function    string       `json:"function"`     // <module>::certificates::<name>
	VMStatus    string       `json:"vm_status"`    // код abort для failed
	Status      api.TxStatus `json:"status"`
	Arguments   []string     `json:"arguments"`
	Sequence    uint64       `json:"sequence"` // порядковый номер транзакции отправителя
	Version     uint64       `json:"version"`  // версия ledger после подтверждения, 0 для pending
}

// Receipt returns the wire representation of the transaction.
func (t *Transaction) Receipt() api.TxReceipt {
	return api.TxReceipt{
		Hash:     t.Hash,
		Sender:   t.Sender.String(),
		Function: t.Function,
		Status:   t.Status,
		VMStatus: t.VMStatus,
		Version:  t.Version,
	}
}

// UsedToken запись об уже предъявленном session token (защита от повтора)
type UsedToken struct {
	ExpiresAt time.Time `json:"expires_at"` // после истечения запись можно удалить
	UsedAt    time.Time `json:"used_at"`
	ID        string    `json:"id"` // jti токена
	Sender    Address   `json:"sender"`
}
