package api

// ViewRequest представляет read-only вызов функции модуля.
// Все аргументы передаются строками (индексы десятичными строками).
type ViewRequest struct {
	Function          string   `json:"function"`           // <module>::certificates::<name>
	TypeArguments     []string `json:"type_arguments"`     // всегда пустой список для модуля certificates
	FunctionArguments []string `json:"function_arguments"` // аргументы функции
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение (vm_status для abort)
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	LedgerVersion uint64 `json:"ledger_version"`
}
