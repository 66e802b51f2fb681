package models

// Address представляет адрес аккаунта в ledger.
// Один и тот же адрес выступает issuer'ом или recipient'ом в зависимости
// от контекста вызова; роль по значению адреса не определяется.
type Address string

// String returns the address as is.
func (a Address) String() string {
	return string(a)
}

// Template представляет шаблон сертификата, созданный issuer'ом.
// Идентифицируется парой (issuer, templateIndex).
type Template struct {
	Name        string `json:"name"`        // Name название шаблона (например, "University Diploma 2025")
	Description string `json:"description"` // Description описание шаблона
}

// Certificate представляет выпущенный сертификат.
// Идентифицируется парой (issuer, certificateIndex); Recipient: адресат,
// который может ещё не заклеймить сертификат.
type Certificate struct {
	Recipient     Address `json:"recipient"`      // Recipient адрес получателя
	StudentName   string  `json:"student_name"`   // StudentName имя студента
	ClassName     string  `json:"class_name"`     // ClassName название курса/класса
	Grades        string  `json:"grades"`         // Grades оценки в свободной форме (например, "3.8 GPA")
	TemplateIndex uint64  `json:"template_index"` // TemplateIndex индекс шаблона у того же issuer'а
}

// IssuedCert пара (индекс, сертификат) из списка выпущенных issuer'ом сертификатов
type IssuedCert struct {
	Cert  Certificate `json:"cert"`
	Index uint64      `json:"index"`
}

// LastIssued описывает последний выпущенный сертификат.
// Index выводится эвристически из счётчика сертификатов после подтверждения
// транзакции: квитанция не содержит назначенного индекса.
type LastIssued struct {
	Issuer        Address `json:"issuer"`
	RecipientName string  `json:"recipient_name"`
	Index         uint64  `json:"index"`
}
