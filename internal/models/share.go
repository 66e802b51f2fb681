package models

import (
	"fmt"
	"strings"
)

// PrintCert представляет сертификат, подготовленный для просмотра и шаринга
type PrintCert struct {
	Issuer       Address
	TemplateName string // пустая строка, если шаблон не найден
	Cert         Certificate
	Index        uint64
}

// ShareMessage формирует сообщение, по которому получатель может заклеймить сертификат
func ShareMessage(p PrintCert) string {
	var b strings.Builder
	b.WriteString("Certificate of Achievement for ")
	b.WriteString(p.Cert.StudentName)
	if p.TemplateName != "" {
		b.WriteString(" · ")
		b.WriteString(p.TemplateName)
	}
	fmt.Fprintf(&b, ". To claim: use issuer %s and index %d.", p.Issuer, p.Index)
	return b.String()
}

// ShortAddress сокращает адрес для списков: первые head и последние tail символов
func ShortAddress(a Address, head, tail int) string {
	s := string(a)
	if len(s) <= head+tail {
		return s
	}
	return s[:head] + "..." + s[len(s)-tail:]
}

// OrDash возвращает прочерк для пустых необязательных полей
func OrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
