package chain

import (
	"fmt"

	"github.com/iudanet/gophcert/internal/models"
)

// DecodeCertRef разбирает ответ get_recipient_cert_ref: (address, u64)
func DecodeCertRef(raw any) (models.CertRef, error) {
	tuple, err := Tuple(raw, 2)
	if err != nil {
		return models.CertRef{}, fmt.Errorf("decode certificate ref: %w", err)
	}
	issuer, err := AsAddress(tuple[0])
	if err != nil {
		return models.CertRef{}, fmt.Errorf("decode certificate ref issuer: %w", err)
	}
	index, err := AsUint64(tuple[1])
	if err != nil {
		return models.CertRef{}, fmt.Errorf("decode certificate ref index: %w", err)
	}
	return models.CertRef{Issuer: issuer, Index: index}, nil
}

// DecodeCertificate разбирает ответ get_certificate:
// (u64 templateIndex, address recipient, string studentName, string className, string grades)
func DecodeCertificate(raw any) (models.Certificate, error) {
	tuple, err := Tuple(raw, 5)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("decode certificate: %w", err)
	}

	templateIndex, err := AsUint64(tuple[0])
	if err != nil {
		return models.Certificate{}, fmt.Errorf("decode certificate template index: %w", err)
	}
	recipient, err := AsAddress(tuple[1])
	if err != nil {
		return models.Certificate{}, fmt.Errorf("decode certificate recipient: %w", err)
	}

	// Оставшиеся три поля: строки
	fields := make([]string, 0, 3)
	for i, v := range tuple[2:] {
		s, err := AsString(v)
		if err != nil {
			return models.Certificate{}, fmt.Errorf("decode certificate field %d: %w", i+2, err)
		}
		fields = append(fields, s)
	}

	return models.Certificate{
		TemplateIndex: templateIndex,
		Recipient:     recipient,
		StudentName:   fields[0],
		ClassName:     fields[1],
		Grades:        fields[2],
	}, nil
}

// DecodeTemplate разбирает ответ get_template: (string name, string description)
func DecodeTemplate(raw any) (models.Template, error) {
	tuple, err := Tuple(raw, 2)
	if err != nil {
		return models.Template{}, fmt.Errorf("decode template: %w", err)
	}
	name, err := AsString(tuple[0])
	if err != nil {
		return models.Template{}, fmt.Errorf("decode template name: %w", err)
	}
	description, err := AsString(tuple[1])
	if err != nil {
		return models.Template{}, fmt.Errorf("decode template description: %w", err)
	}
	return models.Template{Name: name, Description: description}, nil
}
