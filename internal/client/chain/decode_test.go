package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/models"
)

func TestDecodeCertRef(t *testing.T) {
	ref, err := DecodeCertRef([]any{"0xabc", "5"})
	require.NoError(t, err)
	assert.Equal(t, models.CertRef{Issuer: "0xabc", Index: 5}, ref)

	// тот же кортеж, обёрнутый в список из одного элемента
	ref, err = DecodeCertRef([]any{[]any{"0xabc", "5"}})
	require.NoError(t, err)
	assert.Equal(t, "0xabc:5", ref.Key())

	_, err = DecodeCertRef([]any{"0xabc"})
	require.Error(t, err)

	_, err = DecodeCertRef([]any{"0xabc", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index")
}

func TestDecodeCertificate(t *testing.T) {
	raw := []any{"0", "0xB0B", "Bob", "Math", "A"}
	cert, err := DecodeCertificate(raw)
	require.NoError(t, err)
	assert.Equal(t, models.Certificate{
		TemplateIndex: 0,
		Recipient:     "0xB0B",
		StudentName:   "Bob",
		ClassName:     "Math",
		Grades:        "A",
	}, cert)

	_, err = DecodeCertificate([]any{"0", "0xB0B", "Bob", "Math"})
	require.Error(t, err)

	_, err = DecodeCertificate([]any{"0", "0xB0B", "Bob", 42.0, "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 3")
}

func TestDecodeTemplate(t *testing.T) {
	tmpl, err := DecodeTemplate([]any{"Honor Roll", "Top grades"})
	require.NoError(t, err)
	assert.Equal(t, models.Template{Name: "Honor Roll", Description: "Top grades"}, tmpl)

	tmpl, err = DecodeTemplate([]any{"Honor Roll", ""})
	require.NoError(t, err)
	assert.Empty(t, tmpl.Description)

	_, err = DecodeTemplate("Honor Roll")
	require.Error(t, err)
}
