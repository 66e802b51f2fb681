package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader("  user input \nsecond"), &out)

	result, err := stdio.ReadLine("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// последняя строка без перевода строки
	result, err = stdio.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	_, err = stdio.ReadLine("")
	require.ErrorIs(t, err, io.EOF)
}

func TestReadSecret_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader("s3cret passphrase\n"), &out)

	result, err := stdio.ReadSecret("Passphrase: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret passphrase", result)
}
