package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх произвольных потоков ввода/вывода.
// Скрытый ввод пароля работает только если вход является терминалом.
type Stdio struct {
	out    io.Writer
	in     *bufio.Reader
	inFile *os.File
}

var _ IO = (*Stdio)(nil)

// NewStdio создает IO поверх os.Stdin и os.Stdout
func NewStdio() *Stdio {
	s := NewStreams(os.Stdin, os.Stdout)
	s.inFile = os.Stdin
	return s
}

// NewStreams создает IO поверх заданных потоков
func NewStreams(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadLine(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadSecret читает секрет без эха. Если вход не терминал
// (pipe, тесты), пароль читается как обычная строка.
func (s *Stdio) ReadSecret(prompt string) (string, error) {
	if s.inFile == nil || !term.IsTerminal(int(s.inFile.Fd())) {
		return s.ReadLine(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.inFile.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
