// Package iocli консольный ввод/вывод команд gophcert.
package iocli

import "io"

// IO терминал команды. Вывод идёт через Writer (рендеринг списков пишет
// в него напрямую), ввод построчный. Секреты (пароль кошелька) читаются
// без эха, если вход является терминалом.
type IO interface {
	io.Writer
	Println(a ...any)
	Printf(format string, a ...any)
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}
