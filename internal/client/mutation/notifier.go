package mutation

import (
	"fmt"
	"log/slog"
)

//go:generate moq -out notifier_mock.go . Notifier

// Notification сообщение пользователю об успешной операции
type Notification struct {
	Title string
	Body  string
}

func (n Notification) String() string {
	if n.Body == "" {
		return n.Title
	}
	return n.Title + ": " + n.Body
}

// Notifier доставляет уведомления пользователю
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier пишет уведомления в лог
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(n Notification) {
	l.Logger.Info(n.Title, "body", n.Body)
}

func templateCreated(name string) Notification {
	return Notification{Title: "Template created", Body: name}
}

func certificateIssued(index uint64, recipientName string) Notification {
	return Notification{
		Title: "Certificate issued",
		Body:  fmt.Sprintf("Index: %d. Share your address + index %d with %s to claim.", index, index, recipientName),
	}
}

func certificateClaimed() Notification {
	return Notification{Title: "Certificate claimed", Body: "Added to your list."}
}
