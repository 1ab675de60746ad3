// Package notifier delivers transient, user-facing notifications about the
// outcome of an operation ("Article created", "Failed to delete comment").
//
// The Notifier interface lets the console, tests and any future front end
// plug in their own presentation through dependency injection.
package notifier

import "context"

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one message shown to the user.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Success builds a success notification.
func Success(title, message string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Message: message}
}

// Error builds an error notification whose message is err's text.
func Error(title string, err error) Notification {
	n := Notification{Level: LevelError, Title: title}
	if err != nil {
		n.Message = err.Error()
	}
	return n
}

// Info builds an informational notification.
func Info(title, message string) Notification {
	return Notification{Level: LevelInfo, Title: title, Message: message}
}

// Notifier shows notifications to the user.
//
// Notify must not block for long and never fails: a notification that
// cannot be shown is dropped.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
