// Package notify carries operation outcomes to the user
package notify

import (
	"errors"
)

// Status is the outcome of an operation
type Status string

// set of supported statuses
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Notification is a short, user-facing report of an operation outcome
type Notification struct {
	Status      Status
	Title       string
	Description string
}

// Success creates a successful notification
func Success(title string) Notification {
	return Notification{Status: StatusSuccess, Title: title}
}

// Failure creates a failed notification with the server's message
func Failure(title, description string) Notification {
	return Notification{Status: StatusError, Title: title, Description: description}
}

// Notifier receives notifications
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function into a Notifier
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Discard is a Notifier that drops every notification
var Discard Notifier = NotifierFunc(func(Notification) {})

type reportedErr struct {
	err error
}

func (re reportedErr) Error() string { return re.err.Error() }

func (re reportedErr) Unwrap() error { return re.err }

// Reported returns true
func (re reportedErr) Reported() bool { return true }

// Reported marks an error as already presented to the user
// either through a notification or the diagnostic logger
func Reported(err error) error {
	if err == nil || IsReported(err) {
		return err
	}
	return reportedErr{err}
}

// IsReported reports whether the error was already presented to the user
func IsReported(err error) bool {
	var re interface{ Reported() bool }
	return errors.As(err, &re) && re.Reported()
}
