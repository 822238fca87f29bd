// Package notify carries user-facing notifications, the terminal analog of
// the web app's toast messages. Services report outcomes through a Notifier;
// "silent" operations simply never call it.
package notify

import (
	"fmt"
	"io"
	"log/slog"
)

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Success(format string, args ...any)
	Error(format string, args ...any)
	Warning(format string, args ...any)
	Info(format string, args ...any)
}

// Terminal writes notifications as plain lines and mirrors them to slog.
type Terminal struct {
	Out io.Writer
}

func (t *Terminal) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(t.Out, msg)
	slog.Info(msg)
}

func (t *Terminal) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(t.Out, "error: "+msg)
	slog.Error(msg)
}

func (t *Terminal) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(t.Out, "warning: "+msg)
	slog.Warn(msg)
}

func (t *Terminal) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(t.Out, msg)
	slog.Info(msg)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Success(string, ...any) {}
func (Discard) Error(string, ...any)   {}
func (Discard) Warning(string, ...any) {}
func (Discard) Info(string, ...any)    {}
