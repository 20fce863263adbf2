package cli

import (
	"github.com/articledesk/articles-cli/internal/notify"
	"github.com/articledesk/articles-cli/internal/terminal"
)

// UINotifier prints notifications as terminal logs
type UINotifier struct {
	UI terminal.UI
}

// NewUINotifier creates a notifier that prints to the terminal UI
func NewUINotifier(ui terminal.UI) UINotifier {
	return UINotifier{ui}
}

// Notify prints the notification, failures are printed as errors
func (n UINotifier) Notify(notification notify.Notification) {
	level := terminal.LogLevelInfo
	if notification.Status == notify.StatusError {
		level = terminal.LogLevelError
	}
	n.UI.Print(terminal.NewNoticeLog(level, notification.Title, notification.Description))
}
