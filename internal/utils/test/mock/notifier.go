package mock

import (
	"sync"

	"github.com/articledesk/articles-cli/internal/notify"
)

// Notifier is a notify.Notifier that records every notification
type Notifier struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

// Notify records the notification
func (n *Notifier) Notify(notification notify.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

// Notifications returns the recorded notifications
func (n *Notifier) Notifications() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]notify.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}
