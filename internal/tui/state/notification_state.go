package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications (failed persistence, etc.)
	LevelError
)

// Notification represents a single notification message with a severity
// level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state. Transition and
// settings errors surface here as transient toasts; they are cleared on the
// next normal-mode keypress.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no
// notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// HasAny reports whether any notification is pending.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// Latest returns the most recently added notification.
func (s *NotificationState) Latest() Notification {
	return s.notifications[len(s.notifications)-1]
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}
