package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNotificationDuration is how long a notification stays visible
const DefaultNotificationDuration = 3000 * time.Millisecond

// Severity of a notification
type Severity string

const (
	// SeveritySuccess - default severity
	SeveritySuccess Severity = "success"
	// SeverityInfo - informational message
	SeverityInfo Severity = "info"
	// SeverityWarning - degraded but working
	SeverityWarning Severity = "warning"
	// SeverityError - failed action
	SeverityError Severity = "error"
)

// Notification is the single-slot message shown to the user.
// ID changes on every display call and identifies which call a pending
// auto-clear belongs to.
type Notification struct {
	ID       uuid.UUID `json:"id"`
	Visible  bool      `json:"show"`
	Message  string    `json:"message"`
	Severity Severity  `json:"type"`
}
