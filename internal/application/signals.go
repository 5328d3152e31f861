package application

import (
	"storefront-state/internal/domain"

	"github.com/google/uuid"
)

// Notify func - Use case: show a message, replacing the current one.
// The message hides itself after the configured duration.
func (s *SessionContainer) Notify(message string, severity domain.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(message, severity)
}

// notifyLocked never cancels an earlier pending clear. Each clear carries the
// id of the notification it was scheduled for and only hides that one.
func (s *SessionContainer) notifyLocked(message string, severity domain.Severity) {
	if severity == "" {
		severity = domain.SeveritySuccess
	}
	id := uuid.New()
	s.notification = domain.Notification{
		ID:       id,
		Visible:  true,
		Message:  message,
		Severity: severity,
	}
	s.scheduler.AfterFunc(s.opts.NotificationDuration, func() {
		s.expireNotification(id)
	})
}

func (s *SessionContainer) expireNotification(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notification.ID == id {
		s.notification.Visible = false
	}
}

// Notification returns the current notification
func (s *SessionContainer) Notification() domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// TriggerFly func - Use case: broadcast a fly-to-cart animation from origin.
// Does nothing when origin has no resolvable position.
func (s *SessionContainer) TriggerFly(origin *domain.OriginEvent, imageRef string) {
	point, ok := origin.Center()
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggerFlyLocked(point, imageRef)
}

func (s *SessionContainer) triggerFlyLocked(point domain.Point, imageRef string) {
	s.fly = domain.FlySignal{
		SequenceID: s.fly.SequenceID + 1,
		Origin:     &point,
		ImageRef:   imageRef,
	}
}

// FlySignal returns the latest fly signal
func (s *SessionContainer) FlySignal() domain.FlySignal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flyLocked()
}

func (s *SessionContainer) flyLocked() domain.FlySignal {
	fly := s.fly
	if fly.Origin != nil {
		origin := *fly.Origin
		fly.Origin = &origin
	}
	return fly
}
