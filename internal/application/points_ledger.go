package application

import (
	"fmt"

	"storefront-state/internal/domain"

	"github.com/sirupsen/logrus"
)

// AppendEntry func - Use case: record a point event at the head of the ledger
func (s *SessionContainer) AppendEntry(entry domain.PointLogEntry) (domain.PointLogEntry, error) {
	if err := s.validator.ValidateStruct(entry); err != nil {
		logrus.Warnf("Ignoring invalid point log entry: err=%v", err)
		return domain.PointLogEntry{}, fmt.Errorf("invalid point log entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.ledger.Append(entry, s.clock.Now())
	_ = s.persist(s.keys.PointLogs, s.ledger.History())
	return stored, nil
}

// PointLogs returns the ledger, newest first
func (s *SessionContainer) PointLogs() []domain.PointLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.History()
}
