package application

import (
	"fmt"

	"storefront-state/internal/domain"

	"github.com/sirupsen/logrus"
)

// Login func - Use case: start (or replace) the authenticated session.
// A nil or invalid record leaves state untouched and returns ErrInvalidUserRecord.
func (s *SessionContainer) Login(record *domain.UserRecord) error {
	if record == nil {
		logrus.Warn("Ignoring login without a user record")
		return domain.ErrInvalidUserRecord
	}
	if err := s.validator.ValidateStruct(record); err != nil {
		logrus.Warnf("Ignoring login with invalid user record: err=%v", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidUserRecord, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = domain.NewUserSession(*record)
	logrus.Infof("User logged in: username=%s, role=%s", s.user.Username, s.user.Role)

	s.token = record.Token
	if err := s.saveSession(); err != nil {
		s.notifyLocked(fmt.Sprintf("Welcome, %s! Your session could not be saved on this device and will end when you close it", s.user.Name()), domain.SeverityWarning)
		return nil
	}
	s.notifyLocked(fmt.Sprintf("Welcome back, %s!", s.user.Name()), domain.SeveritySuccess)
	return nil
}

// saveSession writes the user projection and then the token. When either
// write fails both keys are removed, so a reload never pairs one user's
// record with another user's token.
func (s *SessionContainer) saveSession() error {
	err := s.persist(s.keys.User, s.user.Projection(s.opts.MaxPersistedFieldBytes))
	if err == nil {
		if s.token == "" {
			s.remove(s.keys.Token)
			return nil
		}
		err = s.persist(s.keys.Token, s.token)
	}
	if err != nil {
		s.remove(s.keys.User)
		s.remove(s.keys.Token)
	}
	return err
}

// Logout func - Use case: end the session.
// Clears user, token, coupons and cart and their stored keys. The points
// ledger is kept in memory and in storage.
func (s *SessionContainer) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		logrus.Infof("User logged out: username=%s", s.user.Username)
	}
	s.user = nil
	s.token = ""
	s.coupons = nil
	s.cart.Clear()

	s.remove(s.keys.User)
	s.remove(s.keys.Cart)
	s.remove(s.keys.Token)

	s.notifyLocked("You have signed out", domain.SeveritySuccess)
}

// Authenticated reports whether a user session is active
func (s *SessionContainer) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// DeductPoints func - Use case: spend points. No floor is enforced.
func (s *SessionContainer) DeductPoints(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		logrus.Debug("Ignoring point deduction without a session")
		return
	}
	s.user.Points -= amount
	_ = s.persist(s.keys.User, s.user.Projection(s.opts.MaxPersistedFieldBytes))
}

// CurrentUser returns a copy of the active session or nil
func (s *SessionContainer) CurrentUser() *domain.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Token returns the bearer token of the active session
func (s *SessionContainer) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
