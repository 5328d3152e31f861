package application

import (
	"encoding/json"
	"sync"
	"time"

	"storefront-state/internal/domain"
	"storefront-state/internal/ports/input"
	"storefront-state/internal/ports/output"
	"storefront-state/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SessionContainer implements SessionService interface
var _ input.SessionService = (*SessionContainer)(nil)

// DefaultKeyPrefix prefixes every persisted key when none is configured
const DefaultKeyPrefix = "storefront"

// Options tunes the container. Zero values fall back to the domain defaults.
type Options struct {
	KeyPrefix              string
	LedgerCap              int
	NotificationDuration   time.Duration
	MaxPersistedFieldBytes int
	PlaceholderImage       string
}

func (o Options) withDefaults() Options {
	if o.KeyPrefix == "" {
		o.KeyPrefix = DefaultKeyPrefix
	}
	if o.LedgerCap <= 0 {
		o.LedgerCap = domain.DefaultLedgerCap
	}
	if o.NotificationDuration <= 0 {
		o.NotificationDuration = domain.DefaultNotificationDuration
	}
	if o.MaxPersistedFieldBytes <= 0 {
		o.MaxPersistedFieldBytes = domain.DefaultMaxPersistedFieldBytes
	}
	if o.PlaceholderImage == "" {
		o.PlaceholderImage = domain.DefaultPlaceholderImage
	}
	return o
}

// Keys are the storage keys owned by the container
type Keys struct {
	Cart      string
	User      string
	PointLogs string
	Token     string
}

// NewKeys derives the storage keys from a prefix
func NewKeys(prefix string) Keys {
	return Keys{
		Cart:      prefix + "_cart",
		User:      prefix + "_user",
		PointLogs: prefix + "_point_logs",
		Token:     prefix + "_token",
	}
}

// SessionContainer struct - Application service owning all client session state.
// One instance lives per running client. Every operation runs to completion
// under mu, and persisted fields are written synchronously before it returns.
type SessionContainer struct {
	mu        sync.Mutex
	storage   output.Storage
	scheduler output.Scheduler
	clock     output.Clock
	validator validator.Validator
	opts      Options
	keys      Keys

	cart         *domain.Cart
	user         *domain.UserSession
	token        string
	coupons      []domain.Coupon
	ledger       *domain.Ledger
	notification domain.Notification
	fly          domain.FlySignal
}

// NewSessionContainer func - Creates the container and restores persisted state from storage
func NewSessionContainer(storage output.Storage, scheduler output.Scheduler, clock output.Clock, opts Options) *SessionContainer {
	opts = opts.withDefaults()
	s := &SessionContainer{
		storage:      storage,
		scheduler:    scheduler,
		clock:        clock,
		validator:    validator.New(),
		opts:         opts,
		keys:         NewKeys(opts.KeyPrefix),
		notification: domain.Notification{Severity: domain.SeveritySuccess},
	}
	s.bootstrap()
	return s
}

// Keys returns the storage keys used by the container
func (s *SessionContainer) Keys() Keys {
	return s.keys
}

func (s *SessionContainer) bootstrap() {
	var lines []domain.CartLine
	s.restore(s.keys.Cart, &lines)
	cart, dropped := domain.NewCart(lines)
	s.cart = cart
	if dropped > 0 {
		logrus.Warnf("Dropped invalid cart lines from storage: key=%s, count=%d", s.keys.Cart, dropped)
		s.persist(s.keys.Cart, s.cart.Lines())
	}

	var user *domain.UserSession
	if s.restore(s.keys.User, &user) && user != nil {
		if user.UserID == "" && user.Username == "" {
			s.purge(s.keys.User, "user without id or username")
		} else {
			s.user = user
		}
	}

	var token string
	if s.restore(s.keys.Token, &token) {
		s.token = token
	}

	var entries []domain.PointLogEntry
	s.restore(s.keys.PointLogs, &entries)
	s.ledger = domain.NewLedger(entries, s.opts.LedgerCap)

	logrus.Infof("Session state restored: cartLines=%d, authenticated=%t, pointLogs=%d",
		s.cart.Len(), s.user != nil, len(s.ledger.History()))
}

// restore decodes the value stored under key into dst.
// Missing keys, "undefined" and unparseable values leave dst untouched and
// report false; corrupt values are removed from storage.
func (s *SessionContainer) restore(key string, dst interface{}) bool {
	raw, ok, err := s.storage.GetItem(key)
	if err != nil {
		logrus.Warnf("Failed to read persisted state: key=%s, err=%v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if raw == "" || raw == "undefined" {
		s.purge(key, "undefined value")
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.purge(key, err.Error())
		return false
	}
	return true
}

func (s *SessionContainer) purge(key, reason string) {
	logrus.Warnf("Discarding corrupt persisted state: key=%s, reason=%s", key, reason)
	s.remove(key)
}

// persist writes value under key. Failures are logged and returned; callers
// decide whether the user hears about them.
func (s *SessionContainer) persist(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.Errorf("Failed to encode state: key=%s, err=%v", key, err)
		return err
	}
	if err := s.storage.SetItem(key, string(data)); err != nil {
		logrus.Warnf("Failed to persist state: key=%s, err=%v", key, err)
		return err
	}
	return nil
}

func (s *SessionContainer) remove(key string) {
	if err := s.storage.RemoveItem(key); err != nil {
		logrus.Warnf("Failed to remove persisted state: key=%s, err=%v", key, err)
	}
}

// Snapshot returns a copy of all observable state
func (s *SessionContainer) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Snapshot{
		Cart:          s.cart.Lines(),
		CartCount:     s.cart.Count(),
		TotalPrice:    domain.FormatPrice(s.cart.Total()),
		CurrentUser:   s.user.Clone(),
		Authenticated: s.user != nil,
		Coupons:       s.couponsLocked(),
		PointLogs:     s.ledger.History(),
		Notification:  s.notification,
		FlySignal:     s.flyLocked(),
	}
}
