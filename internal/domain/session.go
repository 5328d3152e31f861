package domain

// GenericUserLabel is used in greetings when a user has neither display name nor username
const GenericUserLabel = "customer"

// DefaultMaxPersistedFieldBytes is the size above which string fields are left out of the stored projection
const DefaultMaxPersistedFieldBytes = 100 * 1024

// UserSession represents the single authenticated user of this client
type UserSession struct {
	UserID      string         `json:"id,omitempty"`
	Username    string         `json:"username,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	Role        string         `json:"role,omitempty"`
	Points      int            `json:"points"`
	Avatar      string         `json:"avatar,omitempty"`
	Profile     map[string]any `json:"profile,omitempty"`
}

// NewUserSession creates a session from a login record.
// Points default to 0 when the record carries none.
func NewUserSession(record UserRecord) *UserSession {
	session := &UserSession{
		UserID:      record.UserID,
		Username:    record.Username,
		DisplayName: record.DisplayName,
		Role:        record.Role,
		Avatar:      record.Avatar,
		Profile:     cloneProfile(record.Profile),
	}
	if record.Points != nil {
		session.Points = *record.Points
	}
	return session
}

// Name returns displayName, falling back to username and then to GenericUserLabel
func (s *UserSession) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	if s.Username != "" {
		return s.Username
	}
	return GenericUserLabel
}

// Clone returns a deep copy of the session
func (s *UserSession) Clone() *UserSession {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Profile = cloneProfile(s.Profile)
	return &clone
}

// Projection returns the copy of the session meant for durable storage.
// String fields longer than maxFieldBytes are omitted.
func (s *UserSession) Projection(maxFieldBytes int) *UserSession {
	if maxFieldBytes <= 0 {
		maxFieldBytes = DefaultMaxPersistedFieldBytes
	}
	projection := s.Clone()
	if len(projection.Avatar) > maxFieldBytes {
		projection.Avatar = ""
	}
	for key, value := range projection.Profile {
		if str, ok := value.(string); ok && len(str) > maxFieldBytes {
			delete(projection.Profile, key)
		}
	}
	if len(projection.Profile) == 0 {
		projection.Profile = nil
	}
	return projection
}

func cloneProfile(profile map[string]any) map[string]any {
	if profile == nil {
		return nil
	}
	clone := make(map[string]any, len(profile))
	for k, v := range profile {
		clone[k] = v
	}
	return clone
}
