package entity

import "time"

// Session is the server-side state of one browser session.
// It caches the resolved User so that persistence is consulted at most once
// per session, and keeps the authentication between requests.
type Session struct {
	ID             string
	User           *User
	Authentication Authentication
	OAuthState     string // Nonce of a pending provider login.
	ExpiresAt      time.Time

	dirty       bool
	renew       bool
	invalidated bool
}

// NewSession creates an empty session that expires after ttl.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		ExpiresAt: now.Add(ttl),
	}
}

// Identity returns the cached user, or nil when nothing was resolved yet.
func (s *Session) Identity() *User {
	return s.User
}

// SetIdentity caches the resolved user for the rest of the session.
func (s *Session) SetIdentity(user *User) {
	s.User = user
	s.dirty = true
}

// SetAuthentication stores the authentication for subsequent requests.
func (s *Session) SetAuthentication(authentication Authentication) {
	s.Authentication = authentication
	s.dirty = true
}

// SetOAuthState records the nonce of a pending provider login.
func (s *Session) SetOAuthState(nonce string) {
	s.OAuthState = nonce
	s.dirty = true
}

// ConsumeOAuthState returns the pending nonce and clears it.
func (s *Session) ConsumeOAuthState() string {
	nonce := s.OAuthState
	if nonce != "" {
		s.OAuthState = ""
		s.dirty = true
	}

	return nonce
}

// RenewID asks the session store to move the session under a fresh id.
func (s *Session) RenewID() {
	s.renew = true
	s.dirty = true
}

// Invalidate ends the session; the store drops it when the request completes.
func (s *Session) Invalidate() {
	s.User = nil
	s.Authentication = nil
	s.OAuthState = ""
	s.invalidated = true
}

// Touch extends the expiry; sessions slide while they are in use.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.ExpiresAt = now.Add(ttl)
	s.dirty = true
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsDirty reports whether the session changed since it was loaded.
func (s *Session) IsDirty() bool {
	return s.dirty
}

// NeedsRenewal reports whether RenewID was requested.
func (s *Session) NeedsRenewal() bool {
	return s.renew
}

// IsInvalidated reports whether Invalidate was called.
func (s *Session) IsInvalidated() bool {
	return s.invalidated
}

// MarkClean resets the change tracking after the session was persisted.
func (s *Session) MarkClean() {
	s.dirty = false
	s.renew = false
}
