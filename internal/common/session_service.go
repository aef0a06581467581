package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventcrew/rollcall/internal/constants"
)

// SessionData is what a session cookie resolves to.
type SessionData struct {
	SessionID   string    `json:"session_id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionService manages login sessions behind the cache interface, so the
// same code serves both the in-memory and Redis backends.
type SessionService struct {
	cache CacheInterface
	ttl   time.Duration
}

func NewSessionService(cache CacheInterface, ttl time.Duration) *SessionService {
	return &SessionService{
		cache: cache,
		ttl:   ttl,
	}
}

// CreateSession mints a new opaque session ID for a logged-in user.
func (s *SessionService) CreateSession(userID int64, username, displayName string) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := SessionData{
		SessionID:   sessionID,
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	s.cache.Set(sessionKey(sessionID), session, s.ttl)
	return sessionID, nil
}

// GetSession resolves a session ID. Absent or expired sessions return
// (nil, nil); the caller turns that into a 401.
func (s *SessionService) GetSession(sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(sessionKey(sessionID))
	if !found {
		return nil, nil
	}

	var session SessionData
	switch v := val.(type) {
	case SessionData:
		session = v
	case json.RawMessage:
		// Redis backend round-trips through JSON
		if err := json.Unmarshal(v, &session); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
	default:
		return nil, fmt.Errorf("unexpected session type %T", val)
	}

	if time.Now().After(session.ExpiresAt) {
		s.cache.Delete(sessionKey(sessionID))
		return nil, nil
	}

	return &session, nil
}

// DestroySession removes a session on logout. Destroying an unknown session
// is a no-op.
func (s *SessionService) DestroySession(sessionID string) {
	s.cache.Delete(sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}
