package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/cache"
)

// SessionStore owns the server-side cursor of in-progress interview sessions.
// Sessions are TTL-bounded; an expired session means the attempt is abandoned.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, interviewID string) (*models.Session, error)
	Delete(ctx context.Context, interviewID string) error
	// ReserveAnswer marks the (interview, index) pair as submitted. It returns
	// false when the pair was already reserved, which lets the caller treat a
	// rapid double-submit as an idempotent no-op.
	ReserveAnswer(ctx context.Context, interviewID string, index int) (bool, error)
	// ReleaseAnswer undoes a reservation after a failed write so the client
	// can retry the same index.
	ReleaseAnswer(ctx context.Context, interviewID string, index int) error
}

// redisSessionStore implements SessionStore on top of the cache.Cache
// abstraction so tests can substitute an in-memory cache.
type redisSessionStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSessionStore creates a SessionStore backed by the given cache.
func NewRedisSessionStore(c cache.Cache, ttl time.Duration) SessionStore {
	return &redisSessionStore{cache: c, ttl: ttl}
}

func sessionKey(interviewID string) string {
	return "session:" + interviewID
}

func answerKey(interviewID string, index int) string {
	return fmt.Sprintf("session:%s:answer:%d", interviewID, index)
}

// Save serializes the session as JSON and resets its TTL.
func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session for interview '%s': %w", session.InterviewID, err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.InterviewID), payload, s.ttl); err != nil {
		return fmt.Errorf("failed to store session for interview '%s': %w", session.InterviewID, err)
	}
	return nil
}

// Get retrieves a session; a missing or expired session yields ErrNotFound.
func (s *redisSessionStore) Get(ctx context.Context, interviewID string) (*models.Session, error) {
	raw, err := s.cache.Get(ctx, sessionKey(interviewID))
	if err != nil {
		return nil, fmt.Errorf("failed to read session for interview '%s': %w", interviewID, err)
	}
	if raw == "" {
		return nil, fmt.Errorf("session for interview '%s' not found: %w", interviewID, ErrNotFound)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session for interview '%s': %w", interviewID, err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *redisSessionStore) Delete(ctx context.Context, interviewID string) error {
	return s.cache.Delete(ctx, sessionKey(interviewID))
}

// ReserveAnswer uses SetNX so that only the first of two concurrent submits
// for the same index wins.
func (s *redisSessionStore) ReserveAnswer(ctx context.Context, interviewID string, index int) (bool, error) {
	ok, err := s.cache.SetNX(ctx, answerKey(interviewID, index), "1", s.ttl)
	if err != nil {
		return false, fmt.Errorf("failed to reserve answer %d for interview '%s': %w", index, interviewID, err)
	}
	return ok, nil
}

// ReleaseAnswer drops the reservation for an index.
func (s *redisSessionStore) ReleaseAnswer(ctx context.Context, interviewID string, index int) error {
	return s.cache.Delete(ctx, answerKey(interviewID, index))
}
