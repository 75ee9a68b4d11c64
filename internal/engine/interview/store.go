package interview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in process memory, keyed by id, with TTL expiry.
// Stored values are immutable; updates replace them wholesale.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]Session
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// NewStore creates an empty store. ttl <= 0 disables expiry and
// maxSessions <= 0 disables the capacity bound.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return &Store{
		sessions:    make(map[string]Session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Start creates a session for jd and stores it under a fresh uuid.
func (st *Store) Start(jd string, maxQuestions int) Session {
	sess := NewSession(uuid.NewString(), jd, maxQuestions, st.now())

	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictLocked()
	st.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	if !ok || st.expired(sess, st.now()) {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// Update applies fn to the current session value and stores the result.
// fn receives the store clock reading. The stored session is left unchanged
// when fn fails.
func (st *Store) Update(id string, fn func(sess Session, now time.Time) (Session, error)) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	sess, ok := st.sessions[id]
	if !ok || st.expired(sess, now) {
		return Session{}, ErrSessionNotFound
	}
	next, err := fn(sess, now)
	if err != nil {
		return sess, err
	}
	st.sessions[id] = next
	return next, nil
}

// Len returns the number of stored sessions, expired ones included.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweepLocked(st.now())
}

// RunCleanup sweeps expired sessions every interval until ctx is done.
// onSweep, if set, receives the number of sessions removed by each non-empty sweep.
func (st *Store) RunCleanup(ctx context.Context, interval time.Duration, onSweep func(n int)) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				slog.Debug("sessions: expired removed", slog.Int("count", n))
				if onSweep != nil {
					onSweep(n)
				}
			}
		}
	}
}

func (st *Store) expired(sess Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(sess.UpdatedAt) > st.ttl
}

func (st *Store) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range st.sessions {
		if st.expired(sess, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// evictLocked makes room for one more session: expired first, then the
// least recently updated.
func (st *Store) evictLocked() {
	if st.maxSessions <= 0 || len(st.sessions) < st.maxSessions {
		return
	}
	st.sweepLocked(st.now())
	for len(st.sessions) >= st.maxSessions {
		var oldestID string
		var oldest time.Time
		for id, sess := range st.sessions {
			if oldestID == "" || sess.UpdatedAt.Before(oldest) {
				oldestID, oldest = id, sess.UpdatedAt
			}
		}
		delete(st.sessions, oldestID)
		slog.Debug("sessions: evicted oldest", slog.String("id", oldestID))
	}
}

// Answer stores answer for question idx of session id.
func (st *Store) Answer(id string, idx int, answer string) (Session, error) {
	return st.Update(id, func(sess Session, now time.Time) (Session, error) {
		return sess.WithAnswer(idx, answer, now)
	})
}

// Analyze rebuilds the report of session id, replacing any previous one.
func (st *Store) Analyze(id string) (Session, error) {
	return st.Update(id, func(sess Session, now time.Time) (Session, error) {
		return sess.Analyze(now), nil
	})
}
