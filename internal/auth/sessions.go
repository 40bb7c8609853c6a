package auth

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	loginActive int32 = iota
	loginExpired
	loginLoggedOut
)

// LoginSession is one issued token that has not been logged out yet.
type LoginSession struct {
	ID        string
	UserID    uuid.UUID
	ExpiresAt time.Time

	token string
	state atomic.Int32
}

// Token returns the access token, or false once the session is over.
func (s *LoginSession) Token() (string, bool) {
	if s.state.Load() != loginActive {
		return "", false
	}
	return s.token, true
}

// markExpired moves the session from active to expired. Only the first
// caller gets true.
func (s *LoginSession) markExpired() bool {
	return s.state.CompareAndSwap(loginActive, loginExpired)
}

func (s *LoginSession) markLoggedOut() bool {
	return s.state.CompareAndSwap(loginActive, loginLoggedOut)
}

// Sessions tracks the login sessions of this process and performs logout.
type Sessions struct {
	revoked RevocationList

	mu       sync.Mutex
	sessions map[string]*LoginSession
}

func NewSessions(revoked RevocationList) *Sessions {
	return &Sessions{revoked: revoked, sessions: make(map[string]*LoginSession)}
}

// Register records a freshly issued token.
func (m *Sessions) Register(token string, claims *Claims) (*LoginSession, error) {
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	s := &LoginSession{ID: claims.ID, UserID: userID, token: token}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Sessions) Get(id string) (*LoginSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Active returns the sessions still registered, ordered by id.
func (m *Sessions) Active() []*LoginSession {
	m.mu.Lock()
	out := make([]*LoginSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Logout ends an active session on the user's request. Logging out twice is
// not an error.
func (m *Sessions) Logout(ctx context.Context, id string, expiresAt time.Time) error {
	s, ok := m.Get(id)
	if ok && !s.markLoggedOut() {
		return nil
	}
	return m.end(ctx, id, expiresAt)
}

// IsRevoked reports whether the token id was logged out.
func (m *Sessions) IsRevoked(ctx context.Context, id string) (bool, error) {
	return m.revoked.IsRevoked(ctx, id)
}

func (m *Sessions) end(ctx context.Context, id string, expiresAt time.Time) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	return m.revoked.Revoke(ctx, id, expiresAt)
}
