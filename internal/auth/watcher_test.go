package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lshigami/mockprep/internal/domain"
)

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	calls   int
	err     error
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: make(map[string]time.Time)}
}

func (m *memoryRevocations) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.revoked[tokenID] = until
	return nil
}

func (m *memoryRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	users []uuid.UUID
}

func (n *recordingNotifier) NotifySessionExpired(ctx context.Context, userID uuid.UUID) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, userID)
	return nil
}

func issueAt(t *testing.T, now time.Time, ttl time.Duration) (string, *Claims) {
	t.Helper()
	tokens := NewTokens("secret", ttl)
	tokens.now = func() time.Time { return now }
	signed, claims, err := tokens.Issue(uuid.New(), "s@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return signed, claims
}

func TestWatcherLogsOutExpiredSessionOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	revocations := newMemoryRevocations()
	sessions := NewSessions(revocations)
	notifier := &recordingNotifier{}

	expiredToken, expiredClaims := issueAt(t, now.Add(-2*time.Hour), time.Hour)
	liveToken, liveClaims := issueAt(t, now, time.Hour)
	if _, err := sessions.Register(expiredToken, expiredClaims); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := sessions.Register(liveToken, liveClaims); err != nil {
		t.Fatalf("Register: %v", err)
	}

	w := NewExpiryWatcher(sessions, notifier, time.Minute)
	w.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		w.Check(context.Background())
	}

	if len(notifier.users) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifier.users))
	}
	wantUser, _ := expiredClaims.UserID()
	if notifier.users[0] != wantUser {
		t.Fatalf("notified %v, want %v", notifier.users[0], wantUser)
	}
	if _, ok := sessions.Get(expiredClaims.ID); ok {
		t.Fatal("expired session still registered")
	}
	if _, ok := sessions.Get(liveClaims.ID); !ok {
		t.Fatal("live session was removed")
	}
	if revocations.calls != 1 {
		t.Fatalf("revoke called %d times, want 1", revocations.calls)
	}
}

func TestWatcherConcurrentChecksNotifyOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sessions := NewSessions(newMemoryRevocations())
	notifier := &recordingNotifier{}

	token, claims := issueAt(t, now.Add(-2*time.Hour), time.Hour)
	_, _ = sessions.Register(token, claims)

	w := NewExpiryWatcher(sessions, notifier, time.Minute)
	w.now = func() time.Time { return now }

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Check(context.Background())
		}()
	}
	wg.Wait()

	if len(notifier.users) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifier.users))
	}
}

func TestWatcherSkipsMalformedToken(t *testing.T) {
	now := time.Now()
	revocations := newMemoryRevocations()
	sessions := NewSessions(revocations)
	notifier := &recordingNotifier{}

	userID := uuid.New()
	bad := &Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "bad", Subject: userID.String()}}
	if _, err := sessions.Register("not.a.jwt", bad); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, claims := issueAt(t, now.Add(-2*time.Hour), time.Hour)
	_, _ = sessions.Register(token, claims)

	w := NewExpiryWatcher(sessions, notifier, time.Minute)
	w.now = func() time.Time { return now }

	if n := w.Check(context.Background()); n != 1 {
		t.Fatalf("Check logged out %d sessions, want 1", n)
	}
	if _, ok := sessions.Get("bad"); !ok {
		t.Fatal("session with malformed token was logged out")
	}
	if len(notifier.users) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifier.users))
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	now := time.Now()
	revocations := newMemoryRevocations()
	sessions := NewSessions(revocations)
	token, claims := issueAt(t, now, time.Hour)
	s, _ := sessions.Register(token, claims)

	for i := 0; i < 2; i++ {
		if err := sessions.Logout(context.Background(), claims.ID, claims.ExpiresAt.Time); err != nil {
			t.Fatalf("Logout #%d: %v", i+1, err)
		}
	}
	if _, ok := s.Token(); ok {
		t.Fatal("logged-out session still hands out its token")
	}
	revoked, _ := sessions.IsRevoked(context.Background(), claims.ID)
	if !revoked {
		t.Fatal("token not revoked after logout")
	}

	// A logged-out session is never reported as expired.
	notifier := &recordingNotifier{}
	w := NewExpiryWatcher(sessions, notifier, time.Minute)
	w.now = func() time.Time { return now.Add(2 * time.Hour) }
	w.Check(context.Background())
	if len(notifier.users) != 0 {
		t.Fatal("watcher notified about a logged-out session")
	}
}

func TestAuthenticator(t *testing.T) {
	revocations := newMemoryRevocations()
	sessions := NewSessions(revocations)
	tokens := NewTokens("secret", time.Hour)
	authn := NewAuthenticator(tokens, sessions)

	signed, claims, _ := tokens.Issue(uuid.New(), "a@example.com")
	_, _ = sessions.Register(signed, claims)

	if _, err := authn.Authenticate(context.Background(), signed); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	_ = sessions.Logout(context.Background(), claims.ID, claims.ExpiresAt.Time)
	if _, err := authn.Authenticate(context.Background(), signed); !errors.Is(err, domain.ErrAuth) {
		t.Fatalf("err = %v, want ErrAuth after logout", err)
	}
}
