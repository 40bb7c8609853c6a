package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// ExpiryNotifier tells a user that their session ended.
type ExpiryNotifier interface {
	NotifySessionExpired(ctx context.Context, userID uuid.UUID) error
}

// ExpiryWatcher periodically looks for login sessions whose token has
// expired and logs them out, once per session.
type ExpiryWatcher struct {
	sessions *Sessions
	notifier ExpiryNotifier
	interval time.Duration
	now      func() time.Time
}

func NewExpiryWatcher(sessions *Sessions, notifier ExpiryNotifier, interval time.Duration) *ExpiryWatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpiryWatcher{sessions: sessions, notifier: notifier, interval: interval, now: time.Now}
}

// Check runs one pass and returns how many sessions it logged out.
func (w *ExpiryWatcher) Check(ctx context.Context) int {
	now := w.now()
	loggedOut := 0

	for _, s := range w.sessions.Active() {
		token, ok := s.Token()
		if !ok {
			continue
		}

		exp, err := DecodeExpiry(token)
		if err != nil {
			log.Warn().Err(err).Str("sessionID", s.ID).Msg("Skipping session with undecodable token")
			continue
		}
		if !Expired(exp, now) {
			continue
		}
		if !s.markExpired() {
			continue
		}

		if err := w.sessions.end(ctx, s.ID, exp); err != nil {
			log.Warn().Err(err).Str("sessionID", s.ID).Msg("Expired session logged out without revocation")
		}
		loggedOut++
		log.Info().Str("sessionID", s.ID).Str("userID", s.UserID.String()).Msg("Session expired, user logged out")

		if w.notifier != nil {
			if err := w.notifier.NotifySessionExpired(ctx, s.UserID); err != nil {
				log.Error().Err(err).Str("userID", s.UserID.String()).Msg("Failed to notify user about expired session")
			}
		}
	}
	return loggedOut
}

// Start runs the watcher until ctx is cancelled.
func (w *ExpiryWatcher) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", w.interval), func() {
		w.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule session expiry check: %w", err)
	}

	c.Start()
	log.Info().Dur("interval", w.interval).Msg("Session expiry watcher started")

	<-ctx.Done()

	<-c.Stop().Done()
	log.Info().Msg("Session expiry watcher stopped")
	return nil
}
