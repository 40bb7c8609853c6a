package session

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/mockprep/internal/domain"
)

// Expired describes an attempt that a tick moved to Expired.
type Expired struct {
	Key     string
	Attempt domain.Attempt
	Test    domain.Test
}

// Ticker calls Tick on every session in a Store at a fixed interval.
type Ticker struct {
	store    *Store
	interval time.Duration
	onExpire func(ctx context.Context, e Expired)
}

// NewTicker returns a ticker over store. onExpire, if set, is called once
// for every attempt a tick expires, after the session lock is released.
func NewTicker(store *Store, interval time.Duration, onExpire func(ctx context.Context, e Expired)) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{store: store, interval: interval, onExpire: onExpire}
}

// TickAll ticks every session once and returns the attempts that expired.
func (t *Ticker) TickAll(ctx context.Context) []Expired {
	var expired []Expired
	t.store.Each(func(key string, s *Session) {
		if !s.Tick() {
			return
		}
		a, _ := s.Attempt()
		expired = append(expired, Expired{Key: key, Attempt: a, Test: s.Test()})
	})

	for _, e := range expired {
		log.Info().Str("owner", e.Key).Uint("testID", e.Attempt.TestID).Msg("Attempt expired")
		if t.onExpire != nil {
			t.onExpire(ctx, e)
		}
	}
	return expired
}

// Start runs the ticker until ctx is cancelled.
func (t *Ticker) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", t.interval), func() {
		t.TickAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule attempt ticker: %w", err)
	}

	c.Start()
	log.Info().Dur("interval", t.interval).Msg("Attempt ticker started")

	<-ctx.Done()

	<-c.Stop().Done()
	log.Info().Msg("Attempt ticker stopped")
	return nil
}
