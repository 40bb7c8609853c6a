// Package catalog holds the list of mock tests a student may start.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lshigami/mockprep/internal/domain"
)

// Source fetches every mock test visible to the holder of token. Failures
// should wrap domain.ErrAuth or domain.ErrNetwork.
type Source interface {
	FetchAllMockTests(ctx context.Context, token string) ([]domain.Test, error)
}

// Catalog keeps the last successfully loaded list. It never caches: every
// Load goes to the source.
type Catalog struct {
	src Source

	mu    sync.RWMutex
	tests []domain.Test
}

func New(src Source) *Catalog {
	return &Catalog{src: src}
}

// Load fetches tests from the source and keeps the published ones. On any
// failure, including cancellation, the held list is left as it was.
func (c *Catalog) Load(ctx context.Context, token string) ([]domain.Test, error) {
	fetched, err := c.src.FetchAllMockTests(ctx, token)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if errors.Is(err, domain.ErrAuth) || errors.Is(err, domain.ErrNetwork) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	published := make([]domain.Test, 0, len(fetched))
	for _, t := range fetched {
		if t.IsPublished() {
			published = append(published, t)
		}
	}

	c.mu.Lock()
	c.tests = published
	c.mu.Unlock()

	return c.Tests(), nil
}

// Tests returns a copy of the held list.
func (c *Catalog) Tests() []domain.Test {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Test, len(c.tests))
	copy(out, c.tests)
	return out
}

// Find returns the held test with id.
func (c *Catalog) Find(id uint) (domain.Test, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tests {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Test{}, false
}

// Clear empties the held list. Nothing is sent to the source.
func (c *Catalog) Clear() {
	c.mu.Lock()
	c.tests = nil
	c.mu.Unlock()
}
