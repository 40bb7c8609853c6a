package session

import (
	"sort"
	"sync"
)

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Store keeps one Session per owner key. Each session is only ever touched
// under its own lock, so an owner's attempt stays single-threaded even when
// requests arrive concurrently.
type Store struct {
	mu       sync.Mutex
	clock    Clock
	sessions map[string]*entry
}

func NewStore(clock Clock) *Store {
	return &Store{clock: clock, sessions: make(map[string]*entry)}
}

func (st *Store) get(key string) *entry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[key]
	if !ok {
		e = &entry{session: New(st.clock)}
		st.sessions[key] = e
	}
	return e
}

// With runs fn with exclusive access to the session of key, creating an idle
// session on first use.
func (st *Store) With(key string, fn func(s *Session) error) error {
	e := st.get(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Each visits every session in key order, one at a time under its lock.
func (st *Store) Each(fn func(key string, s *Session)) {
	st.mu.Lock()
	keys := make([]string, 0, len(st.sessions))
	entries := make(map[string]*entry, len(st.sessions))
	for k, e := range st.sessions {
		keys = append(keys, k)
		entries[k] = e
	}
	st.mu.Unlock()

	sort.Strings(keys)
	for _, k := range keys {
		e := entries[k]
		e.mu.Lock()
		fn(k, e.session)
		e.mu.Unlock()
	}
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
