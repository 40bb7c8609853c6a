package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState    = errors.New("operation not allowed in current state")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrNetwork         = errors.New("catalog backend unavailable")
	ErrAuth            = errors.New("authentication failed")
	ErrDecode          = errors.New("malformed session token")
	ErrTestNotFound    = errors.New("test not found")
)

// StateError is returned when an attempt operation is called in a state
// that does not permit it.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: not allowed in state %q", e.Op, e.State)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// IndexError is returned for a question index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
