package session

import (
	"fmt"

	"github.com/lshigami/mockprep/internal/domain"
)

// Command is one operation on a Session. Each variant carries only the
// fields its operation needs.
type Command interface {
	apply(s *Session) error
}

type Start struct {
	Test domain.Test
}

type Answer struct {
	QuestionIndex int
	Value         string
}

type Submit struct{}

// Tick asks the session to expire the attempt if its budget is used up.
type Tick struct{}

type Reset struct{}

func (c Start) apply(s *Session) error  { return s.Start(c.Test) }
func (c Answer) apply(s *Session) error { return s.Answer(c.QuestionIndex, c.Value) }
func (Submit) apply(s *Session) error   { return s.Submit() }
func (Tick) apply(s *Session) error     { s.Tick(); return nil }
func (Reset) apply(s *Session) error    { return s.Reset() }

// Apply runs cmd against the session.
func (s *Session) Apply(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("apply: nil command")
	}
	return cmd.apply(s)
}
