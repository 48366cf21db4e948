// internal/session/coach.go

// Package session holds the assistant conversation state: an ordered,
// append-only transcript, a busy gate allowing one outstanding request,
// and an epoch counter that lets a late reply be discarded after the
// session was reset underneath it.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/utils"
)

// contextWindow is how many prior turns are rendered into the
// collaborator's context.
const contextWindow = 4

var (
	// ErrBusy means a request is already outstanding; the submit is a
	// no-op, not a queued request.
	ErrBusy = errors.New("session busy")
	// ErrBlankMessage means the draft was empty or whitespace.
	ErrBlankMessage = errors.New("blank message")
)

type Turn struct {
	ID   string          `json:"id"`
	Role models.TurnRole `json:"role"`
	Text string          `json:"text"`
}

type Session struct {
	mu    sync.Mutex
	turns []Turn
	busy  bool
	epoch int
}

// New starts a session with the assistant's greeting as the sole turn.
func New(greeting string) *Session {
	return &Session{
		turns: []Turn{{ID: "welcome", Role: models.TurnRoleAssistant, Text: greeting}},
	}
}

// Turns returns a copy of the transcript, oldest first.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.turns...)
}

// Busy reports whether a request is outstanding.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Begin appends a user turn and takes the busy gate. It returns the
// rendered context window (built from the turns preceding the new one,
// oldest first) and the epoch to hand back to Finish. Submitting while
// busy or with a blank draft is a no-op.
func (s *Session) Begin(text string) (contextText string, epoch int, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0, ErrBlankMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return "", 0, ErrBusy
	}

	window := s.turns
	if len(window) > contextWindow {
		window = window[len(window)-contextWindow:]
	}
	lines := make([]string, 0, len(window))
	for _, t := range window {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Text))
	}

	s.turns = append(s.turns, Turn{ID: utils.NewID(), Role: models.TurnRoleUser, Text: text})
	s.busy = true

	return strings.Join(lines, "\n"), s.epoch, nil
}

// Finish appends the assistant's reply and releases the busy gate. A
// reply carrying a stale epoch belongs to a session that was reset
// while the request was in flight; it is discarded, not applied.
func (s *Session) Finish(epoch int, reply string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return false
	}

	s.turns = append(s.turns, Turn{ID: utils.NewID(), Role: models.TurnRoleAssistant, Text: reply})
	s.busy = false
	return true
}

// SetGreeting swaps the greeting text when the display language
// changes. The swap only happens while the greeting is the sole turn;
// once a conversation exists, language changes never touch the
// transcript.
func (s *Session) SetGreeting(greeting string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.turns) != 1 {
		return false
	}
	s.turns[0] = Turn{ID: "welcome", Role: models.TurnRoleAssistant, Text: greeting}
	return true
}

// Reset clears the transcript back to the greeting and bumps the
// epoch so any in-flight reply is discarded on arrival.
func (s *Session) Reset(greeting string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.busy = false
	s.turns = []Turn{{ID: "welcome", Role: models.TurnRoleAssistant, Text: greeting}}
}
