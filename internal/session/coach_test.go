package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

func TestNewSessionStartsWithGreeting(t *testing.T) {
	s := New("hello")

	turns := s.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, models.TurnRoleAssistant, turns[0].Role)
	assert.Equal(t, "hello", turns[0].Text)
	assert.False(t, s.Busy())
}

func TestBeginAppendsUserTurnAndSetsBusy(t *testing.T) {
	s := New("hello")

	contextText, epoch, err := s.Begin("Hi")
	require.NoError(t, err)
	assert.Equal(t, 0, epoch)
	assert.Equal(t, "assistant: hello", contextText)
	assert.True(t, s.Busy())

	turns := s.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, models.TurnRoleUser, turns[1].Role)
	assert.Equal(t, "Hi", turns[1].Text)
}

func TestBeginRejectsBlankDraft(t *testing.T) {
	s := New("hello")

	for _, draft := range []string{"", "   ", "\n\t"} {
		_, _, err := s.Begin(draft)
		assert.ErrorIs(t, err, ErrBlankMessage)
	}
	assert.Len(t, s.Turns(), 1)
	assert.False(t, s.Busy())
}

func TestBeginWhileBusyIsNoop(t *testing.T) {
	s := New("hello")

	_, _, err := s.Begin("first")
	require.NoError(t, err)

	_, _, err = s.Begin("second")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Len(t, s.Turns(), 2, "transcript unchanged by busy submit")
}

func TestFinishAppendsReplyAndClearsBusy(t *testing.T) {
	s := New("hello")

	_, epoch, err := s.Begin("Hi")
	require.NoError(t, err)

	require.True(t, s.Finish(epoch, "Welcome!"))

	turns := s.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, models.TurnRoleAssistant, turns[2].Role)
	assert.Equal(t, "Welcome!", turns[2].Text)
	assert.False(t, s.Busy())
}

func TestContextWindowIsBoundedAndOldestFirst(t *testing.T) {
	s := New("greeting")

	exchanges := []struct{ question, answer string }{
		{"q1", "a1"},
		{"q2", "a2"},
		{"q3", "a3"},
	}
	for _, e := range exchanges {
		_, epoch, err := s.Begin(e.question)
		require.NoError(t, err)
		require.True(t, s.Finish(epoch, e.answer))
	}

	contextText, epoch, err := s.Begin("q4")
	require.NoError(t, err)
	assert.Equal(t, "user: q2\nassistant: a2\nuser: q3\nassistant: a3", contextText)
	s.Finish(epoch, "a4")
}

func TestSetGreetingOnlyWhileSoleTurn(t *testing.T) {
	s := New("hello")

	require.True(t, s.SetGreeting("你好"))
	turns := s.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "你好", turns[0].Text)

	_, epoch, err := s.Begin("Hi")
	require.NoError(t, err)
	s.Finish(epoch, "Welcome!")

	before := s.Turns()
	assert.False(t, s.SetGreeting("hello again"))
	assert.Equal(t, before, s.Turns(), "language changes never touch a started conversation")
}

func TestResetDiscardsInFlightReply(t *testing.T) {
	s := New("hello")

	_, epoch, err := s.Begin("Hi")
	require.NoError(t, err)

	s.Reset("fresh greeting")

	assert.False(t, s.Finish(epoch, "late reply"), "stale epoch must be discarded")

	turns := s.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "fresh greeting", turns[0].Text)
	assert.False(t, s.Busy())
}
