// internal/services/idea_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

var (
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrGeneratorBusy means a generation is already in flight; the
	// request is a no-op, not queued.
	ErrGeneratorBusy = errors.New("idea generator busy")
	ErrBlankNiche    = errors.New("blank niche")
	// ErrBadSuggestion means the collaborator's payload did not parse
	// into a suggestion; the displayed suggestion stays cleared.
	ErrBadSuggestion = errors.New("malformed idea suggestion")
)

// IdeaService owns the static idea catalogue and single-shot idea
// generation. Generated suggestions are displayed only; they are
// never persisted into the catalogue.
type IdeaService struct {
	shell *state.Shell
	gen   ai.Generator
	ideas []models.Idea

	mu         sync.Mutex
	busy       bool
	epoch      int
	suggestion *models.IdeaSuggestion
}

func NewIdeaService(shell *state.Shell, gen ai.Generator, ideas []models.Idea) *IdeaService {
	return &IdeaService{
		shell: shell,
		gen:   gen,
		ideas: append([]models.Idea(nil), ideas...),
	}
}

// List returns the idea catalogue.
func (s *IdeaService) List() []models.Idea {
	return append([]models.Idea(nil), s.ideas...)
}

// Top returns the dashboard's featured idea.
func (s *IdeaService) Top() (models.Idea, bool) {
	if len(s.ideas) == 0 {
		return models.Idea{}, false
	}
	return s.ideas[0], true
}

// Open selects the idea and enters its detail view.
func (s *IdeaService) Open(id string) (models.Idea, error) {
	for _, idea := range s.ideas {
		if idea.ID == id {
			s.shell.OpenIdeaDetail(idea)
			return idea, nil
		}
	}
	return models.Idea{}, ErrIdeaNotFound
}

// Suggestion returns the currently displayed generated suggestion,
// or nil.
func (s *IdeaService) Suggestion() *models.IdeaSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestion == nil {
		return nil
	}
	sug := *s.suggestion
	return &sug
}

// Busy reports whether a generation is in flight.
func (s *IdeaService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Reset clears the displayed suggestion and discards any in-flight
// generation's eventual result.
func (s *IdeaService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.busy = false
	s.suggestion = nil
}

// Generate runs a single-shot generation for the niche. The previous
// suggestion is cleared before the collaborator is invoked; a payload
// that fails to parse leaves it cleared rather than rendering garbage.
// The busy flag is released on every path.
func (s *IdeaService) Generate(ctx context.Context, niche string) (*models.IdeaSuggestion, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return nil, ErrBlankNiche
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrGeneratorBusy
	}
	s.busy = true
	s.suggestion = nil
	epoch := s.epoch
	s.mu.Unlock()

	raw, err := s.gen.BusinessIdea(ctx, niche, s.shell.Language())

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		// The session moved on while the request was in flight; the
		// late result is discarded, not applied.
		return nil, ctx.Err()
	}
	s.busy = false

	if err != nil {
		logrus.WithError(err).WithField("niche", niche).Warn("Idea generation failed")
		return nil, err
	}

	var suggestion models.IdeaSuggestion
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &suggestion); err != nil {
		logrus.WithError(err).Warn("Idea generation returned malformed JSON")
		return nil, ErrBadSuggestion
	}
	if suggestion.Title == "" {
		logrus.Warn("Idea generation returned an empty suggestion")
		return nil, ErrBadSuggestion
	}

	s.suggestion = &suggestion
	sug := suggestion
	return &sug, nil
}
