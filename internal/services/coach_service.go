// internal/services/coach_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/i18n"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/session"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

// CoachService owns the assistant session and its collaborator calls.
type CoachService struct {
	shell   *state.Shell
	gen     ai.Generator
	session *session.Session
}

func NewCoachService(shell *state.Shell, gen ai.Generator) *CoachService {
	lang := string(shell.Language())
	return &CoachService{
		shell:   shell,
		gen:     gen,
		session: session.New(i18n.T(lang, i18n.KeyCoachIntro)),
	}
}

// Transcript returns the conversation, oldest first, plus the busy
// flag.
func (s *CoachService) Transcript() ([]session.Turn, bool) {
	return s.session.Turns(), s.session.Busy()
}

// Submit runs one coaching turn: append the user's message, invoke
// the collaborator with a bounded context window and a language
// directive, and append the reply. Submitting while a request is
// outstanding is a no-op. A collaborator failure turns into the
// apology string; it never aborts the transition.
func (s *CoachService) Submit(ctx context.Context, text string) ([]session.Turn, error) {
	contextText, epoch, err := s.session.Begin(text)
	if err != nil {
		return nil, err
	}

	lang := s.shell.Language()
	reply, genErr := s.gen.CoachReply(ctx, text, contextText+"\n"+ai.LanguageDirective(lang))
	if genErr != nil {
		logrus.WithError(genErr).Warn("Coach reply generation failed")
		reply = i18n.T(string(lang), i18n.KeyCoachFallback)
	}

	s.session.Finish(epoch, reply)
	return s.session.Turns(), nil
}

// SyncLanguage swaps the greeting after a language change, but only
// while the greeting is still the sole turn.
func (s *CoachService) SyncLanguage(lang models.Language) {
	s.session.SetGreeting(i18n.T(string(lang), i18n.KeyCoachIntro))
}

// ResetSession clears the conversation back to the greeting in the
// active language. Any in-flight reply is discarded when it lands.
func (s *CoachService) ResetSession() {
	s.session.Reset(i18n.T(string(s.shell.Language()), i18n.KeyCoachIntro))
}
