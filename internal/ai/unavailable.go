// internal/ai/unavailable.go
package ai

import (
	"context"
	"errors"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

// ErrUnavailable means no generation backend is configured.
var ErrUnavailable = errors.New("text generation is not configured")

// Unavailable stands in for the collaborator when no API key is
// configured, so the rest of the application still boots in local
// development. Every call fails and callers fall back the way they
// would for any collaborator failure.
type Unavailable struct{}

var _ Generator = Unavailable{}

func (Unavailable) CoachReply(ctx context.Context, query, contextText string) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) BusinessIdea(ctx context.Context, niche string, lang models.Language) (string, error) {
	return "", ErrUnavailable
}
