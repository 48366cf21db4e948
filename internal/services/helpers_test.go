package services_test

import (
	"context"
	"time"

	"github.com/wealthflow/wealthflow-backend/internal/config"
	"github.com/wealthflow/wealthflow-backend/internal/models"
	"github.com/wealthflow/wealthflow-backend/internal/seed"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

// stubGenerator scripts the text-generation collaborator. A non-nil
// block channel holds calls open until the test closes it.
type stubGenerator struct {
	reply    string
	ideaJSON string
	err      error
	block    chan struct{}
	calls    int
}

func (g *stubGenerator) wait(ctx context.Context) error {
	if g.block == nil {
		return nil
	}
	select {
	case <-g.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *stubGenerator) CoachReply(ctx context.Context, query, contextText string) (string, error) {
	g.calls++
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func (g *stubGenerator) BusinessIdea(ctx context.Context, niche string, lang models.Language) (string, error) {
	g.calls++
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	if g.err != nil {
		return "", g.err
	}
	return g.ideaJSON, nil
}

func newTestShell() *state.Shell {
	return state.NewShell(seed.User(), seed.Courses(), seed.Posts(),
		state.WithToastTTL(50*time.Millisecond))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		App: config.AppConfig{
			BaseURL:     "https://wealthflow.com",
			ToastTTLms:  50,
			AvatarMaxKB: 512,
		},
	}
}
