package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthflow/wealthflow-backend/internal/seed"
	"github.com/wealthflow/wealthflow-backend/internal/services"
	"github.com/wealthflow/wealthflow-backend/internal/state"
)

func newIdeaService(gen *stubGenerator) (*services.IdeaService, *state.Shell) {
	shell := newTestShell()
	return services.NewIdeaService(shell, gen, seed.Ideas()), shell
}

func TestIdeaListAndTop(t *testing.T) {
	svc, _ := newIdeaService(&stubGenerator{})

	ideas := svc.List()
	require.NotEmpty(t, ideas)

	top, ok := svc.Top()
	require.True(t, ok)
	assert.Equal(t, ideas[0].ID, top.ID)
}

func TestIdeaOpenSelectsDetail(t *testing.T) {
	svc, shell := newIdeaService(&stubGenerator{})

	id := svc.List()[0].ID
	idea, err := svc.Open(id)
	require.NoError(t, err)

	snap := shell.Snapshot()
	assert.Equal(t, state.ViewIdeaDetail, snap.View)
	require.NotNil(t, snap.Idea)
	assert.Equal(t, idea.ID, snap.Idea.ID)

	_, err = svc.Open("missing")
	assert.ErrorIs(t, err, services.ErrIdeaNotFound)
}

func TestGenerateParsesSuggestion(t *testing.T) {
	gen := &stubGenerator{ideaJSON: `{"title":"Pet Portraits","description":"Sell AI pet portraits","difficulty":"Low","firstStep":"Make 5 samples"}`}
	svc, _ := newIdeaService(gen)

	suggestion, err := svc.Generate(context.Background(), "pets")
	require.NoError(t, err)

	assert.Equal(t, "Pet Portraits", suggestion.Title)
	assert.Equal(t, "Make 5 samples", suggestion.FirstStep)
	assert.False(t, svc.Busy())
	require.NotNil(t, svc.Suggestion())
	assert.Equal(t, "Pet Portraits", svc.Suggestion().Title)
}

func TestGenerateStripsCodeFences(t *testing.T) {
	gen := &stubGenerator{ideaJSON: "```json\n{\"title\":\"T\",\"description\":\"d\",\"difficulty\":\"Low\",\"firstStep\":\"s\"}\n```"}
	svc, _ := newIdeaService(gen)

	suggestion, err := svc.Generate(context.Background(), "niche")
	require.NoError(t, err)
	assert.Equal(t, "T", suggestion.Title)
}

func TestGenerateMalformedPayloadClearsSuggestion(t *testing.T) {
	svc, _ := newIdeaService(&stubGenerator{ideaJSON: `{"title":"Good","description":"d","difficulty":"Low","firstStep":"s"}`})

	_, err := svc.Generate(context.Background(), "niche")
	require.NoError(t, err)
	require.NotNil(t, svc.Suggestion())

	// A run returning garbage must not render a partial parse.
	svcBad, _ := newIdeaService(&stubGenerator{ideaJSON: "not json at all"})
	_, err = svcBad.Generate(context.Background(), "niche")
	assert.ErrorIs(t, err, services.ErrBadSuggestion)
	assert.Nil(t, svcBad.Suggestion())
	assert.False(t, svcBad.Busy(), "busy cleared on every path")
}

func TestGenerateEmptyObjectPayload(t *testing.T) {
	// The collaborator contract substitutes "{}" on internal failure.
	svc, _ := newIdeaService(&stubGenerator{ideaJSON: "{}"})

	_, err := svc.Generate(context.Background(), "niche")
	assert.ErrorIs(t, err, services.ErrBadSuggestion)
	assert.Nil(t, svc.Suggestion())
	assert.False(t, svc.Busy())
}

func TestGenerateCollaboratorFailure(t *testing.T) {
	svc, _ := newIdeaService(&stubGenerator{err: errors.New("api down")})

	_, err := svc.Generate(context.Background(), "niche")
	assert.Error(t, err)
	assert.Nil(t, svc.Suggestion())
	assert.False(t, svc.Busy())
}

func TestGenerateBlankNicheIsNoop(t *testing.T) {
	gen := &stubGenerator{ideaJSON: "{}"}
	svc, _ := newIdeaService(gen)

	_, err := svc.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, services.ErrBlankNiche)
	assert.Zero(t, gen.calls, "collaborator never invoked")
}

func TestGenerateResetDiscardsLateResult(t *testing.T) {
	gen := &stubGenerator{
		ideaJSON: `{"title":"Late","description":"d","difficulty":"Low","firstStep":"s"}`,
		block:    make(chan struct{}),
	}
	svc, _ := newIdeaService(gen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Generate(context.Background(), "niche")
	}()

	require.Eventually(t, svc.Busy, time.Second, time.Millisecond, "generation in flight")

	// The session moves on before the collaborator resolves.
	svc.Reset()
	close(gen.block)
	<-done

	assert.Nil(t, svc.Suggestion(), "late result must be discarded, not applied")
	assert.False(t, svc.Busy())
}
