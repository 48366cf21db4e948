// internal/ai/generator.go

// Package ai wraps the external text-generation collaborator behind a
// narrow interface. The boundary is latency-bearing and failure-prone;
// callers receive an explicit error instead of a baked-in fallback
// string and decide the user-visible handling themselves.
package ai

import (
	"context"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

type Generator interface {
	// CoachReply answers a coaching question given a rendered
	// conversation context.
	CoachReply(ctx context.Context, query, contextText string) (string, error)

	// BusinessIdea returns a JSON-encoded idea suggestion
	// ({title, description, difficulty, firstStep}) for the niche.
	BusinessIdea(ctx context.Context, niche string, lang models.Language) (string, error)
}

// LanguageDirective is the instruction appended to coach context so
// replies match the active display language.
func LanguageDirective(lang models.Language) string {
	if lang == models.LanguageChinese {
		return "Please respond in Chinese."
	}
	return "Please respond in English."
}

// CleanJSON strips markdown code fences models sometimes wrap around
// JSON payloads.
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
