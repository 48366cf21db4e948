// internal/ai/gemini.go
package ai

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

const coachSystemPrompt = `You are an expert Business Consultant and Career Coach named "WealthBot".
Your goal is to help users find profitable business ideas, optimize their course sales, and solve entrepreneurial challenges.
Keep answers concise, actionable, and encouraging.
Format your response with Markdown (bolding key points, lists where applicable).`

// GeminiGenerator talks to the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) CoachReply(ctx context.Context, query, contextText string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			fmt.Sprintf("%s\nContext: %s", coachSystemPrompt, contextText),
			genai.RoleUser,
		),
		Temperature: genai.Ptr[float32](0.7),
	}

	return g.generate(ctx, query, config)
}

func (g *GeminiGenerator) BusinessIdea(ctx context.Context, niche string, lang models.Language) (string, error) {
	langInstruction := "Response MUST be in English."
	if lang == models.LanguageChinese {
		langInstruction = "Response MUST be in Chinese (Simplified)."
	}

	prompt := fmt.Sprintf(`Generate a unique, modern business idea or money-making tactic for the niche: %q.
%s
Include:
1. Concept Title
2. How it works (2-3 sentences)
3. Potential Difficulty (Low/Medium/High)
4. First Step to execute.
Return in valid JSON format only, structured as fields: title, description, difficulty, firstStep.`, niche, langInstruction)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	return g.generate(ctx, prompt, config)
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty candidate list")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
