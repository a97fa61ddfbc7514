package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/snipx/snipx-backend/internal/ai"
	"github.com/snipx/snipx-backend/internal/domain"
	"google.golang.org/api/option"
)

// maxHistoryTurns caps how much caller-supplied history is rendered into
// the prompt. Gemini gets fewer turns than OpenAI because the whole context
// travels as one concatenated string.
const maxHistoryTurns = 3

const requestTimeout = 10 * time.Second

// Provider implements ai.Responder against the Gemini API
type Provider struct {
	apiKey string
	model  string
}

// NewProvider creates a new Gemini responder
func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Provider{
		apiKey: apiKey,
		model:  model,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "gemini"
}

// IsConfigured checks if the provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// buildPrompt renders the persona, recent history and the new message into
// a single generation prompt.
func buildPrompt(message string, history []domain.ConversationTurn) string {
	var sb strings.Builder
	sb.WriteString(ai.Persona)
	sb.WriteString(" ")

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		fmt.Fprintf(&sb, "%s: %s ", turn.Role, turn.Content)
	}

	fmt.Fprintf(&sb, "\n\nUser: %s\n\nAssistant:", message)
	return sb.String()
}

// Reply submits the concatenated prompt to the generation endpoint.
func (p *Provider) Reply(ctx context.Context, message string, history []domain.ConversationTurn) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("gemini provider is not configured (missing API key)")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	temperature := float32(ai.Temperature)
	model.Temperature = &temperature
	maxTokens := int32(ai.MaxReplyTokens)
	model.MaxOutputTokens = &maxTokens

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(message, history)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	return strings.TrimSpace(output), nil
}
