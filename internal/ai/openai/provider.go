package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/snipx/snipx-backend/internal/ai"
	"github.com/snipx/snipx-backend/internal/domain"
)

// maxHistoryTurns caps how much caller-supplied history is forwarded.
const maxHistoryTurns = 5

// Provider implements ai.Responder against the OpenAI chat-completions API
type Provider struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

// NewProvider creates a new OpenAI responder
func NewProvider(apiKey, model string) *Provider {
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &Provider{
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://api.openai.com/v1",
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "openai"
}

// IsConfigured checks if the provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Reply sends the persona, the most recent history turns and the new
// message to the chat-completions endpoint.
func (p *Provider) Reply(ctx context.Context, message string, history []domain.ConversationTurn) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: ai.Persona},
	}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		messages = append(messages, chatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	messages = append(messages, chatMessage{Role: "user", Content: message})

	body, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   ai.MaxReplyTokens,
		Temperature: ai.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
