package ai

import (
	"context"

	"github.com/snipx/snipx-backend/internal/domain"
)

// Persona is the system preamble sent to every AI provider.
const Persona = "You are a helpful assistant for SnipX, a video editing platform. " +
	"You help users with video uploading, editing, subtitle generation, audio enhancement, " +
	"and other video processing features. Be concise, helpful, and friendly."

// Generation limits shared by all providers.
const (
	MaxReplyTokens = 150
	Temperature    = 0.7
)

// Responder produces a chatbot reply for a message with optional history.
type Responder interface {
	// Name returns the provider identifier
	Name() string

	// IsConfigured checks if the responder has valid credentials
	IsConfigured() bool

	// Reply generates an answer to message given recent history
	Reply(ctx context.Context, message string, history []domain.ConversationTurn) (string, error)
}
