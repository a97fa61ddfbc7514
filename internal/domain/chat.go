package domain

// ChatRole represents the sender of a conversation turn
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ConversationTurn is one prior exchange supplied by the caller as context.
// Turns are never persisted; only the most recent few are forwarded to the
// AI provider.
type ConversationTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is an incoming chatbot message with optional history
type ChatRequest struct {
	Message string             `json:"message" validate:"required,max=2000"`
	History []ConversationTurn `json:"history,omitempty" validate:"max=50,dive"`
}

// ChatReply is the assistant's answer
type ChatReply struct {
	Reply string `json:"reply"`
}
