package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

// stubResponder is a scriptable ai.Responder for chain tests
type stubResponder struct {
	name       string
	configured bool
	reply      string
	err        error
	calls      int
}

func (s *stubResponder) Name() string       { return s.name }
func (s *stubResponder) IsConfigured() bool { return s.configured }

func (s *stubResponder) Reply(_ context.Context, _ string, _ []domain.ConversationTurn) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestChain_FirstConfiguredWins(t *testing.T) {
	first := &stubResponder{name: "openai", configured: true, reply: "from openai"}
	second := &stubResponder{name: "gemini", configured: true, reply: "from gemini"}

	c := NewChain(first, second)

	assert.Equal(t, "openai", c.Primary())
	assert.Equal(t, "from openai", c.Respond(context.Background(), "hi", nil))
	assert.Zero(t, second.calls)
}

func TestChain_SkipsUnconfigured(t *testing.T) {
	first := &stubResponder{name: "openai", configured: false}
	second := &stubResponder{name: "gemini", configured: true, reply: "from gemini"}

	c := NewChain(first, second)

	assert.Equal(t, "gemini", c.Primary())
	assert.Equal(t, "from gemini", c.Respond(context.Background(), "hi", nil))
	assert.Zero(t, first.calls)
}

// A failing primary degrades straight to the rule-based fallback; it does
// not try the next provider.
func TestChain_PrimaryFailureFallsBack(t *testing.T) {
	first := &stubResponder{name: "openai", configured: true, err: errors.New("boom")}
	second := &stubResponder{name: "gemini", configured: true, reply: "from gemini"}

	c := NewChain(first, second)

	reply := c.Respond(context.Background(), "help me upload a video", nil)
	assert.Contains(t, reply, "To upload a video")
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)
}

func TestChain_NoProviderConfigured(t *testing.T) {
	c := NewChain(&stubResponder{name: "openai"}, &stubResponder{name: "gemini"})

	assert.Equal(t, "fallback", c.Primary())
	reply := c.Respond(context.Background(), "what does it cost", nil)
	assert.Contains(t, reply, "pricing plans")
}
