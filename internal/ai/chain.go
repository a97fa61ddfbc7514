package ai

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/snipx/snipx-backend/internal/domain"
)

// Chain tries a single primary responder and degrades to the rule-based
// fallback on any failure. The primary is chosen once at construction from
// which credentials are present; a failing primary does not cascade to the
// next provider, it goes straight to the fallback.
type Chain struct {
	primary  Responder
	fallback *FallbackResponder
}

// NewChain builds the responder chain from the candidates in priority
// order. The first configured candidate becomes the primary; with no
// configured candidate every reply comes from the fallback.
func NewChain(candidates ...Responder) *Chain {
	c := &Chain{fallback: NewFallbackResponder()}

	for _, cand := range candidates {
		if cand.IsConfigured() {
			c.primary = cand
			log.Info().Str("provider", cand.Name()).Msg("chatbot provider selected")
			break
		}
	}
	if c.primary == nil {
		log.Info().Msg("no chatbot provider configured, using rule-based replies")
	}

	return c
}

// Primary returns the name of the selected provider, or "fallback" when
// none is configured.
func (c *Chain) Primary() string {
	if c.primary == nil {
		return c.fallback.Name()
	}
	return c.primary.Name()
}

// Respond returns a reply for the message. It never fails: provider errors
// are logged and answered by the fallback rules instead.
func (c *Chain) Respond(ctx context.Context, message string, history []domain.ConversationTurn) string {
	if c.primary != nil {
		reply, err := c.primary.Reply(ctx, message, history)
		if err == nil {
			return reply
		}
		log.Warn().
			Err(err).
			Str("provider", c.primary.Name()).
			Msg("chatbot provider failed, using fallback reply")
	}

	reply, _ := c.fallback.Reply(ctx, message, history)
	return reply
}
