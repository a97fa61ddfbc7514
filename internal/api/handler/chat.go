package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snipx/snipx-backend/internal/ai"
	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/domain"
)

// ChatHandler handles chatbot requests
type ChatHandler struct {
	chain *ai.Chain
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chain *ai.Chain) *ChatHandler {
	return &ChatHandler{chain: chain}
}

// Chat returns an assistant reply for the submitted message. The responder
// chain never fails, so the only error paths here are malformed input.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	reply := h.chain.Respond(r.Context(), input.Message, input.History)
	response.OK(w, domain.ChatReply{Reply: reply})
}
