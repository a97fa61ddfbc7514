package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/service"
)

// SupportHandler handles support ticket endpoints
type SupportHandler struct {
	supportService *service.SupportService
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// CreateTicket handles ticket submission
func (h *SupportHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var input domain.TicketCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	id, err := h.supportService.CreateTicket(r.Context(), input)
	if err != nil {
		if domain.IsMissingField(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "failed to create ticket")
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// GetTicket returns a single ticket
func (h *SupportHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.supportService.GetTicket(r.Context(), chi.URLParam(r, "ticketID"))
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			response.NotFound(w, "ticket not found")
			return
		}
		response.InternalError(w, "failed to load ticket")
		return
	}

	response.OK(w, ticket)
}

// ListTickets returns tickets newest-first, optionally filtered by status
func (h *SupportHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.supportService.ListTickets(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.InternalError(w, "failed to list tickets")
		return
	}

	response.OK(w, map[string]any{"tickets": tickets})
}

// SetStatus updates a ticket's status
func (h *SupportHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status" validate:"required,max=50"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	found, err := h.supportService.SetStatus(r.Context(), chi.URLParam(r, "ticketID"), input.Status)
	if err != nil {
		response.InternalError(w, "failed to update ticket")
		return
	}
	if !found {
		response.NotFound(w, "ticket not found")
		return
	}

	response.OK(w, map[string]string{"status": input.Status})
}

// AddResponse appends a message to the ticket thread
func (h *SupportHandler) AddResponse(w http.ResponseWriter, r *http.Request) {
	var input domain.ResponseCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	found, err := h.supportService.AddResponse(r.Context(), chi.URLParam(r, "ticketID"), input)
	if err != nil {
		response.InternalError(w, "failed to add response")
		return
	}
	if !found {
		response.NotFound(w, "ticket not found")
		return
	}

	response.Created(w, map[string]string{"message": "response added"})
}
