package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/snipx/snipx-backend/internal/api/middleware"
	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/service"
)

var validate = validator.New()

// validationErrors flattens validator failures into a field→message map
func validationErrors(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	out := make(map[string]string)
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			out[e.Field()] = "field is required"
		case "email":
			out[e.Field()] = "invalid email format"
		case "min":
			out[e.Field()] = "must be at least " + e.Param() + " characters"
		case "max":
			out[e.Field()] = "must be at most " + e.Param() + " characters"
		case "oneof":
			out[e.Field()] = "must be one of: " + e.Param()
		default:
			out[e.Field()] = "validation failed on " + e.Tag()
		}
	}
	return out
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	id, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "failed to register user")
		return
	}

	response.Created(w, map[string]any{
		"id":    id,
		"email": input.Email,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	session, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalError(w, "login failed")
		return
	}

	response.OK(w, session)
}

// Demo provisions the shared demo account and returns a session for it
func (h *AuthHandler) Demo(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.ProvisionDemoUser(r.Context())
	if err != nil {
		response.InternalError(w, "failed to start demo session")
		return
	}

	response.OK(w, session)
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.Unauthorized(w, "user not found")
			return
		}
		response.InternalError(w, "failed to load user")
		return
	}

	response.OK(w, user.PublicView())
}

// UpdateMe updates the current user's profile fields
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	user, err := h.authService.UpdateUser(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.NotFound(w, "user not found")
			return
		}
		response.InternalError(w, "failed to update user")
		return
	}

	response.OK(w, user.PublicView())
}
