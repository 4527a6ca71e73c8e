package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/applytrack/applytrack/internal/handler/dto"
	"github.com/applytrack/applytrack/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "name", session.Name)

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		User:  dto.AuthUser{Name: session.Name},
		Token: session.Token,
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		User:  dto.AuthUser{Name: session.Name},
		Token: session.Token,
	})
}
