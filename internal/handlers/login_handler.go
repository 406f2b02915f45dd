package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/meal-storefront/internal/service"
)

// LoginHandler serves the placeholder login gate
type LoginHandler struct {
	gate   *service.LoginService
	logger *slog.Logger
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(gate *service.LoginService, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		gate:   gate,
		logger: logger,
	}
}

// LoginRequest carries the form fields
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse confirms the gate was passed. No session is issued.
type LoginResponse struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

// Login handles POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode login request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.gate.Login(req.Email, req.Password); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{Status: "ok", Email: req.Email}, h.logger)
}
