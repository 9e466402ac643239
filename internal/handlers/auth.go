package handlers

import (
	"log"
	"net/http"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/services"
)

// AuthHandler обрабатывает HTTP-запросы регистрации.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Signup обрабатывает POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("[AuthHandler:Signup] %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		log.Printf("[AuthHandler:Signup] Ошибка регистрации '%s': %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
