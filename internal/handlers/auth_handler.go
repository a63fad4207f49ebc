package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register creates a learner account and returns it with an access token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Learner registered", "user_id", resp.User.UserID)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Login checks the credentials and returns a fresh access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// The service already logged the cause.
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
