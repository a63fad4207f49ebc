package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetMe returns the authenticated learner's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// RecordProgress adds studied minutes and updates the day streak.
func (h *UserHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.RecordProgressRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if _, err := h.service.RecordProgress(r.Context(), userID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SuccessResponse{Success: true}, logger)
}
