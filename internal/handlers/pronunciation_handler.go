package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type PronunciationHandler struct {
	service service.PronunciationService
}

func NewPronunciationHandler(s service.PronunciationService) *PronunciationHandler {
	return &PronunciationHandler{service: s}
}

func (h *PronunciationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.AnalyzePronunciationRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	attempt, err := h.service.Analyze(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, attempt, logger)
}

func (h *PronunciationHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	limit, err := queryLimit(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if attempts == nil {
		attempts = []*model.PronunciationAttempt{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attempts, logger)
}
