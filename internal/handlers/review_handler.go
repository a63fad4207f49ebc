package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// SubmitReview records one graded review and returns the next due time.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitReviewRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitReview(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetDueCards lists the learner's cards that are due now, most overdue first.
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
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
	level, err := queryLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.GetDueCards(r.Context(), userID, level, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.CardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

func (h *ReviewHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	level, err := queryLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.ListCards(r.Context(), level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.CardResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}
