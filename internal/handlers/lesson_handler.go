package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(s service.LessonService) *LessonHandler {
	return &LessonHandler{service: s}
}

func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	level, err := queryLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lessons, err := h.service.ListLessons(r.Context(), userID, level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if lessons == nil {
		lessons = []*model.LessonResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

// CompleteLesson marks a lesson done. The body is optional; {"completed": false} reopens it.
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	lessonID, err := pathUUID(r, "lesson_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteLessonRequest
	if err := webutil.DecodeOptionalJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON for this endpoint.", "", model.ErrInvalidInput))
		return
	}
	completed := req.Completed == nil || *req.Completed

	if err := h.service.CompleteLesson(r.Context(), userID, lessonID, completed); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SuccessResponse{Success: true}, logger)
}
