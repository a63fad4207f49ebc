package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/service"
	"ai_linguo/internal/webutil"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(s service.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

// Tutor returns feedback on the learner's text, storing both turns when a
// session is given.
func (h *ChatHandler) Tutor(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.TutorRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	feedback, err := h.service.Tutor(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, feedback, logger)
}

func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateChatSessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	session, err := h.service.CreateSession(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// ListTurns returns the turns of one of the learner's sessions, oldest first.
func (h *ChatHandler) ListTurns(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	sessionID, err := pathUUID(r, "session_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	turns, err := h.service.ListTurns(r.Context(), userID, sessionID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if turns == nil {
		turns = []*model.ChatTurn{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, turns, logger)
}
