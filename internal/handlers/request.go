package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// decodeAndValidate reads a JSON body into dst and runs its validation tags.
// It writes the error response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON for this endpoint.", "", model.ErrInvalidInput))
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Request validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// currentUser returns the authenticated learner or writes a 401.
func currentUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

// queryLimit parses ?limit=. An absent value yields 0, which services treat
// as "use the default".
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, model.NewAppError("INVALID_LIMIT", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
	}
	return limit, nil
}

// queryLevel parses an optional ?level= filter.
func queryLevel(r *http.Request) (model.Level, error) {
	raw := r.URL.Query().Get("level")
	if raw == "" {
		return "", nil
	}
	level, ok := model.ParseLevel(raw)
	if !ok {
		return "", model.NewAppError("INVALID_LEVEL", "level must be one of A1, A2, B1, B2, C1.", "level", model.ErrInvalidInput)
	}
	return level, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", name+" must be a UUID.", name, model.ErrInvalidInput)
	}
	return id, nil
}
