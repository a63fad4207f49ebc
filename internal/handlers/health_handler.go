package handlers

import (
	"net/http"

	"ai_linguo/internal/middleware"
	"ai_linguo/internal/model"
	"ai_linguo/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check pings the database.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("STORAGE_UNAVAILABLE", "The database is not reachable.", "", model.ErrStorageUnavailable))
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
