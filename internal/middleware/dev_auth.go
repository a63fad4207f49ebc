// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"ai_linguo/internal/model"
	"ai_linguo/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware is used when auth is disabled. It trusts the
// X-User-ID header and does not check that the learner exists.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID header is required.", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] invalid X-User-ID", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID must be a UUID.", "", model.ErrUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		ctx = WithLogger(ctx, logger.With("user_id", userID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
