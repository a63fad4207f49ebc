package handlers_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"ai_linguo/internal/config"
	"ai_linguo/internal/handlers"
	"ai_linguo/internal/repository"
	servicemocks "ai_linguo/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockApp is the full router backed by service mocks, with dev auth.
type mockApp struct {
	server        *httptest.Server
	db            *gorm.DB
	review        *servicemocks.ReviewService
	auth          *servicemocks.AuthService
	user          *servicemocks.UserService
	lesson        *servicemocks.LessonService
	chat          *servicemocks.ChatService
	pronunciation *servicemocks.PronunciationService
}

func setupMockApp(t *testing.T) *mockApp {
	t.Helper()

	db := openTestDB(t)
	app := &mockApp{
		db:            db,
		review:        servicemocks.NewReviewService(t),
		auth:          servicemocks.NewAuthService(t),
		user:          servicemocks.NewUserService(t),
		lesson:        servicemocks.NewLessonService(t),
		chat:          servicemocks.NewChatService(t),
		pronunciation: servicemocks.NewPronunciationService(t),
	}

	router := handlers.NewRouter(&handlers.Handlers{
		Auth:          handlers.NewAuthHandler(app.auth),
		Review:        handlers.NewReviewHandler(app.review),
		User:          handlers.NewUserHandler(app.user),
		Lesson:        handlers.NewLessonHandler(app.lesson),
		Chat:          handlers.NewChatHandler(app.chat),
		Pronunciation: handlers.NewPronunciationHandler(app.pronunciation),
		Health:        handlers.NewHealthHandler(db),
	}, handlers.RouterOptions{Logger: testLogger})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(config.DatabaseConfig{Driver: repository.DriverSQLite, URL: dsn}, testLogger)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func userHeader(id uuid.UUID) map[string]string {
	return map[string]string{"X-User-ID": id.String()}
}
