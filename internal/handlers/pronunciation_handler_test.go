package handlers_test

import (
	"net/http"
	"testing"

	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPronunciationHandler(t *testing.T) {
	learner := uuid.New()

	t.Run("analyze", func(t *testing.T) {
		app := setupMockApp(t)
		app.pronunciation.On("Analyze", mock.Anything, learner, &model.AnalyzePronunciationRequest{Phrase: "Good morning", AudioBase64: "UklGRg=="}).
			Return(&model.PronunciationAttempt{AttemptID: uuid.New(), UserID: learner, Phrase: "Good morning", Transcript: "good morning", Score: 0.85}, nil).Once()

		body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/pronunciation/analyze",
			Body:    map[string]string{"phrase": "Good morning", "audio_base64": "UklGRg=="},
			Headers: userHeader(learner),
		}, httpResponseExpectations{ExpectedCode: http.StatusCreated})

		got := decodeBody[model.PronunciationAttempt](t, body)
		assert.Equal(t, "good morning", got.Transcript)
		assert.Equal(t, 0.85, got.Score)
	})

	t.Run("audio is not base64", func(t *testing.T) {
		app := setupMockApp(t)
		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/pronunciation/analyze",
			Body:    map[string]string{"phrase": "Good morning", "audio_base64": "%%%"},
			Headers: userHeader(learner),
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"})
	})

	t.Run("list attempts", func(t *testing.T) {
		app := setupMockApp(t)
		app.pronunciation.On("ListAttempts", mock.Anything, learner, 3).Return(nil, nil).Once()

		body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/pronunciation/attempts?limit=3",
			Headers: userHeader(learner),
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})

		assert.JSONEq(t, `[]`, string(body))
	})
}
