package handlers_test

import (
	"net/http"
	"testing"

	"ai_linguo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLessonHandler_ListLessons(t *testing.T) {
	app := setupMockApp(t)
	learner := uuid.New()
	app.lesson.On("ListLessons", mock.Anything, learner, model.Level("")).Return([]*model.LessonResponse{
		{LessonID: uuid.New(), CEFRLevel: model.LevelA2, Title: "Past Simple", Completed: true},
	}, nil).Once()

	body := sendRequest(t, app.server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/lessons",
		Headers: userHeader(learner),
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})

	got := decodeBody[[]*model.LessonResponse](t, body)
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
}

func TestLessonHandler_CompleteLesson(t *testing.T) {
	learner := uuid.New()
	lessonID := uuid.New()

	testCases := []struct {
		name          string
		path          string
		body          interface{}
		wantCompleted *bool
		serviceErr    error
		wantStatus    int
		wantCode      string
	}{
		{name: "no body completes", path: "/api/v1/lessons/" + lessonID.String() + "/complete", wantCompleted: boolPtr(true), wantStatus: http.StatusOK},
		{name: "explicit reopen", path: "/api/v1/lessons/" + lessonID.String() + "/complete", body: map[string]bool{"completed": false}, wantCompleted: boolPtr(false), wantStatus: http.StatusOK},
		{name: "bad lesson id", path: "/api/v1/lessons/not-a-uuid/complete", wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
		{
			name:          "unknown lesson",
			path:          "/api/v1/lessons/" + lessonID.String() + "/complete",
			wantCompleted: boolPtr(true),
			serviceErr:    model.NewAppError("LESSON_NOT_FOUND", "Lesson not found.", "lesson_id", model.ErrNotFound),
			wantStatus:    http.StatusNotFound,
			wantCode:      "LESSON_NOT_FOUND",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := setupMockApp(t)
			if tc.wantCompleted != nil {
				app.lesson.On("CompleteLesson", mock.Anything, learner, lessonID, *tc.wantCompleted).Return(tc.serviceErr).Once()
			}

			sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    tc.path,
				Body:    tc.body,
				Headers: userHeader(learner),
			}, httpResponseExpectations{ExpectedCode: tc.wantStatus, ExpectedErrorCode: tc.wantCode})
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
