package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"ai_linguo/internal/model"
	"ai_linguo/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_SubmitReview(t *testing.T) {
	learner := uuid.New()
	cardID := uuid.New()
	nextDue := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		headers    map[string]string
		body       interface{}
		setupMock  func(app *mockApp)
		wantStatus int
		wantCode   string
	}{
		{
			name:    "success",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": "easy"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.MatchedBy(func(req *model.SubmitReviewRequest) bool {
					return req.CardID == cardID && req.Grade == srs.Easy && req.LearnerID == nil
				})).Return(&model.SubmitReviewResponse{Success: true, NextDue: nextDue}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "unknown grade is passed through to the scheduler",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": "Meh"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.MatchedBy(func(req *model.SubmitReviewRequest) bool {
					return req.Grade == srs.Grade("meh")
				})).Return(&model.SubmitReviewResponse{Success: true, NextDue: nextDue}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "empty grade is passed through",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": ""},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.MatchedBy(func(req *model.SubmitReviewRequest) bool {
					return req.CardID == cardID && req.Grade.Normalize() == srs.Again
				})).Return(&model.SubmitReviewResponse{Success: true, NextDue: nextDue}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "numeric grade is passed through",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": 3},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.MatchedBy(func(req *model.SubmitReviewRequest) bool {
					return !req.Grade.IsValid() && req.Grade.Normalize() == srs.Again
				})).Return(&model.SubmitReviewResponse{Success: true, NextDue: nextDue}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "missing grade is passed through",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.MatchedBy(func(req *model.SubmitReviewRequest) bool {
					return req.Grade == ""
				})).Return(&model.SubmitReviewResponse{Success: true, NextDue: nextDue}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "unknown learner",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": "good"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.Anything).
					Return(nil, model.NewAppError("LEARNER_NOT_FOUND", "The learner does not exist.", "learner_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "LEARNER_NOT_FOUND",
		},
		{
			name:       "missing learner header",
			body:       map[string]interface{}{"card_id": cardID, "grade": "good"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "malformed body",
			headers:    userHeader(learner),
			body:       `{"card_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:       "unknown field",
			headers:    userHeader(learner),
			body:       map[string]interface{}{"card_id": cardID, "grade": "good", "extra": 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:       "missing card id",
			headers:    userHeader(learner),
			body:       map[string]interface{}{"grade": "good"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:    "unknown card",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": "good"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.Anything).
					Return(nil, model.NewAppError("CARD_NOT_FOUND", "Card not found.", "card_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "CARD_NOT_FOUND",
		},
		{
			name:    "learner mismatch",
			headers: userHeader(learner),
			body:    map[string]interface{}{"learner_id": uuid.New(), "card_id": cardID, "grade": "good"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.Anything).
					Return(nil, model.NewAppError("LEARNER_MISMATCH", "mismatch", "learner_id", model.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "LEARNER_MISMATCH",
		},
		{
			name:    "storage unavailable",
			headers: userHeader(learner),
			body:    map[string]interface{}{"card_id": cardID, "grade": "good"},
			setupMock: func(app *mockApp) {
				app.review.On("SubmitReview", mock.Anything, learner, mock.Anything).
					Return(nil, model.NewAppError("STORAGE_UNAVAILABLE", "try again", "", model.ErrStorageUnavailable)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORAGE_UNAVAILABLE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := setupMockApp(t)
			if tc.setupMock != nil {
				tc.setupMock(app)
			}

			body := sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/vocabulary/review",
				Body:    tc.body,
				Headers: tc.headers,
			}, httpResponseExpectations{ExpectedCode: tc.wantStatus, ExpectedErrorCode: tc.wantCode})

			if tc.wantStatus == http.StatusOK {
				resp := decodeBody[model.SubmitReviewResponse](t, body)
				assert.True(t, resp.Success)
				assert.True(t, nextDue.Equal(resp.NextDue))
			}
		})
	}
}

func TestReviewHandler_GetDueCards(t *testing.T) {
	learner := uuid.New()
	cards := []*model.CardResponse{
		{ID: uuid.New(), Term: "sunrise", Meaning: "the time when the sun appears", Level: model.LevelA2},
	}

	testCases := []struct {
		name       string
		query      string
		setupMock  func(app *mockApp)
		wantStatus int
		wantCode   string
		wantLen    int
	}{
		{
			name:  "default limit",
			query: "",
			setupMock: func(app *mockApp) {
				app.review.On("GetDueCards", mock.Anything, learner, model.Level(""), 0).Return(cards, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLen:    1,
		},
		{
			name:  "limit and level",
			query: "?limit=5&level=b1",
			setupMock: func(app *mockApp) {
				app.review.On("GetDueCards", mock.Anything, learner, model.LevelB1, 5).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest, wantCode: "INVALID_LIMIT"},
		{name: "non numeric limit", query: "?limit=ten", wantStatus: http.StatusBadRequest, wantCode: "INVALID_LIMIT"},
		{name: "unknown level", query: "?level=Z9", wantStatus: http.StatusBadRequest, wantCode: "INVALID_LEVEL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := setupMockApp(t)
			if tc.setupMock != nil {
				tc.setupMock(app)
			}

			body := sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    "/api/v1/vocabulary/due" + tc.query,
				Headers: userHeader(learner),
			}, httpResponseExpectations{ExpectedCode: tc.wantStatus, ExpectedErrorCode: tc.wantCode})

			if tc.wantStatus == http.StatusOK {
				// An empty result is an empty array, never null.
				got := decodeBody[[]*model.CardResponse](t, body)
				require.NotNil(t, got)
				assert.Len(t, got, tc.wantLen)
			}
		})
	}
}

func TestReviewHandler_ListCards_IsPublic(t *testing.T) {
	app := setupMockApp(t)
	app.review.On("ListCards", mock.Anything, model.LevelC1).Return([]*model.CardResponse{{ID: uuid.New(), Term: "nevertheless", Level: model.LevelC1}}, nil).Once()

	body := sendRequest(t, app.server, httpRequestDetails{
		Method: http.MethodGet,
		Path:   "/api/v1/vocabulary/cards?level=C1",
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})

	got := decodeBody[[]*model.CardResponse](t, body)
	require.Len(t, got, 1)
	assert.Equal(t, "nevertheless", got[0].Term)
}
