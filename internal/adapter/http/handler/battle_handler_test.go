package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// MockBattleUsecase is a mock implementation of BattleUsecase
type MockBattleUsecase struct {
	mock.Mock
}

func (m *MockBattleUsecase) Create(ctx context.Context, input *usecase.CreateBattleInput) (*usecase.BattleOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BattleOutput), args.Error(1)
}

func (m *MockBattleUsecase) GetByID(ctx context.Context, id int64) (*usecase.BattleOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BattleOutput), args.Error(1)
}

func (m *MockBattleUsecase) Submit(ctx context.Context, id int64, input *usecase.SubmitSolutionInput) (*usecase.SubmitOutput, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SubmitOutput), args.Error(1)
}

func (m *MockBattleUsecase) GetResults(ctx context.Context, id int64) (*usecase.ResultsOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ResultsOutput), args.Error(1)
}

func setupTestRouter(h *BattleHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/battles", h.CreateBattle)
	r.GET("/api/battles/:id", h.GetBattle)
	r.POST("/api/battles/:id/submit", h.SubmitSolution)
	r.GET("/api/battles/:id/results", h.GetResults)
	return r
}

// decode reads an error body
func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	return decodeJSON[Response](t, w)
}

// decodeJSON reads a success body, which carries the resource unwrapped
func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newBattleOutput(id int64) *usecase.BattleOutput {
	return &usecase.BattleOutput{
		ID:           id,
		Prompt:       "Invent a new holiday and its traditions",
		UserID:       3,
		OpponentType: "ai",
		State:        string(entity.BattleStateCreated),
		CreatedAt:    "2026-01-18T12:00:00Z",
	}
}

func TestCreateBattle_Success(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	mockUC.On("Create", mock.Anything, mock.MatchedBy(func(input *usecase.CreateBattleInput) bool {
		return input.OpponentType == "ai" && input.Username == "alice"
	})).Return(newBattleOutput(1), nil)

	body := `{"opponentType": "ai", "username": "alice"}`
	req, _ := http.NewRequest("POST", "/api/battles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeJSON[map[string]any](t, w)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, false, data["completed"])
	assert.Nil(t, data["userSolution"])
	mockUC.AssertExpectations(t)
}

func TestCreateBattle_EmptyBody(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	mockUC.On("Create", mock.Anything, &usecase.CreateBattleInput{}).Return(newBattleOutput(2), nil)

	req, _ := http.NewRequest("POST", "/api/battles", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUC.AssertExpectations(t)
}

func TestCreateBattle_InvalidJSON(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	body := `{"opponentType": 5}`
	req, _ := http.NewRequest("POST", "/api/battles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBattle_UsecaseError(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	mockUC.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	req, _ := http.NewRequest("POST", "/api/battles", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
}

func TestGetBattle_Success(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	mockUC.On("GetByID", mock.Anything, int64(7)).Return(newBattleOutput(7), nil)

	req, _ := http.NewRequest("GET", "/api/battles/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), decodeJSON[map[string]any](t, w)["id"])
	mockUC.AssertExpectations(t)
}

func TestGetBattle_NotFound(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	mockUC.On("GetByID", mock.Anything, int64(99)).Return(nil, usecase.ErrBattleNotFound)

	req, _ := http.NewRequest("GET", "/api/battles/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decode(t, w)
	assert.False(t, response.Success)
	assert.Equal(t, "NOT_FOUND", response.Error.Code)
}

func TestGetBattle_InvalidID(t *testing.T) {
	mockUC := new(MockBattleUsecase)
	router := setupTestRouter(NewBattleHandler(mockUC))

	req, _ := http.NewRequest("GET", "/api/battles/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w).Error.Code)
	mockUC.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubmitSolution(t *testing.T) {
	validBody := `{"solution": "A floating library that lends out weather."}`

	tests := []struct {
		name         string
		path         string
		body         string
		setup        func(m *MockBattleUsecase)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			path: "/api/battles/4/submit",
			body: validBody,
			setup: func(m *MockBattleUsecase) {
				m.On("Submit", mock.Anything, int64(4), mock.MatchedBy(func(in *usecase.SubmitSolutionInput) bool {
					return in.Solution == "A floating library that lends out weather."
				})).Return(&usecase.SubmitOutput{Success: true, BattleID: 4, Completed: true, State: "completed"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "too short",
			path:         "/api/battles/4/submit",
			body:         `{"solution": "short"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "missing solution",
			path:         "/api/battles/4/submit",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "invalid id",
			path:         "/api/battles/abc/submit",
			body:         validBody,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_REQUEST",
		},
		{
			name: "battle missing",
			path: "/api/battles/5/submit",
			body: validBody,
			setup: func(m *MockBattleUsecase) {
				m.On("Submit", mock.Anything, int64(5), mock.Anything).Return(nil, usecase.ErrBattleNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "NOT_FOUND",
		},
		{
			name: "already completed",
			path: "/api/battles/6/submit",
			body: validBody,
			setup: func(m *MockBattleUsecase) {
				m.On("Submit", mock.Anything, int64(6), mock.Anything).Return(nil, usecase.ErrBattleCompleted)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "BATTLE_COMPLETED",
		},
		{
			name: "judging in progress",
			path: "/api/battles/8/submit",
			body: validBody,
			setup: func(m *MockBattleUsecase) {
				m.On("Submit", mock.Anything, int64(8), mock.Anything).Return(nil, usecase.ErrSubmissionInProgress)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "CONFLICT",
		},
		{
			name: "chain failure",
			path: "/api/battles/9/submit",
			body: validBody,
			setup: func(m *MockBattleUsecase) {
				m.On("Submit", mock.Anything, int64(9), mock.Anything).Return(nil, errors.New("persist score: db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := new(MockBattleUsecase)
			if tt.setup != nil {
				tt.setup(mockUC)
			}
			router := setupTestRouter(NewBattleHandler(mockUC))

			req, _ := http.NewRequest("POST", tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr == "" {
				assert.Equal(t, true, decodeJSON[map[string]any](t, w)["success"])
			} else {
				response := decode(t, w)
				require.NotNil(t, response.Error)
				assert.Equal(t, tt.expectedErr, response.Error.Code)
			}
			mockUC.AssertExpectations(t)
		})
	}
}

func TestGetResults(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		router := setupTestRouter(NewBattleHandler(mockUC))

		battle := newBattleOutput(3)
		battle.Completed = true
		mockUC.On("GetResults", mock.Anything, int64(3)).Return(&usecase.ResultsOutput{
			Battle: battle,
			Scores: &entity.Score{BattleID: 3, ChallengerOriginality: 80, JudgeFeedback: "close"},
		}, nil)

		req, _ := http.NewRequest("GET", "/api/battles/3/results", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeJSON[map[string]any](t, w)
		assert.Contains(t, data, "battle")
		scores := data["scores"].(map[string]any)
		assert.Equal(t, float64(80), scores["userOriginality"])
		assert.Equal(t, "close", scores["judgeFeedback"])
	})

	t.Run("not completed", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		router := setupTestRouter(NewBattleHandler(mockUC))
		mockUC.On("GetResults", mock.Anything, int64(3)).Return(nil, usecase.ErrBattleNotCompleted)

		req, _ := http.NewRequest("GET", "/api/battles/3/results", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BATTLE_NOT_COMPLETED", decode(t, w).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		router := setupTestRouter(NewBattleHandler(mockUC))
		mockUC.On("GetResults", mock.Anything, int64(12)).Return(nil, usecase.ErrBattleNotFound)

		req, _ := http.NewRequest("GET", "/api/battles/12/results", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
