package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// MockLeaderboardUsecase is a mock implementation of LeaderboardUsecase
type MockLeaderboardUsecase struct {
	mock.Mock
}

func (m *MockLeaderboardUsecase) RecordOutcome(ctx context.Context, outcome usecase.Outcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockLeaderboardUsecase) GetRankedView(ctx context.Context, period entity.Period, username string) ([]*entity.RankedEntry, error) {
	args := m.Called(ctx, period, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RankedEntry), args.Error(1)
}

func (m *MockLeaderboardUsecase) Rebuild(ctx context.Context, playerID int64) (*entity.LeaderboardEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardUsecase) Reconcile(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func setupLeaderboardRouter(h *LeaderboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/leaderboard", h.GetLeaderboard)
	r.GET("/api/leaderboard/:period", h.GetLeaderboard)
	return r
}

func TestGetLeaderboard(t *testing.T) {
	ranked := []*entity.RankedEntry{
		{Rank: 1, PlayerID: 2, Username: "bob", TotalBattles: 2, Wins: 2, WinRate: 100, AvgScore: 240},
		{Rank: 2, PlayerID: 1, Username: "alice", TotalBattles: 1, WinRate: 0, AvgScore: 180, IsCurrentUser: true},
	}

	tests := []struct {
		name     string
		path     string
		period   entity.Period
		username string
	}{
		{name: "default is all-time", path: "/api/leaderboard", period: entity.PeriodAllTime},
		{name: "weekly", path: "/api/leaderboard/weekly", period: entity.PeriodWeekly},
		{name: "monthly with user", path: "/api/leaderboard/monthly?username=alice", period: entity.PeriodMonthly, username: "alice"},
		{name: "unknown period", path: "/api/leaderboard/yearly", period: entity.PeriodAllTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := new(MockLeaderboardUsecase)
			mockUC.On("GetRankedView", mock.Anything, tt.period, tt.username).Return(ranked, nil)
			router := setupLeaderboardRouter(NewLeaderboardHandler(mockUC))

			req, _ := http.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			data := decodeJSON[[]map[string]any](t, w)
			assert.Len(t, data, 2)
			first := data[0]
			assert.Equal(t, float64(1), first["rank"])
			assert.Equal(t, "bob", first["username"])
			mockUC.AssertExpectations(t)
		})
	}

	t.Run("empty leaderboard is an empty list", func(t *testing.T) {
		mockUC := new(MockLeaderboardUsecase)
		mockUC.On("GetRankedView", mock.Anything, entity.PeriodAllTime, "").Return([]*entity.RankedEntry{}, nil)
		router := setupLeaderboardRouter(NewLeaderboardHandler(mockUC))

		req, _ := http.NewRequest("GET", "/api/leaderboard/all-time", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockUC := new(MockLeaderboardUsecase)
		mockUC.On("GetRankedView", mock.Anything, entity.PeriodAllTime, "").Return(nil, errors.New("db error"))
		router := setupLeaderboardRouter(NewLeaderboardHandler(mockUC))

		req, _ := http.NewRequest("GET", "/api/leaderboard", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
