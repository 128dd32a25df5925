package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// LeaderboardHandler serves ranked leaderboard views
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardUC usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUC: leaderboardUC}
}

// GetLeaderboard handles GET /api/leaderboard and GET /api/leaderboard/:period.
// Unknown periods fall back to all-time.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	period := entity.ParsePeriod(c.Param("period"))
	username := c.Query("username")

	ranked, err := h.leaderboardUC.GetRankedView(c.Request.Context(), period, username)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, ranked)
}
