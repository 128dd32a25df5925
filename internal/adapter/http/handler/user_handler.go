package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// UserHandler resolves players by username
type UserHandler struct {
	playerUC usecase.PlayerUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(playerUC usecase.PlayerUsecase) *UserHandler {
	return &UserHandler{playerUC: playerUC}
}

// CreateUser handles POST /api/users. It answers 201 for a new player and
// 200 when the username already exists. A username is required.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input usecase.CreatePlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleBindError(c, err)
		return
	}

	player, created, err := h.playerUC.GetOrCreate(c.Request.Context(), input.Username)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondSuccess(c, status, player)
}
