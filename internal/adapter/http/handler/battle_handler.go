package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// BattleHandler handles battle-related HTTP requests
type BattleHandler struct {
	battleUC usecase.BattleUsecase
}

// NewBattleHandler creates a new battle handler
func NewBattleHandler(battleUC usecase.BattleUsecase) *BattleHandler {
	return &BattleHandler{battleUC: battleUC}
}

// CreateBattle handles POST /api/battles. The body is optional.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var input usecase.CreateBattleInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		HandleBindError(c, err)
		return
	}

	output, err := h.battleUC.Create(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, output)
}

// GetBattle handles GET /api/battles/:id
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, err := ExtractIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "battle id")
		return
	}

	output, err := h.battleUC.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// SubmitSolution handles POST /api/battles/:id/submit. It returns once the
// opponent has answered and the judge has scored both solutions.
func (h *BattleHandler) SubmitSolution(c *gin.Context) {
	id, err := ExtractIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "battle id")
		return
	}

	var input usecase.SubmitSolutionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleBindError(c, err)
		return
	}

	output, err := h.battleUC.Submit(c.Request.Context(), id, &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// GetResults handles GET /api/battles/:id/results
func (h *BattleHandler) GetResults(c *gin.Context) {
	id, err := ExtractIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "battle id")
		return
	}

	output, err := h.battleUC.GetResults(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
