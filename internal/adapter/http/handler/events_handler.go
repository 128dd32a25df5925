package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/adapter/realtime"
	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

// EventsHandler streams battle lifecycle events over WebSocket
type EventsHandler struct {
	battleUC usecase.BattleUsecase
	hub      *realtime.Hub
	logger   *zap.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(battleUC usecase.BattleUsecase, hub *realtime.Hub, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{battleUC: battleUC, hub: hub, logger: logger}
}

// StreamBattle handles GET /api/battles/:id/events. The first message is the
// battle's current state; the stream ends after the completed event.
func (h *EventsHandler) StreamBattle(c *gin.Context) {
	id, err := ExtractIDParam(c, "id")
	if err != nil {
		HandleInvalidID(c, "battle id")
		return
	}

	// Subscribe before reading the snapshot so no transition is missed
	events, unsubscribe := h.hub.Subscribe(id)
	defer unsubscribe()

	battle, err := h.battleUC.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Int64("battle_id", id), zap.Error(err))
		return
	}

	initial := service.BattleEvent{
		BattleID: battle.ID,
		State:    entity.BattleState(battle.State),
		At:       time.Now(),
	}
	if err := realtime.Stream(c.Request.Context(), conn, initial, events); err != nil {
		h.logger.Debug("Battle event stream ended", zap.Int64("battle_id", id), zap.Error(err))
	}
}
