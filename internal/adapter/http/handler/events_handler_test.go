package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/adapter/realtime"
	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/usecase"
)

func setupEventsServer(t *testing.T, mockUC *MockBattleUsecase, hub *realtime.Hub) *httptest.Server {
	t.Helper()
	r := gin.New()
	r.GET("/api/battles/:id/events", NewEventsHandler(mockUC, hub, zap.NewNop()).StreamBattle)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestStreamBattle(t *testing.T) {
	t.Run("streams transitions until completion", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		mockUC.On("GetByID", mock.Anything, int64(11)).Return(newBattleOutput(11), nil)
		hub := realtime.NewHub(realtime.DefaultBuffer, zap.NewNop())
		srv := setupEventsServer(t, mockUC, hub)

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/battles/11/events"
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var got service.BattleEvent
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, int64(11), got.BattleID)
		assert.Equal(t, entity.BattleStateCreated, got.State)

		hub.Publish(service.BattleEvent{BattleID: 11, State: entity.BattleStateCompleted, At: time.Now()})

		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, entity.BattleStateCompleted, got.State)

		_, _, err = conn.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
		assert.Eventually(t, func() bool { return hub.Subscribers(11) == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("missing battle is rejected before upgrade", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		mockUC.On("GetByID", mock.Anything, int64(12)).Return(nil, usecase.ErrBattleNotFound)
		hub := realtime.NewHub(realtime.DefaultBuffer, zap.NewNop())
		srv := setupEventsServer(t, mockUC, hub)

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/battles/12/events"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)

		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, 0, hub.Subscribers(12))
	})

	t.Run("invalid id", func(t *testing.T) {
		mockUC := new(MockBattleUsecase)
		hub := realtime.NewHub(realtime.DefaultBuffer, zap.NewNop())
		srv := setupEventsServer(t, mockUC, hub)

		resp, err := http.Get(srv.URL + "/api/battles/zero/events")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
