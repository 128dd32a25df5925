package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

func event(id int64, state entity.BattleState) service.BattleEvent {
	return service.BattleEvent{BattleID: id, State: state, At: time.Now()}
}

func TestHub_PublishSubscribe(t *testing.T) {
	t.Run("delivers only to the battle's subscribers", func(t *testing.T) {
		hub := NewHub(4, zap.NewNop())
		one, cancelOne := hub.Subscribe(1)
		defer cancelOne()
		two, cancelTwo := hub.Subscribe(2)
		defer cancelTwo()

		hub.Publish(event(1, entity.BattleStateChallengerSubmitted))

		select {
		case got := <-one:
			assert.Equal(t, int64(1), got.BattleID)
			assert.Equal(t, entity.BattleStateChallengerSubmitted, got.State)
		default:
			t.Fatal("expected an event for battle 1")
		}
		assert.Empty(t, two)
	})

	t.Run("cancel removes and closes", func(t *testing.T) {
		hub := NewHub(4, zap.NewNop())
		ch, cancel := hub.Subscribe(7)
		assert.Equal(t, 1, hub.Subscribers(7))

		cancel()
		cancel()

		assert.Equal(t, 0, hub.Subscribers(7))
		_, open := <-ch
		assert.False(t, open)

		hub.Publish(event(7, entity.BattleStateCompleted))
	})

	t.Run("close ends all subscriptions", func(t *testing.T) {
		hub := NewHub(4, zap.NewNop())
		a, cancelA := hub.Subscribe(1)
		b, _ := hub.Subscribe(2)

		hub.Close()
		cancelA()

		_, open := <-a
		assert.False(t, open)
		_, open = <-b
		assert.False(t, open)

		late, cancelLate := hub.Subscribe(1)
		defer cancelLate()
		_, open = <-late
		assert.False(t, open)
		assert.Equal(t, 0, hub.Subscribers(1))
	})

	t.Run("full buffer drops instead of blocking", func(t *testing.T) {
		hub := NewHub(1, zap.NewNop())
		ch, cancel := hub.Subscribe(3)
		defer cancel()

		hub.Publish(event(3, entity.BattleStateChallengerSubmitted))
		hub.Publish(event(3, entity.BattleStateOpponentResponded))

		assert.Len(t, ch, 1)
		assert.Equal(t, entity.BattleStateChallengerSubmitted, (<-ch).State)
	})

	t.Run("concurrent publish and cancel", func(t *testing.T) {
		hub := NewHub(DefaultBuffer, zap.NewNop())
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			_, cancel := hub.Subscribe(9)
			go func() {
				defer wg.Done()
				hub.Publish(event(9, entity.BattleStateCreated))
			}()
			go func() {
				defer wg.Done()
				cancel()
			}()
		}
		wg.Wait()

		assert.Equal(t, 0, hub.Subscribers(9))
	})
}

// streamServer upgrades every request and streams the hub's events for battle 5
func streamServer(t *testing.T, hub *Hub, initial entity.BattleState) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, cancel := hub.Subscribe(5)
		defer cancel()

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = Stream(context.Background(), conn, event(5, initial), events)
	}))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStream(t *testing.T) {
	t.Run("streams until completion", func(t *testing.T) {
		hub := NewHub(DefaultBuffer, zap.NewNop())
		srv := streamServer(t, hub, entity.BattleStateCreated)
		defer srv.Close()

		conn := dial(t, srv)
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var got service.BattleEvent
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, entity.BattleStateCreated, got.State)

		require.Eventually(t, func() bool { return hub.Subscribers(5) == 1 }, time.Second, 5*time.Millisecond)
		for _, state := range []entity.BattleState{
			entity.BattleStateChallengerSubmitted,
			entity.BattleStateOpponentResponded,
			entity.BattleStateCompleted,
		} {
			hub.Publish(event(5, state))
		}

		var states []entity.BattleState
		for i := 0; i < 3; i++ {
			require.NoError(t, conn.ReadJSON(&got))
			assert.Equal(t, int64(5), got.BattleID)
			states = append(states, got.State)
		}
		assert.Equal(t, []entity.BattleState{
			entity.BattleStateChallengerSubmitted,
			entity.BattleStateOpponentResponded,
			entity.BattleStateCompleted,
		}, states)

		_, _, err := conn.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
	})

	t.Run("completed battle sends one event and closes", func(t *testing.T) {
		hub := NewHub(DefaultBuffer, zap.NewNop())
		srv := streamServer(t, hub, entity.BattleStateCompleted)
		defer srv.Close()

		conn := dial(t, srv)
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var got service.BattleEvent
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, entity.BattleStateCompleted, got.State)

		_, _, err := conn.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
	})
}
