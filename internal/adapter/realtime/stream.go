package realtime

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Upgrader accepts cross-origin clients, matching the CORS policy of the API
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Stream writes initial and then every event from events to conn as JSON.
// It returns once a completed event has been written, the client goes
// away, events is closed or ctx ends. The connection is closed on return.
func Stream(ctx context.Context, conn *websocket.Conn, initial service.BattleEvent, events <-chan service.BattleEvent) error {
	defer conn.Close()

	gone := make(chan struct{})
	go readPump(conn, gone)

	if err := writeEvent(conn, initial); err != nil {
		return err
	}
	if initial.State == entity.BattleStateCompleted {
		return closeNormal(conn)
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return closeNormal(conn)
		case <-gone:
			return nil
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case event, ok := <-events:
			if !ok {
				return closeNormal(conn)
			}
			if err := writeEvent(conn, event); err != nil {
				return err
			}
			if event.State == entity.BattleStateCompleted {
				return closeNormal(conn)
			}
		}
	}
}

// readPump discards client frames and signals when the peer disconnects
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, event service.BattleEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(event)
}

func closeNormal(conn *websocket.Conn) error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	return conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
