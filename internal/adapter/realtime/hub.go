// Package realtime fans battle lifecycle events out to WebSocket clients.
package realtime

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
)

// DefaultBuffer is the per-subscriber event buffer. A battle emits at most
// four events, so a full buffer means the client stopped reading.
const DefaultBuffer = 8

// Hub keeps per-battle subscriptions and implements service.BattleNotifier
type Hub struct {
	mu     sync.RWMutex
	subs   map[int64]map[chan service.BattleEvent]struct{}
	closed bool
	buffer int
	logger *zap.Logger
}

// NewHub creates an empty hub
func NewHub(buffer int, logger *zap.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[int64]map[chan service.BattleEvent]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a listener for one battle. The returned func removes
// the subscription and closes the channel; it is safe to call more than once.
// After Close the channel is returned already closed.
func (h *Hub) Subscribe(battleID int64) (<-chan service.BattleEvent, func()) {
	ch := make(chan service.BattleEvent, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if h.subs[battleID] == nil {
		h.subs[battleID] = make(map[chan service.BattleEvent]struct{})
	}
	h.subs[battleID][ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if _, ok := h.subs[battleID][ch]; !ok {
			return
		}
		delete(h.subs[battleID], ch)
		if len(h.subs[battleID]) == 0 {
			delete(h.subs, battleID)
		}
		close(ch)
	}
}

// Close ends every subscription so open streams finish. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, subs := range h.subs {
		for ch := range subs {
			close(ch)
		}
	}
	h.subs = make(map[int64]map[chan service.BattleEvent]struct{})
	h.closed = true
}

// Publish delivers the event to every subscriber of the battle. Subscribers
// with a full buffer miss the event.
func (h *Hub) Publish(event service.BattleEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[event.BattleID] {
		select {
		case ch <- event:
		default:
			h.logger.Warn("Dropping battle event for slow subscriber",
				zap.Int64("battle_id", event.BattleID),
				zap.String("state", string(event.State)),
			)
		}
	}
}

// Subscribers returns the number of listeners for a battle
func (h *Hub) Subscribers(battleID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[battleID])
}
