// Package live pushes store mutation events to websocket subscribers.
// Clients are listen-only; delivery is best-effort and a subscriber
// that cannot keep up is dropped.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	EventProgressUpdate = "progress_update"
	EventAdToggle       = "advertisement_toggle"
)

// Event is the envelope written to every subscriber.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Hub struct {
	mu         sync.Mutex
	sendChans  map[*websocket.Conn]chan []byte
	broadcast  chan Event
	unregister chan *websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		sendChans:  make(map[*websocket.Conn]chan []byte),
		broadcast:  make(chan Event, 100),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish queues an event for broadcast without blocking the caller.
// If the hub is backed up the event is dropped.
func (h *Hub) Publish(eventType string, data any) {
	select {
	case h.broadcast <- Event{Type: eventType, Data: data}:
	default:
		slog.Warn("live hub backed up, dropping event", "type", eventType)
	}
}

// Run handles unregistration and broadcasting until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.unregister:
			h.mu.Lock()
			if sendChan, ok := h.sendChans[conn]; ok {
				close(sendChan)
				delete(h.sendChans, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				slog.Error("marshal live event", "error", err)
				continue
			}

			h.mu.Lock()
			for conn, sendChan := range h.sendChans {
				select {
				case sendChan <- data:
				default:
					// slow subscriber, cut it loose
					delete(h.sendChans, conn)
					close(sendChan)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}
