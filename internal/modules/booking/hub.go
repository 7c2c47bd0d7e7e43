package booking

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one websocket connection per draft session and pushes
// lifecycle transition events to it. It satisfies TransitionNotifier.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(draftID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[draftID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[draftID] = conn
}

func (h *Hub) Unregister(draftID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[draftID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, draftID)
	}
}

// NotifyTransition writes the event to the draft's subscriber, if any.
// A failed write drops the connection.
func (h *Hub) NotifyTransition(ev TransitionEvent) {
	h.mutex.RLock()
	conn, exists := h.connections[ev.DraftID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return
	}

	if err := conn.WriteJSON(ev); err != nil {
		h.Unregister(ev.DraftID)
	}
}

// CloseDraft drops the subscription of a torn-down draft.
func (h *Hub) CloseDraft(draftID string) {
	h.Unregister(draftID)
}

func (h *Hub) IsSubscribed(draftID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[draftID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for draftID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, draftID)
	}
}
