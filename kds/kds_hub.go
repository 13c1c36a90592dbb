package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/titishya/fastfood-app/models"
	"github.com/titishya/fastfood-app/utils"
)

// Event types consumed by the manager dashboard.
const (
	EventNewOrder     = "newOrder"
	EventOrderUpdated = "orderUpdated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard session. Delivery is best effort: no
// backlog, no replay — a dashboard reconciles by refetching the order list
// when it (re)connects.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// RegisterClient -> add a dashboard connection to the set.
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = true
}

// UnregisterClient -> drop the connection and close it.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// ClientCount reports how many dashboards are connected.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastNewOrder -> announce a freshly placed order to every dashboard.
func (h *Hub) BroadcastNewOrder(order models.Order) {
	h.broadcast(Message{
		Event: EventNewOrder,
		Data:  order,
	})
}

// BroadcastOrderUpdate -> announce a status or payment change.
func (h *Hub) BroadcastOrderUpdate(order models.Order) {
	h.broadcast(Message{
		Event: EventOrderUpdated,
		Data:  order,
	})
}

// broadcast sends the message to every client. A connection that fails to
// take the write is evicted silently; the caller never sees an error.
func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s event: %v", msg.Event, err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Dropping dashboard client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
