package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is pushed to dashboard clients when an order is created or
// changes status.
type OrderEvent struct {
	Type         string `json:"type"` // "order.created" | "order.status"
	OrderID      uint   `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	OrderType    string `json:"orderType"`
	Status       string `json:"status"`
	Total        int64  `json:"total"`
	CustomerName string `json:"customerName,omitempty"`
}

type subscription struct {
	conn     *websocket.Conn
	tenantID uint
}

type tenantEvent struct {
	tenantID uint
	event    OrderEvent
}

// OrderHub fans order events out to every dashboard connection of a tenant.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // tenantID -> set of conns
	broadcast  chan tenantEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan tenantEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.tenantID] == nil {
				h.clients[sub.tenantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.tenantID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.tenantID][sub.conn]; ok {
				delete(h.clients[sub.tenantID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.tenantID] {
				if err := conn.WriteJSON(msg.event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.tenantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast never blocks checkout: when the buffer is full the event is
// dropped and logged.
func (h *OrderHub) Broadcast(tenantID uint, ev OrderEvent) {
	select {
	case h.broadcast <- tenantEvent{tenantID: tenantID, event: ev}:
	default:
		log.Printf("order feed buffer full, dropping event for tenant %d", tenantID)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS handled upstream
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. The feed is one way; inbound frames are discarded.
func (h *OrderHub) Serve(c *gin.Context, tenantID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{conn: conn, tenantID: tenantID}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
