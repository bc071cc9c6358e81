package ws

import (
	"log"
	"net/http"
	"sync"

	"orderdesk/entity"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes newly placed orders to the connected admin dashboards of
// each restaurant. It is notification-only; the store stays the single
// source of truth.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> connections
	broadcast  chan feedEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type feedEvent struct {
	RestaurantID uint
	Payload      any
}

type orderPlacedMsg struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan feedEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops forever handling subscriptions and broadcasts.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderPlaced implements services.OrderNotifier.
func (h *OrderHub) OrderPlaced(restaurantID uint, order *entity.Order) {
	h.broadcast <- feedEvent{
		RestaurantID: restaurantID,
		Payload:      orderPlacedMsg{Type: "order.placed", Order: order},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes the caller to its own restaurant's feed.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	role := utils.CurrentRole(c)
	if role != entity.RoleAdmin && role != entity.RoleSuperadmin {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}

	restaurantID := utils.CurrentRestaurantID(c)
	if restaurantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no restaurant"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restaurantID}
	h.register <- sub

	// the feed is one-way; read only to notice the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
