package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/prithvi1320/StyleSphere/models"
	"github.com/prithvi1320/StyleSphere/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderEvent is what the admin dashboard receives on its live feed.
type OrderEvent struct {
	Type  string       `json:"type"` // order_placed | status_changed
	Order models.Order `json:"order"`
}

// Hub fans order events out to connected admin dashboards.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *Hub) Broadcast(event OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// GET /admin/orders/ws
func OrderWebSocketHandler(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		hub.add(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.remove(conn)
				break
			}
		}
	}
}
