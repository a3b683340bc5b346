package historyControllers

import (
	"net/http"
	"sync"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderEvent is pushed to dashboard clients whenever an order changes.
type OrderEvent struct {
	Event string        `json:"event"` // created | updated | cancelled
	Order *models.Order `json:"order"`
}

// OrderWebSocketHandler upgrades the connection and keeps it registered
// until the client goes away.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastOrderEvent(event string, order *models.Order) {
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		if err := client.WriteJSON(OrderEvent{Event: event, Order: order}); err != nil {
			client.Close()
			delete(wsClients, client)
		}
	}
}
