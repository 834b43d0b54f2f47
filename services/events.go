package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	eventClientsMu sync.Mutex
	eventClients   = make(map[*eventClient]bool)
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type eventClient struct {
	conn *websocket.Conn
	send chan []byte
}

// ChangeEvent tells connected portals which collection changed so they can
// refetch instead of polling on an interval.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	RecordID   string `json:"recordId"`
	At         int64  `json:"at"`
}

func ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket upgrade failed: " + err.Error()})
		return
	}
	client := &eventClient{conn: conn, send: make(chan []byte, 16)}
	eventClientsMu.Lock()
	eventClients[client] = true
	total := len(eventClients)
	eventClientsMu.Unlock()
	log.Printf("Event client connected. Total clients: %d", total)

	go client.writePump()
	go client.readPump()
}

// Notify broadcasts a change event to every connected client. Slow clients
// whose buffers are full are skipped rather than blocking the writer.
func Notify(collection, action, recordID string) {
	event := ChangeEvent{
		Collection: collection,
		Action:     action,
		RecordID:   recordID,
		At:         time.Now().Unix(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Error marshalling change event: ", err)
		return
	}
	eventClientsMu.Lock()
	for client := range eventClients {
		select {
		case client.send <- payload:
		default:
		}
	}
	eventClientsMu.Unlock()
}

func (c *eventClient) readPump() {
	defer func() {
		c.conn.Close()
		eventClientsMu.Lock()
		delete(eventClients, c)
		// closed under the lock, after removal, so Notify can never send
		// on a closed channel; this is what lets writePump exit
		close(c.send)
		total := len(eventClients)
		eventClientsMu.Unlock()
		log.Printf("Event client disconnected. Total clients: %d", total)
	}()
	for {
		// Clients only listen; reads just detect the close.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *eventClient) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			break
		}
		c.conn.WriteMessage(websocket.TextMessage, message)
	}
}
