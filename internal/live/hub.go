// Package live pushes JSON messages to websocket clients grouped in rooms.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"culturefest-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Room    string      `json:"room,omitempty"`
}

type outbound struct {
	room string
	data []byte
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	room string
}

// Hub owns every client. Only Run mutates rooms or closes a client's send channel.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan outbound
	done       chan struct{}

	mu    sync.RWMutex
	rooms map[string]map[*client]bool

	upgrader websocket.Upgrader
}

// NewHub accepts websocket upgrades from the given origins; an empty list allows any.
func NewHub(allowedOrigins []string) *Hub {
	allowed := map[string]bool{}
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan outbound, 64),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for room, clients := range h.rooms {
				for c := range clients {
					close(c.send)
				}
				delete(h.rooms, room)
				metrics.LiveClients.WithLabelValues(room).Set(0)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[c.room]; !ok {
				h.rooms[c.room] = make(map[*client]bool)
			}
			h.rooms[c.room][c] = true
			n := len(h.rooms[c.room])
			h.mu.Unlock()
			metrics.LiveClients.WithLabelValues(c.room).Set(float64(n))
			log.Printf("live: client joined %s (%d connected)", c.room, n)

		case c := <-h.unregister:
			h.drop(c)

		case msg := <-h.broadcast:
			h.mu.RLock()
			var slow []*client
			for c := range h.rooms[msg.room] {
				select {
				case c.send <- msg.data:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range slow {
				log.Printf("live: dropping slow client in %s", c.room)
				h.drop(c)
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	clients, ok := h.rooms[c.room]
	if !ok || !clients[c] {
		h.mu.Unlock()
		return
	}
	delete(clients, c)
	close(c.send)
	n := len(clients)
	if n == 0 {
		delete(h.rooms, c.room)
	}
	h.mu.Unlock()
	metrics.LiveClients.WithLabelValues(c.room).Set(float64(n))
}

// Publish queues a message for every client in room. It never blocks; when
// the queue is full the message is dropped and logged.
func (h *Hub) Publish(room, msgType string, payload interface{}) error {
	data, err := json.Marshal(Message{Type: msgType, Payload: payload, Room: room})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- outbound{room: room, data: data}:
	default:
		log.Printf("live: broadcast queue full, dropping %s for %s", msgType, room)
	}
	return nil
}

// Clients reports how many connections are in room.
func (h *Hub) Clients(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// ServeWS upgrades the request and joins room. When hello is set its message
// is sent first so the client starts from current state.
func (h *Hub) ServeWS(room string, hello func() (*Message, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("live: upgrade failed for %s: %v", room, err)
			return
		}

		cl := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), room: room}
		if hello != nil {
			if msg, err := hello(); err != nil {
				log.Printf("live: initial state for %s: %v", room, err)
			} else if msg != nil {
				msg.Room = room
				if data, err := json.Marshal(msg); err == nil {
					cl.send <- data
				}
			}
		}

		select {
		case h.register <- cl:
		case <-h.done:
			conn.Close()
			return
		}
		go cl.writePump()
		go cl.readPump()
	}
}

// readPump only watches for close and pong frames; client messages are discarded.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("live: read error in %s: %v", c.room, err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
