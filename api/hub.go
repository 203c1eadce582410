package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

const writeWait = 2 * time.Second

var errRateLimited = errors.New("api: too many commands")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans rendered frames out to websocket clients. It is a game.Renderer.
// Slow clients miss frames rather than holding up the game.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
}

type client struct {
	send chan []byte
}

// NewHub returns a hub with no clients.
func NewHub() *Hub {
	return &Hub{clients: map[*client]struct{}{}}
}

// Render broadcasts the frame as JSON.
func (h *Hub) Render(f game.Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
	return nil
}

// Clients returns how many websocket clients are attached.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) subscribe() *client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &client{send: make(chan []byte, 8)}
	if h.last != nil {
		c.send <- h.last
	}
	h.clients[c] = struct{}{}
	return c
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// socket streams frames to the client and reads text messages from it as
// commands ("up", "pause", ...).
func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := s.hub.subscribe()
	go s.readCommands(r, conn, c)

	for data := range c.send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	s.hub.unsubscribe(c)
	conn.Close()
}

func (s *Server) readCommands(r *http.Request, conn *websocket.Conn, c *client) {
	defer s.hub.unsubscribe(c)

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("websocket read failed")
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		cmd, err := game.ParseCommand(string(message))
		if err != nil {
			log.WithField("message", string(message)).Debug("ignoring unknown websocket command")
			continue
		}
		if !s.limiter.Allow() {
			continue
		}
		if err := s.controller.Send(r.Context(), cmd); err != nil {
			log.WithError(err).Debug("unable to queue websocket command")
			return
		}
	}
}
