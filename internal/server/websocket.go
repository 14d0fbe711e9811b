package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsHub struct {
	mu     sync.Mutex
	groups map[string]map[*websocket.Conn]*sync.Mutex
}

func newWSHub() *wsHub {
	return &wsHub{
		groups: make(map[string]map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *wsHub) Add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.groups[gameID]
	if group == nil {
		group = make(map[*websocket.Conn]*sync.Mutex)
		h.groups[gameID] = group
	}
	group[conn] = &sync.Mutex{}
}

func (h *wsHub) Remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.groups[gameID]
	if group == nil {
		return
	}
	delete(group, conn)
	_ = conn.Close()
	if len(group) == 0 {
		delete(h.groups, gameID)
	}
}

func (h *wsHub) Count(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.groups[gameID])
}

func (h *wsHub) Send(gameID string, conn *websocket.Conn, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.Lock()
	writeMu := h.groups[gameID][conn]
	h.mu.Unlock()
	if writeMu == nil {
		return
	}
	writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	writeMu.Unlock()
	if err != nil {
		h.Remove(gameID, conn)
	}
}

func (h *wsHub) Broadcast(gameID string, payload any) {
	h.mu.Lock()
	group := h.groups[gameID]
	conns := make([]*websocket.Conn, 0, len(group))
	for conn := range group {
		conns = append(conns, conn)
	}
	h.mu.Unlock()
	for _, conn := range conns {
		h.Send(gameID, conn, payload)
	}
}

func (s *Server) handleWebsocket(c *gin.Context) {
	gameID := c.Param("id")
	snap, ok := s.lobbySnapshot(gameID)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	s.ws.Add(gameID, conn)
	s.logger.Info("ws connected", "game_id", gameID, "remote", c.Request.RemoteAddr, "clients", s.ws.Count(gameID))
	s.ws.Send(gameID, conn, snap)
	go s.readWS(gameID, conn)
}

func (s *Server) readWS(gameID string, conn *websocket.Conn) {
	defer s.ws.Remove(gameID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.logger.Debug("ws disconnected", "game_id", gameID, "error", err)
			return
		}
	}
}

func (s *Server) broadcastLobby(gameID string) {
	if s.ws == nil {
		return
	}
	snap, ok := s.lobbySnapshot(gameID)
	if !ok {
		return
	}
	s.ws.Broadcast(gameID, snap)
}
