// Package server exposes Ataxx games over websockets: each room pairs a
// browser-connected human playing Red against the engine's searcher as Blue.
package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is what clients send over the socket.
type Message struct {
	Type   string   `json:"type"` // "move", "state", or "reset"
	Move   string   `json:"move,omitempty"`
	Blocks []string `json:"blocks,omitempty"`
}

// Server routes websocket and state requests to rooms, creating rooms on
// first use.
type Server struct {
	depth int
	seed  uint64

	mu    sync.Mutex
	rooms map[string]*Room
}

// New returns a server whose AI opponents search depth plies.
func New(depth int, seed uint64) *Server {
	return &Server{
		depth: depth,
		seed:  seed,
		rooms: make(map[string]*Room),
	}
}

// Router returns the gin router serving /ws, /api/state, and /api/rooms.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/ws", s.handleWebSocket)
	router.GET("/api/state", s.handleState)
	router.POST("/api/rooms", s.handleCreateRoom)
	return router
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("server listening")
	return s.Router().Run(addr)
}

func (s *Server) room(id string) *Room {
	if id == "" {
		id = "default"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		room = NewRoom(id, s.depth, s.seed)
		s.rooms[id] = room
		log.Info().Str("room", id).Msg("room created")
	}
	return room
}

func (s *Server) handleState(c *gin.Context) {
	room := s.room(c.Query("room"))
	c.JSON(http.StatusOK, room.State())
}

// handleCreateRoom starts a fresh game in the named room, applying any
// pre-game blocks, and returns the opening position.
func (s *Server) handleCreateRoom(c *gin.Context) {
	var req struct {
		Room   string   `json:"room"`
		Blocks []string `json:"blocks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorUpdate(err.Error()))
		return
	}

	room := s.room(req.Room)
	update := room.Reset(req.Blocks)
	if update.Type == "error" {
		c.JSON(http.StatusBadRequest, update)
		return
	}
	log.Info().Str("room", room.ID).Strs("blocks", req.Blocks).Msg("room created")
	c.JSON(http.StatusCreated, update)
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	room := s.room(c.Query("room"))
	if err := conn.WriteJSON(room.State()); err != nil {
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info().Str("room", room.ID).Err(err).Msg("client disconnected")
			return
		}

		var update Update
		switch msg.Type {
		case "move":
			update = room.HandleMove(msg.Move)
		case "state":
			update = room.State()
		case "reset":
			update = room.Reset(msg.Blocks)
		default:
			update = errorUpdate("unknown message type " + msg.Type)
		}

		if err := conn.WriteJSON(update); err != nil {
			log.Warn().Str("room", room.ID).Err(err).Msg("write failed")
			return
		}
	}
}
