package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ChatHub pushes new chat messages to websocket subscribers of a session.
// Messages posted over REST reach it through Notify.
type ChatHub struct {
	clients    map[uint]map[*websocket.Conn]bool // sessionID -> connections
	broadcast  chan BroadcastMessage
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	service    *services.ChatService
	log        *zap.Logger
}

type Subscription struct {
	Conn      *websocket.Conn
	SessionID uint
	Actor     services.ChatActor
}

type BroadcastMessage struct {
	SessionID uint
	Message   *entity.ChatMessage
}

func NewChatHub(service *services.ChatService, log *zap.Logger) *ChatHub {
	return &ChatHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan BroadcastMessage, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		service:    service,
		log:        log,
	}
}

// Run owns the subscriber map until Stop is called.
func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.SessionID] == nil {
				h.clients[sub.SessionID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.SessionID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.SessionID][sub.Conn]; ok {
				delete(h.clients[sub.SessionID], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.SessionID]) == 0 {
				delete(h.clients, sub.SessionID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.SessionID] {
				if err := conn.WriteJSON(msg.Message); err != nil {
					h.log.Debug("ws write failed", zap.Uint("sessionId", msg.SessionID), zap.Error(err))
					conn.Close()
					delete(h.clients[msg.SessionID], conn)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = map[uint]map[*websocket.Conn]bool{}
			h.mu.Unlock()
			return
		}
	}
}

func (h *ChatHub) Stop() {
	close(h.done)
}

// Notify queues the message for subscribers; it never blocks the caller.
func (h *ChatHub) Notify(sessionID uint, msg *entity.ChatMessage) {
	select {
	case h.broadcast <- BroadcastMessage{SessionID: sessionID, Message: msg}:
	default:
		h.log.Warn("ws broadcast queue full, dropping message", zap.Uint("sessionId", sessionID))
	}
}

// Subscribers is the number of live connections on a session.
func (h *ChatHub) Subscribers(sessionID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves /ws/chat/:sessionId behind WSAuthMiddleware.
func (h *ChatHub) HandleWebSocket(c *gin.Context) {
	sessionID, ok := utils.ParamID(c, "sessionId")
	if !ok {
		resp.BadRequest(c, "invalid sessionId")
		return
	}
	actor := services.ChatActor{
		UserID: utils.CurrentUserID(c),
		Staff:  utils.CurrentRole(c) == entity.RoleAdmin,
	}

	if _, err := h.service.Session(c.Request.Context(), actor, sessionID); err != nil {
		resp.NotFound(c, services.ErrSessionNotFound.Error())
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	sub := Subscription{Conn: conn, SessionID: sessionID, Actor: actor}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go h.listenMessages(sub)
}

// listenMessages stores messages typed into the socket. The service notifies
// the hub, which echoes them back to every subscriber.
func (h *ChatHub) listenMessages(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
			sub.Conn.Close()
		}
	}()

	for {
		_, data, err := sub.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("ws read failed", zap.Error(err))
			}
			return
		}

		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			h.log.Debug("ws invalid payload", zap.Error(err))
			continue
		}

		if _, err := h.service.Send(context.Background(), sub.Actor, sub.SessionID, payload.Body); err != nil {
			h.log.Debug("ws send rejected", zap.Uint("sessionId", sub.SessionID), zap.Error(err))
		}
	}
}
