package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/football-dashboard/live"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type WebSocketHandler struct {
	hub      *live.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler accepts connections from the given origins. An empty
// list or "*" accepts any origin.
func NewWebSocketHandler(hub *live.Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	for _, o := range allowed {
		if o == "*" {
			allowed = nil
			break
		}
	}
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// ServeWs subscribes the client to refresh notifications for one resource.
// Clients connect to /ws/{room}, e.g. /ws/matches.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")
	if !live.ValidRoom(room) {
		notFoundResponse(w, r, "unknown room "+room)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the client
		log.Ctx(r.Context()).Warn().Err(err).Str("room", room).Msg("websocket upgrade failed")
		return
	}
	log.Ctx(r.Context()).Debug().Str("room", room).Msg("websocket connection upgraded")

	go live.NewClient(h.hub, conn, room).Serve()
}
