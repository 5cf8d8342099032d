package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/session"
	"github.com/ugaemi/graphfight-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	games *GameHandler
}

// NewRouter creates a new message router. defaults fill in any option a
// create_game request leaves out.
func NewRouter(sm *session.Manager, defaults game.Options) *Router {
	return &Router{
		games: NewGameHandler(sm, defaults),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	case ws.TypeCreateGame:
		r.games.HandleCreateGame(cm.Client, msg)
	case ws.TypeGetLayout:
		r.games.HandleGetLayout(cm.Client, msg)
	case ws.TypeNextTurn:
		r.games.HandleNextTurn(cm.Client, msg)
	case ws.TypeKillPlayer:
		r.games.HandleKillPlayer(cm.Client, msg)
	case ws.TypeLeaveGame:
		r.games.HandleLeaveGame(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.games.HandleDisconnect(client)
}
