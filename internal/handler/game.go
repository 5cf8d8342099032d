package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/session"
	"github.com/ugaemi/graphfight-server/internal/snapshot"
	"github.com/ugaemi/graphfight-server/internal/ws"
)

// GameHandler handles game generation and turn messages.
type GameHandler struct {
	sm       *session.Manager
	defaults game.Options
}

// NewGameHandler creates a new game handler.
func NewGameHandler(sm *session.Manager, defaults game.Options) *GameHandler {
	return &GameHandler{
		sm:       sm,
		defaults: defaults,
	}
}

type createGameRequest struct {
	game.Options
	Seed     *int64 `json:"seed"`
	SeedText string `json:"seed_text"`
	Format   string `json:"format"`
}

type codeRequest struct {
	Code   string `json:"code"`
	Format string `json:"format"`
}

type killPlayerRequest struct {
	Code     string `json:"code"`
	PlayerID string `json:"player_id"`
}

type turnMessage struct {
	Code     string `json:"code"`
	Team     int    `json:"team"`
	PlayerID string `json:"player_id"`
}

type gameOverMessage struct {
	Code   string `json:"code"`
	Winner int    `json:"winner"`
}

// HandleCreateGame validates the requested options, builds the arena and
// replies with its layout. The client is subscribed to the new session.
func (h *GameHandler) HandleCreateGame(client *ws.Client, msg ws.Message) {
	req := createGameRequest{Options: h.defaults}
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid create_game request"))
			return
		}
	}
	if !validFormat(req.Format) {
		client.SendMessage(ws.NewErrorMessage("unknown format: " + req.Format))
		return
	}

	opts := req.Options
	switch {
	case req.Seed != nil:
		opts.Seed = *req.Seed
	case req.SeedText != "":
		opts.Seed = game.SeedFromString(req.SeedText)
	default:
		opts.Seed = time.Now().UnixNano()
	}

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Info("create_game rejected", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
	if err := g.Init(); err != nil {
		text := err.Error()
		if errors.Is(err, game.ErrArenaExhausted) {
			text = game.ErrArenaExhausted.Error()
		}
		client.SendMessage(ws.NewErrorMessage(text))
		return
	}

	s := h.sm.Create(g)
	s.AddClient(client.ID, client)
	sendLayout(client, s.Layout(), req.Format)

	slog.Info("game created", "client", client.ID, "code", s.Code, "seed", opts.Seed, "attempts", g.Attempts())
}

// HandleGetLayout replies with the layout of an existing session and
// subscribes the client to it.
func (h *GameHandler) HandleGetLayout(client *ws.Client, msg ws.Message) {
	var req codeRequest
	s := h.lookup(client, msg, &req)
	if s == nil {
		return
	}
	if !validFormat(req.Format) {
		client.SendMessage(ws.NewErrorMessage("unknown format: " + req.Format))
		return
	}

	s.AddClient(client.ID, client)
	sendLayout(client, s.Layout(), req.Format)
}

// HandleNextTurn passes the turn to the next living team and tells every
// subscriber. When no other team is alive the game is over instead.
func (h *GameHandler) HandleNextTurn(client *ws.Client, msg ws.Message) {
	var req codeRequest
	s := h.lookup(client, msg, &req)
	if s == nil {
		return
	}

	team, player, ok := s.NextTurn()
	if !ok {
		broadcast(s, ws.TypeGameOver, gameOverMessage{Code: s.Code, Winner: s.Winner()})
		return
	}

	turn := turnMessage{Code: s.Code, Team: team}
	if player != nil {
		turn.PlayerID = player.ID
	}
	broadcast(s, ws.TypeTurn, turn)
}

// HandleKillPlayer marks a player dead and pushes the new layout.
func (h *GameHandler) HandleKillPlayer(client *ws.Client, msg ws.Message) {
	var req killPlayerRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" || req.PlayerID == "" {
		client.SendMessage(ws.NewErrorMessage("code and player_id are required"))
		return
	}

	s := h.sm.Get(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("game not found"))
		return
	}
	if !s.KillPlayer(req.PlayerID) {
		client.SendMessage(ws.NewErrorMessage("player not found"))
		return
	}

	broadcast(s, ws.TypeGameLayout, s.Layout())
	if s.State() == game.StateOver {
		broadcast(s, ws.TypeGameOver, gameOverMessage{Code: s.Code, Winner: s.Winner()})
	}
}

// HandleLeaveGame unsubscribes the client from one session.
func (h *GameHandler) HandleLeaveGame(client *ws.Client, msg ws.Message) {
	var req codeRequest
	s := h.lookup(client, msg, &req)
	if s == nil {
		return
	}
	h.sm.Leave(s, client.ID)
	slog.Info("client left game", "client", client.ID, "code", s.Code)
}

// HandleDisconnect drops the client from every session it watched.
func (h *GameHandler) HandleDisconnect(client *ws.Client) {
	h.sm.LeaveAll(client.ID)
}

func (h *GameHandler) lookup(client *ws.Client, msg ws.Message, req *codeRequest) *session.Session {
	if err := json.Unmarshal(msg.Data, req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return nil
	}
	s := h.sm.Get(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("game not found"))
		return nil
	}
	return s
}

func validFormat(format string) bool {
	return format == "" || format == snapshot.FormatJSON || format == snapshot.FormatMsgpack
}

// sendLayout writes a game_layout message as JSON text, or the bare layout
// as a MessagePack binary frame.
func sendLayout(client *ws.Client, l snapshot.Layout, format string) {
	if format == snapshot.FormatMsgpack {
		data, err := snapshot.Encode(l, format)
		if err != nil {
			slog.Error("failed to encode layout", "error", err)
			client.SendMessage(ws.NewErrorMessage("failed to encode layout"))
			return
		}
		client.SendBinary(data)
		return
	}

	resp, err := ws.NewMessage(ws.TypeGameLayout, l)
	if err != nil {
		slog.Error("failed to marshal layout", "error", err)
		return
	}
	client.SendMessage(resp)
}

func broadcast(s *session.Session, msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to marshal message", "type", msgType, "error", err)
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal message", "type", msgType, "error", err)
		return
	}
	s.Broadcast(data)
}
