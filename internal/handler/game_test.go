package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/session"
	"github.com/ugaemi/graphfight-server/internal/snapshot"
	"github.com/ugaemi/graphfight-server/internal/ws"
)

type sentMessage struct {
	Type string
	Data json.RawMessage
}

func newTestClient(id string) *ws.Client {
	return &ws.Client{
		ID:   id,
		Send: make(chan []byte, 256),
	}
}

func testDefaults() game.Options {
	opts := game.DefaultOptions()
	opts.NumObstacles = 3
	opts.PlayersPerTeam = 2
	return opts
}

func send(t *testing.T, r *Router, c *ws.Client, msgType string, payload any) {
	t.Helper()
	msg, err := ws.NewMessage(msgType, payload)
	require.NoError(t, err)
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	r.HandleMessage(&ws.ClientMessage{Client: c, Data: data})
}

func readResponse(t *testing.T, c *ws.Client) sentMessage {
	t.Helper()
	select {
	case data := <-c.Send:
		var msg sentMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for response")
		return sentMessage{}
	}
}

func readError(t *testing.T, c *ws.Client) string {
	t.Helper()
	msg := readResponse(t, c)
	require.Equal(t, ws.TypeError, msg.Type)
	var em ws.ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &em))
	return em.Message
}

func createGame(t *testing.T, r *Router, c *ws.Client, seed int64) snapshot.Layout {
	t.Helper()
	send(t, r, c, ws.TypeCreateGame, map[string]any{"seed": seed, "teams": 3})
	msg := readResponse(t, c)
	require.Equal(t, ws.TypeGameLayout, msg.Type)

	var l snapshot.Layout
	require.NoError(t, json.Unmarshal(msg.Data, &l))
	return l
}

func TestHandleCreateGame(t *testing.T) {
	sm := session.NewManager()
	r := NewRouter(sm, testDefaults())
	c := newTestClient("c1")

	l := createGame(t, r, c, 42)
	assert.Len(t, l.Code, 4)
	assert.Equal(t, int64(42), l.Seed)
	assert.Equal(t, "playing", l.State)
	assert.Len(t, l.Teams, 3)
	assert.Len(t, l.Obstacles, 3)
	for _, team := range l.Teams {
		assert.Len(t, team.Players, 2)
	}

	s := sm.Get(l.Code)
	require.NotNil(t, s)
	assert.True(t, s.HasClient("c1"))
}

func TestHandleCreateGame_SameSeedSameLayout(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")

	a := createGame(t, r, c, 7)
	b := createGame(t, r, c, 7)
	assert.NotEqual(t, a.Code, b.Code)
	assert.Equal(t, a.Obstacles, b.Obstacles)
	for i := range a.Teams {
		for j := range a.Teams[i].Players {
			assert.Equal(t, a.Teams[i].Players[j].X, b.Teams[i].Players[j].X)
			assert.Equal(t, a.Teams[i].Players[j].Y, b.Teams[i].Players[j].Y)
		}
	}
}

func TestHandleCreateGame_SeedText(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")

	send(t, r, c, ws.TypeCreateGame, map[string]any{"seed_text": "monday"})
	msg := readResponse(t, c)
	require.Equal(t, ws.TypeGameLayout, msg.Type)

	var l snapshot.Layout
	require.NoError(t, json.Unmarshal(msg.Data, &l))
	assert.Equal(t, game.SeedFromString("monday"), l.Seed)
}

func TestHandleCreateGame_Msgpack(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")

	send(t, r, c, ws.TypeCreateGame, map[string]any{"seed": 5, "format": "msgpack"})

	queued := <-c.Send
	_, payload := ws.Frame(queued)
	require.Len(t, queued, len(payload)+1, "binary frame")

	l, err := snapshot.Decode(payload, snapshot.FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, int64(5), l.Seed)
	assert.Len(t, l.Teams, 2)
}

func TestHandleCreateGame_Errors(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		contains string
	}{
		{"one team", map[string]any{"teams": 1}, "at least 2 teams are required"},
		{"inverted sizes", map[string]any{"min_obstacle_size": 3.0, "max_obstacle_size": 1.0}, "max_obstacle_size"},
		{"bad radius", map[string]any{"player_radius": -1}, "player_radius"},
		{"huge team count", map[string]any{"teams": 1125899906842624}, "at most 64 teams"},
		{"oversized arena request", map[string]any{"players_per_team": 1000000, "player_radius": 0.001, "half_width": 10000}, "players_per_team"},
		{"too many obstacles", map[string]any{"num_obstacles": 100000}, "num_obstacles"},
		{"bad format", map[string]any{"format": "xml"}, "unknown format"},
		{"infeasible", map[string]any{"half_width": 5, "half_height": 5, "player_radius": 6, "num_obstacles": 0, "seed": 1}, "could not find a valid initial configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := session.NewManager()
			r := NewRouter(sm, testDefaults())
			c := newTestClient("c1")

			send(t, r, c, ws.TypeCreateGame, tt.payload)
			assert.Contains(t, readError(t, c), tt.contains)
			assert.Equal(t, 0, sm.Count())
		})
	}
}

func TestHandleGetLayout(t *testing.T) {
	sm := session.NewManager()
	r := NewRouter(sm, testDefaults())
	owner, watcher := newTestClient("c1"), newTestClient("c2")

	created := createGame(t, r, owner, 3)

	send(t, r, watcher, ws.TypeGetLayout, map[string]any{"code": created.Code})
	msg := readResponse(t, watcher)
	require.Equal(t, ws.TypeGameLayout, msg.Type)

	var l snapshot.Layout
	require.NoError(t, json.Unmarshal(msg.Data, &l))
	assert.Equal(t, created, l)
	assert.True(t, sm.Get(created.Code).HasClient("c2"))

	send(t, r, watcher, ws.TypeGetLayout, map[string]any{"code": "NOPE"})
	assert.Equal(t, "game not found", readError(t, watcher))

	send(t, r, watcher, ws.TypeGetLayout, map[string]any{})
	assert.Equal(t, "code is required", readError(t, watcher))
}

func TestHandleNextTurn(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")
	l := createGame(t, r, c, 9)

	for _, want := range []int{1, 2, 0} {
		send(t, r, c, ws.TypeNextTurn, map[string]any{"code": l.Code})
		msg := readResponse(t, c)
		require.Equal(t, ws.TypeTurn, msg.Type)

		var turn turnMessage
		require.NoError(t, json.Unmarshal(msg.Data, &turn))
		assert.Equal(t, want, turn.Team)
		assert.NotEmpty(t, turn.PlayerID)
	}
}

func TestHandleKillPlayer_EndsGame(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")

	send(t, r, c, ws.TypeCreateGame, map[string]any{"seed": 4})
	msg := readResponse(t, c)
	var l snapshot.Layout
	require.NoError(t, json.Unmarshal(msg.Data, &l))
	require.Len(t, l.Teams, 2)

	send(t, r, c, ws.TypeKillPlayer, map[string]any{"code": l.Code, "player_id": "ghost"})
	assert.Equal(t, "player not found", readError(t, c))

	victims := l.Teams[1].Players
	send(t, r, c, ws.TypeKillPlayer, map[string]any{"code": l.Code, "player_id": victims[0].ID})
	msg = readResponse(t, c)
	require.Equal(t, ws.TypeGameLayout, msg.Type)
	require.NoError(t, json.Unmarshal(msg.Data, &l))
	assert.False(t, l.Teams[1].Players[0].Alive)

	send(t, r, c, ws.TypeKillPlayer, map[string]any{"code": l.Code, "player_id": victims[1].ID})
	assert.Equal(t, ws.TypeGameLayout, readResponse(t, c).Type)

	msg = readResponse(t, c)
	require.Equal(t, ws.TypeGameOver, msg.Type)
	var over gameOverMessage
	require.NoError(t, json.Unmarshal(msg.Data, &over))
	assert.Equal(t, 0, over.Winner)

	send(t, r, c, ws.TypeNextTurn, map[string]any{"code": l.Code})
	assert.Equal(t, ws.TypeGameOver, readResponse(t, c).Type)
}

func TestHandleLeaveAndDisconnect(t *testing.T) {
	sm := session.NewManager()
	r := NewRouter(sm, testDefaults())
	c1, c2 := newTestClient("c1"), newTestClient("c2")

	a := createGame(t, r, c1, 1)
	b := createGame(t, r, c1, 2)
	send(t, r, c2, ws.TypeGetLayout, map[string]any{"code": b.Code})
	readResponse(t, c2)

	send(t, r, c1, ws.TypeLeaveGame, map[string]any{"code": a.Code})
	assert.Nil(t, sm.Get(a.Code))
	assert.Equal(t, 1, sm.Count())

	r.HandleDisconnect(c1)
	require.NotNil(t, sm.Get(b.Code))
	assert.False(t, sm.Get(b.Code).HasClient("c1"))

	r.HandleDisconnect(c2)
	assert.Equal(t, 0, sm.Count())
}

func TestHandleMessage_Invalid(t *testing.T) {
	r := NewRouter(session.NewManager(), testDefaults())
	c := newTestClient("c1")

	r.HandleMessage(&ws.ClientMessage{Client: c, Data: []byte("not json")})
	assert.Equal(t, "invalid message format", readError(t, c))

	send(t, r, c, "dance", nil)
	assert.Equal(t, "unknown message type: dance", readError(t, c))
}
