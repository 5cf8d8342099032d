// Package snapshot turns a built arena into a flat layout that UIs can
// consume as JSON or MessagePack.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/geometry"
	"github.com/ugaemi/graphfight-server/internal/render"
)

// Format names accepted by Encode and Decode.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

type Rect struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Width  float64 `json:"w" msgpack:"w"`
	Height float64 `json:"h" msgpack:"h"`
}

type Circle struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
}

type Player struct {
	ID      string  `json:"id" msgpack:"id"`
	Team    int     `json:"team" msgpack:"team"`
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	Radius  float64 `json:"r" msgpack:"r"`
	Alive   bool    `json:"alive" msgpack:"alive"`
	Formula string  `json:"formula,omitempty" msgpack:"formula,omitempty"`
}

type Team struct {
	Index   int      `json:"index" msgpack:"index"`
	Colour  string   `json:"colour" msgpack:"colour"`
	Area    Rect     `json:"area" msgpack:"area"`
	Players []Player `json:"players" msgpack:"players"`
}

// Layout is everything a client needs to draw a game.
type Layout struct {
	Code        string   `json:"code,omitempty" msgpack:"code,omitempty"`
	GameID      string   `json:"game_id" msgpack:"game_id"`
	Seed        int64    `json:"seed" msgpack:"seed"`
	State       string   `json:"state" msgpack:"state"`
	Attempts    int      `json:"attempts" msgpack:"attempts"`
	Area        Rect     `json:"area" msgpack:"area"`
	Obstacles   []Circle `json:"obstacles" msgpack:"obstacles"`
	Teams       []Team   `json:"teams" msgpack:"teams"`
	CurrentTeam int      `json:"current_team" msgpack:"current_team"`
}

// FromGame builds the layout of an initialized game.
func FromGame(g *game.Game) Layout {
	l := Layout{
		GameID:      g.ID,
		Seed:        g.Options.Seed,
		State:       g.State.String(),
		Attempts:    g.Attempts(),
		CurrentTeam: g.CurrentTeamIndex(),
	}
	if g.Arena == nil {
		return l
	}

	l.Area = rectOf(g.Arena.Area)
	l.Obstacles = make([]Circle, 0, len(g.Arena.Obstacles))
	for _, o := range g.Arena.Obstacles {
		l.Obstacles = append(l.Obstacles, circleOf(o.Shape))
	}

	l.Teams = make([]Team, 0, len(g.Arena.Teams))
	for _, t := range g.Arena.Teams {
		team := Team{
			Index:   t.Index,
			Colour:  render.TeamColorHex(t.Index),
			Area:    rectOf(t.Area),
			Players: make([]Player, 0, len(t.Players)),
		}
		for _, p := range t.Players {
			pos := p.Pos()
			team.Players = append(team.Players, Player{
				ID:      p.ID,
				Team:    p.Team,
				X:       pos.X,
				Y:       pos.Y,
				Radius:  p.Radius(),
				Alive:   p.IsAlive(),
				Formula: p.Formula,
			})
		}
		l.Teams = append(l.Teams, team)
	}
	return l
}

// Encode serializes l in the given format.
func Encode(l Layout, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.Marshal(l)
	case FormatMsgpack:
		return msgpack.Marshal(l)
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Decode parses data produced by Encode.
func Decode(data []byte, format string) (Layout, error) {
	var l Layout
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &l)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &l)
	default:
		err = fmt.Errorf("unknown snapshot format %q", format)
	}
	return l, err
}

func rectOf(r geometry.Rectangle) Rect {
	pos := r.Pos()
	return Rect{X: pos.X, Y: pos.Y, Width: r.Width(), Height: r.Height()}
}

func circleOf(c geometry.Circle) Circle {
	pos := c.Pos()
	return Circle{X: pos.X, Y: pos.Y, Radius: c.Radius()}
}
