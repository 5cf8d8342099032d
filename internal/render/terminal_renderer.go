package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/geometry"
)

const (
	runeFill = '█'
	runeDead = '×'
	runeZone = '·'
)

// TerminalRenderer draws an arena onto a tcell screen, scaled to fill it.
type TerminalRenderer struct {
	screen tcell.Screen
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Draw renders the arena: background, zone outlines, obstacles, then players.
func (r *TerminalRenderer) Draw(arena *game.Arena) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	vp := NewViewport(arena.Area, cols, rows)
	bg := tcell.StyleDefault.Background(RgbBackground)

	r.screen.Clear()
	r.screen.Fill(' ', bg)

	for _, team := range arena.Teams {
		r.drawZone(vp, team.Area, bg.Foreground(TeamColor(team.Index)))
	}

	obstacleStyle := bg.Foreground(RgbObstacle)
	for _, o := range arena.Obstacles {
		r.drawDisk(vp, o.Shape, runeFill, obstacleStyle)
	}

	for _, team := range arena.Teams {
		alive := bg.Foreground(TeamColor(team.Index))
		for _, p := range team.Players {
			if p.IsAlive() {
				r.drawDisk(vp, p.Shape, runeFill, alive)
				continue
			}
			col, row := vp.Cell(p.Pos())
			r.screen.SetContent(col, row, runeDead, nil, bg.Foreground(RgbDead))
		}
	}
}

// Draw renders arena onto screen and shows it.
func Draw(screen tcell.Screen, arena *game.Arena) {
	NewTerminalRenderer(screen).Draw(arena)
	screen.Show()
}

func (r *TerminalRenderer) drawZone(vp Viewport, zone geometry.Rectangle, style tcell.Style) {
	left, top, right, bottom := vp.CellBounds(zone)
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, runeZone, nil, style)
		r.screen.SetContent(x, bottom, runeZone, nil, style)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, runeZone, nil, style)
		r.screen.SetContent(right, y, runeZone, nil, style)
	}
}

// drawDisk fills every cell whose center lies in shape. The cell holding the
// center is always filled so small circles stay visible.
func (r *TerminalRenderer) drawDisk(vp Viewport, shape geometry.Circle, ch rune, style tcell.Style) {
	pos := shape.Pos()
	rad := shape.Radius()
	left, top := vp.Cell(geometry.NewPoint(pos.X-rad, pos.Y+rad))
	right, bottom := vp.Cell(geometry.NewPoint(pos.X+rad, pos.Y-rad))

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if shape.Contains(vp.Center(x, y)) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	col, row := vp.Cell(pos)
	r.screen.SetContent(col, row, ch, nil, style)
}
