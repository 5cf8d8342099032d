package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Team colours, cycled by team index
var TeamColors = []tcell.Color{
	tcell.NewRGBColor(255, 0, 0),    // red
	tcell.NewRGBColor(0, 0, 255),    // blue
	tcell.NewRGBColor(0, 255, 0),    // green
	tcell.NewRGBColor(246, 255, 82), // pale yellow
	tcell.NewRGBColor(255, 0, 255),  // magenta
	tcell.NewRGBColor(0, 255, 255),  // cyan
	tcell.NewRGBColor(164, 198, 57), // android green
	tcell.NewRGBColor(255, 175, 25), // orange
	tcell.NewRGBColor(223, 255, 0),  // chartreuse
	tcell.NewRGBColor(178, 25, 255), // purple
}

var (
	RgbBackground = tcell.NewRGBColor(255, 255, 255)
	RgbObstacle   = tcell.NewRGBColor(0, 0, 0)
	RgbDead       = tcell.NewRGBColor(128, 128, 128)
)

// TeamColor returns the colour of team idx.
func TeamColor(idx int) tcell.Color {
	if idx < 0 {
		idx = -idx
	}
	return TeamColors[idx%len(TeamColors)]
}

// TeamColorHex returns the team colour as "#rrggbb".
func TeamColorHex(idx int) string {
	return fmt.Sprintf("#%06x", TeamColor(idx).Hex())
}
