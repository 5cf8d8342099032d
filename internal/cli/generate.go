package cli

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ugaemi/graphfight-server/internal/game"
	"github.com/ugaemi/graphfight-server/internal/render"
	"github.com/ugaemi/graphfight-server/internal/snapshot"
)

const formatText = "text"

// openScreen is replaced in tests with a simulation screen.
var openScreen = func() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one arena layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, v)
		},
	}

	d := game.DefaultOptions()
	f := cmd.Flags()
	f.Float64("half-width", d.HalfWidth, "half of the arena width")
	f.Float64("half-height", d.HalfHeight, "half of the arena height")
	f.Int("obstacles", d.NumObstacles, "number of obstacles")
	f.Float64("min-obstacle-size", d.MinObstacleSize, "smallest obstacle radius")
	f.Float64("max-obstacle-size", d.MaxObstacleSize, "largest obstacle radius")
	f.Float64("player-radius", d.PlayerRadius, "player radius")
	f.Int("players", d.PlayersPerTeam, "players per team")
	f.Int("teams", d.Teams, "number of teams")
	f.IntSlice("team-sizes", nil, "explicit player count per team (overrides --teams and --players)")
	f.Int64("seed", 0, "random seed")
	f.String("seed-text", "", "derive the seed from this text instead of --seed")
	f.StringP("format", "f", formatText, "output format: text, json or msgpack")
	f.Bool("preview", false, "draw the arena in the terminal and wait for a key")

	_ = v.BindPFlags(f)
	return cmd
}

func optionsFrom(v *viper.Viper) game.Options {
	opts := game.Options{
		HalfWidth:       v.GetFloat64("half-width"),
		HalfHeight:      v.GetFloat64("half-height"),
		NumObstacles:    v.GetInt("obstacles"),
		MinObstacleSize: v.GetFloat64("min-obstacle-size"),
		MaxObstacleSize: v.GetFloat64("max-obstacle-size"),
		PlayerRadius:    v.GetFloat64("player-radius"),
		PlayersPerTeam:  v.GetInt("players"),
		Teams:           v.GetInt("teams"),
		Sizes:           v.GetIntSlice("team-sizes"),
		Seed:            v.GetInt64("seed"),
	}
	if text := v.GetString("seed-text"); text != "" {
		opts.Seed = game.SeedFromString(text)
	}
	return opts
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	format := v.GetString("format")
	switch format {
	case formatText, snapshot.FormatJSON, snapshot.FormatMsgpack:
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	g, err := game.NewGame(optionsFrom(v))
	if err != nil {
		return err
	}
	if err := g.Init(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatText {
		writeText(out, g)
	} else {
		data, err := snapshot.Encode(snapshot.FromGame(g), format)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
		if format == snapshot.FormatJSON {
			fmt.Fprintln(out)
		}
	}

	if v.GetBool("preview") {
		return preview(g.Arena)
	}
	return nil
}

func writeText(w io.Writer, g *game.Game) {
	a := g.Arena
	fmt.Fprintf(w, "arena %gx%g seed=%d attempts=%d\n", a.Area.Width(), a.Area.Height(), g.Options.Seed, g.Attempts())
	for i, o := range a.Obstacles {
		pos := o.Shape.Pos()
		fmt.Fprintf(w, "obstacle %d (%.3f, %.3f) r=%.3f\n", i, pos.X, pos.Y, o.Shape.Radius())
	}
	for _, t := range a.Teams {
		fmt.Fprintf(w, "team %d %s zone %s\n", t.Index, render.TeamColorHex(t.Index), t.Area)
		for _, p := range t.Players {
			pos := p.Pos()
			fmt.Fprintf(w, "  player %s (%.3f, %.3f) r=%.3f\n", p.ID, pos.X, pos.Y, p.Radius())
		}
	}
}

// preview draws the arena and blocks until a key is pressed.
func preview(arena *game.Arena) error {
	screen, err := openScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	render.Draw(screen, arena)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			render.Draw(screen, arena)
		case nil:
			return nil
		}
	}
}
