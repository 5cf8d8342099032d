package game

import "fmt"

// Options configures one arena.
type Options struct {
	HalfWidth       float64 `json:"half_width" mapstructure:"half_width"`
	HalfHeight      float64 `json:"half_height" mapstructure:"half_height"`
	NumObstacles    int     `json:"num_obstacles" mapstructure:"num_obstacles"`
	MinObstacleSize float64 `json:"min_obstacle_size" mapstructure:"min_obstacle_size"`
	MaxObstacleSize float64 `json:"max_obstacle_size" mapstructure:"max_obstacle_size"`
	PlayerRadius    float64 `json:"player_radius" mapstructure:"player_radius"`
	PlayersPerTeam  int     `json:"players_per_team" mapstructure:"players_per_team"`
	Teams           int     `json:"teams" mapstructure:"teams"`
	Seed            int64   `json:"seed" mapstructure:"seed"`

	// Sizes overrides Teams and PlayersPerTeam with one entry per team.
	Sizes []int `json:"team_sizes,omitempty" mapstructure:"team_sizes"`
}

func DefaultOptions() Options {
	return Options{
		HalfWidth:       DefaultHalfWidth,
		HalfHeight:      DefaultHalfHeight,
		NumObstacles:    DefaultNumObstacles,
		MinObstacleSize: DefaultMinObstacleSize,
		MaxObstacleSize: DefaultMaxObstacleSize,
		PlayerRadius:    DefaultPlayerRadius,
		PlayersPerTeam:  DefaultPlayersPerTeam,
		Teams:           DefaultTeams,
	}
}

// TeamSizes returns the number of players for each team.
func (o Options) TeamSizes() []int {
	if len(o.Sizes) > 0 {
		return append([]int(nil), o.Sizes...)
	}
	if o.Teams <= 0 {
		return nil
	}
	sizes := make([]int, o.Teams)
	for i := range sizes {
		sizes[i] = o.PlayersPerTeam
	}
	return sizes
}

// Validate checks everything the arena builder assumes. All problems are
// reported together.
func (o Options) Validate() error {
	var errs ValidationErrors

	if o.HalfWidth <= 0 {
		errs = append(errs, ValidationError{Field: "half_width", Value: o.HalfWidth, Message: "must be positive"})
	}
	if o.HalfHeight <= 0 {
		errs = append(errs, ValidationError{Field: "half_height", Value: o.HalfHeight, Message: "must be positive"})
	}
	if o.NumObstacles < 0 || o.NumObstacles > MaxObstacles {
		errs = append(errs, ValidationError{Field: "num_obstacles", Value: o.NumObstacles, Message: fmt.Sprintf("must be between 0 and %d", MaxObstacles)})
	}
	if o.MinObstacleSize <= 0 {
		errs = append(errs, ValidationError{Field: "min_obstacle_size", Value: o.MinObstacleSize, Message: "must be positive"})
	}
	if o.MaxObstacleSize <= o.MinObstacleSize {
		errs = append(errs, ValidationError{Field: "max_obstacle_size", Value: o.MaxObstacleSize, Message: "must be greater than min_obstacle_size"})
	}
	if o.PlayerRadius <= 0 {
		errs = append(errs, ValidationError{Field: "player_radius", Value: o.PlayerRadius, Message: "must be positive"})
	}
	if o.PlayersPerTeam < 0 || o.PlayersPerTeam > MaxPlayersPerTeam {
		errs = append(errs, ValidationError{Field: "players_per_team", Value: o.PlayersPerTeam, Message: fmt.Sprintf("must be between 0 and %d", MaxPlayersPerTeam)})
	}
	for _, size := range o.Sizes {
		if size < 0 || size > MaxPlayersPerTeam {
			errs = append(errs, ValidationError{Field: "team_sizes", Value: size, Message: fmt.Sprintf("each size must be between 0 and %d", MaxPlayersPerTeam)})
			break
		}
	}

	// Count teams without TeamSizes so a huge Teams never allocates.
	teams := o.Teams
	if len(o.Sizes) > 0 {
		teams = len(o.Sizes)
	}
	if teams < MinTeams {
		errs = append(errs, ValidationError{Field: "teams", Value: teams, Message: "at least 2 teams are required"})
	}
	if teams > MaxTeams {
		errs = append(errs, ValidationError{Field: "teams", Value: teams, Message: fmt.Sprintf("at most %d teams are allowed", MaxTeams)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
