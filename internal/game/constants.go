package game

// Placement budgets
const (
	MaxPlacementAttempts = 100 // candidate draws per entity
	MaxArenaAttempts     = 100 // whole-arena rebuilds before giving up
)

// Obstacle sizing
const (
	ObstacleSizeStdDev = 0.8 // world units
)

// Limits on what one request may ask for
const (
	MinTeams          = 2
	MaxTeams          = 64
	MaxPlayersPerTeam = 256
	MaxObstacles      = 1024
)

// Defaults used when no options are supplied
const (
	DefaultHalfWidth       = 20.0
	DefaultHalfHeight      = 10.0
	DefaultNumObstacles    = 8
	DefaultMinObstacleSize = 0.2
	DefaultMaxObstacleSize = 2.0
	DefaultPlayerRadius    = 0.5
	DefaultPlayersPerTeam  = 4
	DefaultTeams           = 2
)
