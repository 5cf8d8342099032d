package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPositionNotFound is returned when a single placement exhausts its attempts.
	ErrPositionNotFound = errors.New("no valid position found")
	// ErrArenaExhausted is returned when every whole-arena attempt failed.
	ErrArenaExhausted = errors.New("could not find a valid initial configuration")
	// ErrInvalidOptions matches any ValidationErrors via errors.Is.
	ErrInvalidOptions = errors.New("invalid game options")
)

// EntityKind identifies what is being placed.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindObstacle
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// PlacementError records which entity could not be placed.
type PlacementError struct {
	Kind  EntityKind
	Team  int // -1 for obstacles
	Index int
	Err   error
}

func (e *PlacementError) Error() string {
	if e.Kind == KindObstacle {
		return fmt.Sprintf("obstacle %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("team %d player %d: %v", e.Team, e.Index, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// ValidationError represents a single invalid option.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Is makes errors.Is(err, ErrInvalidOptions) hold for validation failures.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidOptions
}
