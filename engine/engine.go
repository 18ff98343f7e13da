package engine

import (
	"schnapsen/experiments/metrics"
	"schnapsen/game"
)

// MaxRounds stops a match that fails to reach the match point limit.
const MaxRounds = 100

type MatchResult struct {
	Winner game.PlayerID
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

type Engine interface {
	// Run plays a match till there's a winner or MaxRounds rounds have been dealt
	Run() (MatchResult, error)
}

// Seat binds a player implementation to its id in the match.
type Seat struct {
	ID     game.PlayerID
	Player game.Player
}

// searchReporter is implemented by players that can report search metrics.
type searchReporter interface {
	LastSearch() metrics.SearchMetric
}
