package agent

import (
	"schnapsen/experiments/metrics"
	"schnapsen/game"
)

// Agent is a game.Player backed by a search.
type Agent interface {
	game.Player
	// LastSearch returns the metrics of the most recent search, if collected.
	LastSearch() metrics.SearchMetric
}
