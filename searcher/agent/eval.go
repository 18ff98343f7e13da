package agent

import (
	"schnapsen/experiments/metrics"
	"schnapsen/game"
	"schnapsen/searcher"

	"github.com/rs/zerolog/log"
)

type evaluationAgent struct {
	mcts   *searcher.MCTS
	metric metrics.SearchMetric
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return &evaluationAgent{mcts: mcts}
}

func (a *evaluationAgent) SelectAction(state *game.MatchState, legal []game.Action) game.Action {
	policy, metric := a.mcts.Simulate(state)
	a.metric = metric
	if action, ok := policy.Best(legal); ok {
		return action
	}
	log.Warn().Msgf("search explored no legal action, falling back to %v", legal[0])
	return legal[0]
}

func (a *evaluationAgent) LastSearch() metrics.SearchMetric {
	return a.metric
}
