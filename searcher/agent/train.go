package agent

import (
	"math"
	"math/rand/v2"

	"schnapsen/experiments/metrics"
	"schnapsen/game"
	"schnapsen/searcher"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
	metric      metrics.SearchMetric
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples from the search policy sharpened by temperature. A nil rng uses the
// global source.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a *trainingAgent) SelectAction(state *game.MatchState, legal []game.Action) game.Action {
	policy, metric := a.mcts.Simulate(state)
	a.metric = metric

	probs := adjustTemperature(legalProbs(policy, legal), a.temperature)
	if probs == nil {
		return legal[0]
	}
	return legal[sample(probs, a.uniform())]
}

func (a *trainingAgent) LastSearch() metrics.SearchMetric {
	return a.metric
}

func (a *trainingAgent) uniform() float64 {
	if a.rng == nil {
		return rand.Float64()
	}
	return a.rng.Float64()
}

func legalProbs(policy searcher.Policy, legal []game.Action) []float64 {
	probs := make([]float64, len(legal))
	for i, action := range legal {
		probs[i] = policy.Prob(action)
	}
	return probs
}

// adjustTemperature raises each probability to 1/temperature and renormalizes.
// It returns nil if there is no mass to distribute.
func adjustTemperature(probs []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(probs))
	for i, p := range probs {
		adjusted[i] = math.Pow(p, exponent)
		sum += adjusted[i]
	}
	if sum == 0 {
		return nil
	}
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

// sample returns the index whose cumulative probability first exceeds u.
func sample(probs []float64, u float64) int {
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if u < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
