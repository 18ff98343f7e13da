package experiments

import (
	"schnapsen/experiments/metrics"
	"schnapsen/meta"
)

// ThroughputGoroutines are the worker counts compared by RunThroughputExperiment.
var ThroughputGoroutines = []int{1, 2, 4, 8}

// RunThroughputExperiment pits each root-parallel searcher against an
// identical copy of itself, for the same playing strength and similar match
// length, and records the per-move search metrics.
func RunThroughputExperiment(cfg meta.Config) ([]metrics.Standing, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, g := range ThroughputGoroutines {
		config := metrics.AgentConfig{
			ID:          2*i + 1,
			Kind:        metrics.MCTS,
			Episodes:    cfg.Episodes,
			Goroutines:  g,
			Exploration: cfg.Exploration,
		}
		twin := config
		twin.ID++
		configs = append(configs, config, twin)
		matchUps = append(matchUps, []metrics.AgentConfig{config, twin})
	}
	return runExperiment("throughput", cfg, configs, matchUps)
}
