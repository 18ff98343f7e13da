package experiments

import (
	"fmt"
	"math/rand/v2"

	"schnapsen/engine"
	"schnapsen/experiments/metrics"
	"schnapsen/game"
	"schnapsen/meta"
	"schnapsen/player"
	"schnapsen/searcher"
	"schnapsen/searcher/agent"

	"github.com/rs/zerolog/log"
)

// DefaultAgents is the line-up of a standard tournament: the two benchmark
// players and a sequential and a root-parallel searcher.
func DefaultAgents(cfg meta.Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Kind: metrics.Random},
		{ID: 2, Kind: metrics.Greedy},
		{ID: 3, Kind: metrics.MCTS, Episodes: cfg.Episodes, Goroutines: 1, Exploration: cfg.Exploration},
		{ID: 4, Kind: metrics.MCTS, Episodes: cfg.Episodes, Goroutines: cfg.Goroutines, Exploration: cfg.Exploration, Determinize: true},
	}
}

// RunTournament plays cfg.Matches matches for every pairing of configs,
// alternating seats, and writes the results as CSV under cfg.OutputDir.
func RunTournament(cfg meta.Config, configs []metrics.AgentConfig) ([]metrics.Standing, error) {
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return runExperiment("tournament", cfg, configs, matchUps)
}

func runExperiment(name string, cfg meta.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]metrics.Standing, error) {
	rng := newRand(cfg.Seed)
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	standings := map[int]*metrics.Standing{}
	for _, c := range configs {
		standings[c.ID] = &metrics.Standing{Agent: c.ID}
	}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...", mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		for i := 0; i < cfg.Matches; i++ {
			// Alternate seats so neither agent always deals first
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			result, err := runMatch(config1, config2, rng)
			if err != nil {
				return nil, fmt.Errorf("matchup %d match %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			for _, c := range []metrics.AgentConfig{config1, config2} {
				standings[c.ID].Matches++
				if result.Winner == seatID(c) {
					standings[c.ID].Wins++
				}
			}

			log.Info().Msgf("completed matchup %d match %d with winner: %s", mi+1, i+1, result.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	out := make([]metrics.Standing, 0, len(configs))
	for _, c := range configs {
		out = append(out, *standings[c.ID])
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return out, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return out, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return out, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return out, err
	}
	if err := writer.WriteStandings(out); err != nil {
		return out, err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return out, nil
}

// runMatch plays one match between two agents and returns the result
func runMatch(config1, config2 metrics.AgentConfig, rng *rand.Rand) (engine.MatchResult, error) {
	e := engine.NewLocalEngine(
		engine.Seat{ID: seatID(config1), Player: NewPlayer(config1, rng)},
		engine.Seat{ID: seatID(config2), Player: NewPlayer(config2, rng)},
		rng,
		engine.LogActions,
	)
	return e.Run()
}

func seatID(config metrics.AgentConfig) game.PlayerID {
	return game.PlayerID(fmt.Sprintf("agent%d", config.ID))
}

// NewPlayer builds the player described by config.
func NewPlayer(config metrics.AgentConfig, rng *rand.Rand) game.Player {
	switch config.Kind {
	case metrics.Random:
		return player.NewRandom(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	case metrics.Greedy:
		return player.Greedy{}
	case metrics.MCTS:
		return agent.NewEvaluationAgent(createMCTS(config, rng))
	case metrics.Training:
		return agent.NewTrainingAgent(createMCTS(config, rng), 1.0, rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func createMCTS(config metrics.AgentConfig, rng *rand.Rand) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(rng.Uint64())}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Determinize {
		options = append(options, searcher.WithRootDeterminization())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
