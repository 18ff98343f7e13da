package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"schnapsen/experiments/metrics"
	"schnapsen/meta"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) meta.Config {
	cfg := meta.Default()
	cfg.Matches = 2
	cfg.Episodes = 10
	cfg.Goroutines = 2
	cfg.Seed = 11
	cfg.OutputDir = t.TempDir()
	return cfg
}

func TestRunTournament(t *testing.T) {
	cfg := testConfig(t)
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.Random},
		{ID: 2, Kind: metrics.Greedy},
		{ID: 3, Kind: metrics.MCTS, Episodes: 10, Goroutines: 2, Determinize: true},
	}

	standings, err := RunTournament(cfg, configs)
	require.NoError(t, err)

	require.Len(t, standings, 3)
	wins := 0
	for _, s := range standings {
		require.Equal(t, 4, s.Matches, "each agent plays two matches against both others")
		wins += s.Wins
	}
	require.Equal(t, 6, wins)

	runs, err := os.ReadDir(filepath.Join(cfg.OutputDir, "tournament"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv", "standings.csv"} {
		require.FileExists(t, filepath.Join(cfg.OutputDir, "tournament", runs[0].Name(), name))
	}
}

func TestNewPlayer(t *testing.T) {
	rng := newRand(1)
	for _, kind := range []metrics.AgentKind{metrics.Random, metrics.Greedy, metrics.MCTS, metrics.Training} {
		require.NotNil(t, NewPlayer(metrics.AgentConfig{Kind: kind, Episodes: 5}, rng))
	}
	require.Panics(t, func() { NewPlayer(metrics.AgentConfig{Kind: "human"}, rng) })
}

func TestDefaultAgents(t *testing.T) {
	configs := DefaultAgents(meta.Default())
	ids := map[int]bool{}
	for _, c := range configs {
		require.False(t, ids[c.ID], "duplicate agent id")
		ids[c.ID] = true
	}
}
