package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"schnapsen/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: MCTS, Episodes: 50, Goroutines: 2, Exploration: 1.5}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Winner: "agent1", Rounds: 4, TotalMoves: 60, StartTime: time.Now()}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Round: 1, Player: "agent1", Action: game.Action{Kind: game.CloseDeck}, SearchMetric: SearchMetric{Episodes: 50}}}}))
	require.NoError(t, w.WriteStandings([]Standing{{Agent: 1, Matches: 2, Wins: 1}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"1", "mcts", "50", "2", "1.5", "false"}, configs[1])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "agent1", games[1][4])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, "Close deck", moves[1][4])
	require.Equal(t, "50", moves[1][7])

	standings := readCSV(t, filepath.Join(w.Dir(), "standings.csv"))
	require.Equal(t, [][]string{{"agent", "matches", "wins"}, {"1", "2", "1"}}, standings)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4, 1.2)
	c.AddEpisode()
	c.AddEpisode()
	c.AddFullPlayout()
	m := c.Complete()

	require.Equal(t, 4, m.Goroutines)
	require.InDelta(t, 1.2, m.Exploration, 1e-9)
	require.Equal(t, 2, m.Episodes)
	require.Equal(t, 1, m.FullPlayouts)

	c.Start(1, 0)
	require.Zero(t, c.Complete().Episodes, "start resets the counters")
	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
