package searcher

import (
	"math/rand/v2"
	"sync"

	"schnapsen/experiments/metrics"
	"schnapsen/game"

	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

// MCTS searches a determinized game tree for the player to move. A single MCTS
// must not run searches concurrently; use WithGoroutines to parallelize one.
type MCTS struct {
	goroutines  int
	episodes    int
	exploration float64
	determinize bool
	rng         *rand.Rand
	metrics     metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithGoroutines grows that many independent trees from the same root and
// merges their root visit counts.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRootDeterminization resamples the hidden cards of the root once per
// tree, so expansion never sees the opponent's real hand.
func WithRootDeterminization() Option {
	return func(m *MCTS) {
		m.determinize = true
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:  1,
		episodes:    DefaultEpisodes,
		exploration: Exploration,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m
}

// Simulate searches state with the configured number of episodes.
func (m *MCTS) Simulate(state *game.MatchState) (Policy, metrics.SearchMetric) {
	return m.Search(state, m.episodes)
}

// Search runs episodes iterations of select, expand, simulate and backpropagate
// from a snapshot of state and returns the visit share of every root action.
// state itself is never modified.
func (m *MCTS) Search(state *game.MatchState, episodes int) (Policy, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.exploration)

	root := state.ActivePlayer
	shares := split(episodes, m.goroutines)
	trees := make([]*node, len(shares))

	var wg sync.WaitGroup
	for i, n := range shares {
		rng := rand.New(rand.NewPCG(m.rng.Uint64(), m.rng.Uint64()))
		snapshot := state.Copy()
		if m.determinize {
			snapshot.ShuffleImperfectInformation(root, rng)
		}
		trees[i] = newNode(nil, game.Action{}, snapshot)

		wg.Add(1)
		go func(tree *node, episodes int, rng *rand.Rand) {
			defer wg.Done()
			m.grow(tree, root, episodes, rng)
		}(trees[i], n, rng)
	}
	wg.Wait()

	var visits [game.ActionSpaceSize]int
	for _, tree := range trees {
		for _, child := range tree.children {
			i := game.ActionIndex(child.action)
			if i < 0 {
				log.Warn().Msgf("root child %v is outside the action space", child.action)
				continue
			}
			visits[i] += child.visits
		}
	}

	metric := m.metrics.Complete()
	return policyFromVisits(visits), metric
}

func (m *MCTS) grow(tree *node, root game.PlayerID, episodes int, rng *rand.Rand) {
	for i := 0; i < episodes; i++ {
		n := tree
		for n.isFullyExpanded() {
			n = n.selectChild(m.exploration)
		}

		var reward float64
		if n.isTerminal() {
			reward = value(n.state, n.state.ActivePlayer)
		} else {
			n = n.expand(rng)
			reward = n.simulate(root, rng, m.metrics)
		}
		n.backpropagate(reward)
		m.metrics.AddEpisode()
	}
}

// split divides episodes between at most goroutines workers.
func split(episodes, goroutines int) []int {
	if episodes <= 0 {
		return nil
	}
	if goroutines > episodes {
		goroutines = episodes
	}
	shares := make([]int, goroutines)
	for i := range shares {
		shares[i] = episodes / goroutines
		if i < episodes%goroutines {
			shares[i]++
		}
	}
	return shares
}
