package searcher

import (
	"fmt"
	"math"
	"math/rand/v2"

	"schnapsen/experiments/metrics"
	"schnapsen/game"
)

// node owns a private copy of the state reached by action from its parent.
// valueSum is kept from the perspective of the node's active player.
type node struct {
	state    *game.MatchState
	parent   *node
	action   game.Action
	untried  []game.Action
	children []*node
	visits   int
	valueSum float64
}

func newNode(parent *node, action game.Action, state *game.MatchState) *node {
	return &node{
		state:   state,
		parent:  parent,
		action:  action,
		untried: state.ValidMoves(),
	}
}

func (n *node) isFullyExpanded() bool {
	return len(n.untried) == 0 && len(n.children) > 0
}

func (n *node) isTerminal() bool {
	return n.state.RoundOver()
}

// selectChild returns the child with the highest UCB1 score. Ties go to the
// earliest expanded child.
func (n *node) selectChild(c float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		if score := n.ucb(child, c); score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

func (n *node) ucb(child *node, c float64) float64 {
	if child.visits == 0 {
		panic("cannot compute UCB: 0 visits")
	}
	q := (child.valueSum/float64(child.visits) + 1) / 2
	if child.state.ActivePlayer != n.state.ActivePlayer {
		q = 1 - q
	}
	return q + c*math.Sqrt(math.Log(float64(n.visits))/float64(child.visits))
}

// expand removes a random untried action and adds the child it leads to.
func (n *node) expand(rng *rand.Rand) *node {
	i := rng.IntN(len(n.untried))
	action := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)

	state := n.state.Copy()
	if err := state.Apply(action); err != nil {
		panic(fmt.Sprintf("expanding legal action: %v", err))
	}
	child := newNode(n, action, state)
	n.children = append(n.children, child)
	return child
}

// simulate estimates the node's value for its active player. Hidden cards are
// resampled from root's point of view and then random legal actions are
// played out to the end of the round.
func (n *node) simulate(root game.PlayerID, rng *rand.Rand, collector metrics.Collector) float64 {
	if n.isTerminal() {
		return value(n.state, n.state.ActivePlayer)
	}

	state := n.state.Copy()
	state.ShuffleImperfectInformation(root, rng)
	for !state.RoundOver() {
		moves := state.ValidMoves()
		if err := state.Apply(moves[rng.IntN(len(moves))]); err != nil {
			panic(fmt.Sprintf("rollout: %v", err))
		}
	}
	collector.AddFullPlayout()
	return value(state, n.state.ActivePlayer)
}

func (n *node) backpropagate(reward float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.valueSum += reward
		cur.visits++
		if cur.parent != nil && cur.parent.state.ActivePlayer != cur.state.ActivePlayer {
			reward = -reward
		}
	}
}

// value scores a finished round for player.
func value(state *game.MatchState, player game.PlayerID) float64 {
	v := float64(state.RoundWinnerMatchPoints) / maxMatchPoints
	if state.RoundWinner != player {
		v = -v
	}
	return v
}
