package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"schnapsen/experiments/metrics"
	"schnapsen/game"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	seats     [2]Seat
	rng       *rand.Rand
	observers []game.Observer
}

// NewLocalEngine plays a match in-process between two seats. A nil rng uses
// the global source.
func NewLocalEngine(a, b Seat, rng *rand.Rand, observers ...game.Observer) Engine {
	if a.ID == b.ID {
		panic("players need distinct ids")
	}
	return &localEngine{
		seats:     [2]Seat{a, b},
		rng:       rng,
		observers: observers,
	}
}

func (e *localEngine) player(id game.PlayerID) game.Player {
	if e.seats[0].ID == id {
		return e.seats[0].Player
	}
	return e.seats[1].Player
}

// Run executes the entire match loop until a winner is found.
func (e *localEngine) Run() (MatchResult, error) {
	state := game.NewMatch(e.seats[0].ID, e.seats[1].ID, e.rng)
	result := MatchResult{
		Game: metrics.GameMetric{
			StartingPlayer: state.PlayerWith1stDeal,
			StartTime:      time.Now(),
		},
	}

	log.Info().Msgf("%s deals first", state.PlayerWith1stDeal)

	step := 0
	for !state.MatchOver() && state.Round < MaxRounds {
		state.ResetRound(nil, e.rng)
		log.Debug().Msgf("round %d: trump is %v", state.Round, state.TrumpCard)

		for !state.RoundOver() {
			legal := state.ValidMoves()
			active := state.ActivePlayer
			p := e.player(active)

			action := p.SelectAction(state, legal)
			if err := state.Apply(action, e.observers...); err != nil {
				return result, fmt.Errorf("round %d step %d: %w", state.Round, step, err)
			}
			step++

			move := metrics.MoveMetric{Step: step, Round: state.Round, Player: active, Action: action}
			if r, ok := p.(searchReporter); ok {
				move.SearchMetric = r.LastSearch()
			}
			result.Moves = append(result.Moves, move)
		}

		log.Info().Msgf("round %d won by %s for %d match points (%d:%d)",
			state.Round, state.RoundWinner, state.RoundWinnerMatchPoints,
			state.Player(e.seats[0].ID).MatchPoints, state.Player(e.seats[1].ID).MatchPoints)
	}

	if !state.MatchOver() {
		log.Warn().Msgf("stopped after %d rounds without a winner", state.Round)
	}

	result.Winner = state.MatchWinner
	result.Game.Winner = state.MatchWinner
	result.Game.Rounds = state.Round
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = step
	return result, nil
}

// RunMatches plays n matches between a and b and counts the wins of each.
func RunMatches(n int, a, b Seat, rng *rand.Rand, observers ...game.Observer) (map[game.PlayerID]int, error) {
	wins := map[game.PlayerID]int{a.ID: 0, b.ID: 0}
	for i := 0; i < n; i++ {
		result, err := NewLocalEngine(a, b, rng, observers...).Run()
		if err != nil {
			return wins, fmt.Errorf("match %d: %w", i+1, err)
		}
		if result.Winner != "" {
			wins[result.Winner]++
		}
	}
	log.Info().Msgf("%s won %d and %s won %d of %d matches", a.ID, wins[a.ID], b.ID, wins[b.ID], n)
	return wins, nil
}
