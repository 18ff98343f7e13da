package engine

import (
	"schnapsen/game"

	"github.com/rs/zerolog/log"
)

// LogActions logs every committed action at debug level.
var LogActions = game.ObserverFunc(func(state *game.MatchState, player game.PlayerID, action game.Action) {
	log.Debug().
		Int("round", state.Round).
		Str("player", string(player)).
		Stringer("action", action).
		Int("round_points", state.Player(player).RoundPoints).
		Msg("action")
})
