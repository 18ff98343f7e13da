package game

import "schnapsen/utils"

// ActionKind says what an Action does.
type ActionKind int

const (
	PlayCard ActionKind = iota
	PlayMarriage
	SwapTrump
	CloseDeck
)

func (k ActionKind) String() string {
	switch k {
	case PlayCard:
		return "play"
	case PlayMarriage:
		return "marriage"
	case SwapTrump:
		return "swap trump"
	case CloseDeck:
		return "close deck"
	default:
		return "unknown"
	}
}

// Action is a player's move. Card is set for PlayCard and PlayMarriage only.
// Actions are comparable, so structural equality is plain ==.
type Action struct {
	Kind ActionKind `json:"kind"`
	Card Card       `json:"card"`
}

func Play(card Card) Action { return Action{Kind: PlayCard, Card: card} }

func Marry(card Card) Action { return Action{Kind: PlayMarriage, Card: card} }

func (a Action) String() string {
	switch a.Kind {
	case PlayCard:
		return a.Card.String()
	case PlayMarriage:
		return "Play marriage - " + a.Card.String()
	case SwapTrump:
		return "Swap trump"
	case CloseDeck:
		return "Close deck"
	default:
		return a.Kind.String()
	}
}

// ActionSpaceSize is the number of slots in the global action space.
const ActionSpaceSize = 30

// ActionSpace enumerates every action that can ever be legal: 20 card plays,
// 8 marriage plays, swap trump and close deck. Policies are indexed by it.
var ActionSpace = buildActionSpace()

func buildActionSpace() [ActionSpaceSize]Action {
	var space [ActionSpaceSize]Action
	i := 0
	for _, s := range []Suit{Diamond, Spade, Heart, Club} {
		for _, r := range Ranks {
			space[i] = Play(Card{Suit: s, Rank: r})
			i++
		}
	}
	for _, s := range []Suit{Diamond, Spade, Heart, Club} {
		space[i] = Marry(Card{Suit: s, Rank: Queen})
		space[i+1] = Marry(Card{Suit: s, Rank: King})
		i += 2
	}
	space[i] = Action{Kind: SwapTrump}
	space[i+1] = Action{Kind: CloseDeck}
	return space
}

// ActionIndex returns the slot of a in ActionSpace, or -1.
func ActionIndex(a Action) int {
	return utils.FindIndex(ActionSpace[:], a)
}
