package searcher

import "math"

// Hyperparameters for MCTS

const Exploration = math.Sqrt2 // UCB1 exploration constant

const DefaultEpisodes = 100

// Round values are match points on offer scaled into [-1, 1]
const maxMatchPoints = 3.0
