package metrics

// AgentKind names a player implementation available to experiments.
type AgentKind string

const (
	Random   AgentKind = "random"
	Greedy   AgentKind = "greedy"
	MCTS     AgentKind = "mcts"
	Training AgentKind = "mcts-training"
)

type AgentConfig struct {
	ID          int
	Kind        AgentKind
	Episodes    int
	Goroutines  int
	Exploration float64
	// Resample hidden cards at the root before each search
	Determinize bool
}

type Standing struct {
	Agent   int // AgentConfig.ID
	Matches int
	Wins    int
}
