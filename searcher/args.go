package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant, c = sqrt(2)

// Rewards are scored from the first player's point of view at every depth
const (
	WinReward  = 1.0
	DrawReward = 0.5
	LossReward = 0.0
)

// NoParent marks the root in the arena
const NoParent = -1

const rootIndex = 0
