package searcher

// Search hyperparameters

// DefaultDepth is how many plies below the top-level choice are searched
// before the positional evaluation takes over.
const DefaultDepth = 2

// Terminal scores. Heuristic scores are always strictly between the two.
const Win = 1.0
const Loss = -Win
