package searcher

import (
	"fmt"
	"math"
)

// explorer scores the children of one parent, c^2 is fixed at CSquared.
type explorer struct {
	numerator float64 // c^2 * ln(N)
}

func newExplorer(parentVisits float64) explorer {
	if parentVisits <= 0 {
		panic(fmt.Sprintf("cannot score children of a node with %v visits", parentVisits))
	}
	return explorer{numerator: CSquared * math.Log(parentVisits)}
}

// score = wins/visits + sqrt(c^2*ln(N)/visits)
func (e explorer) score(wins, visits float64) float64 {
	if visits <= 0 {
		panic("cannot score an unvisited child")
	}
	return wins/visits + math.Sqrt(e.numerator/visits)
}
