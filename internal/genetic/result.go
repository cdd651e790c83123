package genetic

import "time"

// Individual is an ordering of jobs paired with its decoded makespan.
// Orderings are never mutated after evaluation; operators always
// produce fresh orderings for fresh individuals.
type Individual struct {
	Order []int   `json:"order"`
	Cost  float64 `json:"cost"`
}

// Clone returns a value copy with its own backing array, so individuals
// carried across generations never alias the old population.
func (ind Individual) Clone() Individual {
	return Individual{
		Order: append([]int(nil), ind.Order...),
		Cost:  ind.Cost,
	}
}

// Result is the outcome of a solver run.
type Result struct {
	// Best is the minimum-cost individual found over the whole run.
	Best Individual `json:"best"`
	// History holds the best cost per generation, starting with the
	// initial population (generation 0). Elitism makes it non-increasing.
	History []float64 `json:"history"`
	// Evaluations counts decoder invocations.
	Evaluations int `json:"evaluations"`
	// Generations is the number of generation steps performed.
	Generations int `json:"generations"`
	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`
}
