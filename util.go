package heredity

import "math"

// WorldCount is the number of worlds enumerated for n people of whom
// unobserved have an unknown trait: 2^unobserved trait assignments times 3^n
// gene assignments. It is a float64 because it overflows uint64 well within
// MaxPedigreeSize.
func WorldCount(n, unobserved int) float64 {
	return math.Pow(2, float64(unobserved)) * math.Pow(3, float64(n))
}

// TotalProbability sums the joint probability of every world, evidence
// ignored. For valid tables it is 1 up to rounding error.
func TotalProbability(p *Pedigree, t Tables) float64 {
	s := newScorer(p, t)
	wr := p.NewUnconstrainedWorldReader()

	total := 0.0
	for {
		w, ok := wr.Read()
		if !ok {
			break
		}
		total += s.score(w)
	}

	return total
}

// WhichSQLiteDriver names the database/sql driver the Store was built with.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
