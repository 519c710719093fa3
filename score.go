package heredity

// JointProbability returns the probability of world w under the tables: the
// product over people of P(gene count | parents' gene counts, or the founder
// prior) times P(trait | gene count).
func JointProbability(p *Pedigree, t Tables, w World) float64 {
	return newScorer(p, t).score(w)
}

// scorer keeps a scratch buffer of per-person gene counts so the inner loop
// does not allocate. A scorer is not safe for concurrent use; each worker
// owns one.
type scorer struct {
	p      *Pedigree
	tables Tables
	genes  []GeneCount
}

func newScorer(p *Pedigree, t Tables) *scorer {
	return &scorer{
		p:      p,
		tables: t,
		genes:  make([]GeneCount, p.Len()),
	}
}

func (s *scorer) score(w World) float64 {
	for i := range s.genes {
		s.genes[i] = w.Gene(i)
	}

	total := 1.0
	for i, g := range s.genes {
		var geneProb float64
		if mother, father, ok := s.p.Parents(i); ok {
			geneProb = s.tables.Inheritance(s.genes[mother], s.genes[father])[g]
		} else {
			geneProb = s.tables.Gene[g]
		}

		total *= geneProb * s.tables.TraitProbability(g, w.Trait(i))
		if total == 0 {
			// Nothing further can raise it.
			return 0
		}
	}

	return total
}
