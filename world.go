package heredity

// World is one complete hypothesis: everyone in OneGene carries one copy,
// everyone in TwoGenes carries two, everyone else carries none, and exactly
// the people in HaveTrait express the trait. OneGene and TwoGenes never
// overlap.
type World struct {
	OneGene   Subset
	TwoGenes  Subset
	HaveTrait Subset
}

// Gene returns the gene count of person i in this world.
func (w World) Gene(i int) GeneCount {
	if w.OneGene.Has(i) {
		return OneCopy
	} else if w.TwoGenes.Has(i) {
		return TwoCopies
	}
	return NoCopies
}

// Trait reports whether person i has the trait in this world.
func (w World) Trait(i int) bool {
	return w.HaveTrait.Has(i)
}

// ConsistentWith reports whether the world agrees with every observed trait
// in the pedigree. Unknown traits never disagree. WorldReader only produces
// consistent worlds, so this is a sanity check for callers enumerating worlds
// some other way.
func (w World) ConsistentWith(p *Pedigree) bool {
	return w.HaveTrait&p.present == p.present && w.HaveTrait&p.absent == 0
}
