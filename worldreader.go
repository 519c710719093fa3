package heredity

// WorldReader enumerates worlds one at a time without materializing them.
//
// The trait assignment is the outer loop and only visits assignments that
// agree with the evidence: observed people are fixed and only people with an
// unknown trait are varied. For each, every OneGene subset is visited, and
// for each of those every TwoGenes subset of the people *not* in OneGene, so
// the two gene sets are disjoint by construction and no world is produced
// twice.
//
// A pedigree of n people with k unknown traits yields 2^k * 3^n worlds. That
// is fine for a family of a dozen people and hopeless for hundreds; see
// Options.MaxPeople.
type WorldReader struct {
	WorldsSeen uint64

	everyone Subset
	fixed    Subset

	trait    submasks
	one      Subset
	oneStart Subset
	oneEnd   Subset
	two      submasks

	finished bool
}

// NewWorldReader returns a reader over every world consistent with the
// pedigree's trait evidence.
func (p *Pedigree) NewWorldReader() *WorldReader {
	return p.newWorldReader(0, Subset(1)<<uint(p.Len()), false)
}

// NewUnconstrainedWorldReader returns a reader over every world, ignoring
// the trait evidence entirely.
func (p *Pedigree) NewUnconstrainedWorldReader() *WorldReader {
	return p.newWorldReader(0, Subset(1)<<uint(p.Len()), true)
}

// newWorldReader restricts OneGene to the patterns in [oneStart, oneEnd).
// Since every integer below 2^n is a subset of n people, disjoint ranges
// partition the world space.
func (p *Pedigree) newWorldReader(oneStart, oneEnd Subset, unconstrained bool) *WorldReader {
	everyone := p.everyone()
	fixed, free := p.present, everyone&^(p.present|p.absent)
	if unconstrained {
		fixed, free = 0, everyone
	}

	wr := &WorldReader{
		everyone: everyone,
		fixed:    fixed,
		trait:    newSubmasks(free),
		one:      oneStart,
		oneStart: oneStart,
		oneEnd:   oneEnd,
		two:      newSubmasks(everyone &^ oneStart),
		finished: oneStart >= oneEnd,
	}

	return wr
}

// Read returns the next world. ok is false once every world has been read.
func (wr *WorldReader) Read() (w World, ok bool) {
	if wr.finished {
		return World{}, false
	}

	w = World{
		OneGene:   wr.one,
		TwoGenes:  wr.two.current,
		HaveTrait: wr.fixed | wr.trait.current,
	}
	wr.advance()
	wr.WorldsSeen++

	return w, true
}

func (wr *WorldReader) advance() {
	if wr.two.Next() {
		return
	}

	wr.one++
	if wr.one < wr.oneEnd {
		wr.two.Reset(wr.everyone &^ wr.one)
		return
	}

	if wr.trait.Next() {
		wr.one = wr.oneStart
		wr.two.Reset(wr.everyone &^ wr.one)
		return
	}

	wr.finished = true
}
