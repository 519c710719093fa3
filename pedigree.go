package heredity

// MaxPedigreeSize is the most people a Pedigree can hold; subsets of people
// are represented as bits of a uint64.
const MaxPedigreeSize = 63

const noParent = -1

// Pedigree is a validated family tree. People are kept in load order and
// their parents are resolved to indices into that order. A Pedigree is never
// modified after NewPedigree returns and may be shared between goroutines.
type Pedigree struct {
	people []Person
	index  map[string]int
	mother []int
	father []int

	// Evidence, as bit patterns over people.
	present Subset
	absent  Subset
}

// NewPedigree validates records and resolves their parent references. Names
// must be unique and non-empty; parents must be both named or both blank and
// must name other records; nobody may be their own ancestor.
func NewPedigree(records []Person) (*Pedigree, error) {
	if len(records) > MaxPedigreeSize {
		return nil, invalid("", "%d people exceeds the limit of %d", len(records), MaxPedigreeSize)
	}

	p := &Pedigree{
		people: make([]Person, len(records)),
		index:  make(map[string]int, len(records)),
		mother: make([]int, len(records)),
		father: make([]int, len(records)),
	}
	copy(p.people, records)

	for i, person := range p.people {
		if person.Name == "" {
			return nil, invalid("", "record %d has no name", i+1)
		}
		if j, exists := p.index[person.Name]; exists {
			if p.people[j].Trait != person.Trait {
				return nil, invalid(person.Name, "conflicting trait observations %q and %q", p.people[j].Trait, person.Trait)
			}
			return nil, invalid(person.Name, "duplicate record")
		}
		if !person.Trait.Known() && person.Trait != Unknown {
			return nil, invalid(person.Name, "unrecognized trait observation %d", person.Trait)
		}
		p.index[person.Name] = i

		switch person.Trait {
		case Present:
			p.present = p.present.With(i)
		case Absent:
			p.absent = p.absent.With(i)
		}
	}

	for i, person := range p.people {
		p.mother[i], p.father[i] = noParent, noParent
		if person.Founder() {
			continue
		}
		if person.Mother == "" || person.Father == "" {
			return nil, invalid(person.Name, "mother and father must both be given or both be blank")
		}

		m, exists := p.index[person.Mother]
		if !exists {
			return nil, invalid(person.Name, "unknown mother %q", person.Mother)
		}
		f, exists := p.index[person.Father]
		if !exists {
			return nil, invalid(person.Name, "unknown father %q", person.Father)
		}
		p.mother[i], p.father[i] = m, f
	}

	if err := p.checkAcyclic(); err != nil {
		return nil, err
	}

	return p, nil
}

// checkAcyclic walks parent links depth first, failing on any back edge.
func (p *Pedigree) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]uint8, len(p.people))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return invalid(p.people[i].Name, "is their own ancestor")
		case done:
			return nil
		}
		state[i] = visiting
		for _, parent := range [...]int{p.mother[i], p.father[i]} {
			if parent == noParent {
				continue
			}
			if err := visit(parent); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range p.people {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// Len is the number of people.
func (p *Pedigree) Len() int {
	return len(p.people)
}

// Person returns the record at index i.
func (p *Pedigree) Person(i int) Person {
	return p.people[i]
}

// People returns a copy of the records in load order.
func (p *Pedigree) People() []Person {
	out := make([]Person, len(p.people))
	copy(out, p.people)
	return out
}

// Index returns the position of the named person.
func (p *Pedigree) Index(name string) (int, bool) {
	i, exists := p.index[name]
	return i, exists
}

// Parents returns the indices of the mother and father of person i. ok is
// false for founders.
func (p *Pedigree) Parents(i int) (mother, father int, ok bool) {
	if p.mother[i] == noParent {
		return noParent, noParent, false
	}
	return p.mother[i], p.father[i], true
}

// Founder reports whether person i has no recorded parents.
func (p *Pedigree) Founder(i int) bool {
	return p.mother[i] == noParent
}

// Trait returns the observed trait of person i.
func (p *Pedigree) Trait(i int) Observation {
	return p.people[i].Trait
}

// Unobserved is the number of people whose trait is unknown.
func (p *Pedigree) Unobserved() int {
	return p.Len() - (p.present | p.absent).Count()
}

func (p *Pedigree) everyone() Subset {
	return Full(p.Len())
}
