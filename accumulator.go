package heredity

// Distribution is one person's posterior.
type Distribution struct {
	Name string

	// Gene is indexed by GeneCount.
	Gene [3]float64

	// Trait is indexed by traitIndex: 0 for absent, 1 for present.
	Trait [2]float64
}

// HasTrait is the probability that the person expresses the trait.
func (d Distribution) HasTrait() float64 {
	return d.Trait[traitIndex(true)]
}

// LacksTrait is the probability that the person does not express the trait.
func (d Distribution) LacksTrait() float64 {
	return d.Trait[traitIndex(false)]
}

// Result holds one Distribution per person, in pedigree order.
type Result struct {
	Distributions []Distribution

	// Worlds is how many worlds were scored to produce the result.
	Worlds uint64
}

// Lookup returns the distribution of the named person.
func (r Result) Lookup(name string) (Distribution, bool) {
	for _, d := range r.Distributions {
		if d.Name == name {
			return d, true
		}
	}
	return Distribution{}, false
}

func traitIndex(has bool) int {
	if has {
		return 1
	}
	return 0
}

// Accumulator sums world probabilities into un-normalized per-person
// buckets. Addition is commutative and associative, so partial accumulators
// built over disjoint sets of worlds can be merged in any grouping.
type Accumulator struct {
	p      *Pedigree
	gene   [][3]float64
	trait  [][2]float64
	worlds uint64
}

// NewAccumulator returns a zeroed accumulator for the pedigree.
func NewAccumulator(p *Pedigree) *Accumulator {
	return &Accumulator{
		p:     p,
		gene:  make([][3]float64, p.Len()),
		trait: make([][2]float64, p.Len()),
	}
}

// Add adds probability prob to the bucket matching each person's gene count
// and trait in w.
func (a *Accumulator) Add(w World, prob float64) {
	a.worlds++
	if prob == 0 {
		return
	}
	for i := range a.gene {
		a.gene[i][w.Gene(i)] += prob
		a.trait[i][traitIndex(w.Trait(i))] += prob
	}
}

// Merge adds every bucket of other into a.
func (a *Accumulator) Merge(other *Accumulator) {
	a.worlds += other.worlds
	for i := range a.gene {
		for j := range a.gene[i] {
			a.gene[i][j] += other.gene[i][j]
		}
		for j := range a.trait[i] {
			a.trait[i][j] += other.trait[i][j]
		}
	}
}

// Total is the sum of every probability added so far.
func (a *Accumulator) Total() float64 {
	if len(a.trait) == 0 {
		return 0
	}
	// Every world lands in exactly one trait bucket of person 0.
	return a.trait[0][0] + a.trait[0][1]
}

// Normalize rescales every distribution in place to sum to 1 and returns the
// result. A distribution that sums to zero means the evidence is impossible
// under the tables and is reported as an *InferenceError rather than
// producing NaN.
func (a *Accumulator) Normalize() (Result, error) {
	result := Result{
		Distributions: make([]Distribution, len(a.gene)),
		Worlds:        a.worlds,
	}

	for i := range a.gene {
		name := a.p.Person(i).Name
		if !normalize(a.gene[i][:]) {
			return Result{}, &InferenceError{Person: name, Variable: "gene"}
		}
		if !normalize(a.trait[i][:]) {
			return Result{}, &InferenceError{Person: name, Variable: "trait"}
		}
		result.Distributions[i] = Distribution{
			Name:  name,
			Gene:  a.gene[i],
			Trait: a.trait[i],
		}
	}

	return result, nil
}

func normalize(buckets []float64) bool {
	sum := 0.0
	for _, v := range buckets {
		sum += v
	}
	if sum == 0 {
		return false
	}
	for i := range buckets {
		buckets[i] /= sum
	}
	return true
}
