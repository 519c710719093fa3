package heredity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/carbocation/pfx"
)

// ErrInvalidTables is returned when a probability table is out of range or
// the founder prior does not sum to 1.
var ErrInvalidTables = errors.New("invalid probability tables")

// Tables holds the conditional probability tables of the network. A Tables
// is a plain value: pass it by value and never mutate it during a run, so
// that concurrent runs with different tables cannot interfere.
type Tables struct {
	// Gene is the unconditional prior for founders, indexed by GeneCount.
	Gene [3]float64 `json:"gene"`

	// Trait is P(trait=true | gene count), indexed by GeneCount. The
	// probability of not having the trait is the complement.
	Trait [3]float64 `json:"trait"`

	// Mutation is the probability that a transmitted allele flips.
	Mutation float64 `json:"mutation"`
}

// DefaultTables returns the standard tables.
func DefaultTables() Tables {
	return Tables{
		Gene:     [3]float64{0.96, 0.03, 0.01},
		Trait:    [3]float64{0.01, 0.56, 0.65},
		Mutation: 0.01,
	}
}

const priorTolerance = 1e-9

// Validate checks that every entry is a probability and that the founder
// prior is a distribution.
func (t Tables) Validate() error {
	sum := 0.0
	for _, g := range GeneCounts {
		if !isProbability(t.Gene[g]) {
			return fmt.Errorf("%w: P(gene=%s) = %v", ErrInvalidTables, g, t.Gene[g])
		}
		if !isProbability(t.Trait[g]) {
			return fmt.Errorf("%w: P(trait | gene=%s) = %v", ErrInvalidTables, g, t.Trait[g])
		}
		sum += t.Gene[g]
	}
	if math.Abs(sum-1) > priorTolerance {
		return fmt.Errorf("%w: founder prior sums to %v", ErrInvalidTables, sum)
	}
	if !isProbability(t.Mutation) {
		return fmt.Errorf("%w: mutation rate = %v", ErrInvalidTables, t.Mutation)
	}

	return nil
}

// TraitProbability is P(trait = has | gene count = g).
func (t Tables) TraitProbability(g GeneCount, has bool) float64 {
	if has {
		return t.Trait[g]
	}
	return 1 - t.Trait[g]
}

// Transmission is the probability that a parent carrying g copies passes the
// allele on to a child, allowing for mutation.
func (t Tables) Transmission(g GeneCount) float64 {
	switch g {
	case TwoCopies:
		return 1 - t.Mutation
	case OneCopy:
		return 0.5
	default:
		return t.Mutation
	}
}

// Inheritance returns the distribution of a child's gene count, indexed by
// GeneCount, given the gene counts of the mother and father.
func (t Tables) Inheritance(mother, father GeneCount) [3]float64 {
	tm := t.Transmission(mother)
	tf := t.Transmission(father)

	return [3]float64{
		NoCopies:  (1 - tm) * (1 - tf),
		OneCopy:   tm*(1-tf) + tf*(1-tm),
		TwoCopies: tm * tf,
	}
}

// LoadTables parses tables from the given JSON file. Fields that are absent
// keep their default values; unknown fields are an error. The result is
// validated before it is returned.
func LoadTables(filename string) (Tables, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Tables{}, pfx.Err(err)
	}
	defer f.Close()

	decoder := json.NewDecoder(bufio.NewReader(f))
	decoder.DisallowUnknownFields()

	defaults := DefaultTables()
	t := &defaults
	// Decoding into **Tables is what detects a literal null.
	if err := decoder.Decode(&t); err != nil {
		return Tables{}, fmt.Errorf("error decoding JSON value in %v: %v", filename, err)
	}
	if t == nil {
		return Tables{}, fmt.Errorf("loading %v resulted in nil tables", filename)
	}
	if decoder.More() {
		return Tables{}, fmt.Errorf("found unexpected data after tables in %v", filename)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}

	return *t, nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
