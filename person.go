package heredity

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// Person is one raw pedigree record. Mother and Father are names of other
// records, or empty for founders.
type Person struct {
	Name   string      `db:"name"`
	Mother string      `db:"mother"`
	Father string      `db:"father"`
	Trait  Observation `db:"trait"`
}

// Founder reports whether the record names no parents.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

var requiredColumns = [...]string{"name", "mother", "father", "trait"}

// ReadPeople parses CSV pedigree records. The first row is a header naming
// the columns name, mother, father and trait in any order; other columns are
// ignored. Records are returned in file order.
func ReadPeople(r io.Reader) ([]Person, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ValidationError{Reason: "pedigree file is empty"}
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, exists := columns[name]; !exists {
			return nil, invalid("", "missing column %q", name)
		}
	}

	// The csv reader already rejects rows whose width differs from the header.
	people := make([]Person, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, invalid("", "%v", parseErr)
			}
			return nil, pfx.Err(err)
		}

		name := strings.TrimSpace(row[columns["name"]])
		trait, err := ParseObservation(strings.TrimSpace(row[columns["trait"]]))
		if err != nil {
			return nil, invalid(name, "%v", err)
		}

		people = append(people, Person{
			Name:   name,
			Mother: strings.TrimSpace(row[columns["mother"]]),
			Father: strings.TrimSpace(row[columns["father"]]),
			Trait:  trait,
		})
	}

	return people, nil
}
