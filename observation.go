package heredity

import (
	"database/sql/driver"
	"fmt"
)

// Observation is the recorded evidence about whether a person expresses the
// trait. Unknown never constrains inference.
type Observation int8

const (
	Unknown Observation = iota
	Absent
	Present
)

// ParseObservation reads the trait column of a pedigree record: "1" means
// the trait was observed, "0" means it was observed absent and an empty
// string means nothing is known.
func ParseObservation(s string) (Observation, error) {
	switch s {
	case "":
		return Unknown, nil
	case "0":
		return Absent, nil
	case "1":
		return Present, nil
	}

	return Unknown, fmt.Errorf("unrecognized trait value %q; expected \"1\", \"0\" or empty", s)
}

// Known reports whether the trait was observed either way.
func (o Observation) Known() bool {
	return o == Absent || o == Present
}

func (o Observation) String() string {
	switch o {
	case Unknown:
		return ""
	case Absent:
		return "0"
	case Present:
		return "1"

	default:
		return "Illegal selection"
	}
}

// Scan lets Observation be read from the trait column of a pedigree table,
// which holds the same literals as the CSV form.
func (o *Observation) Scan(v interface{}) error {
	var s string
	switch which := v.(type) {
	case nil:
	case string:
		s = which
	case []byte:
		s = string(which)
	case int64:
		s = fmt.Sprint(which)
	default:
		return fmt.Errorf("No appropriate type could be found to decode %v", v)
	}

	parsed, err := ParseObservation(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Value stores an Observation as its CSV literal.
func (o Observation) Value() (driver.Value, error) {
	return o.String(), nil
}
