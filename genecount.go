package heredity

// GeneCount is the number of copies of the allele a person carries.
type GeneCount uint8

const (
	NoCopies GeneCount = iota
	OneCopy
	TwoCopies
)

// GeneCounts lists every value a GeneCount can take, in bucket order.
var GeneCounts = [...]GeneCount{NoCopies, OneCopy, TwoCopies}

func (g GeneCount) String() string {
	name := "NA"
	switch g {
	case NoCopies:
		name = "0"
	case OneCopy:
		name = "1"
	case TwoCopies:
		name = "2"
	}

	return name
}
