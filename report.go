package heredity

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport prints every person's distributions to four decimal places.
// A lone founder under the default tables prints as
//
//	Solo:
//	  Gene:
//	    2: 0.0100
//	    1: 0.0300
//	    0: 0.9600
//	  Trait:
//	    True: 0.0329
//	    False: 0.9671
func WriteReport(w io.Writer, result Result) error {
	bw := bufio.NewWriter(w)
	for _, d := range result.Distributions {
		fmt.Fprintf(bw, "%s:\n", d.Name)
		fmt.Fprintf(bw, "  Gene:\n")
		for g := len(GeneCounts) - 1; g >= 0; g-- {
			fmt.Fprintf(bw, "    %s: %.4f\n", GeneCounts[g], d.Gene[g])
		}
		fmt.Fprintf(bw, "  Trait:\n")
		fmt.Fprintf(bw, "    True: %.4f\n", d.HasTrait())
		fmt.Fprintf(bw, "    False: %.4f\n", d.LacksTrait())
	}
	return bw.Flush()
}
