package framework

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// PrintResults writes the final pass/fail breakdown for one suite's results.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		passColor.Fprintf(w, "All tests passed (%d run)\n", len(results.Tests))
		return
	}
	failColor.Fprintf(w, "FAILED TESTS (%d/%d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			fmt.Fprintf(w, "    - %s\n", err)
		}
	}
}
