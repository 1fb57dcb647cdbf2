package report

import (
	"fmt"
	"io"
	"strings"
)

func WriteTable(w io.Writer, listing Listing) {
	fmt.Fprintln(w, "EXECUTION_ID\tNAME\tSTATUS\tKEYS")
	for _, c := range listing.Components {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ExecutionID, c.Name, c.Status, strings.Join(c.Keys, ","))
	}
}

func WriteMarkdown(w io.Writer, listing Listing) {
	fmt.Fprintf(w, "# Lightweight components\n\n")
	fmt.Fprintf(w, "- Source: %s\n\n", listing.Source)
	fmt.Fprintf(w, "| Execution ID | Name | Status | Keys |\n")
	fmt.Fprintf(w, "| --- | --- | --- | --- |\n")
	for _, c := range listing.Components {
		fmt.Fprintf(w, "| %d | %s | %s | %s |\n", c.ExecutionID, c.Name, c.Status, strings.Join(c.Keys, ", "))
	}

	var incomplete bool
	for _, c := range listing.Components {
		if len(c.Problems) > 0 {
			incomplete = true
			break
		}
	}
	if !incomplete {
		return
	}
	fmt.Fprintf(w, "\n## Problems\n")
	for _, c := range listing.Components {
		for _, problem := range c.Problems {
			fmt.Fprintf(w, "- %d: %s\n", c.ExecutionID, problem)
		}
	}
}
