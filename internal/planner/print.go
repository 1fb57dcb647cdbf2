package planner

import (
	"fmt"
	"io"
)

func Render(w io.Writer, plan Plan) {
	fmt.Fprintf(w, "Execution ID: %d\n", plan.ExecutionID)
	fmt.Fprintf(w, "Component: %s\n", plan.Component)
	if len(plan.Overrides) > 0 {
		fmt.Fprintf(w, "Overrides: %v\n", SortedOverrides(plan.Overrides))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Documents:")
	for _, doc := range plan.Documents {
		fmt.Fprintf(w, "- %s (%d properties)\n", doc.FileName(), len(doc.Properties))
		for _, prop := range doc.Properties {
			fmt.Fprintf(w, "    %s = %s\n", prop.Name, prop.Value)
		}
	}
}
