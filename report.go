package main

import (
	"fmt"
	"io"
)

// WriteReport prints a delivery plan in its execution order. The report
// opens with the address listing sorted by priority, follows with one block
// per destination, either the full path cell by cell or an unreachable
// notice, and ends with a closing line. The layout is stable; downstream
// tooling parses it.
func WriteReport(w io.Writer, plan *DeliveryPlan) {
	fmt.Fprintln(w, "Sorted Addresses:")
	for _, req := range plan.Ordered {
		fmt.Fprintf(w, "%v with priority %d\n", req.Target, req.Tier)
	}
	fmt.Fprintln(w)

	for _, route := range plan.Routes {
		if !route.Found {
			fmt.Fprintf(w, "Cannot find a path to destination %v with priority %d.\n", route.Target, route.Tier)
			continue
		}
		fmt.Fprintf(w, "Optimal Path to destination %v with priority %d:\n", route.Target, route.Tier)
		for _, c := range route.Path {
			fmt.Fprintln(w, c)
		}
	}

	fmt.Fprintln(w, "All done!")
}
