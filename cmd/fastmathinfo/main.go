// Command fastmathinfo prints measured error statistics of the fastmath
// approximations against the exact math package references.
//
// Usage:
//
//	fastmathinfo [flags] [function-name ...]
//
// Without arguments it prints the full contract table.
//
// Examples:
//
//	fastmathinfo sin cos
//	fastmathinfo -samples 100000 exp log
//	fastmathinfo -compare
//	fastmathinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastmath/measure/precision"
)

func main() {
	samples := flag.Int("samples", 0, "samples per function (0 uses each contract's default)")
	list := flag.Bool("list", false, "list available function names")
	compare := flag.Bool("compare", false, "add rows for the algo-approx library over the same domains")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fastmathinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints measured approximation error statistics per function.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the full contract table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo sin cos\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -samples 100000 exp\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -compare\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -list\n")
	}
	flag.Parse()

	contracts := precision.Builtin()

	if *list {
		printList(contracts)
		return
	}

	selected := resolveContracts(contracts, flag.Args())
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	if *compare {
		selected = append(selected, comparisonContracts(contracts)...)
	}

	printTable(selected, *samples)
}

func printList(contracts []precision.Contract) {
	names := make([]string, len(contracts))
	for i, c := range contracts {
		names[i] = c.Name
	}

	sort.Strings(names)

	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveContracts(contracts []precision.Contract, names []string) []precision.Contract {
	if len(names) == 0 {
		return contracts
	}

	byName := make(map[string]precision.Contract, len(contracts))
	for _, c := range contracts {
		byName[c.Name] = c
	}

	var result []precision.Contract

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		c, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}

		result = append(result, c)
	}

	return result
}

// comparisonContracts measures github.com/meko-christian/algo-approx's fast
// functions over the same domains, for the functions both libraries cover.
// Bounds are zeroed; these rows are informational.
func comparisonContracts(contracts []precision.Contract) []precision.Contract {
	sweeps := make(map[string]precision.Config, len(contracts))
	for _, c := range contracts {
		sweeps[c.Name] = c.Sweep
	}

	return []precision.Contract{
		{
			Name:  "exp (algo-approx)",
			Fast:  func(x float32) float32 { return float32(approx.FastExp(float64(x))) },
			Ref:   math.Exp,
			Sweep: sweeps["exp"],
		},
		{
			Name:  "log (algo-approx)",
			Fast:  func(x float32) float32 { return float32(approx.FastLog(float64(x))) },
			Ref:   math.Log,
			Sweep: sweeps["log"],
		},
		{
			Name:  "sqrt (algo-approx)",
			Fast:  func(x float32) float32 { return float32(approx.FastSqrt(float64(x))) },
			Ref:   math.Sqrt,
			Sweep: sweeps["sqrt"],
		},
	}
}

func printTable(contracts []precision.Contract, samples int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tDomain\tMax Abs\tAvg Abs\tMax Rel\tAvg Rel\tRMS\tWorst Input\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	if _, err := fmt.Fprintf(tw, "--------\t------\t-------\t-------\t-------\t-------\t---\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, c := range contracts {
		if samples > 0 {
			c.Sweep.Samples = samples
			c.Sweep2.Samples = samples
		}

		res, err := c.Measure()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: measuring %s: %v\n", c.Name, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.6g\n",
			c.Name,
			domainLabel(c),
			res.MaxAbsError,
			res.AvgAbsError,
			res.MaxRelError,
			res.AvgRelError,
			res.RMSError,
			res.WorstInput,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func domainLabel(c precision.Contract) string {
	if c.Fast2 != nil {
		return fmt.Sprintf("[%g, %g] x [%g, %g]", c.Sweep2.AMin, c.Sweep2.AMax, c.Sweep2.BMin, c.Sweep2.BMax)
	}

	return fmt.Sprintf("[%g, %g]", c.Sweep.Min, c.Sweep.Max)
}
