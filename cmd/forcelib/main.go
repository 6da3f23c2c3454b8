// Command forcelib inspects tensometer CSV exports: it prints table shapes,
// per-test work and summary statistics, and renders charts. It is the thin
// glue over the library packages; all parsing and math live there.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/tensolab/forcelib/emperor"
	"github.com/tensolab/forcelib/forceplot"
	"github.com/tensolab/forcelib/stats"
	"github.com/tensolab/forcelib/table"
	"github.com/tensolab/forcelib/work"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var exclude []int

	root := &cobra.Command{
		Use:           "forcelib",
		Short:         "Work with tensometer CSV exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntSliceVarP(&exclude, "exclude", "x", nil,
		"comma-separated 1-indexed tests to exclude")

	root.AddCommand(newReadCmd(&exclude))
	root.AddCommand(newWorkCmd(&exclude))
	root.AddCommand(newStatsCmd(&exclude))
	root.AddCommand(newPlotCmd(&exclude))
	return root
}

// loadTable validates the exclusion list before handing it to the loader,
// so bad flag input surfaces as an error rather than a panic.
func loadTable(path string, exclude []int) (*table.Table, error) {
	for _, n := range exclude {
		if n < 1 {
			return nil, fmt.Errorf("--exclude: test numbers are 1-indexed, got %d", n)
		}
	}
	return emperor.LoadPath(path, emperor.WithExclude(exclude...))
}

func newReadCmd(exclude *[]int) *cobra.Command {
	return &cobra.Command{
		Use:   "read FILE",
		Short: "Print the table shape of an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := loadTable(args[0], *exclude)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d rows, %d tests\n", args[0], tab.Len(), len(tab.Tests()))
			for _, name := range tab.Tests() {
				v, err := tab.Test(name)
				if err != nil {
					return err
				}
				fmt.Printf("  %s: %d rows\n", name, v.Len())
			}
			return nil
		},
	}
}

func newWorkCmd(exclude *[]int) *cobra.Command {
	var (
		strict bool
		joules bool
		fromMM float64
		toMM   float64
	)

	cmd := &cobra.Command{
		Use:   "work FILE",
		Short: "Print the work done per test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := loadTable(args[0], *exclude)
			if err != nil {
				return err
			}

			lo, hi := math.Inf(-1), math.Inf(1)
			if cmd.Flags().Changed("from") {
				lo = fromMM
			}
			if cmd.Flags().Changed("to") {
				hi = toMM
			}
			opts := work.Options{StrictMonotonic: strict}

			for _, name := range tab.Tests() {
				v, err := tab.Test(name)
				if err != nil {
					return err
				}
				if v, err = v.Select(table.Displacement, lo, hi); err != nil {
					return err
				}
				w, err := work.Work(v, &opts)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if joules {
					fmt.Printf("%s\t%g J\n", name, work.Joules(w))
				} else {
					fmt.Printf("%s\t%g\n", name, w)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-monotonic displacement")
	cmd.Flags().BoolVar(&joules, "joules", false, "convert N·mm results to joules")
	cmd.Flags().Float64Var(&fromMM, "from", 0, "lower displacement bound (inclusive)")
	cmd.Flags().Float64Var(&toMM, "to", 0, "upper displacement bound (exclusive)")
	return cmd
}

func newStatsCmd(exclude *[]int) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print per-test summary statistics of one column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := loadTable(args[0], *exclude)
			if err != nil {
				return err
			}
			all, err := stats.DescribeAll(tab, table.Column(column))
			if err != nil {
				return fmt.Errorf("column %q: %w", column, err)
			}
			for _, name := range tab.Tests() {
				s := all[name]
				fmt.Printf("%s\tn=%d mean=%g std=%g min=%g q25=%g median=%g q75=%g max=%g\n",
					name, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", string(table.Force), "column to summarize")
	return cmd
}

func newPlotCmd(exclude *[]int) *cobra.Command {
	var (
		out   string
		bars  bool
		title string
	)

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render a force-displacement chart, or work bars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := loadTable(args[0], *exclude)
			if err != nil {
				return err
			}
			if bars {
				all, err := work.All(tab, nil)
				if err != nil {
					return err
				}
				return forceplot.WorkBars(all, out, forceplot.WithTitle(title))
			}
			return forceplot.Lines(tab.All(), out, forceplot.WithTitle(title))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "forces.png", "output chart file")
	cmd.Flags().BoolVar(&bars, "bars", false, "render per-test work bars instead of lines")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	return cmd
}
