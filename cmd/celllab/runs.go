package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celldev/celllab/internal/registry"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [model]",
	Short: "Show recorded runs",
	Long: `Display recent run records: board shape, how many ticks the session
ran, and its final statistics. Runs are recorded when a session ends.

Examples:
  celllab runs
  celllab runs fire
  celllab runs fire --limit 25
  celllab runs --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the listed model's runs (all runs without a model)")
}

func runRuns(_ *cobra.Command, args []string) {
	model := ""
	if len(args) == 1 {
		model = args[0]
		if !registry.Exists(model) {
			fmt.Fprintf(os.Stderr, "Error: unknown model %q\n", model)
			fmt.Fprintln(os.Stderr, "Run 'celllab list' to see available models.")
			os.Exit(1)
		}
	}

	store := openStoreOrExit()
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(model); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if model == "" {
			fmt.Println("Cleared all runs.")
		} else {
			fmt.Printf("Cleared %s runs.\n", model)
		}
		return
	}

	runs, err := store.RecentRuns(model, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-9s  %-8s  %-17s  %s\n", "Model", "Size", "Ticks", "Date", "Stats")
	fmt.Printf("  %-6s  %-9s  %-8s  %-17s  %s\n", "-----", "----", "-----", "----", "-----")
	for _, r := range runs {
		fmt.Printf("  %-6s  %-9s  %-8d  %-17s  %s\n",
			r.Model,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Ticks,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.StatsJSON)
	}
}
