package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celldev/celllab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available models",
	Long:  `Shows a list of all automata registered in the lab.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	models := registry.List()

	if len(models) == 0 {
		fmt.Println("No models available.")
		return
	}

	fmt.Println("Available models:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range models {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range models {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'celllab run <id>' to start a session.")
}
