package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "flatland",
		Short: "Grid-based multi-agent railway scenario tool",
		Long: `flatland builds rail-network scenarios: it places agents on a
transition map with feasibility guarantees and injects randomized transient
malfunctions while an episode runs.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newSaveCmd(),
		newStatsCmd(),
		newViewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flatland version %s\n", version)
		},
	}
}
