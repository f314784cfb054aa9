// Package main is the entry point for the game core server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planebound-api",
	Short: "Planebound game core server",
	Long:  `Planebound API serves the card RPG game core: content generation, adaptive narration, and session state over a JSON HTTP interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
