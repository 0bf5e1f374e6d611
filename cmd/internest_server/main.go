// Package main provides the entry point for the InternNest backend server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "internest_server",
	Short: "InternNest preference and catalog API server",
	Long:  "InternNest collects internship preferences, serves the filtered internship catalog, and exposes aggregated statistics and ML-ready exports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
