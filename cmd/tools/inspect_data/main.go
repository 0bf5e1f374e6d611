// Command inspect_data prints stored preference records and their normalized
// value distributions for model-readiness checks.
//
// Usage:
//
//	go run cmd/tools/inspect_data/main.go [limit]
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/internest/internest-backend/internal/db"
	"github.com/internest/internest-backend/internal/normalize"
	"github.com/internest/internest-backend/internal/observability"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	limit := 100
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "ERROR: invalid limit %q\n", os.Args[1])
			os.Exit(1)
		}
		limit = n
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	prefs, total, err := database.ListPreferences(ctx, db.ListPreferencesOptions{Limit: limit})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to list preferences: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Preference Data Inspection ===")
	fmt.Printf("Inspecting %d of %d stored records\n", len(prefs), total)
	fmt.Println()

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPreferenceSample(prefs)
	fmt.Println()

	// Normalized distributions over the inspected window
	education := make(map[string]int)
	skills := make(map[string]int)
	sectors := make(map[string]int)
	locations := make(map[string]int)
	for _, pref := range prefs {
		education[normalize.Education(deref(pref.EducationLevel))]++
		for _, skill := range normalize.Skills(deref(pref.Skills)) {
			skills[skill]++
		}
		sectors[normalize.Sector(deref(pref.Sector))]++
		locations[normalize.Location(deref(pref.Location))]++
	}

	printer.PrintDistribution("EDUCATION DISTRIBUTION (normalized)", education)
	fmt.Println()
	printer.PrintDistribution("SKILL TOKEN FREQUENCY", skills)
	fmt.Println()
	printer.PrintDistribution("SECTOR DISTRIBUTION (normalized)", sectors)
	fmt.Println()
	printer.PrintDistribution("LOCATION DISTRIBUTION (normalized)", locations)
	fmt.Println()

	stats, err := database.GetPreferenceStats(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to aggregate statistics: %v\n", err)
		os.Exit(1)
	}
	printer.PrintStatsOverview(stats)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
