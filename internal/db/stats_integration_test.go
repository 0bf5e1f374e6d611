//go:build integration

package db

import (
	"context"
	"testing"
)

func TestIntegration_GetPreferenceStats(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	// Two bachelor rows, one master, one with empty education, one NULL
	seed := []PreferenceInput{
		{SessionID: "itest_stats_1", UserIP: "127.0.0.1", EducationLevel: strp("Bachelor's Degree"), Sector: strp("Technology")},
		{SessionID: "itest_stats_2", UserIP: "127.0.0.1", EducationLevel: strp("Bachelor's Degree"), Sector: strp("Finance")},
		{SessionID: "itest_stats_3", UserIP: "127.0.0.1", EducationLevel: strp("Master's Degree"), Sector: strp("Technology")},
		{SessionID: "itest_stats_4", UserIP: "127.0.0.1", EducationLevel: strp("")},
		{SessionID: "itest_stats_5", UserIP: "127.0.0.1"},
	}
	for i, input := range seed {
		if _, err := db.SavePreference(ctx, input); err != nil {
			t.Fatalf("SavePreference %d failed: %v", i, err)
		}
	}

	stats, err := db.GetPreferenceStats(ctx)
	if err != nil {
		t.Fatalf("GetPreferenceStats failed: %v", err)
	}
	if stats.Total < 5 {
		t.Errorf("Expected total >= 5, got %d", stats.Total)
	}

	// NULL and empty-string values never appear as groups
	for _, e := range stats.ByEducation {
		if e.EducationLevel == "" {
			t.Error("Empty education level leaked into breakdown")
		}
	}

	// Counts descend; equal counts order by value ascending
	for i := 1; i < len(stats.ByEducation); i++ {
		prev, cur := stats.ByEducation[i-1], stats.ByEducation[i]
		if cur.Count > prev.Count {
			t.Errorf("Breakdown not ordered by count: %v before %v", prev, cur)
		}
		if cur.Count == prev.Count && cur.EducationLevel < prev.EducationLevel {
			t.Errorf("Tie not ordered by value: %v before %v", prev, cur)
		}
	}

	if len(stats.ByLocation) > 10 {
		t.Errorf("Location breakdown exceeds 10 groups: %d", len(stats.ByLocation))
	}

	// Breakdowns are never nil, even when empty
	if stats.ByEducation == nil || stats.BySector == nil || stats.ByLocation == nil || stats.Recent == nil {
		t.Error("Expected empty slices, got nil breakdowns")
	}

	// Today's seeds appear in the 30-day series
	if len(stats.Recent) == 0 {
		t.Error("Expected at least one day in the recent series")
	}
}
