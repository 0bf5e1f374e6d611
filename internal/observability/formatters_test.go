package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/internest/internest-backend/internal/db"
)

func strPtr(s string) *string { return &s }

func TestPrintPreferenceSample(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prefs := []db.Preference{
		{
			ID:             7,
			SessionID:      "session_1700000000000_abc123def",
			EducationLevel: strPtr("Bachelor's Degree"),
			Skills:         strPtr("Python, SQL"),
			Sector:         strPtr("Technology"),
			CreatedAt:      time.Now(),
		},
		{
			ID:        8,
			SessionID: "session_1700000000001_xyz789ghi",
			CreatedAt: time.Now(),
		},
	}

	p.PrintPreferenceSample(prefs)
	output := buf.String()

	assert.Contains(t, output, "RECENT PREFERENCE RECORDS")
	assert.Contains(t, output, "session_1700000000000_abc123def")
	assert.Contains(t, output, "Bachelor's Degree")
	assert.Contains(t, output, "Python, SQL")
	// Absent fields render as a dash
	assert.Contains(t, output, "Education: -")
}

func TestPrintPreferenceSample_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPreferenceSample(nil)

	assert.Contains(t, buf.String(), "No records stored yet")
}

func TestPrintPreferenceSample_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prefs := make([]db.Preference, 8)
	for i := range prefs {
		prefs[i] = db.Preference{ID: int64(i + 1), SessionID: "session_1700000000000_aaaaaaaaa"}
	}

	p.PrintPreferenceSample(prefs)

	assert.Contains(t, buf.String(), "and 3 more records")
}

func TestPrintDistribution(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDistribution("EDUCATION DISTRIBUTION", map[string]int{
		"bachelor": 3,
		"master":   1,
		"diploma":  3,
	})
	output := buf.String()

	assert.Contains(t, output, "EDUCATION DISTRIBUTION")
	// Ties order by value ascending: bachelor before diploma, master last
	bachelorIdx := strings.Index(output, "bachelor")
	diplomaIdx := strings.Index(output, "diploma")
	masterIdx := strings.Index(output, "master")
	assert.Less(t, bachelorIdx, diplomaIdx)
	assert.Less(t, diplomaIdx, masterIdx)
	assert.Contains(t, output, "42.9%")
}

func TestPrintDistribution_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDistribution("SECTOR DISTRIBUTION", nil)

	assert.Contains(t, buf.String(), "No values recorded")
}

func TestPrintStatsOverview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatsOverview(&db.StatsOverview{
		Total: 12,
		ByEducation: []db.EducationCount{
			{EducationLevel: "Bachelor's Degree", Count: 7},
		},
		BySector: []db.SectorCount{
			{Sector: "Finance", Count: 4},
		},
		ByLocation: []db.LocationCount{
			{Location: "Mumbai", Count: 3},
		},
		Recent: []db.DailyCount{
			{Date: "2026-01-15", Count: 2},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "PREFERENCE STATISTICS")
	assert.Contains(t, output, "Total records: 12")
	assert.Contains(t, output, "Bachelor's Degree")
	assert.Contains(t, output, "Finance")
	assert.Contains(t, output, "Mumbai")
	assert.Contains(t, output, "2026-01-15")
}

func TestPrintStatsOverview_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatsOverview(nil)

	assert.Empty(t, buf.String())
}
