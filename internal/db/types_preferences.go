package db

import "time"

// Preference is one stored preference snapshot. Records are immutable
// history: a session accumulates records over time and the newest one is the
// session's current preference. The free-text fields are nullable and stored
// exactly as submitted.
type Preference struct {
	ID             int64     `json:"id"`
	SessionID      string    `json:"session_id"`
	UserIP         string    `json:"user_ip"`
	EducationLevel *string   `json:"education_level"`
	Skills         *string   `json:"skills"`
	Sector         *string   `json:"sector"`
	Location       *string   `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PreferenceInput carries the fields for a new preference record.
type PreferenceInput struct {
	SessionID      string
	UserIP         string
	EducationLevel *string
	Skills         *string
	Sector         *string
	Location       *string
}

// PreferenceUpdate carries the full replacement values for an existing
// record. Every field is overwritten; there is no merge.
type PreferenceUpdate struct {
	EducationLevel *string
	Skills         *string
	Sector         *string
	Location       *string
}

// ListPreferencesOptions controls pagination of preference listings.
type ListPreferencesOptions struct {
	Limit  int
	Offset int
}

// EducationCount is one byEducation rollup row.
type EducationCount struct {
	EducationLevel string `json:"education_level"`
	Count          int    `json:"count"`
}

// SectorCount is one bySector rollup row.
type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// LocationCount is one byLocation rollup row.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// DailyCount is one day of the trailing-30-day submission series. Days with
// no submissions are omitted.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StatsOverview is the joined result of the five aggregation sub-queries.
type StatsOverview struct {
	Total       int              `json:"total"`
	ByEducation []EducationCount `json:"byEducation"`
	BySector    []SectorCount    `json:"bySector"`
	ByLocation  []LocationCount  `json:"byLocation"`
	Recent      []DailyCount     `json:"recent"`
}
