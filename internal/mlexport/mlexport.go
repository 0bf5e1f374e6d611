// Package mlexport reshapes stored preference records into the stable
// feature-vector documents served by the admin export. This is a display
// reshaping only: fields keep their raw casing and whitespace, and missing
// values get the NotSpecified fallback. The canonicalizing transforms live in
// internal/normalize and are intentionally not applied here; collapsing the
// two paths into one would silently change either the matching vocabulary or
// the export shape.
package mlexport

import (
	"strings"
	"time"

	"github.com/internest/internest-backend/internal/db"
)

// NotSpecified is the export-path fallback for absent fields. It is distinct
// from normalize.Unknown on purpose.
const NotSpecified = "not_specified"

// Features is the model-facing portion of a feature vector.
type Features struct {
	EducationLevel string   `json:"education_level"`
	Skills         []string `json:"skills"`
	Sector         string   `json:"sector"`
	Location       string   `json:"location"`
}

// Metadata carries the bookkeeping fields alongside the features.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	SessionID string    `json:"session_id"`
	UserIP    string    `json:"user_ip"`
}

// FeatureVector is the export document for one preference record.
type FeatureVector struct {
	ID       int64    `json:"id"`
	Features Features `json:"features"`
	Metadata Metadata `json:"metadata"`
}

// ToFeatureVector reshapes a single preference record.
func ToFeatureVector(p db.Preference) FeatureVector {
	return FeatureVector{
		ID: p.ID,
		Features: Features{
			EducationLevel: orNotSpecified(p.EducationLevel),
			Skills:         splitSkills(p.Skills),
			Sector:         orNotSpecified(p.Sector),
			Location:       orNotSpecified(p.Location),
		},
		Metadata: Metadata{
			CreatedAt: p.CreatedAt,
			SessionID: p.SessionID,
			UserIP:    p.UserIP,
		},
	}
}

// ToFeatureVectors reshapes a batch of records, preserving order.
func ToFeatureVectors(prefs []db.Preference) []FeatureVector {
	vectors := make([]FeatureVector, len(prefs))
	for i, p := range prefs {
		vectors[i] = ToFeatureVector(p)
	}
	return vectors
}

func orNotSpecified(s *string) string {
	if s == nil || *s == "" {
		return NotSpecified
	}
	return *s
}

// splitSkills splits on comma and trims each token. Unlike the normalizer it
// keeps the original casing.
func splitSkills(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	parts := strings.Split(*raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}
