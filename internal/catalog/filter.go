package catalog

import (
	"strings"

	"github.com/internest/internest-backend/internal/normalize"
)

// Query holds the optional catalog search predicates. Empty fields impose no
// constraint; supplied predicates are conjunctive.
type Query struct {
	Education string
	Skills    string
	Sector    string
	Location  string
}

// Page is one page of filtered catalog results together with the totals the
// response envelope reports.
type Page struct {
	Items      []Internship
	Total      int
	TotalPages int
}

// Filter evaluates the query against the catalog and slices the requested
// page. Matching items keep the catalog's relative order; a page past the end
// yields an empty slice, not an error. limit and page must already be
// validated as >= 1 by the caller.
func Filter(items []Internship, q Query, page, limit int) Page {
	matched := make([]Internship, 0, len(items))
	for _, item := range items {
		if matches(item, q) {
			matched = append(matched, item)
		}
	}

	total := len(matched)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Items:      matched[start:end],
		Total:      total,
		TotalPages: totalPages,
	}
}

func matches(item Internship, q Query) bool {
	if q.Education != "" && !containsFold(item.EducationRequirements, q.Education) {
		return false
	}
	if q.Skills != "" && !skillsOverlap(item.SkillsRequired, q.Skills) {
		return false
	}
	if q.Sector != "" && !containsFold(item.Sector, q.Sector) {
		return false
	}
	if q.Location != "" && !containsFold(item.Location, q.Location) {
		return false
	}
	return true
}

// skillsOverlap reports whether any query token is a case-insensitive
// substring of any required skill. The query side is canonicalized with the
// same split/trim/lower transform used for stored preference skills.
func skillsOverlap(required []string, query string) bool {
	for _, token := range normalize.Skills(query) {
		for _, skill := range required {
			if strings.Contains(strings.ToLower(skill), token) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
