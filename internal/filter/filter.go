// Package filter computes the subset of a resource catalog matching a
// conjunction of user-selected predicates. All predicates are ANDed; an
// empty selection for any predicate makes that predicate pass everything.
package filter

import (
	"strings"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// Duration buckets.
const (
	DurationShort  = "short"  // under 15 minutes
	DurationMedium = "medium" // 15 to 60 minutes inclusive
	DurationLong   = "long"   // over 60 minutes
)

// Selection holds the active predicate choices.
type Selection struct {
	Search       string   // case-insensitive substring of title or description
	Categories   []string // exact category membership
	Difficulties []string // exact difficulty membership
	Durations    []string // duration bucket membership (short/medium/long)
	MinRating    float64  // resources with no rating always pass
}

// DurationBucket returns the bucket for a duration in minutes.
func DurationBucket(minutes int) string {
	if minutes < 15 {
		return DurationShort
	}
	if minutes <= 60 {
		return DurationMedium
	}
	return DurationLong
}

// Apply returns the resources passing every active predicate of sel,
// preserving the input order. The input slice is never modified.
func Apply(resources []models.Resource, sel Selection) []models.Resource {
	filtered := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if Matches(r, sel) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Matches reports whether a single resource passes every active predicate.
func Matches(r models.Resource, sel Selection) bool {
	return matchesSearch(r, sel.Search) &&
		matchesMembership(r.Category, sel.Categories) &&
		matchesMembership(r.Difficulty, sel.Difficulties) &&
		matchesMembership(DurationBucket(r.DurationMinutes), sel.Durations) &&
		matchesRating(r, sel.MinRating)
}

func matchesSearch(r models.Resource, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle)
}

func matchesMembership(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchesRating(r models.Resource, min float64) bool {
	// Unrated resources always pass, matching the catalog UI behaviour.
	return r.Rating == 0 || r.Rating >= min
}
