package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

var catalog = []models.Resource{
	{ID: "res-001", Title: "Big-O Basics", Description: "Asymptotic analysis from scratch.", Category: "DSA", Difficulty: "easy", DurationMinutes: 10, Rating: 4.5},
	{ID: "res-002", Title: "Graph Theory Deep Dive", Description: "BFS, DFS and shortest paths.", Category: "DSA", Difficulty: "hard", DurationMinutes: 90, Rating: 4.2},
	{ID: "res-003", Title: "System Design Primer", Description: "Caching and partitioning fundamentals.", Category: "System Design", Difficulty: "medium", DurationMinutes: 55, Rating: 4.7},
	{ID: "res-004", Title: "Negotiating Your Offer", Description: "Compensation research and scripts.", Category: "Career", Difficulty: "easy", DurationMinutes: 12},
}

func TestDurationBucketBoundaries(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, DurationShort},
		{14, DurationShort},
		{15, DurationMedium},
		{60, DurationMedium},
		{61, DurationLong},
		{90, DurationLong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DurationBucket(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestApplyEmptySelectionReturnsEverything(t *testing.T) {
	got := Apply(catalog, Selection{})
	require.Len(t, got, len(catalog))
	for i, r := range got {
		assert.Equal(t, catalog[i].ID, r.ID, "order must be preserved")
	}
}

func TestApplyPredicatesAreConjunctive(t *testing.T) {
	// Each predicate alone matches res-001; together they still must all hold.
	sel := Selection{
		Search:     "big-o",
		Categories: []string{"DSA"},
		Durations:  []string{DurationShort},
		MinRating:  4.3,
	}
	got := Apply(catalog, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "res-001", got[0].ID)

	// Tightening a single predicate empties the result.
	sel.Categories = []string{"Career"}
	assert.Empty(t, Apply(catalog, sel))
}

func TestApplyCategoryAndDifficultySelections(t *testing.T) {
	got := Apply(catalog, Selection{Categories: []string{"DSA", "Career"}})
	require.Len(t, got, 3)

	got = Apply(catalog, Selection{Difficulties: []string{"hard"}})
	require.Len(t, got, 1)
	assert.Equal(t, "res-002", got[0].ID)
}

func TestSearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	byTitle := Apply(catalog, Selection{Search: "GRAPH theory"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "res-002", byTitle[0].ID)

	byDescription := Apply(catalog, Selection{Search: "partitioning"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "res-003", byDescription[0].ID)
}

func TestUnratedResourcePassesRatingFilter(t *testing.T) {
	got := Apply(catalog, Selection{MinRating: 4.6})
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"res-003", "res-004"}, ids)
}

// The two-resource scenario: a short easy DSA course and a long hard one;
// selecting DSA + short + minRating 4.0 keeps only the first.
func TestShortHighlyRatedDSASelection(t *testing.T) {
	got := Apply(catalog, Selection{
		Categories: []string{"DSA"},
		Durations:  []string{DurationShort},
		MinRating:  4.0,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "res-001", got[0].ID)
}

// Matches must agree with a straightforward reevaluation of every predicate.
func TestMatchesAgreesWithReferenceConjunction(t *testing.T) {
	selections := []Selection{
		{},
		{Search: "design"},
		{Categories: []string{"DSA"}},
		{Categories: []string{"DSA", "System Design"}, Difficulties: []string{"medium", "hard"}},
		{Durations: []string{DurationShort, DurationLong}},
		{MinRating: 4.5},
		{Search: "a", Categories: []string{"Career"}, Durations: []string{DurationShort}, MinRating: 3.0},
	}

	reference := func(r models.Resource, sel Selection) bool {
		if sel.Search != "" {
			needle := strings.ToLower(sel.Search)
			if !strings.Contains(strings.ToLower(r.Title), needle) &&
				!strings.Contains(strings.ToLower(r.Description), needle) {
				return false
			}
		}
		contains := func(values []string, v string) bool {
			if len(values) == 0 {
				return true
			}
			for _, s := range values {
				if s == v {
					return true
				}
			}
			return false
		}
		if !contains(sel.Categories, r.Category) {
			return false
		}
		if !contains(sel.Difficulties, r.Difficulty) {
			return false
		}
		if !contains(sel.Durations, DurationBucket(r.DurationMinutes)) {
			return false
		}
		return r.Rating == 0 || r.Rating >= sel.MinRating
	}

	for _, sel := range selections {
		for _, r := range catalog {
			assert.Equal(t, reference(r, sel), Matches(r, sel), "resource=%s selection=%+v", r.ID, sel)
		}
	}
}
