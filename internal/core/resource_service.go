package core

import (
	"github.com/CoderUzumaki/PrepEdge-AI/internal/filter"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// resourceService implements the ResourceService interface over a static
// in-memory catalog.
type resourceService struct {
	catalog []models.Resource
}

// NewResourceService creates a ResourceService. A nil catalog falls back to
// the built-in default catalog.
func NewResourceService(catalog []models.Resource) ResourceService {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &resourceService{catalog: catalog}
}

// List returns the catalog entries matching every active predicate of sel.
func (s *resourceService) List(sel filter.Selection) []models.Resource {
	return filter.Apply(s.catalog, sel)
}

// DefaultCatalog is the built-in learning-resource catalog served by the
// resources endpoint.
var DefaultCatalog = []models.Resource{
	{ID: "res-001", Title: "Big-O Basics", Description: "Asymptotic analysis from scratch with worked examples.", Category: "DSA", Difficulty: "easy", DurationMinutes: 10, Rating: 4.5},
	{ID: "res-002", Title: "Graph Theory Deep Dive", Description: "BFS, DFS, shortest paths and when to use each.", Category: "DSA", Difficulty: "hard", DurationMinutes: 90, Rating: 4.2},
	{ID: "res-003", Title: "Dynamic Programming Patterns", Description: "Knapsack, intervals and state-machine DP patterns.", Category: "DSA", Difficulty: "hard", DurationMinutes: 75, Rating: 4.8},
	{ID: "res-004", Title: "System Design Primer", Description: "Load balancing, caching and data partitioning fundamentals.", Category: "System Design", Difficulty: "medium", DurationMinutes: 55, Rating: 4.7},
	{ID: "res-005", Title: "Designing a URL Shortener", Description: "A classic system-design walkthrough, end to end.", Category: "System Design", Difficulty: "medium", DurationMinutes: 40, Rating: 4.1},
	{ID: "res-006", Title: "Behavioral Interview Crash Course", Description: "The STAR method and how to prepare your stories.", Category: "Behavioral", Difficulty: "easy", DurationMinutes: 25, Rating: 3.9},
	{ID: "res-007", Title: "Negotiating Your Offer", Description: "Compensation research and negotiation scripts.", Category: "Career", Difficulty: "easy", DurationMinutes: 12},
	{ID: "res-008", Title: "SQL Interview Questions", Description: "Joins, window functions and query optimization drills.", Category: "Databases", Difficulty: "medium", DurationMinutes: 45, Rating: 4.0},
	{ID: "res-009", Title: "Concurrency Interview Prep", Description: "Locks, deadlocks and lock-free thinking for interviews.", Category: "DSA", Difficulty: "hard", DurationMinutes: 65, Rating: 4.4},
	{ID: "res-010", Title: "Resume Writing for Engineers", Description: "Impact-first bullet points and common resume mistakes.", Category: "Career", Difficulty: "easy", DurationMinutes: 15, Rating: 3.5},
}
