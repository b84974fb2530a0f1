package models

// Resource is one entry of the learning-resource catalog.
// Rating is 0 when the resource has not been rated yet.
type Resource struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty,omitempty"` // e.g. "easy", "medium", "hard"
	DurationMinutes int     `json:"duration"`
	Rating          float64 `json:"rating,omitempty"`
	URL             string  `json:"url,omitempty"`
}
