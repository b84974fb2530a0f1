package models

import "time"

// Subscription tiers.
const (
	TierBasic    = "basic"
	TierPro      = "pro"
	TierUltimate = "ultimate"
)

// User represents a user in the system.
type User struct {
	ID                string    `json:"id" firestore:"-"` // Firebase Auth UID, will be the document ID
	Email             string    `json:"email" firestore:"email"`
	Name              string    `json:"name" firestore:"name"`
	Avatar            string    `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Tier              string    `json:"tier" firestore:"tier"` // "basic", "pro" or "ultimate"
	Badges            []string  `json:"badges" firestore:"badges"`
	Streak            int       `json:"streak" firestore:"streak"`
	LeaderboardPoints int       `json:"leaderboardPoints" firestore:"leaderboardPoints"`
	Bookmarks         []string  `json:"bookmarks" firestore:"bookmarks"` // resource/question/interview IDs
	CreatedAt         time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ValidTier reports whether t is one of the known subscription tiers.
func ValidTier(t string) bool {
	switch t {
	case TierBasic, TierPro, TierUltimate:
		return true
	}
	return false
}
