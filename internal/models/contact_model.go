package models

import "time"

// Contact message categories.
const (
	ContactCategoryGeneral       = "general"
	ContactCategoryFeature       = "feature"
	ContactCategoryBug           = "bug"
	ContactCategoryCollaboration = "collaboration"
)

// ContactMessage is a message received through the public contact form.
type ContactMessage struct {
	ID        string    `json:"id" firestore:"-"` // Document ID
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject" firestore:"subject"`
	Category  string    `json:"category" firestore:"category"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// ValidContactCategory reports whether c is a known contact category.
func ValidContactCategory(c string) bool {
	switch c {
	case ContactCategoryGeneral, ContactCategoryFeature, ContactCategoryBug, ContactCategoryCollaboration:
		return true
	}
	return false
}
