package models

import "time"

// CommunityAnswer is an answer embedded inside a community question.
type CommunityAnswer struct {
	UserID    string    `json:"user" firestore:"userId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CommunityQuestion is a question posted to the community Q&A board.
type CommunityQuestion struct {
	ID        string            `json:"id" firestore:"-"` // Document ID
	UserID    string            `json:"user" firestore:"userId"`
	Title     string            `json:"title" firestore:"title"`
	Content   string            `json:"content" firestore:"content"`
	Tags      []string          `json:"tags" firestore:"tags"`
	Answers   []CommunityAnswer `json:"answers" firestore:"answers"`
	CreatedAt time.Time         `json:"createdAt" firestore:"createdAt"`
}
