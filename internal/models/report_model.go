package models

import "time"

// QuestionFeedback carries the per-question evaluation inside a report.
type QuestionFeedback struct {
	QuestionIndex int    `json:"questionId" firestore:"questionIndex"`
	Prompt        string `json:"question" firestore:"prompt"`
	Answer        string `json:"answer" firestore:"answer"`
	WordCount     int    `json:"wordCount" firestore:"wordCount"`
	Score         int    `json:"score" firestore:"score"` // 0-100
	Feedback      string `json:"feedback" firestore:"feedback"`
}

// Report is the evaluation produced when an interview session completes.
// The interview ID doubles as the report document ID.
type Report struct {
	InterviewID   string             `json:"interviewId" firestore:"-"`
	OwnerID       string             `json:"ownerId" firestore:"ownerId"`
	InterviewName string             `json:"interviewName" firestore:"interviewName"`
	PerQuestion   []QuestionFeedback `json:"perQuestion" firestore:"perQuestion"`
	OverallScore  int                `json:"overallScore" firestore:"overallScore"` // 0-100
	CompletedAt   time.Time          `json:"completedAt" firestore:"completedAt"`
}
