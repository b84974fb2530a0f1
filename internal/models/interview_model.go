package models

import "time"

// Interview statuses.
const (
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
)

// Question is a single prompt inside an interview, addressed by its
// zero-based position in the ordered question list.
type Question struct {
	Index    int    `json:"index" firestore:"index"`
	Prompt   string `json:"question" firestore:"prompt"`
	Category string `json:"category,omitempty" firestore:"category,omitempty"`
}

// Interview represents one generated interview and its ordered questions.
type Interview struct {
	ID              string     `json:"id" firestore:"-"` // Document ID
	OwnerID         string     `json:"ownerId" firestore:"ownerId"`
	Name            string     `json:"name" firestore:"name"`
	Role            string     `json:"role" firestore:"role"`
	InterviewType   string     `json:"interviewType" firestore:"interviewType"` // e.g. "Technical", "Behavioral"
	ExperienceLevel string     `json:"experienceLevel" firestore:"experienceLevel"`
	CompanyName     string     `json:"companyName,omitempty" firestore:"companyName,omitempty"`
	FocusAt         string     `json:"focusAt,omitempty" firestore:"focusAt,omitempty"`
	NumQuestions    int        `json:"numOfQuestions" firestore:"numQuestions"`
	ResumeText      string     `json:"-" firestore:"resumeText,omitempty"`
	Questions       []Question `json:"questions" firestore:"questions"`
	Status          string     `json:"status" firestore:"status"`
	CreatedAt       time.Time  `json:"createdAt" firestore:"createdAt"`
}

// SubmittedAnswer is one accepted answer for a question of an interview.
type SubmittedAnswer struct {
	InterviewID   string    `json:"interviewId" firestore:"interviewId"`
	QuestionIndex int       `json:"questionId" firestore:"questionIndex"`
	Answer        string    `json:"answer" firestore:"answer"`
	SubmittedAt   time.Time `json:"submittedAt" firestore:"submittedAt"`
}
