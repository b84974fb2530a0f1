package models

// UpdateProfileRequest represents the request body for updating a user profile.
// Pointers distinguish "field not provided" from an explicit empty value.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// AddBookmarkRequest represents the request body for adding a bookmark.
type AddBookmarkRequest struct {
	RefID string `json:"refId" binding:"required"`
}

// SetupInterviewRequest carries the multipart form fields of an interview
// setup request. The resume file part is handled separately by the handler.
type SetupInterviewRequest struct {
	InterviewName   string `form:"interviewName" binding:"required"`
	NumQuestions    int    `form:"numOfQuestions"`
	InterviewType   string `form:"interviewType" binding:"required"`
	Role            string `form:"role" binding:"required"`
	ExperienceLevel string `form:"experienceLevel" binding:"required"`
	CompanyName     string `form:"companyName"`
	FocusAt         string `form:"focusAt"`
}

// SubmitAnswerRequest represents the request body for submitting one answer.
// QuestionID is the zero-based question index; the server validates it
// against its own session cursor.
type SubmitAnswerRequest struct {
	QuestionID *int   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// ScheduleMockInterviewRequest represents the request body for scheduling
// a mock interview. ScheduledAt is RFC 3339.
type ScheduleMockInterviewRequest struct {
	ScheduledAt     string `json:"scheduledAt" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	MeetingLink     string `json:"meetingLink"`
	Notes           string `json:"notes"`
}

// PostQuestionRequest represents the request body for posting a community question.
type PostQuestionRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// PostAnswerRequest represents the request body for answering a community question.
type PostAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

// ContactRequest represents the request body of the public contact form.
type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject" binding:"required"`
	Category string `json:"category"`
	Message  string `json:"message" binding:"required"`
}
