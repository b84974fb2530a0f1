package models

// Session tracks server-side progress through an interview's ordered
// question list. It lives in Redis for the lifetime of the interview
// attempt; the backend owns the cursor and rejects answers submitted
// for any index other than NextIndex.
type Session struct {
	InterviewID string `json:"interviewId"`
	UserID      string `json:"userId"`
	NextIndex   int    `json:"nextIndex"`
	Total       int    `json:"total"`
	Completed   bool   `json:"completed"`
}

// Remaining returns how many questions are still unanswered.
func (s *Session) Remaining() int {
	if s.Completed {
		return 0
	}
	return s.Total - s.NextIndex
}
