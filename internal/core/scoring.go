package core

import (
	"strings"
	"time"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// Scoring parameters. An answer of fullScoreWords words or more earns the
// maximum per-question score; shorter answers scale linearly above the floor.
const (
	scoreFloor     = 30
	scoreCeiling   = 100
	fullScoreWords = 50
)

// scoreAnswer returns a deterministic 0-100 score for one answer.
func scoreAnswer(answer string) int {
	words := len(strings.Fields(answer))
	if words == 0 {
		return 0
	}
	if words >= fullScoreWords {
		return scoreCeiling
	}
	return scoreFloor + (scoreCeiling-scoreFloor)*words/fullScoreWords
}

func feedbackFor(score int) string {
	switch {
	case score >= 90:
		return "Well developed answer with plenty of substance."
	case score >= 60:
		return "Solid answer; adding a concrete example would strengthen it."
	case score > 0:
		return "Too brief. Expand on the situation, your actions and the outcome."
	default:
		return "No answer recorded."
	}
}

// buildReport evaluates all submitted answers against the interview's
// question list and produces the completed report.
func buildReport(interview *models.Interview, answers []*models.SubmittedAnswer) *models.Report {
	byIndex := make(map[int]*models.SubmittedAnswer, len(answers))
	for _, a := range answers {
		byIndex[a.QuestionIndex] = a
	}

	perQuestion := make([]models.QuestionFeedback, 0, len(interview.Questions))
	total := 0
	for _, q := range interview.Questions {
		fb := models.QuestionFeedback{
			QuestionIndex: q.Index,
			Prompt:        q.Prompt,
		}
		if a, ok := byIndex[q.Index]; ok {
			fb.Answer = a.Answer
			fb.WordCount = len(strings.Fields(a.Answer))
			fb.Score = scoreAnswer(a.Answer)
		}
		fb.Feedback = feedbackFor(fb.Score)
		total += fb.Score
		perQuestion = append(perQuestion, fb)
	}

	overall := 0
	if len(perQuestion) > 0 {
		overall = total / len(perQuestion)
	}

	return &models.Report{
		InterviewID:   interview.ID,
		OwnerID:       interview.OwnerID,
		InterviewName: interview.Name,
		PerQuestion:   perQuestion,
		OverallScore:  overall,
		CompletedAt:   time.Now().UTC(),
	}
}
