package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

func TestScoreAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"single word", "Yes", 30 + 70*1/50},
		{"ten words", strings.Repeat("word ", 10), 30 + 70*10/50},
		{"exactly full length", strings.Repeat("word ", 50), 100},
		{"beyond full length", strings.Repeat("word ", 200), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreAnswer(tt.answer))
		})
	}
}

func TestScoringIsDeterministic(t *testing.T) {
	answer := "A fixed answer graded twice must earn the same score."
	assert.Equal(t, scoreAnswer(answer), scoreAnswer(answer))
}

func TestBuildReport(t *testing.T) {
	interview := &models.Interview{
		ID:      "iv-1",
		OwnerID: "uid-1",
		Name:    "Backend screen",
		Questions: []models.Question{
			{Index: 0, Prompt: "Q0"},
			{Index: 1, Prompt: "Q1"},
			{Index: 2, Prompt: "Q2"},
		},
	}
	answers := []*models.SubmittedAnswer{
		{InterviewID: "iv-1", QuestionIndex: 0, Answer: strings.Repeat("word ", 50), SubmittedAt: time.Now()},
		{InterviewID: "iv-1", QuestionIndex: 1, Answer: "short one", SubmittedAt: time.Now()},
		// Index 2 unanswered.
	}

	report := buildReport(interview, answers)

	assert.Equal(t, "iv-1", report.InterviewID)
	assert.Equal(t, "uid-1", report.OwnerID)
	assert.Len(t, report.PerQuestion, 3)

	assert.Equal(t, 100, report.PerQuestion[0].Score)
	assert.Equal(t, 50, report.PerQuestion[0].WordCount)

	assert.Equal(t, 30+70*2/50, report.PerQuestion[1].Score)

	assert.Equal(t, 0, report.PerQuestion[2].Score)
	assert.Equal(t, "No answer recorded.", report.PerQuestion[2].Feedback)

	wantOverall := (100 + (30 + 70*2/50) + 0) / 3
	assert.Equal(t, wantOverall, report.OverallScore)
	assert.False(t, report.CompletedAt.IsZero())
}

func TestBuildReportNoQuestions(t *testing.T) {
	report := buildReport(&models.Interview{ID: "iv-empty"}, nil)
	assert.Zero(t, report.OverallScore)
	assert.Empty(t, report.PerQuestion)
}
