package core

import (
	"fmt"
	"strings"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// Question generation bounds.
const (
	DefaultNumQuestions = 3
	MaxNumQuestions     = 10
)

// prompt templates per interview type. "%s" slots take the role.
var questionTemplates = map[string][]string{
	"Technical": {
		"Walk me through a technically challenging project you worked on as a %s.",
		"How would you design a system you expect to grow tenfold in a year, in the context of a %s role?",
		"Describe a production issue you debugged end to end. What did you change afterwards?",
		"Which trade-offs do you weigh when choosing between a quick fix and a proper refactor?",
		"How do you keep your skills current as a %s?",
		"Explain a piece of technology you know deeply to someone outside your field.",
		"Tell me about a time a code review changed your mind.",
		"What does testing discipline look like on a team you would want to join?",
	},
	"Behavioral": {
		"Tell me about yourself and why you are interested in a %s position.",
		"Describe a conflict with a teammate and how you resolved it.",
		"Tell me about a time you missed a deadline. What happened?",
		"Give an example of receiving hard feedback. How did you respond?",
		"Describe a situation where you had to convince others to follow your approach.",
		"What accomplishment as a %s are you most proud of, and why?",
		"Tell me about a time you had to learn something quickly under pressure.",
		"How do you prioritize when everything is urgent?",
	},
	"HR": {
		"Why do you want to work with us as a %s?",
		"Where do you see yourself in five years?",
		"What are your salary expectations and how did you arrive at them?",
		"What would make you leave a job within the first year?",
		"How do your previous experiences prepare you for a %s role?",
		"What questions do you have for us?",
	},
}

// generateQuestions builds the ordered question list for a new interview.
// Selection is deterministic for a given request: templates are taken in
// bank order, the role is interpolated, and company/focus context is
// appended as dedicated questions when provided.
func generateQuestions(req models.SetupInterviewRequest) []models.Question {
	n := req.NumQuestions
	if n <= 0 {
		n = DefaultNumQuestions
	}
	if n > MaxNumQuestions {
		n = MaxNumQuestions
	}

	bank, ok := questionTemplates[req.InterviewType]
	if !ok {
		bank = questionTemplates["Behavioral"]
	}

	questions := make([]models.Question, 0, n)

	if req.CompanyName != "" {
		questions = append(questions, models.Question{
			Prompt:   fmt.Sprintf("What do you know about %s, and why do you want to join as a %s?", req.CompanyName, req.Role),
			Category: "company",
		})
	}
	if req.FocusAt != "" {
		questions = append(questions, models.Question{
			Prompt:   fmt.Sprintf("This interview focuses on %s. Describe your strongest experience with it.", req.FocusAt),
			Category: "focus",
		})
	}

	for _, tmpl := range bank {
		if len(questions) >= n {
			break
		}
		prompt := tmpl
		if strings.Contains(tmpl, "%s") {
			prompt = fmt.Sprintf(tmpl, req.Role)
		}
		questions = append(questions, models.Question{
			Prompt:   prompt,
			Category: strings.ToLower(req.InterviewType),
		})
	}

	// Trim in case company/focus questions already filled the quota.
	if len(questions) > n {
		questions = questions[:n]
	}
	for i := range questions {
		questions[i].Index = i
	}
	return questions
}
