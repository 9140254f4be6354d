// internal/workers/assessment/personality-result/models.go
package personalityresult

import (
	"career-engine/internal/recommender/personality"
)

type Input struct {
	Answers []int `json:"answers"`

	// IncludeQuestions returns the question bank alongside (or instead of)
	// a computed result, for clients rendering the test form.
	IncludeQuestions bool `json:"include_questions,omitempty"`
}

type Output struct {
	AnalysisID string                 `json:"analysisId"`
	Result     *personality.Result    `json:"personality_result,omitempty"`
	Questions  []personality.Question `json:"questions,omitempty"`
}
