// internal/workers/assessment/assess-dropout-risk/models.go
package assessdropoutrisk

import (
	"career-engine/internal/recommender/risk"
)

const (
	ModeFull  = "full"
	ModeQuick = "quick"
)

type Input struct {
	Mode            string           `json:"mode,omitempty"`
	StudentData     risk.StudentData `json:"student_data"`
	QuickIndicators risk.QuickInput  `json:"quick_indicators"`
}

type Output struct {
	AnalysisID      string                `json:"analysisId"`
	Mode            string                `json:"mode"`
	Assessment      *risk.Assessment      `json:"risk_assessment,omitempty"`
	QuickAssessment *risk.QuickAssessment `json:"quick_assessment,omitempty"`
}
