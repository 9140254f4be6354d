// internal/workers/assessment/skills-gap-analysis/models.go
package skillsgapanalysis

import (
	"career-engine/internal/recommender/skillsgap"
)

type Input struct {
	Career   string   `json:"career"`
	Skills   []string `json:"skills"`
	Subjects []string `json:"subjects"`
	Region   string   `json:"region,omitempty"`
}

type Output struct {
	AnalysisID string             `json:"analysisId"`
	Region     string             `json:"region"`
	Analysis   skillsgap.Analysis `json:"skills_gap_analysis"`
}
