// internal/workers/insights/compare-careers/models.go
package comparecareers

import (
	"career-engine/internal/recommender/comparison"
)

type Input struct {
	Careers []string `json:"careers"`
	Region  string   `json:"region,omitempty"`

	// ListAvailable returns the comparable career names instead of running
	// a comparison, for clients populating a picker.
	ListAvailable bool `json:"list_available,omitempty"`
}

type Output struct {
	AnalysisID       string                 `json:"analysisId"`
	Region           string                 `json:"region"`
	Comparison       *comparison.Comparison `json:"comparison,omitempty"`
	AvailableCareers []string               `json:"available_careers,omitempty"`
}
