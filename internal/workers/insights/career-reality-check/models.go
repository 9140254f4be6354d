// internal/workers/insights/career-reality-check/models.go
package careerrealitycheck

import (
	"career-engine/internal/refdata"
)

type Input struct {
	Career string `json:"career"`

	// ListAvailable returns the careers with reality data instead of a
	// single lookup.
	ListAvailable bool `json:"list_available,omitempty"`
}

type Output struct {
	AnalysisID       string               `json:"analysisId"`
	Career           string               `json:"career,omitempty"`
	Reality          *refdata.RealityEntry `json:"reality_check,omitempty"`
	GeneralInsights  map[string][]string  `json:"general_insights,omitempty"`
	AvailableCareers []string             `json:"available_careers,omitempty"`
}
