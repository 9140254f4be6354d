// internal/workers/insights/career-simulation/models.go
package careersimulation

import (
	"career-engine/internal/recommender/simulation"
)

const (
	DetailFull     = "full"
	DetailSummary  = "summary"
	DetailInsights = "insights"
	DetailTimeline = "timeline"
)

type Input struct {
	Career string `json:"career"`
	Region string `json:"region,omitempty"`

	// Detail selects how much of the simulation to return. Empty means full.
	Detail string `json:"detail,omitempty"`

	// Compare runs a side-by-side simulation comparison instead of a single
	// career lookup.
	Compare []string `json:"compare,omitempty"`

	// ListAvailable returns the simulated career names, for clients
	// populating a picker.
	ListAvailable bool `json:"list_available,omitempty"`
}

type Output struct {
	AnalysisID       string                 `json:"analysisId"`
	Region           string                 `json:"region"`
	Detail           string                 `json:"detail,omitempty"`
	Simulation       *simulation.Result     `json:"simulation,omitempty"`
	Summary          *simulation.Summary    `json:"summary,omitempty"`
	Insights         *simulation.Insights   `json:"insights,omitempty"`
	Timeline         *simulation.Timeline   `json:"stress_timeline,omitempty"`
	Comparison       *simulation.Comparison `json:"comparison,omitempty"`
	AvailableCareers []string               `json:"available_careers,omitempty"`
}
