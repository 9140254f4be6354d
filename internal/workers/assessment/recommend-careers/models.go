// internal/workers/assessment/recommend-careers/models.go
package recommendcareers

import (
	"career-engine/internal/recommender/explainer"
	"career-engine/internal/recommender/matcher"
	"career-engine/internal/recommender/rolemodels"
	"career-engine/internal/recommender/skillsgap"
	"career-engine/internal/refdata"
)

type Input struct {
	Interests       []string                 `json:"interests,omitempty"`
	Skills          []string                 `json:"skills,omitempty"`
	Subjects        []string                 `json:"subjects,omitempty"`
	Personality     matcher.PersonalityInput `json:"personality,omitempty"`
	ExperienceLevel string                   `json:"experience_level,omitempty"`
	Region          string                   `json:"region,omitempty"`
	Mode            string                   `json:"mode,omitempty"`
	UserID          string                   `json:"userId,omitempty"`
}

// CareerRecommendation bundles one scored career with the supporting
// analysis a client needs to present it.
type CareerRecommendation struct {
	Career      refdata.Career        `json:"career"`
	Score       float64               `json:"score"`
	Explanation explainer.Explanation `json:"explanation"`
	SkillsGap   skillsgap.Analysis    `json:"skills_gap"`
}

type Output struct {
	AnalysisID      string                 `json:"analysisId"`
	Region          string                 `json:"region"`
	Mode            string                 `json:"mode"`
	Recommendations []CareerRecommendation `json:"recommendations"`
	Graph           matcher.Graph          `json:"graph"`
	RoleModels      []refdata.RoleModel    `json:"role_models,omitempty"`
	DailyTip        *refdata.CareerTip     `json:"daily_tip,omitempty"`
	Quote           *rolemodels.Quote      `json:"inspiration_quote,omitempty"`
	RegionInfo      refdata.RegionInfo     `json:"region_info"`
	GeneratedAt     string                 `json:"generated_at"`
}
