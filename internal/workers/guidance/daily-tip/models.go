// internal/workers/guidance/daily-tip/models.go
package dailytip

import (
	"career-engine/internal/recommender/rolemodels"
	"career-engine/internal/refdata"
)

type Input struct {
	UserID      string `json:"userId,omitempty"`
	CareerFocus string `json:"career_focus,omitempty"`
	Mode        string `json:"mode,omitempty"`

	// Weekly adds the rotating seven-tip set for the current week.
	Weekly bool `json:"weekly,omitempty"`

	// Category returns every tip in one category instead of the daily pick.
	Category string `json:"category,omitempty"`
}

type Output struct {
	AnalysisID   string              `json:"analysisId"`
	Date         string              `json:"date"`
	Tip          *refdata.CareerTip  `json:"daily_tip,omitempty"`
	WeeklyTips   []refdata.CareerTip `json:"weekly_tips,omitempty"`
	CategoryTips []refdata.CareerTip `json:"category_tips,omitempty"`
	Quote        *rolemodels.Quote   `json:"inspiration_quote,omitempty"`
}
