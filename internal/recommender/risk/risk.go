// internal/recommender/risk/risk.go
package risk

import (
	"fmt"
	"sort"

	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"
)

// StudentData is the full assessment input. Scores are on a 1-10 scale and
// omitted fields take neutral defaults.
type StudentData struct {
	AcademicHistory   AcademicHistory  `json:"academic_history"`
	InterestHistory   InterestHistory  `json:"interest_history"`
	StressIndicators  StressIndicators `json:"stress_indicators"`
	CareerPreferences []string         `json:"career_preferences"`
}

type AcademicHistory struct {
	Grades                []float64 `json:"grades"`
	AttendanceRate        *float64  `json:"attendance_rate"`
	StudyConsistencyScore *float64  `json:"study_consistency_score"`
	FailedSubjects        int       `json:"failed_subjects"`
}

type InterestHistory struct {
	CareerChangesCount     int      `json:"career_changes_count"`
	CareerResearchScore    *float64 `json:"career_research_score"`
	ExternalPressureScore  *float64 `json:"external_pressure_score"`
	PassionIndicatorsScore *float64 `json:"passion_indicators_score"`
}

type StressIndicators struct {
	AnxietyLevel             *float64 `json:"anxiety_level"`
	PressurePerformanceScore *float64 `json:"pressure_performance_score"`
	CopingSkillsScore        *float64 `json:"coping_skills_score"`
	ResilienceScore          *float64 `json:"resilience_score"`
}

// DimensionRisk is one dimension's score with the matched warning band.
type DimensionRisk struct {
	Score           float64  `json:"score"`
	Level           string   `json:"level"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
}

type RiskBreakdown struct {
	AcademicConsistency DimensionRisk `json:"academic_consistency"`
	InterestStability   DimensionRisk `json:"interest_stability"`
	StressTolerance     DimensionRisk `json:"stress_tolerance"`
}

type CareerWarning struct {
	Career               string   `json:"career"`
	CareerStressLevel    float64  `json:"career_stress_level"`
	DropoutRate          string   `json:"dropout_rate"`
	CommonFailureReasons []string `json:"common_failure_reasons"`
	RiskAssessment       string   `json:"risk_assessment"`
	SpecificWarnings     []string `json:"specific_warnings"`
}

type SuccessProbability struct {
	Probability     float64 `json:"probability"`
	Percentage      string  `json:"percentage"`
	Outlook         string  `json:"outlook"`
	ConfidenceLevel string  `json:"confidence_level"`
}

type AlternativePath struct {
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Benefits    []string `json:"benefits"`
}

type Assessment struct {
	OverallRiskScore       float64            `json:"overall_risk_score"`
	OverallRiskLevel       string             `json:"overall_risk_level"`
	RiskBreakdown          RiskBreakdown      `json:"risk_breakdown"`
	PrimaryConcerns        []string           `json:"primary_concerns"`
	CareerWarnings         []CareerWarning    `json:"career_warnings"`
	Recommendations        []string           `json:"recommendations"`
	InterventionStrategies []string           `json:"intervention_strategies"`
	SuccessProbability     SuccessProbability `json:"success_probability"`
	AlternativePaths       []AlternativePath  `json:"alternative_paths"`
}

type QuickInput struct {
	RecentGradeDrop   bool `json:"recent_grade_drop"`
	CareerUncertainty bool `json:"career_uncertainty"`
	HighStressLevels  bool `json:"high_stress_levels"`
	ExternalPressure  bool `json:"external_pressure"`
}

type QuickAssessment struct {
	RiskLevel           string   `json:"risk_level"`
	RiskIndicatorsCount int      `json:"risk_indicators_count"`
	Warnings            []string `json:"warnings"`
	Recommendation      string   `json:"recommendation"`
}

const (
	levelLow      = "low_risk"
	levelModerate = "moderate_risk"
	levelHigh     = "high_risk"

	academicWeight = 0.4
	interestWeight = 0.3
	stressWeight   = 0.3
)

// Assessor scores dropout risk across academic consistency, interest
// stability and stress tolerance.
type Assessor struct {
	criteria refdata.RiskCriteriaFile
	log      logger.Logger
}

func New(store *refdata.Store, log logger.Logger) *Assessor {
	return &Assessor{criteria: store.RiskCriteria(), log: log}
}

// Assess runs the full three-dimension risk analysis.
func (a *Assessor) Assess(data StudentData) *Assessment {
	academic := a.academicConsistency(data.AcademicHistory)
	interest := a.interestStability(data.InterestHistory)
	stress := a.stressTolerance(data.StressIndicators)

	overall := academic.Score*academicWeight + interest.Score*interestWeight + stress.Score*stressWeight
	level := overallLevel(overall)

	assessment := &Assessment{
		OverallRiskScore: overall,
		OverallRiskLevel: level,
		RiskBreakdown: RiskBreakdown{
			AcademicConsistency: academic,
			InterestStability:   interest,
			StressTolerance:     stress,
		},
		PrimaryConcerns:        primaryConcerns(academic, interest, stress),
		CareerWarnings:         a.careerWarnings(data.CareerPreferences, overall),
		Recommendations:        recommendations(academic, interest, stress),
		InterventionStrategies: a.interventionStrategies(level),
		SuccessProbability:     successProbability(overall),
		AlternativePaths:       alternativePaths(overall),
	}

	a.log.Info("risk assessment completed", map[string]interface{}{
		"overallScore": overall,
		"overallLevel": level,
		"careers":      len(data.CareerPreferences),
	})
	return assessment
}

// ==========================
// Dimension Analysis
// ==========================

func (a *Assessor) academicConsistency(h AcademicHistory) DimensionRisk {
	score := 0.0
	var factors []string

	if len(h.Grades) >= 2 && gradeTrend(h.Grades) < -0.1 {
		score += 0.3
		factors = append(factors, "Declining academic performance")
	}
	if orDefault(h.AttendanceRate, 100) < 75 {
		score += 0.2
		factors = append(factors, "Poor attendance record")
	}
	if orDefault(h.StudyConsistencyScore, 5) < 4 {
		score += 0.25
		factors = append(factors, "Inconsistent study habits")
	}
	if h.FailedSubjects > 0 {
		penalty := float64(h.FailedSubjects) * 0.1
		if penalty > 0.25 {
			penalty = 0.25
		}
		score += penalty
		factors = append(factors, fmt.Sprintf("Failed %d subjects", h.FailedSubjects))
	}

	return a.dimension("academic_consistency", score, factors)
}

func (a *Assessor) interestStability(h InterestHistory) DimensionRisk {
	score := 0.0
	var factors []string

	if h.CareerChangesCount >= 3 {
		score += 0.35
		factors = append(factors, fmt.Sprintf("Changed career goals %d times", h.CareerChangesCount))
	}
	if orDefault(h.CareerResearchScore, 5) < 4 {
		score += 0.25
		factors = append(factors, "Limited career research")
	}
	if orDefault(h.ExternalPressureScore, 3) > 7 {
		score += 0.2
		factors = append(factors, "High external pressure in career choice")
	}
	if orDefault(h.PassionIndicatorsScore, 5) < 4 {
		score += 0.2
		factors = append(factors, "Low passion for chosen field")
	}

	return a.dimension("interest_stability", score, factors)
}

func (a *Assessor) stressTolerance(s StressIndicators) DimensionRisk {
	score := 0.0
	var factors []string

	if orDefault(s.AnxietyLevel, 3) > 7 {
		score += 0.3
		factors = append(factors, "High anxiety levels")
	}
	if orDefault(s.PressurePerformanceScore, 5) < 4 {
		score += 0.25
		factors = append(factors, "Poor performance under pressure")
	}
	if orDefault(s.CopingSkillsScore, 5) < 4 {
		score += 0.25
		factors = append(factors, "Lack of healthy coping mechanisms")
	}
	if orDefault(s.ResilienceScore, 5) < 4 {
		score += 0.2
		factors = append(factors, "Low resilience to setbacks")
	}

	return a.dimension("stress_tolerance", score, factors)
}

func (a *Assessor) dimension(name string, score float64, factors []string) DimensionRisk {
	if score > 1.0 {
		score = 1.0
	}

	criteria := a.criteria.FailureWarningCriteria[name]
	level := matchLevel(score, criteria.WarningLevels)

	return DimensionRisk{
		Score:           score,
		Level:           level,
		RiskFactors:     factors,
		Recommendations: criteria.WarningLevels[level].Recommendations,
	}
}

// matchLevel finds the warning band whose closed range contains the score.
// Canonical levels are checked low to high so a boundary score lands in the
// lower band.
func matchLevel(score float64, levels map[string]refdata.WarningLevel) string {
	order := []string{levelLow, levelModerate, levelHigh}
	for name := range levels {
		if name != levelLow && name != levelModerate && name != levelHigh {
			order = append(order, name)
		}
	}
	sort.Strings(order[3:])

	for _, name := range order {
		band, ok := levels[name]
		if !ok {
			continue
		}
		if band.ScoreRange[0] <= score && score <= band.ScoreRange[1] {
			return name
		}
	}
	return levelModerate
}

// gradeTrend computes the least-squares slope of the grade series,
// normalized by the best grade so the threshold is scale free.
func gradeTrend(grades []float64) float64 {
	n := float64(len(grades))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, grade := range grades {
		x := float64(i)
		sumX += x
		sumY += grade
		sumXY += x * grade
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	slope := (n*sumXY - sumX*sumY) / denom

	maxGrade := grades[0]
	for _, grade := range grades[1:] {
		if grade > maxGrade {
			maxGrade = grade
		}
	}
	if maxGrade == 0 {
		return 0
	}
	return slope / maxGrade
}

// ==========================
// Overall Scoring
// ==========================

func overallLevel(score float64) string {
	switch {
	case score <= 0.3:
		return levelLow
	case score <= 0.6:
		return levelModerate
	default:
		return levelHigh
	}
}

func primaryConcerns(academic, interest, stress DimensionRisk) []string {
	var concerns []string
	if academic.Score > 0.5 {
		concerns = append(concerns, "Academic Performance")
	}
	if interest.Score > 0.5 {
		concerns = append(concerns, "Career Interest Stability")
	}
	if stress.Score > 0.5 {
		concerns = append(concerns, "Stress Management")
	}
	if len(concerns) == 0 {
		concerns = []string{"Overall Career Readiness"}
	}
	return concerns
}

func (a *Assessor) careerWarnings(preferences []string, overall float64) []CareerWarning {
	warnings := make([]CareerWarning, 0, len(preferences))

	for _, career := range preferences {
		info, ok := a.lookupCareerRisk(career)
		if !ok {
			continue
		}

		var specific []string
		if overall > 0.5 {
			specific = append(specific,
				fmt.Sprintf("High dropout rate (%s) in this field", info.DropoutRate),
				"Your risk profile suggests challenges in this career")
		}
		if info.StressLevel > 3.0 && overall > 0.4 {
			specific = append(specific,
				"This is a high-stress career that may not suit your stress tolerance")
		}

		warnings = append(warnings, CareerWarning{
			Career:               career,
			CareerStressLevel:    info.StressLevel,
			DropoutRate:          info.DropoutRate,
			CommonFailureReasons: info.CommonReasons,
			RiskAssessment:       assessCareerFit(info.StressLevel, overall),
			SpecificWarnings:     specific,
		})
	}

	return warnings
}

func (a *Assessor) lookupCareerRisk(career string) (refdata.CareerRiskInfo, bool) {
	categories := make([]string, 0, len(a.criteria.CareerRiskMapping))
	for category := range a.criteria.CareerRiskMapping {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, info := range a.criteria.CareerRiskMapping[category] {
			if info.Career == career {
				return info, true
			}
		}
	}
	return refdata.CareerRiskInfo{}, false
}

func assessCareerFit(careerStress, studentRisk float64) string {
	switch {
	case studentRisk > 0.6 && careerStress > 3.0:
		return "High Risk - Not Recommended"
	case studentRisk > 0.4 && careerStress > 3.5:
		return "Moderate Risk - Proceed with Caution"
	case studentRisk < 0.3:
		return "Good Fit - Low Risk"
	default:
		return "Moderate Fit - Monitor Progress"
	}
}

func recommendations(academic, interest, stress DimensionRisk) []string {
	var recs []string

	if academic.Score > 0.5 {
		recs = append(recs,
			"Focus on improving study habits and time management",
			"Consider academic tutoring or support services",
			"Address attendance and engagement issues")
	}
	if interest.Score > 0.5 {
		recs = append(recs,
			"Spend more time exploring career options through internships",
			"Talk to professionals in your field of interest",
			"Consider career counseling to clarify your interests")
	}
	if stress.Score > 0.5 {
		recs = append(recs,
			"Learn stress management and relaxation techniques",
			"Consider careers with better work-life balance",
			"Seek counseling for anxiety management")
	}

	return recs
}

func (a *Assessor) interventionStrategies(level string) []string {
	strategies := a.criteria.InterventionStrategies

	switch level {
	case levelHigh:
		var combined []string
		combined = append(combined, strategies["academic_support"]...)
		combined = append(combined, strategies["stress_management"]...)
		combined = append(combined, strategies["career_alternatives"]...)
		return combined
	case levelModerate:
		var combined []string
		combined = append(combined, strategies["interest_exploration"]...)
		combined = append(combined, firstN(strategies["academic_support"], 2)...)
		return combined
	default:
		return firstN(strategies["interest_exploration"], 2)
	}
}

func successProbability(risk float64) SuccessProbability {
	probability := 1.0 - risk
	if probability < 0.1 {
		probability = 0.1
	}

	outlook := "Challenging"
	switch {
	case probability > 0.8:
		outlook = "Excellent"
	case probability > 0.6:
		outlook = "Good"
	case probability > 0.4:
		outlook = "Fair"
	}

	confidence := "Moderate"
	if risk < 0.3 || risk > 0.7 {
		confidence = "High"
	}

	return SuccessProbability{
		Probability:     probability,
		Percentage:      fmt.Sprintf("%.1f%%", probability*100),
		Outlook:         outlook,
		ConfidenceLevel: confidence,
	}
}

func alternativePaths(risk float64) []AlternativePath {
	switch {
	case risk > 0.6:
		return []AlternativePath{
			{
				Path:        "Gap Year with Skill Development",
				Description: "Take time to build foundational skills and explore interests",
				Duration:    "1 year",
				Benefits:    []string{"Reduced pressure", "Skill building", "Career exploration"},
			},
			{
				Path:        "Community College Start",
				Description: "Begin with community college to build academic confidence",
				Duration:    "2 years",
				Benefits:    []string{"Lower cost", "Smaller classes", "Academic support"},
			},
			{
				Path:        "Trade/Vocational Training",
				Description: "Consider skilled trades with good job prospects",
				Duration:    "6 months - 2 years",
				Benefits:    []string{"Hands-on learning", "Job security", "Good wages"},
			},
		}
	case risk > 0.4:
		return []AlternativePath{
			{
				Path:        "Structured Support Program",
				Description: "Enroll in programs with built-in academic and career support",
				Duration:    "Throughout education",
				Benefits:    []string{"Mentorship", "Academic support", "Career guidance"},
			},
			{
				Path:        "Part-time Study Option",
				Description: "Reduce course load to manage stress and improve performance",
				Duration:    "Extended timeline",
				Benefits:    []string{"Reduced stress", "Work experience", "Better balance"},
			},
		}
	default:
		return nil
	}
}

// QuickAssess flags risk from four yes/no indicators when full history is
// not available.
func (a *Assessor) QuickAssess(input QuickInput) *QuickAssessment {
	count := 0
	var warnings []string

	if input.RecentGradeDrop {
		count++
		warnings = append(warnings, "Recent decline in academic performance")
	}
	if input.CareerUncertainty {
		count++
		warnings = append(warnings, "Uncertainty about career direction")
	}
	if input.HighStressLevels {
		count++
		warnings = append(warnings, "High stress and anxiety levels")
	}
	if input.ExternalPressure {
		count++
		warnings = append(warnings, "External pressure influencing career choice")
	}

	level := levelLow
	if count >= 3 {
		level = levelHigh
	} else if count >= 2 {
		level = levelModerate
	}

	recommendation := "Continue with current path"
	if count > 1 {
		recommendation = "Complete full assessment for detailed analysis"
	}

	return &QuickAssessment{
		RiskLevel:           level,
		RiskIndicatorsCount: count,
		Warnings:            warnings,
		Recommendation:      recommendation,
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
