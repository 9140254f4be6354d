// internal/recommender/comparison/comparison.go
package comparison

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"
)

const (
	minCareers = 2
	maxCareers = 5
)

// CareerProfile is one career's comparable snapshot, with salary and outlook
// resolved for the requested region.
type CareerProfile struct {
	Name             string   `json:"name"`
	Salary           string   `json:"salary"`
	GrowthRate       string   `json:"growth_rate"`
	JobOutlook       string   `json:"job_outlook"`
	RequiredSkills   []string `json:"required_skills"`
	StressLevel      string   `json:"stress_level"`
	WorkLifeBalance  string   `json:"work_life_balance"`
	SkillsComplexity int      `json:"skills_complexity"`
}

// Rankings order career names best-first per metric. Ties keep input order.
type Rankings struct {
	Salary          []string `json:"salary"`
	LowStress       []string `json:"low_stress"`
	WorkLifeBalance []string `json:"work_life_balance"`
	GrowthPotential []string `json:"growth_potential"`
	EasierEntry     []string `json:"easier_entry"`
}

type Comparison struct {
	Careers        []CareerProfile   `json:"careers"`
	Rankings       Rankings          `json:"rankings"`
	WinnerAnalysis map[string]string `json:"winner_analysis,omitempty"`
	Region         string            `json:"region"`
}

// Engine compares careers on salary, stress, balance, growth and entry
// difficulty using the reference tables.
type Engine struct {
	store *refdata.Store
	log   logger.Logger
}

func New(store *refdata.Store, log logger.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Compare resolves the named careers for the region and ranks them. Unknown
// names are skipped; at least two must resolve. For exactly two careers a
// head-to-head winner analysis is included.
func (e *Engine) Compare(names []string, region string) (*Comparison, error) {
	if len(names) < minCareers {
		return nil, errors.NewValidationError(
			"Please select at least 2 careers to compare",
			fmt.Sprintf("selected: %d", len(names)))
	}
	if len(names) > maxCareers {
		return nil, errors.NewValidationError(
			"Maximum 5 careers can be compared at once",
			fmt.Sprintf("selected: %d", len(names)))
	}

	available := e.store.ComparableCareers()

	var profiles []CareerProfile
	for _, name := range names {
		career, ok := lookup(available, name)
		if !ok {
			e.log.Warn("career not found for comparison", map[string]interface{}{
				"career": name,
				"region": region,
			})
			continue
		}
		profiles = append(profiles, e.profile(career, region))
	}

	if len(profiles) < minCareers {
		return nil, errors.NewValidationError(
			"Both careers must be available for comparison",
			fmt.Sprintf("resolved %d of %d requested careers", len(profiles), len(names)))
	}

	cmp := &Comparison{
		Careers:  profiles,
		Rankings: rank(profiles),
		Region:   region,
	}
	if len(profiles) == 2 {
		cmp.WinnerAnalysis = winnerAnalysis(profiles[0], profiles[1])
	}

	e.log.Info("careers compared", map[string]interface{}{
		"careers": len(profiles),
		"region":  region,
	})
	return cmp, nil
}

func lookup(careers map[string]refdata.ComparableCareer, name string) (refdata.ComparableCareer, bool) {
	if c, ok := careers[name]; ok {
		return c, true
	}
	for key, c := range careers {
		if strings.EqualFold(key, name) {
			return c, true
		}
	}
	return refdata.ComparableCareer{}, false
}

func (e *Engine) profile(career refdata.ComparableCareer, region string) CareerProfile {
	salary := career.MedianSalary
	outlook := career.JobOutlook
	if region == "india" && career.HasIndiaData {
		if career.IndiaSalary != "" {
			salary = career.IndiaSalary
		}
		if career.IndiaOutlook != "" {
			outlook = career.IndiaOutlook
		}
	}

	stress := "Medium"
	balance := "Moderate"
	if entry, _, ok := e.store.RealityEntry(career.Name); ok {
		if entry.RealityCheck.StressLevel != "" {
			stress = entry.RealityCheck.StressLevel
		}
		if entry.RealityCheck.WorkLifeBalance != "" {
			balance = entry.RealityCheck.WorkLifeBalance
		}
	}

	return CareerProfile{
		Name:             career.Name,
		Salary:           salary,
		GrowthRate:       career.GrowthRate,
		JobOutlook:       outlook,
		RequiredSkills:   career.RequiredSkills,
		StressLevel:      stress,
		WorkLifeBalance:  balance,
		SkillsComplexity: skillsComplexity(career.RequiredSkills),
	}
}

// skillsComplexity maps skill count to a 1-5 scale, two skills per point.
func skillsComplexity(required []string) int {
	complexity := len(required) / 2
	if complexity < 1 {
		complexity = 1
	}
	if complexity > 5 {
		complexity = 5
	}
	return complexity
}

// ==========================
// Metric Normalization
// ==========================

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// NormalizeSalary converts a salary string to a comparable integer. Ranges
// average to their midpoint, lakh notation multiplies by 100000, and
// unparsable values become 0.
func NormalizeSalary(salary string) int {
	lower := strings.ToLower(salary)
	clean := strings.NewReplacer("$", "", "₹", "", ",", "", " ", "").Replace(lower)

	isLakh := strings.Contains(lower, "lakh") || strings.Contains(clean, "l")

	numbers := numberPattern.FindAllString(clean, -1)
	if len(numbers) == 0 {
		return 0
	}

	value := 0.0
	if len(numbers) >= 2 {
		low, _ := strconv.ParseFloat(numbers[0], 64)
		high, _ := strconv.ParseFloat(numbers[1], 64)
		value = (low + high) / 2
	} else {
		value, _ = strconv.ParseFloat(numbers[0], 64)
	}

	if isLakh {
		value *= 100000
	}
	return int(value)
}

var stressScores = map[string]int{
	"low":         1,
	"medium-low":  2,
	"medium":      3,
	"medium-high": 4,
	"high":        5,
}

func stressScore(level string) int {
	if score, ok := stressScores[strings.ToLower(strings.TrimSpace(level))]; ok {
		return score
	}
	return 3
}

func balanceScore(balance string) int {
	lower := strings.ToLower(balance)
	switch {
	case strings.Contains(lower, "excellent") || strings.Contains(lower, "great"):
		return 5
	case strings.Contains(lower, "good") || strings.Contains(lower, "flexible"):
		return 4
	case strings.Contains(lower, "moderate") || strings.Contains(lower, "balanced"):
		return 3
	case strings.Contains(lower, "challenging") || strings.Contains(lower, "demanding"):
		return 2
	case strings.Contains(lower, "poor") || strings.Contains(lower, "intense"):
		return 1
	default:
		return 3
	}
}

func growthScore(growth string) float64 {
	if match := numberPattern.FindString(growth); match != "" {
		value, _ := strconv.ParseFloat(match, 64)
		return value
	}
	return 0
}

// ==========================
// Rankings
// ==========================

func rank(profiles []CareerProfile) Rankings {
	return Rankings{
		Salary: rankBy(profiles, func(a, b CareerProfile) bool {
			return NormalizeSalary(a.Salary) > NormalizeSalary(b.Salary)
		}),
		LowStress: rankBy(profiles, func(a, b CareerProfile) bool {
			return stressScore(a.StressLevel) < stressScore(b.StressLevel)
		}),
		WorkLifeBalance: rankBy(profiles, func(a, b CareerProfile) bool {
			return balanceScore(a.WorkLifeBalance) > balanceScore(b.WorkLifeBalance)
		}),
		GrowthPotential: rankBy(profiles, func(a, b CareerProfile) bool {
			return growthScore(a.GrowthRate) > growthScore(b.GrowthRate)
		}),
		EasierEntry: rankBy(profiles, func(a, b CareerProfile) bool {
			return a.SkillsComplexity < b.SkillsComplexity
		}),
	}
}

func rankBy(profiles []CareerProfile, less func(a, b CareerProfile) bool) []string {
	ordered := make([]CareerProfile, len(profiles))
	copy(ordered, profiles)
	sort.SliceStable(ordered, func(i, j int) bool { return less(ordered[i], ordered[j]) })

	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Name
	}
	return names
}

// winnerAnalysis picks a per-category winner for a head-to-head pair. The
// first career wins a category only when strictly better, so ties go to the
// second.
func winnerAnalysis(a, b CareerProfile) map[string]string {
	analysis := make(map[string]string, 5)

	pick := func(aWins bool) string {
		if aWins {
			return a.Name
		}
		return b.Name
	}

	analysis["salary"] = pick(NormalizeSalary(a.Salary) > NormalizeSalary(b.Salary))
	analysis["work_life_balance"] = pick(balanceScore(a.WorkLifeBalance) > balanceScore(b.WorkLifeBalance))
	analysis["low_stress"] = pick(stressScore(a.StressLevel) < stressScore(b.StressLevel))
	analysis["growth_potential"] = pick(growthScore(a.GrowthRate) > growthScore(b.GrowthRate))
	analysis["easier_entry"] = pick(a.SkillsComplexity < b.SkillsComplexity)

	return analysis
}
