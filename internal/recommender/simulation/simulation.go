// internal/recommender/simulation/simulation.go
package simulation

import (
	"math"
	"sort"
	"strings"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"
)

// Result is a full day-in-the-life simulation with derived metrics.
type Result struct {
	CareerTitle        string                 `json:"career_title"`
	Overview           string                 `json:"overview"`
	EducationRequired  string                 `json:"education_required"`
	WorkingHours       refdata.WorkingHours   `json:"working_hours"`
	AverageStressLevel float64                `json:"average_stress_level"`
	WorkLifeBalance    string                 `json:"work_life_balance"`
	SalaryRange        string                 `json:"salary_range"`
	WorkCulture        string                 `json:"work_culture,omitempty"`
	StressFactors      []string               `json:"stress_factors"`
	Rewards            []string               `json:"rewards"`
	DailySchedule      []refdata.ScheduleTask `json:"daily_schedule"`
	TotalTasks         int                    `json:"total_tasks"`
	PeakStressTime     PeakStress             `json:"peak_stress_time"`
	StressDistribution map[int]int            `json:"stress_distribution"`
	WorkIntensity      Intensity              `json:"work_intensity"`
}

// PeakStress is the single most stressful block of the day. The first block
// wins on ties.
type PeakStress struct {
	Time        string `json:"time"`
	Task        string `json:"task"`
	StressLevel int    `json:"stress_level"`
}

type Intensity struct {
	TotalWorkMinutes         int     `json:"total_work_minutes"`
	AverageIntensity         float64 `json:"average_intensity"`
	MaxContinuousWorkMinutes int     `json:"max_continuous_work_minutes"`
	WorkLifeBalanceScore     int     `json:"work_life_balance_score"`
}

// Summary is the condensed view served to list and comparison surfaces.
type Summary struct {
	CareerTitle        string               `json:"career_title"`
	Overview           string               `json:"overview"`
	WorkingHours       refdata.WorkingHours `json:"working_hours"`
	AverageStressLevel float64              `json:"average_stress_level"`
	WorkLifeBalance    string               `json:"work_life_balance"`
	SalaryRange        string               `json:"salary_range"`
	KeyStressFactors   []string             `json:"key_stress_factors"`
	KeyRewards         []string             `json:"key_rewards"`
	PeakStressTime     PeakStress           `json:"peak_stress_time"`
	WorkIntensity      Intensity            `json:"work_intensity"`
}

type Timeline struct {
	CareerTitle   string                 `json:"career_title"`
	Timeline      []refdata.ScheduleTask `json:"timeline"`
	StressScale   map[string]string      `json:"stress_scale"`
	AverageStress float64                `json:"average_stress"`
}

// Insights is the qualitative read of a simulated day.
type Insights struct {
	CareerTitle       string            `json:"career_title"`
	DailyPatterns     DailyPatterns     `json:"daily_patterns"`
	Characteristics   Characteristics   `json:"work_characteristics"`
	CareerProgression CareerProgression `json:"career_progression"`
	LifestyleImpact   LifestyleImpact   `json:"lifestyle_impact"`
}

type DailyPatterns struct {
	MorningStressAvg    float64 `json:"morning_stress_avg"`
	AfternoonStressAvg  float64 `json:"afternoon_stress_avg"`
	EveningStressAvg    float64 `json:"evening_stress_avg"`
	MostStressfulPeriod string  `json:"most_stressful_period"`
}

type Characteristics struct {
	TotalWorkingHours float64 `json:"total_working_hours"`
	Flexibility       string  `json:"flexibility"`
	PhysicalDemands   string  `json:"physical_demands"`
	MentalDemands     string  `json:"mental_demands"`
}

type CareerProgression struct {
	EntryBarrier    string `json:"entry_barrier"`
	LearningCurve   string `json:"learning_curve"`
	GrowthPotential string `json:"growth_potential"`
}

type LifestyleImpact struct {
	WorkLifeBalanceRating int    `json:"work_life_balance_rating"`
	SocialImpact          string `json:"social_impact"`
	FinancialStability    string `json:"financial_stability"`
}

type Rankings struct {
	LowestStress        []string `json:"lowest_stress"`
	BestWorkLifeBalance []string `json:"best_work_life_balance"`
	ShortestHours       []string `json:"shortest_hours"`
	HighestIntensity    []string `json:"highest_intensity"`
}

type Comparison struct {
	Careers  []Summary `json:"careers"`
	Rankings Rankings  `json:"rankings"`
}

var (
	physicallyDemandingCareers = []string{"Doctor", "IAS Officer"}
	highGrowthCareers          = []string{"Doctor", "IAS Officer", "Software Engineer"}
	highSocialImpactCareers    = []string{"Doctor", "IAS Officer", "Teacher"}
)

// Engine serves day-in-the-life simulations with derived stress metrics.
type Engine struct {
	store *refdata.Store
	log   logger.Logger
}

func New(store *refdata.Store, log logger.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// AvailableCareers lists the careers with simulation data, sorted.
func (e *Engine) AvailableCareers() []string {
	return e.store.SimulationNames()
}

// Simulate returns the full simulation for a career with region-specific
// salary and work culture applied and all derived metrics computed.
func (e *Engine) Simulate(career, region string) (*Result, error) {
	sim, ok := e.store.Simulation(career)
	if !ok {
		return nil, errors.NewSimulationNotFoundError(career, e.store.SimulationNames())
	}

	salary := sim.SalaryRange
	culture := ""
	if variant, ok := sim.RegionSpecific[region]; ok {
		if variant.Salary != "" {
			salary = variant.Salary
		}
		culture = variant.WorkCulture
		if culture == "" {
			culture = "Standard work culture"
		}
	}

	result := &Result{
		CareerTitle:        sim.CareerTitle,
		Overview:           sim.Overview,
		EducationRequired:  sim.EducationRequired,
		WorkingHours:       sim.WorkingHours,
		AverageStressLevel: sim.AverageStressLevel,
		WorkLifeBalance:    sim.WorkLifeBalance,
		SalaryRange:        salary,
		WorkCulture:        culture,
		StressFactors:      sim.StressFactors,
		Rewards:            sim.Rewards,
		DailySchedule:      sim.DailySchedule,
		TotalTasks:         len(sim.DailySchedule),
		PeakStressTime:     peakStress(sim.DailySchedule),
		StressDistribution: stressDistribution(sim.DailySchedule),
		WorkIntensity:      workIntensity(sim.DailySchedule),
	}

	e.log.Debug("simulation built", map[string]interface{}{
		"career": career,
		"region": region,
		"tasks":  result.TotalTasks,
	})
	return result, nil
}

// Summary condenses a simulation to its headline numbers and top factors.
func (e *Engine) Summary(career, region string) (*Summary, error) {
	result, err := e.Simulate(career, region)
	if err != nil {
		return nil, err
	}
	return summarize(result), nil
}

func summarize(result *Result) *Summary {
	return &Summary{
		CareerTitle:        result.CareerTitle,
		Overview:           result.Overview,
		WorkingHours:       result.WorkingHours,
		AverageStressLevel: result.AverageStressLevel,
		WorkLifeBalance:    result.WorkLifeBalance,
		SalaryRange:        result.SalaryRange,
		KeyStressFactors:   top3(result.StressFactors),
		KeyRewards:         top3(result.Rewards),
		PeakStressTime:     result.PeakStressTime,
		WorkIntensity:      result.WorkIntensity,
	}
}

// StressTimeline returns the day's schedule annotated with the stress-scale
// legend.
func (e *Engine) StressTimeline(career, region string) (*Timeline, error) {
	result, err := e.Simulate(career, region)
	if err != nil {
		return nil, err
	}
	return &Timeline{
		CareerTitle:   result.CareerTitle,
		Timeline:      result.DailySchedule,
		StressScale:   e.store.StressScale(),
		AverageStress: result.AverageStressLevel,
	}, nil
}

// Insights analyzes a simulated day for patterns and lifestyle impact.
func (e *Engine) Insights(career, region string) (*Insights, error) {
	result, err := e.Simulate(career, region)
	if err != nil {
		return nil, err
	}

	schedule := result.DailySchedule

	// The first three blocks count as morning. Afternoon and evening only
	// exist for days with more than six blocks.
	morning := stressSum(schedule, 0, 3) / 3
	afternoon := 0.0
	evening := 0.0
	if len(schedule) > 6 {
		afternoon = stressSum(schedule, 3, 6) / 3
		evening = stressSum(schedule, 6, len(schedule)) / float64(len(schedule)-6)
	}

	period := "Evening"
	if morning >= math.Max(afternoon, evening) {
		period = "Morning"
	} else if afternoon >= evening {
		period = "Afternoon"
	}

	flexibility := "Medium"
	if result.WorkingHours.Flexible {
		flexibility = "High"
	}
	mental := "Medium"
	if result.AverageStressLevel > 3 {
		mental = "High"
	}
	entryBarrier := "Medium"
	if strings.Contains(strings.ToLower(result.EducationRequired), "degree") {
		entryBarrier = "High"
	}
	learningCurve := "Moderate"
	if result.AverageStressLevel > 3 {
		learningCurve = "Steep"
	}
	financial := "Medium"
	if strings.Contains(strings.ToLower(result.SalaryRange), "high") ||
		strings.Contains(result.SalaryRange, "$") {
		financial = "High"
	}

	return &Insights{
		CareerTitle: result.CareerTitle,
		DailyPatterns: DailyPatterns{
			MorningStressAvg:    round1(morning),
			AfternoonStressAvg:  round1(afternoon),
			EveningStressAvg:    round1(evening),
			MostStressfulPeriod: period,
		},
		Characteristics: Characteristics{
			TotalWorkingHours: result.WorkingHours.TotalHours,
			Flexibility:       flexibility,
			PhysicalDemands:   highOrLow(result.CareerTitle, physicallyDemandingCareers),
			MentalDemands:     mental,
		},
		CareerProgression: CareerProgression{
			EntryBarrier:    entryBarrier,
			LearningCurve:   learningCurve,
			GrowthPotential: highOrMedium(result.CareerTitle, highGrowthCareers),
		},
		LifestyleImpact: LifestyleImpact{
			WorkLifeBalanceRating: result.WorkIntensity.WorkLifeBalanceScore,
			SocialImpact:          highOrMedium(result.CareerTitle, highSocialImpactCareers),
			FinancialStability:    financial,
		},
	}, nil
}

// CompareSimulations ranks the summaries of several careers. Unknown careers
// are skipped; at least two must resolve.
func (e *Engine) CompareSimulations(names []string, region string) (*Comparison, error) {
	if len(names) < 2 {
		return nil, errors.NewValidationError(
			"Please select at least 2 careers to compare", "")
	}

	var summaries []Summary
	for _, name := range names {
		summary, err := e.Summary(name, region)
		if err != nil {
			e.log.Warn("simulation unavailable for comparison", map[string]interface{}{
				"career": name,
			})
			continue
		}
		summaries = append(summaries, *summary)
	}

	if len(summaries) < 2 {
		return nil, errors.NewValidationError(
			"Not enough valid careers for comparison", "")
	}

	return &Comparison{
		Careers: summaries,
		Rankings: Rankings{
			LowestStress: rankBy(summaries, func(a, b Summary) bool {
				return a.AverageStressLevel < b.AverageStressLevel
			}),
			BestWorkLifeBalance: rankBy(summaries, func(a, b Summary) bool {
				return a.WorkIntensity.WorkLifeBalanceScore > b.WorkIntensity.WorkLifeBalanceScore
			}),
			ShortestHours: rankBy(summaries, func(a, b Summary) bool {
				return a.WorkingHours.TotalHours < b.WorkingHours.TotalHours
			}),
			HighestIntensity: rankBy(summaries, func(a, b Summary) bool {
				return a.WorkIntensity.AverageIntensity > b.WorkIntensity.AverageIntensity
			}),
		},
	}, nil
}

// ==========================
// Derived Metrics
// ==========================

func peakStress(schedule []refdata.ScheduleTask) PeakStress {
	peak := PeakStress{}
	for _, task := range schedule {
		if task.StressLevel > peak.StressLevel {
			peak = PeakStress{Time: task.Time, Task: task.Task, StressLevel: task.StressLevel}
		}
	}
	return peak
}

func stressDistribution(schedule []refdata.ScheduleTask) map[int]int {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, task := range schedule {
		distribution[task.StressLevel]++
	}
	return distribution
}

func workIntensity(schedule []refdata.ScheduleTask) Intensity {
	totalDuration := 0
	weighted := 0
	for _, task := range schedule {
		totalDuration += task.Duration
		weighted += task.Duration * task.StressLevel
	}

	avg := 0.0
	if totalDuration > 0 {
		avg = float64(weighted) / float64(totalDuration)
	}

	// Stress level 2 and above counts as active work.
	maxContinuous := 0
	current := 0
	for _, task := range schedule {
		if task.StressLevel >= 2 {
			current += task.Duration
			if current > maxContinuous {
				maxContinuous = current
			}
		} else {
			current = 0
		}
	}

	return Intensity{
		TotalWorkMinutes:         totalDuration,
		AverageIntensity:         math.Round(avg*100) / 100,
		MaxContinuousWorkMinutes: maxContinuous,
		WorkLifeBalanceScore:     balanceScore(schedule),
	}
}

func balanceScore(schedule []refdata.ScheduleTask) int {
	total := len(schedule)
	if total == 0 {
		return 3
	}

	highStress := 0
	breaks := 0
	for _, task := range schedule {
		if task.StressLevel >= 4 {
			highStress++
		}
		if task.StressLevel <= 1 {
			breaks++
		}
	}

	switch {
	case float64(highStress)/float64(total) > 0.4:
		return 2
	case float64(highStress)/float64(total) > 0.2:
		return 3
	case float64(breaks)/float64(total) > 0.2:
		return 4
	default:
		return 3
	}
}

func stressSum(schedule []refdata.ScheduleTask, lo, hi int) float64 {
	if hi > len(schedule) {
		hi = len(schedule)
	}
	if lo > len(schedule) {
		lo = len(schedule)
	}
	sum := 0.0
	for _, task := range schedule[lo:hi] {
		sum += float64(task.StressLevel)
	}
	return sum
}

func top3(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}

func highOrLow(career string, demanding []string) string {
	for _, name := range demanding {
		if name == career {
			return "High"
		}
	}
	return "Low"
}

func highOrMedium(career string, names []string) string {
	for _, name := range names {
		if name == career {
			return "High"
		}
	}
	return "Medium"
}

func rankBy(summaries []Summary, less func(a, b Summary) bool) []string {
	ordered := make([]Summary, len(summaries))
	copy(ordered, summaries)
	sort.SliceStable(ordered, func(i, j int) bool { return less(ordered[i], ordered[j]) })

	names := make([]string, len(ordered))
	for i, s := range ordered {
		names[i] = s.CareerTitle
	}
	return names
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
