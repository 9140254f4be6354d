// internal/recommender/simulation/simulation_test.go
package simulation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testSchedule() []refdata.ScheduleTask {
	return []refdata.ScheduleTask{
		{Time: "09:00", Task: "Standup", StressLevel: 2, Duration: 15, Description: "Daily sync"},
		{Time: "09:15", Task: "Code review", StressLevel: 3, Duration: 45, Description: "Review open PRs"},
		{Time: "10:00", Task: "Deep work", StressLevel: 4, Duration: 120, Description: "Feature development"},
		{Time: "12:00", Task: "Lunch", StressLevel: 1, Duration: 60, Description: "Break"},
		{Time: "13:00", Task: "Meetings", StressLevel: 3, Duration: 60, Description: "Planning"},
		{Time: "14:00", Task: "Debugging", StressLevel: 5, Duration: 90, Description: "Production issue"},
		{Time: "15:30", Task: "Deploy", StressLevel: 4, Duration: 30, Description: "Release"},
		{Time: "16:00", Task: "Docs", StressLevel: 2, Duration: 60, Description: "Write documentation"},
		{Time: "17:00", Task: "Wrap-up", StressLevel: 1, Duration: 30, Description: "Plan tomorrow"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()

	file := refdata.SimulationsFile{
		CareerSimulations: map[string]refdata.Simulation{
			"Software Engineer": {
				CareerTitle:        "Software Engineer",
				Overview:           "Build and ship software",
				EducationRequired:  "Bachelor's degree in computer science",
				WorkingHours:       refdata.WorkingHours{TotalHours: 9, Flexible: true},
				AverageStressLevel: 3.5,
				WorkLifeBalance:    "Moderate",
				SalaryRange:        "$70,000 - $120,000",
				StressFactors:      []string{"deadlines", "on-call", "scope creep", "legacy code"},
				Rewards:            []string{"high pay", "remote work", "creative problems", "growth"},
				DailySchedule:      testSchedule(),
				RegionSpecific: map[string]refdata.RegionVariant{
					"india": {Salary: "15 lakh", WorkCulture: "Fast-paced"},
				},
			},
			"Teacher": {
				CareerTitle:        "Teacher",
				Overview:           "Teach and mentor students",
				EducationRequired:  "Teaching certification",
				WorkingHours:       refdata.WorkingHours{TotalHours: 6},
				AverageStressLevel: 2.0,
				WorkLifeBalance:    "Good",
				SalaryRange:        "Moderate pay",
				StressFactors:      []string{"grading"},
				Rewards:            []string{"impact"},
				DailySchedule: []refdata.ScheduleTask{
					{Time: "08:00", Task: "Classes", StressLevel: 1, Duration: 60},
					{Time: "09:00", Task: "Grading", StressLevel: 2, Duration: 60},
					{Time: "10:00", Task: "Office hours", StressLevel: 1, Duration: 60},
				},
			},
		},
		SimulationMetadata: refdata.SimulationMetadata{
			StressScale: map[string]string{"1": "Very relaxed", "5": "Very stressful"},
		},
	}

	raw, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "career_simulations.json"), raw, 0o644))

	store, err := refdata.Load(dir, logger.NewTestLogger(t))
	require.NoError(t, err)
	return New(store, logger.NewTestLogger(t))
}

// ==========================
// Simulation Tests
// ==========================

func TestSimulate_UnknownCareerReturnsNotFound(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Simulate("Astronaut", "global")
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeSimulationNotFound, stdErr.Code)
	assert.Contains(t, stdErr.Metadata["availableCareers"], "Software Engineer")
}

func TestSimulate_ComputesDerivedMetrics(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Simulate("Software Engineer", "global")
	require.NoError(t, err)

	assert.Equal(t, 9, result.TotalTasks)
	assert.Equal(t, PeakStress{Time: "14:00", Task: "Debugging", StressLevel: 5}, result.PeakStressTime)
	assert.Equal(t, map[int]int{1: 2, 2: 2, 3: 2, 4: 2, 5: 1}, result.StressDistribution)

	intensity := result.WorkIntensity
	assert.Equal(t, 510, intensity.TotalWorkMinutes)
	assert.Equal(t, 3.15, intensity.AverageIntensity)
	assert.Equal(t, 240, intensity.MaxContinuousWorkMinutes)
	assert.Equal(t, 3, intensity.WorkLifeBalanceScore)
}

func TestSimulate_RegionOverridesSalaryAndCulture(t *testing.T) {
	e := newTestEngine(t)

	global, err := e.Simulate("Software Engineer", "global")
	require.NoError(t, err)
	assert.Equal(t, "$70,000 - $120,000", global.SalaryRange)
	assert.Empty(t, global.WorkCulture)

	india, err := e.Simulate("Software Engineer", "india")
	require.NoError(t, err)
	assert.Equal(t, "15 lakh", india.SalaryRange)
	assert.Equal(t, "Fast-paced", india.WorkCulture)
}

func TestSimulate_LookupIsCaseInsensitive(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Simulate("software engineer", "global")
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", result.CareerTitle)
}

func TestBalanceScore_Buckets(t *testing.T) {
	task := func(stress int) refdata.ScheduleTask {
		return refdata.ScheduleTask{StressLevel: stress, Duration: 60}
	}

	tests := []struct {
		name     string
		schedule []refdata.ScheduleTask
		want     int
	}{
		{"mostly high stress", []refdata.ScheduleTask{task(5), task(4), task(4), task(2)}, 2},
		{"some high stress", []refdata.ScheduleTask{task(4), task(2), task(2), task(3)}, 3},
		{"frequent breaks", []refdata.ScheduleTask{task(1), task(2), task(1), task(2)}, 4},
		{"steady moderate", []refdata.ScheduleTask{task(2), task(3), task(2), task(3)}, 3},
		{"empty schedule", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, balanceScore(tt.schedule))
		})
	}
}

// ==========================
// Summary and Timeline Tests
// ==========================

func TestSummary_TruncatesFactorsToTopThree(t *testing.T) {
	e := newTestEngine(t)

	summary, err := e.Summary("Software Engineer", "global")
	require.NoError(t, err)

	assert.Equal(t, []string{"deadlines", "on-call", "scope creep"}, summary.KeyStressFactors)
	assert.Equal(t, []string{"high pay", "remote work", "creative problems"}, summary.KeyRewards)
	assert.Equal(t, 3.5, summary.AverageStressLevel)
}

func TestStressTimeline_CarriesScaleLegend(t *testing.T) {
	e := newTestEngine(t)

	timeline, err := e.StressTimeline("Teacher", "global")
	require.NoError(t, err)

	assert.Equal(t, "Teacher", timeline.CareerTitle)
	assert.Len(t, timeline.Timeline, 3)
	assert.Equal(t, "Very relaxed", timeline.StressScale["1"])
	assert.Equal(t, 2.0, timeline.AverageStress)
}

// ==========================
// Insights Tests
// ==========================

func TestInsights_DailyPatterns(t *testing.T) {
	e := newTestEngine(t)

	insights, err := e.Insights("Software Engineer", "global")
	require.NoError(t, err)

	patterns := insights.DailyPatterns
	assert.Equal(t, 3.0, patterns.MorningStressAvg)
	assert.Equal(t, 3.0, patterns.AfternoonStressAvg)
	assert.Equal(t, 2.3, patterns.EveningStressAvg)
	assert.Equal(t, "Morning", patterns.MostStressfulPeriod)
}

func TestInsights_ShortDayHasNoAfternoonOrEvening(t *testing.T) {
	e := newTestEngine(t)

	insights, err := e.Insights("Teacher", "global")
	require.NoError(t, err)

	patterns := insights.DailyPatterns
	assert.Equal(t, 1.3, patterns.MorningStressAvg)
	assert.Equal(t, 0.0, patterns.AfternoonStressAvg)
	assert.Equal(t, 0.0, patterns.EveningStressAvg)
	assert.Equal(t, "Morning", patterns.MostStressfulPeriod)
}

func TestInsights_QualitativeRatings(t *testing.T) {
	e := newTestEngine(t)

	insights, err := e.Insights("Software Engineer", "global")
	require.NoError(t, err)

	assert.Equal(t, "High", insights.Characteristics.Flexibility)
	assert.Equal(t, "Low", insights.Characteristics.PhysicalDemands)
	assert.Equal(t, "High", insights.Characteristics.MentalDemands)
	assert.Equal(t, "High", insights.CareerProgression.EntryBarrier)
	assert.Equal(t, "Steep", insights.CareerProgression.LearningCurve)
	assert.Equal(t, "High", insights.CareerProgression.GrowthPotential)
	assert.Equal(t, 3, insights.LifestyleImpact.WorkLifeBalanceRating)
	assert.Equal(t, "Medium", insights.LifestyleImpact.SocialImpact)
	assert.Equal(t, "High", insights.LifestyleImpact.FinancialStability)
}

func TestInsights_TeacherRatings(t *testing.T) {
	e := newTestEngine(t)

	insights, err := e.Insights("Teacher", "global")
	require.NoError(t, err)

	assert.Equal(t, "Medium", insights.Characteristics.Flexibility)
	assert.Equal(t, "Medium", insights.Characteristics.MentalDemands)
	assert.Equal(t, "Medium", insights.CareerProgression.EntryBarrier)
	assert.Equal(t, "Moderate", insights.CareerProgression.LearningCurve)
	assert.Equal(t, "High", insights.LifestyleImpact.SocialImpact)
	assert.Equal(t, "Medium", insights.LifestyleImpact.FinancialStability)
}

// ==========================
// Comparison Tests
// ==========================

func TestCompareSimulations_Rankings(t *testing.T) {
	e := newTestEngine(t)

	cmp, err := e.CompareSimulations([]string{"Software Engineer", "Teacher"}, "global")
	require.NoError(t, err)

	require.Len(t, cmp.Careers, 2)
	assert.Equal(t, []string{"Teacher", "Software Engineer"}, cmp.Rankings.LowestStress)
	assert.Equal(t, []string{"Teacher", "Software Engineer"}, cmp.Rankings.BestWorkLifeBalance)
	assert.Equal(t, []string{"Teacher", "Software Engineer"}, cmp.Rankings.ShortestHours)
	assert.Equal(t, []string{"Software Engineer", "Teacher"}, cmp.Rankings.HighestIntensity)
}

func TestCompareSimulations_SkipsUnknownButNeedsTwo(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CompareSimulations([]string{"Software Engineer", "Astronaut"}, "global")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not enough valid careers")

	_, err = e.CompareSimulations([]string{"Software Engineer"}, "global")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 careers")
}
