// internal/workers/assessment/recommend-careers/handler_test.go
package recommendcareers

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/recommender/matcher"
	"career-engine/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	dir := t.TempDir()

	careers := []refdata.Career{
		{
			Name:              "Software Engineer",
			RequiredSkills:    []string{"programming", "problem_solving", "logical_thinking"},
			Interests:         []string{"technology", "coding", "building things"},
			Subjects:          []string{"computer_science", "mathematics"},
			PersonalityTraits: []string{"analytical", "detail-oriented"},
			MedianSalary:      "$110,000",
			GrowthRate:        "22%",
		},
		{
			Name:              "Veterinarian",
			RequiredSkills:    []string{"animal care", "empathy", "biology knowledge"},
			Interests:         []string{"animals", "nature", "helping others"},
			Subjects:          []string{"biology", "chemistry"},
			PersonalityTraits: []string{"compassionate", "patient"},
			MedianSalary:      "$100,000",
			GrowthRate:        "19%",
		},
	}
	raw, err := json.Marshal(careers)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careers.json"), raw, 0o644))

	log := logger.NewTestLogger(t)
	store, err := refdata.Load(dir, log)
	require.NoError(t, err)

	cfg := &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30 * time.Second,
		DefaultRegion: "global",
		DefaultMode:   "student",
		TipCacheTTL:   time.Hour,
	}
	return NewHandler(cfg, store, nil, log)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute_TechProfileRanksSoftwareEngineerFirst(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Interests:   []string{"technology", "coding"},
		Skills:      []string{"programming", "problem_solving"},
		Subjects:    []string{"computer_science", "mathematics"},
		Personality: matcher.PersonalityInput{Traits: []string{"analytical"}},
		UserID:      "user-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AnalysisID)
	assert.Equal(t, "global", output.Region)
	assert.Equal(t, "student", output.Mode)

	require.Len(t, output.Recommendations, 2)
	top := output.Recommendations[0]
	assert.Equal(t, "Software Engineer", top.Career.Name)
	assert.Greater(t, top.Score, output.Recommendations[1].Score)

	// Each recommendation carries its explanation and skills gap.
	assert.Equal(t, "Software Engineer", top.SkillsGap.CareerName)
	assert.NotZero(t, top.Explanation.OverallMatch)
	assert.NotEmpty(t, top.Explanation.Reasons)

	assert.NotEmpty(t, output.Graph.Nodes)
	assert.NotEmpty(t, output.Graph.Links)
	assert.Equal(t, "USD", output.RegionInfo.Currency)

	_, parseErr := time.Parse(time.RFC3339, output.GeneratedAt)
	assert.NoError(t, parseErr)
}

func TestExecute_EnrichmentAttached(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Interests: []string{"technology"},
		Skills:    []string{"programming"},
		UserID:    "user-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.RoleModels)
	require.NotNil(t, output.DailyTip)
	assert.NotEmpty(t, output.DailyTip.Tip)
	require.NotNil(t, output.Quote)
	assert.NotEmpty(t, output.Quote.Author)
}

func TestExecute_DefaultsAppliedForRegionAndMode(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Skills: []string{"programming"},
	})
	require.NoError(t, err)

	assert.Equal(t, "global", output.Region)
	assert.Equal(t, "student", output.Mode)
}

// ==========================
// Error Handling Tests
// ==========================

func TestExecute_ValidationErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		input *Input
	}{
		{
			name:  "no assessment data",
			input: &Input{UserID: "user-1"},
		},
		{
			name: "unknown region",
			input: &Input{
				Skills: []string{"programming"},
				Region: "mars",
			},
		},
		{
			name: "unknown mode",
			input: &Input{
				Skills: []string{"programming"},
				Mode:   "retired",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), tt.input)
			require.Error(t, err)

			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
		})
	}
}
