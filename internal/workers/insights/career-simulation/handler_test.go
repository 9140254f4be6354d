// internal/workers/insights/career-simulation/handler_test.go
package careersimulation

import (
	"context"
	"testing"
	"time"

	"career-engine/internal/common/config"
	"career-engine/internal/common/database"
	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	return newTestHandlerWithCache(t, nil)
}

func newTestHandlerWithCache(t *testing.T, cache *database.RedisClient) *Handler {
	log := logger.NewTestLogger(t)
	store, err := refdata.Load(t.TempDir(), log)
	require.NoError(t, err)

	cfg := &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       10 * time.Second,
		DefaultRegion: "global",
		SimCacheTTL:   time.Hour,
	}
	return NewHandler(cfg, store, cache, log)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute_FullSimulation(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Career: "Software Engineer"})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AnalysisID)
	assert.Equal(t, DetailFull, output.Detail)
	require.NotNil(t, output.Simulation)
	assert.Equal(t, "Software Engineer", output.Simulation.CareerTitle)
	assert.Equal(t, 7, output.Simulation.TotalTasks)
	assert.Equal(t, "Incident triage", output.Simulation.PeakStressTime.Task)
}

func TestExecute_DetailLevels(t *testing.T) {
	tests := []struct {
		detail   string
		validate func(t *testing.T, output *Output)
	}{
		{
			detail: DetailSummary,
			validate: func(t *testing.T, output *Output) {
				require.NotNil(t, output.Summary)
				assert.Nil(t, output.Simulation)
			},
		},
		{
			detail: DetailInsights,
			validate: func(t *testing.T, output *Output) {
				require.NotNil(t, output.Insights)
				assert.Equal(t, "High", output.Insights.Characteristics.Flexibility)
			},
		},
		{
			detail: DetailTimeline,
			validate: func(t *testing.T, output *Output) {
				require.NotNil(t, output.Timeline)
				assert.Len(t, output.Timeline.Timeline, 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.detail, func(t *testing.T) {
			h := newTestHandler(t)

			output, err := h.Execute(context.Background(), &Input{
				Career: "software engineer",
				Detail: tt.detail,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.detail, output.Detail)
			tt.validate(t, output)
		})
	}
}

func TestExecute_RegionVariant(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Career: "Software Engineer",
		Region: "india",
	})
	require.NoError(t, err)

	assert.Equal(t, "india", output.Region)
	assert.Equal(t, "₹8,00,000 - ₹25,00,000", output.Simulation.SalaryRange)
}

func TestExecute_ListAvailable(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{ListAvailable: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Software Engineer"}, output.AvailableCareers)
	assert.Nil(t, output.Simulation)
}

// ==========================
// Cache Behavior Tests
// ==========================

func TestExecute_FullSimulationCached(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	h := newTestHandlerWithCache(t, cache)

	first, err := h.Execute(context.Background(), &Input{Career: "Software Engineer"})
	require.NoError(t, err)

	require.True(t, mr.Exists("simulation:software engineer:global"))

	second, err := h.Execute(context.Background(), &Input{Career: "Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, first.Simulation, second.Simulation)
}

func TestExecute_SurvivesCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	h := newTestHandlerWithCache(t, cache)

	mr.Close()

	output, execErr := h.Execute(context.Background(), &Input{Career: "Software Engineer"})
	require.NoError(t, execErr)
	assert.NotNil(t, output.Simulation)
}

// ==========================
// Error Handling Tests
// ==========================

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing career",
			input:    Input{},
			wantCode: errors.ErrCodeValidationFailed,
		},
		{
			name:     "unknown career",
			input:    Input{Career: "Astronaut"},
			wantCode: errors.ErrCodeSimulationNotFound,
		},
		{
			name:     "unknown detail level",
			input:    Input{Career: "Software Engineer", Detail: "hourly"},
			wantCode: errors.ErrCodeValidationFailed,
		},
		{
			name:     "comparison needs two careers",
			input:    Input{Compare: []string{"Software Engineer"}},
			wantCode: errors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			_, err := h.Execute(context.Background(), &tt.input)
			require.Error(t, err)

			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}
