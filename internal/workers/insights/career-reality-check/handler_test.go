// internal/workers/insights/career-reality-check/handler_test.go
package careerrealitycheck

import (
	"context"
	"testing"
	"time"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestHandler(t *testing.T) *Handler {
	log := logger.NewTestLogger(t)
	store, err := refdata.Load(t.TempDir(), log)
	require.NoError(t, err)

	cfg := &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       5 * time.Second,
	}
	return NewHandler(cfg, store, log)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute_KnownCareer(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Career: "Software Engineer"})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AnalysisID)
	assert.Equal(t, "Software Engineer", output.Career)
	require.NotNil(t, output.Reality)
	assert.Equal(t, "Medium", output.Reality.RealityCheck.StressLevel)
	assert.NotEmpty(t, output.GeneralInsights["before_committing"])
}

func TestExecute_CaseInsensitiveLookup(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Career: "SOFTWARE ENGINEER"})
	require.NoError(t, err)

	// The canonical casing from the reference table is returned.
	assert.Equal(t, "Software Engineer", output.Career)
}

func TestExecute_ListAvailable(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{ListAvailable: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Software Engineer"}, output.AvailableCareers)
	assert.Nil(t, output.Reality)
}

// ==========================
// Error Handling Tests
// ==========================

func TestExecute_MissingCareer(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestExecute_UnknownCareerCarriesValidList(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{Career: "Astronaut"})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeRealityDataNotFound, stdErr.Code)
	assert.Equal(t, []string{"Software Engineer"}, stdErr.Metadata["availableCareers"])
}
