// internal/workers/assessment/skills-gap-analysis/handler_test.go
package skillsgapanalysis

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
		MaxJobsActive: 5,
		Timeout:       10 * time.Second,
		DefaultRegion: "global",
	}
	return NewHandler(cfg, store, log)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute_KnownCareer(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Career: "Software Engineer",
		Skills: []string{"programming", "problem_solving"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.AnalysisID)
	assert.Equal(t, "global", output.Region)
	assert.Equal(t, "Software Engineer", output.Analysis.CareerName)
	assert.Equal(t, 50.0, output.Analysis.SkillMatchPercentage)
	assert.Equal(t, 2, output.Analysis.CurrentSkills.Count)
	assert.ElementsMatch(t, []string{"logical_thinking", "mathematics"}, output.Analysis.MissingSkills.Skills)
}

func TestExecute_CaseInsensitiveLookup(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Career: "software engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", output.Analysis.CareerName)
	assert.Equal(t, 0.0, output.Analysis.SkillMatchPercentage)
}

func TestExecute_SubjectsDeriveSkills(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Career:   "Software Engineer",
		Subjects: []string{"computer_science"},
	})
	require.NoError(t, err)

	// computer_science derives programming, which the career requires.
	assert.Contains(t, output.Analysis.CurrentSkills.Skills, "programming")
	assert.NotContains(t, output.Analysis.MissingSkills.Skills, "programming")
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

func TestExecute_UnknownCareer(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{Career: "Astronaut"})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCareerNotFound, stdErr.Code)
	assert.Equal(t, []string{"Software Engineer"}, stdErr.Metadata["availableCareers"])
}
