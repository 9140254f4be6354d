// internal/recommender/matcher/matcher_test.go
package matcher

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestStore(t *testing.T, careers []refdata.Career) *refdata.Store {
	t.Helper()
	dir := t.TempDir()

	raw, err := json.Marshal(careers)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "careers.json"), raw, 0o644))

	store, err := refdata.Load(dir, logger.NewTestLogger(t))
	require.NoError(t, err)
	return store
}

func testCareers() []refdata.Career {
	return []refdata.Career{
		{
			Name:              "Software Engineer",
			RequiredSkills:    []string{"programming", "problem_solving", "logical_thinking", "mathematics"},
			Interests:         []string{"technology", "computers", "innovation", "problem_solving"},
			Subjects:          []string{"computer_science", "mathematics", "physics"},
			PersonalityTraits: []string{"analytical", "detail_oriented", "creative"},
			MedianSalary:      "$110,000",
			GrowthRate:        "22%",
		},
		{
			Name:              "Graphic Designer",
			RequiredSkills:    []string{"design", "creativity"},
			Interests:         []string{"art", "design"},
			Subjects:          []string{"art"},
			PersonalityTraits: []string{"creative"},
			MedianSalary:      "$55,000",
			GrowthRate:        "3%",
		},
		{
			Name:              "Counselor",
			RequiredSkills:    []string{"empathy", "communication"},
			Interests:         []string{"helping_people", "psychology"},
			Subjects:          []string{},
			PersonalityTraits: []string{"empathetic"},
			MedianSalary:      "$50,000",
			GrowthRate:        "8%",
		},
	}
}

func newTestMatcher(t *testing.T, region, mode string) *Matcher {
	t.Helper()
	m, err := New(newTestStore(t, testCareers()), region, mode, logger.NewTestLogger(t))
	require.NoError(t, err)
	return m
}

// ==========================
// Construction Tests
// ==========================

func TestNew_RejectsUnknownRegionAndMode(t *testing.T) {
	store := newTestStore(t, testCareers())
	log := logger.NewTestLogger(t)

	_, err := New(store, "mars", "student", log)
	assert.Error(t, err)

	_, err = New(store, "global", "retired", log)
	assert.Error(t, err)

	_, err = New(store, "india", "professional", log)
	assert.NoError(t, err)
}

// ==========================
// Profile Building Tests
// ==========================

func TestBuildProfile_DerivesSkillsFromSubjects(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	profile := m.BuildProfile(AssessmentInput{
		Skills:   []string{"programming"},
		Subjects: []string{"mathematics"},
	})

	// Default mapping: mathematics -> analytical_thinking, problem_solving,
	// statistics, logical_reasoning. Merged with user skills and sorted.
	assert.Contains(t, profile.Skills, "programming")
	assert.Contains(t, profile.Skills, "problem_solving")
	assert.Contains(t, profile.Skills, "statistics")
	assert.IsIncreasing(t, profile.Skills)
}

func TestBuildProfile_DeduplicatesSkills(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	profile := m.BuildProfile(AssessmentInput{
		Skills:   []string{"programming", "programming"},
		Subjects: []string{"computer_science"},
	})

	count := 0
	for _, skill := range profile.Skills {
		if skill == "programming" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// ==========================
// Scoring Tests
// ==========================

func TestScore_StudentWeights(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	career := refdata.Career{
		Interests:         []string{"technology", "computers"},
		RequiredSkills:    []string{"programming", "design"},
		Subjects:          []string{"mathematics"},
		PersonalityTraits: []string{"analytical"},
	}
	profile := Profile{
		Interests:         []string{"technology"},
		Skills:            []string{"programming"},
		Subjects:          []string{"mathematics"},
		PersonalityTraits: []string{"analytical"},
	}

	// 0.5*0.45 + 0.5*0.20 + 1.0*0.25 + 1.0*0.10 = 0.675
	assert.InDelta(t, 0.675, m.Score(profile, career), 1e-9)
}

func TestScore_NeutralSubjectDimension(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	career := refdata.Career{
		Interests:         []string{"helping_people"},
		RequiredSkills:    []string{"empathy"},
		Subjects:          nil,
		PersonalityTraits: []string{"empathetic"},
	}
	profile := Profile{}

	// A career that declares no subjects scores 0.5 on that dimension.
	assert.InDelta(t, 0.5*0.25, m.Score(profile, career), 1e-9)
}

func TestScore_Bounds(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	full := Profile{
		Interests:         []string{"technology", "computers", "innovation", "problem_solving"},
		Skills:            []string{"programming", "problem_solving", "logical_thinking", "mathematics"},
		Subjects:          []string{"computer_science", "mathematics", "physics"},
		PersonalityTraits: []string{"analytical", "detail_oriented", "creative"},
	}

	for _, career := range testCareers() {
		empty := m.Score(Profile{}, career)
		assert.GreaterOrEqual(t, empty, 0.0)
		assert.LessOrEqual(t, empty, 1.0)

		perfect := m.Score(full, career)
		assert.GreaterOrEqual(t, perfect, empty)
		assert.LessOrEqual(t, perfect, 1.0+1e-9)
	}
}

func TestScore_ProfessionalWeightsDifferFromStudent(t *testing.T) {
	student := newTestMatcher(t, "global", "student")
	professional := newTestMatcher(t, "global", "professional")

	career := testCareers()[0]
	profile := Profile{Skills: []string{"programming", "problem_solving", "logical_thinking", "mathematics"}}

	// Full skill coverage weighs 0.40 in professional mode versus 0.20 in
	// student mode.
	assert.Greater(t, professional.Score(profile, career), student.Score(profile, career))
}

func TestScore_ExperienceAdjustmentIsPassThrough(t *testing.T) {
	m := newTestMatcher(t, "global", "professional")

	career := testCareers()[0]
	with := Profile{Skills: []string{"programming"}, ExperienceLevel: "senior"}
	without := Profile{Skills: []string{"programming"}}

	assert.InDelta(t, m.Score(without, career), m.Score(with, career), 1e-9)
}

// ==========================
// Ranking Tests
// ==========================

func TestRecommend_TopFiveSortedDescending(t *testing.T) {
	careers := testCareers()
	for _, name := range []string{"A", "B", "C", "D"} {
		careers = append(careers, refdata.Career{Name: name, Interests: []string{"nothing"}})
	}

	store := newTestStore(t, careers)
	m, err := New(store, "global", "student", logger.NewTestLogger(t))
	require.NoError(t, err)

	recs := m.Recommend(AssessmentInput{
		Interests: []string{"technology", "computers"},
		Skills:    []string{"programming"},
	})

	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	assert.Equal(t, "Software Engineer", recs[0].Career.Name)
}

func TestRecommend_TiesKeepTableOrder(t *testing.T) {
	careers := []refdata.Career{
		{Name: "First", Interests: []string{"x"}},
		{Name: "Second", Interests: []string{"x"}},
		{Name: "Third", Interests: []string{"x"}},
	}

	store := newTestStore(t, careers)
	m, err := New(store, "global", "student", logger.NewTestLogger(t))
	require.NoError(t, err)

	recs := m.Recommend(AssessmentInput{Interests: []string{"x"}})

	require.Len(t, recs, 3)
	assert.Equal(t, "First", recs[0].Career.Name)
	assert.Equal(t, "Second", recs[1].Career.Name)
	assert.Equal(t, "Third", recs[2].Career.Name)
}

// ==========================
// Visualization Tests
// ==========================

func TestBuildGraph(t *testing.T) {
	m := newTestMatcher(t, "global", "student")

	graph := m.BuildGraph(AssessmentInput{
		Interests: []string{"technology", "art"},
		Skills:    []string{"programming", "design"},
	})

	require.Len(t, graph.Nodes, 4) // user + top 3
	assert.Equal(t, "user", graph.Nodes[0].ID)
	assert.Equal(t, "You (Student)", graph.Nodes[0].Name)
	assert.Equal(t, 20, graph.Nodes[0].Size)

	require.Len(t, graph.Links, 3)
	for i, link := range graph.Links {
		assert.Equal(t, "user", link.Source)
		assert.Equal(t, graph.Nodes[i+1].ID, link.Target)
		assert.GreaterOrEqual(t, link.Strength, 0.0)
		assert.LessOrEqual(t, link.Strength, 1.0)
	}
}
