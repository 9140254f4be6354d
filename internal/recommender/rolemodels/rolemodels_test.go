// internal/recommender/rolemodels/rolemodels_test.go
package rolemodels

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"career-engine/internal/common/config"
	"career-engine/internal/common/database"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testModels() []refdata.RoleModel {
	return []refdata.RoleModel{
		{
			Name:             "Grace Hopper",
			Career:           "Software Engineer",
			Title:            "Computer Science Pioneer",
			KeySkills:        []string{"programming", "leadership"},
			InspirationQuote: "The most dangerous phrase is: we've always done it this way.",
			CareerPath:       []string{"Mathematics professor", "Navy programmer", "Compiler inventor"},
			Advice:           "Go ahead and do it.",
			Achievements:     []string{"First compiler", "COBOL"},
		},
		{
			Name:             "Sudha Murty",
			Career:           "Engineer",
			Title:            "Engineer and Philanthropist",
			KeySkills:        []string{"engineering", "writing"},
			InspirationQuote: "Courage to fight for what you deserve matters.",
			CareerPath:       []string{"First female engineer at TELCO", "Infosys Foundation chair"},
			Advice:           "Ask for what you deserve.",
			Achievements:     []string{"Infosys Foundation"},
			IndianContext:    "Broke gender barriers in Indian engineering in the 1970s",
		},
		{
			Name:             "Florence Nightingale",
			Career:           "Nurse",
			Title:            "Founder of Modern Nursing",
			KeySkills:        []string{"statistics", "care"},
			InspirationQuote: "I attribute my success to this: I never gave or took any excuse.",
			CareerPath:       []string{"Volunteer nurse", "Hospital reformer"},
			Advice:           "Measure what matters.",
			Achievements:     []string{"Modern nursing practice"},
		},
	}
}

func testTips() []refdata.CareerTip {
	return []refdata.CareerTip{
		{Title: "Practice programming daily", Tip: "Small consistent practice beats cramming.", Category: "skill_building", CareerFocus: []string{"Software Engineer"}},
		{Title: "Build your network", Tip: "Reach out to one professional every week.", Category: "networking", CareerFocus: []string{"All careers"}},
		{Title: "Lead a small project", Tip: "Leadership grows from small responsibilities.", Category: "leadership", CareerFocus: []string{"All careers"}},
		{Title: "Negotiate your worth", Tip: "Research salary bands before interviews.", Category: "career_advancement", CareerFocus: []string{"All careers"}},
		{Title: "Care for patients first", Tip: "Empathy is the core nursing skill.", Category: "skill_building", CareerFocus: []string{"Nurse"}},
		{Title: "Switch industries deliberately", Tip: "Map transferable skills before a transition.", Category: "industry_transition", CareerFocus: []string{"All careers"}},
		{Title: "Communication under pressure", Tip: "Practice explaining complex topics simply.", Category: "skill_building", CareerFocus: []string{"All careers"}},
		{Title: "Read broadly", Tip: "Ideas from other fields compound.", Category: "growth", CareerFocus: []string{"All careers"}},
	}
}

func newTestService(t *testing.T, region string, cache *database.RedisClient) *Service {
	t.Helper()
	dir := t.TempDir()

	write := func(name string, v interface{}) {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o644))
	}
	write("role_models.json", testModels())
	write("role_models_india.json", testModels())
	write("career_tips.json", testTips())

	store, err := refdata.Load(dir, logger.NewTestLogger(t))
	require.NoError(t, err)

	svc := New(store, region, cache, time.Hour, logger.NewTestLogger(t))
	svc.now = func() time.Time { return time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC) }
	return svc
}

func newTestCache(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

// ==========================
// Role Model Matching Tests
// ==========================

func TestModelsForCareer_SubstringMatchesBothDirections(t *testing.T) {
	s := newTestService(t, "global", nil)

	// "Software" is contained in "Software Engineer" but not in "Engineer".
	models := s.ModelsForCareer("Software")
	require.Len(t, models, 1)
	assert.Equal(t, "Grace Hopper", models[0].Name)

	// "Engineer" is contained in both engineering careers.
	models = s.ModelsForCareer("Engineer")
	assert.Len(t, models, 2)
}

func TestModelsForCareer_NoMatchReturnsAllModels(t *testing.T) {
	s := newTestService(t, "global", nil)

	models := s.ModelsForCareer("Astronaut")
	assert.Len(t, models, 3)
}

func TestModelsForCareers_DeduplicatesAndCapsAtThree(t *testing.T) {
	s := newTestService(t, "global", nil)

	models := s.ModelsForCareers([]string{"Software Engineer", "Engineer", "Nurse"})

	require.Len(t, models, 3)
	seen := map[string]bool{}
	for _, m := range models {
		assert.False(t, seen[m.Name], "duplicate model %s", m.Name)
		seen[m.Name] = true
	}
}

// ==========================
// Daily Tip Tests
// ==========================

func TestDailyTip_DeterministicPerUserAndDay(t *testing.T) {
	s := newTestService(t, "global", nil)
	ctx := context.Background()

	first, err := s.DailyTip(ctx, "", "user-1", "student")
	require.NoError(t, err)
	second, err := s.DailyTip(ctx, "", "user-1", "student")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A new day moves the selection window.
	s.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	_, err = s.DailyTip(ctx, "", "user-1", "student")
	require.NoError(t, err)
}

func TestDailyTip_FocusFilterKeepsRelevantTips(t *testing.T) {
	s := newTestService(t, "global", nil)

	tip, err := s.DailyTip(context.Background(), "Nurse", "user-1", "student")
	require.NoError(t, err)

	matches := false
	for _, focus := range tip.CareerFocus {
		if focus == "Nurse" || focus == "All careers" {
			matches = true
		}
	}
	assert.True(t, matches, "tip %q does not match focus", tip.Title)
}

func TestDailyTip_ProfessionalModeRestrictsCategories(t *testing.T) {
	s := newTestService(t, "global", nil)

	tip, err := s.DailyTip(context.Background(), "", "user-1", "professional")
	require.NoError(t, err)

	assert.Contains(t, []string{
		"career_advancement", "leadership", "industry_transition", "networking",
	}, tip.Category)
}

func TestDailyTip_CachesResultInRedis(t *testing.T) {
	cache, mr := newTestCache(t)
	s := newTestService(t, "global", cache)
	ctx := context.Background()

	tip, err := s.DailyTip(ctx, "", "user-1", "student")
	require.NoError(t, err)

	key := "dailytip:user-1:2026-03-09::student"
	require.True(t, mr.Exists(key))

	// Replace the cached value to prove subsequent reads hit the cache.
	planted := refdata.CareerTip{Title: "Planted", Tip: "From cache", Category: "growth"}
	raw, err := json.Marshal(planted)
	require.NoError(t, err)
	require.NoError(t, mr.Set(key, string(raw)))

	cached, err := s.DailyTip(ctx, "", "user-1", "student")
	require.NoError(t, err)
	assert.Equal(t, "Planted", cached.Title)
	assert.NotEqual(t, tip.Title, cached.Title)
}

func TestDailyTip_SurvivesCacheOutage(t *testing.T) {
	cache, mr := newTestCache(t)
	s := newTestService(t, "global", cache)
	mr.Close()

	tip, err := s.DailyTip(context.Background(), "", "user-1", "student")
	require.NoError(t, err)
	assert.NotEmpty(t, tip.Title)
}

// ==========================
// Weekly Tip Tests
// ==========================

func TestWeeklyTips_ReturnsSevenDeterministicTips(t *testing.T) {
	s := newTestService(t, "global", nil)

	first := s.WeeklyTips("", "student")
	second := s.WeeklyTips("", "student")

	assert.Len(t, first, 7)
	assert.Equal(t, first, second)
}

func TestWeeklyTips_CappedByAvailableTips(t *testing.T) {
	s := newTestService(t, "global", nil)

	tips := s.WeeklyTips("", "professional")
	assert.Len(t, tips, 4)
	for _, tip := range tips {
		assert.Contains(t, []string{
			"career_advancement", "leadership", "industry_transition", "networking",
		}, tip.Category)
	}
}

func TestTipsByCategory(t *testing.T) {
	s := newTestService(t, "global", nil)

	tips := s.TipsByCategory("skill_building")
	assert.Len(t, tips, 3)
	assert.Empty(t, s.TipsByCategory("unknown"))
}

// ==========================
// Quote and Path Tests
// ==========================

func TestInspirationQuote_MatchesCareerAndIsStable(t *testing.T) {
	s := newTestService(t, "global", nil)

	quote, ok := s.InspirationQuote("Nurse")
	require.True(t, ok)
	assert.Equal(t, "Florence Nightingale", quote.Author)
	assert.Equal(t, "Founder of Modern Nursing", quote.Title)
	assert.NotEmpty(t, quote.Quote)

	again, ok := s.InspirationQuote("Nurse")
	require.True(t, ok)
	assert.Equal(t, quote, again)
}

func TestCareerPathExample(t *testing.T) {
	s := newTestService(t, "global", nil)

	example, ok := s.CareerPathExample("Software")
	require.True(t, ok)
	assert.Equal(t, "Grace Hopper", example.Name)
	assert.Equal(t, []string{"Mathematics professor", "Navy programmer", "Compiler inventor"}, example.CareerPath)
	assert.Equal(t, "Go ahead and do it.", example.Advice)
}

// ==========================
// Search and Skill Tip Tests
// ==========================

func TestSearch_CoversNameCareerTitleAndSkills(t *testing.T) {
	s := newTestService(t, "global", nil)

	assert.Len(t, s.Search("hopper"), 1)
	assert.Len(t, s.Search("engineer"), 2)
	assert.Len(t, s.Search("statistics"), 1)
	assert.Empty(t, s.Search("astronaut"))
}

func TestSkillDevelopmentTips_MatchesTipTextAndTitle(t *testing.T) {
	s := newTestService(t, "global", nil)

	pairs := s.SkillDevelopmentTips([]string{"programming", "leadership"})

	require.NotEmpty(t, pairs)
	assert.Equal(t, "programming", pairs[0].Skill)
	assert.Equal(t, "Practice programming daily", pairs[0].Tip.Title)

	found := false
	for _, pair := range pairs {
		if pair.Skill == "leadership" {
			found = true
		}
	}
	assert.True(t, found)
	assert.LessOrEqual(t, len(pairs), 5)
}

func TestRegionAdvice_OnlyModelsWithIndianContext(t *testing.T) {
	s := newTestService(t, "india", nil)

	advice := s.RegionAdvice("Engineer")
	require.Len(t, advice, 1)
	assert.Equal(t, "Sudha Murty", advice[0].Name)
	assert.Contains(t, advice[0].Context, "gender barriers")
	assert.Equal(t, "Ask for what you deserve.", advice[0].Advice)
}
