// internal/recommender/matcher/matcher.go
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/refdata"
)

const maxRecommendations = 5

// AssessmentInput is the raw user assessment a match run starts from.
type AssessmentInput struct {
	Interests       []string         `json:"interests"`
	Skills          []string         `json:"skills"`
	Subjects        []string         `json:"subjects"`
	Personality     PersonalityInput `json:"personality"`
	ExperienceLevel string           `json:"experience_level,omitempty"`
}

type PersonalityInput struct {
	Traits []string `json:"traits"`
}

// Profile is the enriched form of an assessment: user skills plus skills
// derived from academic subjects, deduplicated and sorted.
type Profile struct {
	Interests         []string
	Skills            []string
	Subjects          []string
	PersonalityTraits []string
	ExperienceLevel   string
	Region            string
	Mode              string
}

// Recommendation pairs a career with its weighted match score in [0, 1].
type Recommendation struct {
	Career refdata.Career `json:"career"`
	Score  float64        `json:"score"`
}

// Matcher scores careers against a user profile using mode-specific weights.
type Matcher struct {
	store  *refdata.Store
	region string
	mode   string
	log    logger.Logger
}

// New builds a Matcher for a region and mode. Both must exist in the mode
// configuration table.
func New(store *refdata.Store, region, mode string, log logger.Logger) (*Matcher, error) {
	if _, ok := store.RegionInfo(region); !ok {
		return nil, errors.NewValidationError(
			"unknown region",
			fmt.Sprintf("region %q is not configured, valid regions: %s", region, strings.Join(store.Regions(), ", ")),
		)
	}
	if _, ok := store.ModeWeights(mode); !ok {
		return nil, errors.NewValidationError(
			"unknown mode",
			fmt.Sprintf("mode %q is not configured", mode),
		)
	}

	return &Matcher{store: store, region: region, mode: mode, log: log}, nil
}

// BuildProfile expands an assessment into a scoring profile. Skills derived
// from subjects via the skills mapping are merged into the user's own skills.
func (m *Matcher) BuildProfile(in AssessmentInput) Profile {
	mapping := m.store.Skills().SubjectsToSkills

	skillSet := make(map[string]struct{}, len(in.Skills))
	for _, skill := range in.Skills {
		skillSet[skill] = struct{}{}
	}
	for _, subject := range in.Subjects {
		for _, derived := range mapping[subject] {
			skillSet[derived] = struct{}{}
		}
	}

	allSkills := make([]string, 0, len(skillSet))
	for skill := range skillSet {
		allSkills = append(allSkills, skill)
	}
	sort.Strings(allSkills)

	return Profile{
		Interests:         in.Interests,
		Skills:            allSkills,
		Subjects:          in.Subjects,
		PersonalityTraits: in.Personality.Traits,
		ExperienceLevel:   in.ExperienceLevel,
		Region:            m.region,
		Mode:              m.mode,
	}
}

// Score computes the weighted match of a career against a profile. Each
// dimension contributes its coverage of the career's declared set; a career
// with no subjects scores a neutral 0.5 on that dimension.
func (m *Matcher) Score(p Profile, career refdata.Career) float64 {
	weights, _ := m.store.ModeWeights(m.mode)

	score := coverage(p.Interests, career.Interests) * weights["interests"]
	score += coverage(p.Skills, career.RequiredSkills) * weights["skills"]

	subjectScore := 0.5
	if len(career.Subjects) > 0 {
		subjectScore = coverage(p.Subjects, career.Subjects)
	}
	score += subjectScore * weights["subjects"]

	score += coverage(p.PersonalityTraits, career.PersonalityTraits) * weights["personality"]

	if m.mode == "professional" && p.ExperienceLevel != "" {
		score = m.adjustForExperience(score, p.ExperienceLevel, career)
	}

	return score
}

// adjustForExperience is the hook for experience-level boosts in
// professional mode. It currently passes the score through unchanged.
func (m *Matcher) adjustForExperience(base float64, experienceLevel string, career refdata.Career) float64 {
	return base
}

// Recommend scores every career in the region's table and returns the top
// five. Ties keep the career table's order.
func (m *Matcher) Recommend(in AssessmentInput) []Recommendation {
	profile := m.BuildProfile(in)
	careers := m.store.Careers(m.region)

	recs := make([]Recommendation, 0, len(careers))
	for _, career := range careers {
		recs = append(recs, Recommendation{Career: career, Score: m.Score(profile, career)})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	m.log.Debug("scored careers", map[string]interface{}{
		"region":     m.region,
		"mode":       m.mode,
		"candidates": len(careers),
		"returned":   len(recs),
	})

	return recs
}

// RegionInfo exposes display metadata for the matcher's region.
func (m *Matcher) RegionInfo() refdata.RegionInfo {
	info, _ := m.store.RegionInfo(m.region)
	return info
}

func coverage(user, career []string) float64 {
	if len(career) == 0 {
		return 0
	}

	careerSet := make(map[string]struct{}, len(career))
	for _, item := range career {
		careerSet[item] = struct{}{}
	}

	matched := 0
	seen := make(map[string]struct{}, len(user))
	for _, item := range user {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, ok := careerSet[item]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(careerSet))
}
