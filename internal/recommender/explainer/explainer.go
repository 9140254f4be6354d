// internal/recommender/explainer/explainer.go
package explainer

import (
	"fmt"
	"math"
	"strings"

	"career-engine/internal/recommender/matcher"
	"career-engine/internal/refdata"
)

// Explanation weights are fixed and intentionally independent of the
// mode-specific matching weights: explanations emphasise interests and
// skills because those are the dimensions users can act on.
const (
	interestWeight    = 0.40
	skillWeight       = 0.35
	subjectWeight     = 0.15
	personalityWeight = 0.10
)

// Explanation tells the user why a career was recommended.
type Explanation struct {
	OverallMatch int      `json:"overall_match"`
	Reasons      []string `json:"reasons"`
	SkillGaps    []string `json:"skill_gaps"`
	Strengths    []string `json:"strengths"`
}

type dimensionResult struct {
	score     float64
	reasons   []string
	gaps      []string
	strengths []string
}

// Explainer turns a career and an assessment into human-readable reasons.
type Explainer struct{}

func New() *Explainer {
	return &Explainer{}
}

// Explain generates the explanation for one recommended career.
func (e *Explainer) Explain(career refdata.Career, in matcher.AssessmentInput) Explanation {
	interests := e.explainInterests(career, in.Interests)
	skills := e.explainSkills(career, in.Skills)
	subjects := e.explainSubjects(career, in.Subjects)
	personality := e.explainPersonality(career, in.Personality.Traits)

	reasons := make([]string, 0,
		len(interests.reasons)+len(skills.reasons)+len(subjects.reasons)+len(personality.reasons))
	reasons = append(reasons, interests.reasons...)
	reasons = append(reasons, skills.reasons...)
	reasons = append(reasons, subjects.reasons...)
	reasons = append(reasons, personality.reasons...)

	total := interests.score*interestWeight +
		skills.score*skillWeight +
		subjects.score*subjectWeight +
		personality.score*personalityWeight

	return Explanation{
		OverallMatch: int(math.Round(total * 100)),
		Reasons:      reasons,
		SkillGaps:    skills.gaps,
		Strengths:    append(append([]string{}, interests.strengths...), skills.strengths...),
	}
}

func (e *Explainer) explainInterests(career refdata.Career, userInterests []string) dimensionResult {
	matched, _ := intersect(career.Interests, userInterests)
	careerCount := uniqueCount(career.Interests)
	score := float64(len(matched)) / math.Max(float64(careerCount), 1)

	res := dimensionResult{score: score}

	if len(matched) > 0 {
		res.reasons = append(res.reasons,
			fmt.Sprintf("Your interests in %s align well with this career", strings.Join(matched, ", ")))
		res.strengths = append(res.strengths, matched...)
	}

	if float64(len(matched)) >= float64(careerCount)*0.7 {
		res.reasons = append(res.reasons,
			"Strong interest alignment - you share most key interests for this field")
	} else if float64(len(matched)) >= float64(careerCount)*0.4 {
		res.reasons = append(res.reasons,
			"Good interest match - several of your interests align with this career")
	}

	return res
}

func (e *Explainer) explainSkills(career refdata.Career, userSkills []string) dimensionResult {
	matched, missing := intersect(career.RequiredSkills, userSkills)
	requiredCount := uniqueCount(career.RequiredSkills)
	score := float64(len(matched)) / math.Max(float64(requiredCount), 1)

	res := dimensionResult{
		score:     score,
		gaps:      missing,
		strengths: matched,
	}

	if len(matched) > 0 {
		res.reasons = append(res.reasons,
			fmt.Sprintf("You already have %d out of %d key skills: %s",
				len(matched), requiredCount, strings.Join(matched, ", ")))
	}
	if len(missing) > 0 {
		res.reasons = append(res.reasons,
			fmt.Sprintf("Skills to develop: %s", strings.Join(missing, ", ")))
	}

	switch {
	case score >= 0.7:
		res.reasons = append(res.reasons, "Excellent skill match - you have most required skills")
	case score >= 0.4:
		res.reasons = append(res.reasons, "Good skill foundation - some development needed")
	default:
		res.reasons = append(res.reasons, "Significant skill development opportunity")
	}

	return res
}

func (e *Explainer) explainSubjects(career refdata.Career, userSubjects []string) dimensionResult {
	matched, _ := intersect(career.Subjects, userSubjects)

	score := 0.5
	if count := uniqueCount(career.Subjects); count > 0 {
		score = float64(len(matched)) / float64(count)
	}

	res := dimensionResult{score: score}

	if len(matched) > 0 {
		res.reasons = append(res.reasons,
			fmt.Sprintf("Your background in %s provides a strong foundation", strings.Join(matched, ", ")))
	}

	if score >= 0.6 {
		res.reasons = append(res.reasons, "Strong academic preparation for this field")
	} else if score >= 0.3 {
		res.reasons = append(res.reasons, "Some relevant academic background")
	}

	return res
}

func (e *Explainer) explainPersonality(career refdata.Career, userTraits []string) dimensionResult {
	matched, _ := intersect(career.PersonalityTraits, userTraits)
	score := float64(len(matched)) / math.Max(float64(uniqueCount(career.PersonalityTraits)), 1)

	res := dimensionResult{score: score}

	if len(matched) > 0 {
		res.reasons = append(res.reasons,
			fmt.Sprintf("Your %s personality traits fit well with this career", strings.Join(matched, ", ")))
	}

	if score >= 0.6 {
		res.reasons = append(res.reasons, "Strong personality-career alignment")
	} else if score >= 0.3 {
		res.reasons = append(res.reasons, "Some personality traits align with this career")
	}

	return res
}

// intersect splits the career-declared items into those the user has and
// those they lack, preserving the career's declared order so output is
// deterministic.
func intersect(careerItems, userItems []string) (matched, missing []string) {
	userSet := make(map[string]struct{}, len(userItems))
	for _, item := range userItems {
		userSet[item] = struct{}{}
	}

	seen := make(map[string]struct{}, len(careerItems))
	for _, item := range careerItems {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, ok := userSet[item]; ok {
			matched = append(matched, item)
		} else {
			missing = append(missing, item)
		}
	}
	return matched, missing
}

func uniqueCount(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	return len(seen)
}
