// internal/recommender/skillsgap/skillsgap.go
package skillsgap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-engine/internal/refdata"
)

// Analysis is the full gap report for one user against one career.
type Analysis struct {
	CareerName           string           `json:"career_name"`
	SkillMatchPercentage float64          `json:"skill_match_percentage"`
	CurrentSkills        SkillSummary     `json:"current_skills"`
	MissingSkills        MissingSummary   `json:"missing_skills"`
	LearningPath         []LearningStep   `json:"learning_path"`
	TimeEstimate         TimeEstimate     `json:"time_estimate"`
	ReadinessLevel       Readiness        `json:"readiness_level"`
	NextSteps            []string         `json:"next_steps"`
	DevelopmentPlan      *DevelopmentPlan `json:"skill_development_plan,omitempty"`
}

type SkillSummary struct {
	Count      int                 `json:"count"`
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
}

type MissingSummary struct {
	Count      int                 `json:"count"`
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
	Priorities Priorities          `json:"priorities"`
}

type Priorities struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

type LearningStep struct {
	Skill      string           `json:"skill"`
	Resources  LearningResource `json:"resources"`
	Difficulty string           `json:"difficulty"`
}

type LearningResource struct {
	Beginner     []string `json:"beginner,omitempty"`
	Intermediate []string `json:"intermediate,omitempty"`
	Advanced     []string `json:"advanced,omitempty"`
	TimeEstimate string   `json:"time_estimate"`
}

type TimeEstimate struct {
	Total     string   `json:"total"`
	Breakdown []string `json:"breakdown,omitempty"`
	Note      string   `json:"note"`
}

type Readiness struct {
	Level       string  `json:"level"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

type DevelopmentPlan struct {
	Message string `json:"message,omitempty"`
	Phase1  *Phase `json:"phase_1,omitempty"`
	Phase2  *Phase `json:"phase_2,omitempty"`
	Phase3  *Phase `json:"phase_3,omitempty"`
}

type Phase struct {
	Duration   string   `json:"duration"`
	Focus      string   `json:"focus"`
	Skills     []string `json:"skills"`
	Activities []string `json:"activities"`
}

// criticalSkills mark a missing skill as high priority when they appear as a
// substring of its normalized name.
var criticalSkills = []string{"programming", "machine_learning", "data_analysis", "leadership", "communication"}

type namedResource struct {
	key      string
	resource LearningResource
}

// learningResources are consulted in order; the first key that appears in a
// skill name (whole or word-wise) wins.
var learningResources = []namedResource{
	{"programming", LearningResource{
		Beginner:     []string{"Codecademy Python", "freeCodeCamp", "Python.org Tutorial"},
		Intermediate: []string{"LeetCode", "HackerRank", "Real Python"},
		Advanced:     []string{"System Design Interview", "Clean Code Book", "Design Patterns"},
		TimeEstimate: "3-6 months",
	}},
	{"machine_learning", LearningResource{
		Beginner:     []string{"Andrew Ng Coursera", "Kaggle Learn", "Scikit-learn Tutorial"},
		Intermediate: []string{"Fast.ai", "Deep Learning Specialization", "Hands-On ML Book"},
		Advanced:     []string{"Papers with Code", "Google AI Research", "Advanced ML Courses"},
		TimeEstimate: "6-12 months",
	}},
	{"data_analysis", LearningResource{
		Beginner:     []string{"Excel Basics", "SQL Tutorial", "Tableau Public"},
		Intermediate: []string{"Python Pandas", "R Programming", "Power BI"},
		Advanced:     []string{"Advanced Statistics", "A/B Testing", "Data Science Bootcamp"},
		TimeEstimate: "2-4 months",
	}},
	{"leadership", LearningResource{
		Beginner:     []string{"Leadership Books", "Team Management Basics", "Communication Skills"},
		Intermediate: []string{"MBA Leadership Courses", "Conflict Resolution", "Strategic Thinking"},
		Advanced:     []string{"Executive Leadership Programs", "Change Management", "Organizational Psychology"},
		TimeEstimate: "1-2 years",
	}},
	{"design", LearningResource{
		Beginner:     []string{"Figma Basics", "Design Principles", "Color Theory"},
		Intermediate: []string{"UX Design Course", "Prototyping", "User Research"},
		Advanced:     []string{"Design Systems", "Advanced Prototyping", "Design Leadership"},
		TimeEstimate: "3-6 months",
	}},
	{"cybersecurity", LearningResource{
		Beginner:     []string{"CompTIA Security+", "Cybersecurity Basics", "Network Fundamentals"},
		Intermediate: []string{"Ethical Hacking", "CISSP Prep", "Incident Response"},
		Advanced:     []string{"Advanced Penetration Testing", "Security Architecture", "Threat Intelligence"},
		TimeEstimate: "6-12 months",
	}},
	{"communication", LearningResource{
		Beginner:     []string{"Public Speaking Basics", "Writing Skills", "Active Listening"},
		Intermediate: []string{"Presentation Skills", "Technical Writing", "Cross-cultural Communication"},
		Advanced:     []string{"Executive Communication", "Negotiation Skills", "Crisis Communication"},
		TimeEstimate: "2-6 months",
	}},
	{"project_management", LearningResource{
		Beginner:     []string{"Project Management Basics", "Agile Fundamentals", "Time Management"},
		Intermediate: []string{"PMP Certification", "Scrum Master", "Risk Management"},
		Advanced:     []string{"Program Management", "Portfolio Management", "Organizational Change"},
		TimeEstimate: "3-6 months",
	}},
}

// Analyzer computes gap reports against the skills mapping table.
type Analyzer struct {
	skills refdata.SkillsMapping
}

func New(store *refdata.Store) *Analyzer {
	return &Analyzer{skills: store.Skills()}
}

// Analyze splits a career's required skills into those the user already has
// (directly or derived from subjects) and those still missing, then builds a
// learning plan for the gap. All skill names are normalized to lowercase
// with underscores before comparison.
func (a *Analyzer) Analyze(userSkills []string, career refdata.Career, userSubjects []string) Analysis {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, skill := range userSkills {
		userSet[Normalize(skill)] = struct{}{}
	}
	for _, derived := range a.deriveFromSubjects(userSubjects) {
		userSet[derived] = struct{}{}
	}

	var current, missing []string
	seen := make(map[string]struct{})
	for _, raw := range career.RequiredSkills {
		skill := Normalize(raw)
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		if _, ok := userSet[skill]; ok {
			current = append(current, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	matchPct := 100.0
	if required := len(current) + len(missing); required > 0 {
		matchPct = round1(float64(len(current)) / float64(required) * 100)
	}

	return Analysis{
		CareerName:           career.Name,
		SkillMatchPercentage: matchPct,
		CurrentSkills: SkillSummary{
			Count:      len(current),
			Skills:     current,
			Categories: a.categorize(current),
		},
		MissingSkills: MissingSummary{
			Count:      len(missing),
			Skills:     missing,
			Categories: a.categorize(missing),
			Priorities: prioritize(missing),
		},
		LearningPath:    learningPath(missing),
		TimeEstimate:    estimateTime(missing),
		ReadinessLevel:  assessReadiness(matchPct),
		NextSteps:       nextSteps(missing, matchPct),
		DevelopmentPlan: developmentPlan(missing),
	}
}

// Normalize lowercases a skill or subject name and replaces spaces with
// underscores so user input matches reference-table keys.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

func (a *Analyzer) deriveFromSubjects(subjects []string) []string {
	var derived []string
	for _, subject := range subjects {
		derived = append(derived, a.skills.SubjectsToSkills[Normalize(subject)]...)
	}
	return derived
}

// categorize buckets skills by category using substring matching. The three
// canonical categories are checked first, in a fixed order, and the first
// category that matches wins.
func (a *Analyzer) categorize(skills []string) map[string][]string {
	order := []string{"technical", "soft", "business"}
	for name := range a.skills.SkillCategories {
		if name != "technical" && name != "soft" && name != "business" {
			order = append(order, name)
		}
	}
	sort.Strings(order[3:])

	result := map[string][]string{"technical": {}, "soft": {}, "business": {}, "other": {}}

	for _, skill := range skills {
		placed := false
		for _, category := range order {
			for _, catSkill := range a.skills.SkillCategories[category] {
				if strings.Contains(skill, catSkill) {
					result[category] = append(result[category], skill)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			result["other"] = append(result["other"], skill)
		}
	}

	return result
}

func prioritize(missing []string) Priorities {
	p := Priorities{High: []string{}, Medium: []string{}, Low: []string{}}

	for _, skill := range missing {
		switch {
		case containsAny(skill, criticalSkills):
			p.High = append(p.High, skill)
		case strings.Contains(skill, "management") || strings.Contains(skill, "strategy"):
			p.Medium = append(p.Medium, skill)
		default:
			p.Low = append(p.Low, skill)
		}
	}

	return p
}

func learningPath(missing []string) []LearningStep {
	path := make([]LearningStep, 0, len(missing))

	for _, skill := range missing {
		step := LearningStep{Skill: skill, Difficulty: "beginner"}

		matched := false
		for _, nr := range learningResources {
			if strings.Contains(skill, nr.key) || containsAny(skill, strings.Split(nr.key, "_")) {
				step.Resources = nr.resource
				matched = true
				break
			}
		}
		if !matched {
			step.Resources = LearningResource{
				Beginner: []string{
					fmt.Sprintf("Online courses for %s", skill),
					fmt.Sprintf("%s tutorials", skill),
					fmt.Sprintf("Books on %s", skill),
				},
				TimeEstimate: "2-4 months",
			}
		}

		path = append(path, step)
	}

	return path
}

func estimateTime(missing []string) TimeEstimate {
	if len(missing) == 0 {
		return TimeEstimate{Total: "0 months", Note: "No skills to learn"}
	}

	complexSkills := []string{"machine_learning", "programming", "leadership"}
	mediumSkills := []string{"data_analysis", "design", "project_management"}

	totalMonths := 0
	breakdown := make([]string, 0, len(missing))

	for _, skill := range missing {
		months := 2
		if containsAny(skill, complexSkills) {
			months = 6
		} else if containsAny(skill, mediumSkills) {
			months = 3
		}
		totalMonths += months
		breakdown = append(breakdown, fmt.Sprintf("%s: %d months", skill, months))
	}

	// Assume some skills are learned in parallel.
	adjusted := totalMonths / 2
	if adjusted < 3 {
		adjusted = 3
	}

	return TimeEstimate{
		Total:     fmt.Sprintf("%d months", adjusted),
		Breakdown: breakdown,
		Note:      "Estimates assume part-time learning with some skills learned in parallel",
	}
}

func assessReadiness(matchPct float64) Readiness {
	switch {
	case matchPct >= 80:
		return Readiness{
			Level: "Ready", Color: "success",
			Description: "You have most required skills and can start applying",
			Percentage:  matchPct,
		}
	case matchPct >= 60:
		return Readiness{
			Level: "Nearly Ready", Color: "warning",
			Description: "You have good foundation, need to develop a few key skills",
			Percentage:  matchPct,
		}
	case matchPct >= 40:
		return Readiness{
			Level: "Developing", Color: "info",
			Description: "You have some relevant skills, significant development needed",
			Percentage:  matchPct,
		}
	default:
		return Readiness{
			Level: "Early Stage", Color: "danger",
			Description: "Substantial skill development required before pursuing this career",
			Percentage:  matchPct,
		}
	}
}

func nextSteps(missing []string, matchPct float64) []string {
	switch {
	case matchPct >= 80:
		return []string{
			"Start applying for entry-level positions",
			"Build a portfolio showcasing your skills",
			"Network with professionals in the field",
			"Consider internships or freelance projects",
		}
	case matchPct >= 60:
		return []string{
			"Focus on developing 2-3 key missing skills",
			"Take online courses or bootcamps",
			"Build projects to demonstrate new skills",
			"Seek mentorship from industry professionals",
		}
	case len(missing) > 0:
		steps := []string{
			fmt.Sprintf("Start learning %s immediately", missing[0]),
			"Dedicate 10-15 hours per week to skill development",
			"Join online communities and forums",
			"Consider formal education or certification programs",
		}
		if len(missing) > 1 {
			steps = append(steps,
				fmt.Sprintf("Plan to learn %s after mastering the first skill", missing[1]))
		}
		return steps
	default:
		return nil
	}
}

// developmentPlan slices the missing skills by gap ordering into three
// fixed phases.
func developmentPlan(missing []string) *DevelopmentPlan {
	if len(missing) == 0 {
		return &DevelopmentPlan{Message: "No skill development needed - you're ready!"}
	}

	slice := func(lo, hi int) []string {
		if lo > len(missing) {
			lo = len(missing)
		}
		if hi > len(missing) {
			hi = len(missing)
		}
		return missing[lo:hi]
	}

	return &DevelopmentPlan{
		Phase1: &Phase{
			Duration: "Months 1-2",
			Focus:    "Foundation Building",
			Skills:   slice(0, 2),
			Activities: []string{
				"Complete beginner courses",
				"Practice daily (1-2 hours)",
				"Join learning communities",
			},
		},
		Phase2: &Phase{
			Duration: "Months 3-4",
			Focus:    "Skill Application",
			Skills:   slice(2, 4),
			Activities: []string{
				"Work on practical projects",
				"Seek feedback from experts",
				"Build portfolio pieces",
			},
		},
		Phase3: &Phase{
			Duration: "Months 5-6",
			Focus:    "Advanced Development",
			Skills:   slice(4, len(missing)),
			Activities: []string{
				"Take advanced courses",
				"Contribute to open source",
				"Network with professionals",
			},
		},
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
