// internal/recommender/personality/personality.go
package personality

// Question is one statement the user rates on a 1-5 agreement scale.
type Question struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Dimension string `json:"dimension"`
	Weight    int    `json:"weight"`
}

// TypeInfo describes one of the known four-letter types.
type TypeInfo struct {
	Name        string   `json:"name"`
	Traits      []string `json:"traits"`
	Careers     []string `json:"careers"`
	Description string   `json:"description"`
}

// Result is the computed type with the raw dimension scores.
type Result struct {
	Type             string         `json:"type"`
	Name             string         `json:"name"`
	Traits           []string       `json:"traits"`
	SuggestedCareers []string       `json:"suggested_careers"`
	Description      string         `json:"description"`
	Scores           map[string]int `json:"scores"`
}

var questions = []Question{
	{ID: 1, Question: "I prefer working in teams rather than alone", Dimension: "extraversion", Weight: 1},
	{ID: 2, Question: "I enjoy meeting new people and making connections", Dimension: "extraversion", Weight: 1},
	{ID: 3, Question: "I prefer concrete facts over abstract theories", Dimension: "sensing", Weight: 1},
	{ID: 4, Question: "I focus on details rather than the big picture", Dimension: "sensing", Weight: 1},
	{ID: 5, Question: "I make decisions based on logic rather than feelings", Dimension: "thinking", Weight: 1},
	{ID: 6, Question: "I analyze problems objectively without emotional bias", Dimension: "thinking", Weight: 1},
	{ID: 7, Question: "I prefer to plan ahead rather than be spontaneous", Dimension: "judging", Weight: 1},
	{ID: 8, Question: "I like to have things organized and structured", Dimension: "judging", Weight: 1},
	{ID: 9, Question: "I get energized by social interactions", Dimension: "extraversion", Weight: 1},
	{ID: 10, Question: "I trust my intuition when making decisions", Dimension: "intuition", Weight: 1},
	{ID: 11, Question: "I consider how decisions affect people's feelings", Dimension: "feeling", Weight: 1},
	{ID: 12, Question: "I adapt easily to changing situations", Dimension: "perceiving", Weight: 1},
}

var personalityTypes = map[string]TypeInfo{
	"INTJ": {
		Name:        "The Architect",
		Traits:      []string{"analytical", "strategic", "independent"},
		Careers:     []string{"Software Engineer", "Data Scientist", "Research Scientist"},
		Description: "Strategic thinkers who love complex problems",
	},
	"ENFP": {
		Name:        "The Campaigner",
		Traits:      []string{"creative", "enthusiastic", "collaborative"},
		Careers:     []string{"UX Designer", "Marketing Manager", "Teacher"},
		Description: "Creative and enthusiastic people-focused individuals",
	},
	"ISTJ": {
		Name:        "The Logistician",
		Traits:      []string{"detail_oriented", "organized", "reliable"},
		Careers:     []string{"Accountant", "Project Manager", "Engineer"},
		Description: "Practical and fact-minded, reliable individuals",
	},
	"ESTP": {
		Name:        "The Entrepreneur",
		Traits:      []string{"outgoing", "adaptable", "practical"},
		Careers:     []string{"Sales Manager", "Marketing Manager", "Consultant"},
		Description: "Energetic and adaptable, great at improvising",
	},
}

var fallbackType = TypeInfo{
	Name:        "Unique Type",
	Traits:      []string{"unique", "individual"},
	Careers:     []string{"Various careers"},
	Description: "A unique personality combination",
}

var oppositeDimensions = map[string]string{
	"extraversion": "introversion",
	"sensing":      "intuition",
	"thinking":     "feeling",
	"judging":      "perceiving",
}

// Questions returns the fixed question set in presentation order.
func Questions() []Question {
	return questions
}

// Calculate scores the answers and resolves the four-letter type. Answers
// beyond the question count are ignored; each agreement with a primary
// dimension also credits the opposite pole with the inverted answer, so
// every answered pair sums to six. Ties resolve toward I, N, F and P.
func Calculate(answers []int) Result {
	scores := map[string]int{
		"extraversion": 0, "introversion": 0,
		"sensing": 0, "intuition": 0,
		"thinking": 0, "feeling": 0,
		"judging": 0, "perceiving": 0,
	}

	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		q := questions[i]
		opposite, primary := oppositeDimensions[q.Dimension]
		if !primary {
			continue
		}
		scores[q.Dimension] += answer * q.Weight
		scores[opposite] += (6 - answer) * q.Weight
	}

	typeCode := ""
	typeCode += letter(scores["extraversion"] > scores["introversion"], "E", "I")
	typeCode += letter(scores["sensing"] > scores["intuition"], "S", "N")
	typeCode += letter(scores["thinking"] > scores["feeling"], "T", "F")
	typeCode += letter(scores["judging"] > scores["perceiving"], "J", "P")

	info, ok := personalityTypes[typeCode]
	if !ok {
		info = fallbackType
	}

	return Result{
		Type:             typeCode,
		Name:             info.Name,
		Traits:           info.Traits,
		SuggestedCareers: info.Careers,
		Description:      info.Description,
		Scores:           scores,
	}
}

func letter(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
