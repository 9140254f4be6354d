// internal/refdata/types.go
package refdata

// Career is a single entry in a regional career table.
type Career struct {
	Name              string   `json:"name"`
	RequiredSkills    []string `json:"required_skills"`
	Interests         []string `json:"interests"`
	Subjects          []string `json:"subjects"`
	PersonalityTraits []string `json:"personality_traits"`
	Description       string   `json:"description"`
	GrowthRate        string   `json:"growth_rate"`
	MedianSalary      string   `json:"median_salary"`
	JobOutlook        string   `json:"job_outlook,omitempty"`
}

// ComparableCareer is a career merged across regional tables. When the same
// name appears in both the global and india tables, the global entry wins and
// the india salary and outlook are carried alongside it.
type ComparableCareer struct {
	Career
	Region       string
	IndiaSalary  string
	IndiaOutlook string
	HasIndiaData bool
}

// ModeConfig drives region selection and per-mode assessment weights.
type ModeConfig struct {
	Regions map[string]RegionInfo `json:"regions"`
	Modes   map[string]ModeInfo   `json:"modes"`
}

type RegionInfo struct {
	CareerFile   string `json:"career_file"`
	Currency     string `json:"currency"`
	SalaryPrefix string `json:"salary_prefix"`
}

type ModeInfo struct {
	AssessmentWeight map[string]float64 `json:"assessment_weight"`
}

// SkillsMapping links academic subjects to derivable skills and groups
// skills into categories.
type SkillsMapping struct {
	SubjectsToSkills map[string][]string `json:"subjects_to_skills"`
	SkillCategories  map[string][]string `json:"skill_categories"`
}

// RoleModel is a profile used for career inspiration and path examples.
type RoleModel struct {
	Name             string   `json:"name"`
	Career           string   `json:"career"`
	Title            string   `json:"title"`
	KeySkills        []string `json:"key_skills"`
	InspirationQuote string   `json:"inspiration_quote"`
	CareerPath       []string `json:"career_path"`
	Advice           string   `json:"advice"`
	Achievements     []string `json:"achievements"`
	IndianContext    string   `json:"indian_context,omitempty"`
}

// CareerTip is a single actionable tip served daily or weekly.
type CareerTip struct {
	Title       string   `json:"title"`
	Tip         string   `json:"tip"`
	Category    string   `json:"category"`
	CareerFocus []string `json:"career_focus"`
}

// RealityFile is the on-disk shape of the career reality table.
type RealityFile struct {
	CareerRealityData map[string]RealityEntry `json:"career_reality_data"`
	GeneralInsights   map[string][]string     `json:"general_insights"`
}

// RealityEntry holds candid facts about what a career is actually like.
type RealityEntry struct {
	RealityCheck    RealitySnapshot `json:"reality_check"`
	DailyChallenges []string        `json:"daily_challenges,omitempty"`
	CareerRisks     []string        `json:"career_risks,omitempty"`
	BackupOptions   []string        `json:"backup_options,omitempty"`
	HiddenCosts     []string        `json:"hidden_costs,omitempty"`
}

type RealitySnapshot struct {
	StressLevel     string `json:"stress_level"`
	WorkLifeBalance string `json:"work_life_balance"`
	JobSecurity     string `json:"job_security,omitempty"`
	BurnoutRate     string `json:"burnout_rate,omitempty"`
}

// SimulationsFile is the on-disk shape of the day-in-the-life table.
type SimulationsFile struct {
	CareerSimulations  map[string]Simulation `json:"career_simulations"`
	SimulationMetadata SimulationMetadata    `json:"simulation_metadata"`
}

type SimulationMetadata struct {
	StressScale map[string]string `json:"stress_scale"`
}

// Simulation describes a full working day for one career.
type Simulation struct {
	CareerTitle        string                   `json:"career_title"`
	Overview           string                   `json:"overview"`
	EducationRequired  string                   `json:"education_required"`
	WorkingHours       WorkingHours             `json:"working_hours"`
	AverageStressLevel float64                  `json:"average_stress_level"`
	WorkLifeBalance    string                   `json:"work_life_balance"`
	SalaryRange        string                   `json:"salary_range"`
	StressFactors      []string                 `json:"stress_factors"`
	Rewards            []string                 `json:"rewards"`
	DailySchedule      []ScheduleTask           `json:"daily_schedule"`
	RegionSpecific     map[string]RegionVariant `json:"region_specific,omitempty"`
}

type WorkingHours struct {
	TotalHours float64 `json:"total_hours"`
	Schedule   string  `json:"schedule,omitempty"`
	Flexible   bool    `json:"flexible,omitempty"`
}

// ScheduleTask is one block of a simulated day. Duration is in minutes and
// StressLevel is on the 1..5 scale.
type ScheduleTask struct {
	Time        string `json:"time"`
	Task        string `json:"task"`
	StressLevel int    `json:"stress_level"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type RegionVariant struct {
	Salary      string `json:"salary"`
	WorkCulture string `json:"work_culture"`
}

// RiskCriteriaFile is the on-disk shape of the dropout-risk criteria table.
type RiskCriteriaFile struct {
	FailureWarningCriteria map[string]RiskDimensionCriteria `json:"failure_warning_criteria"`
	CareerRiskMapping      map[string][]CareerRiskInfo      `json:"career_risk_mapping"`
	InterventionStrategies map[string][]string              `json:"intervention_strategies"`
}

type RiskDimensionCriteria struct {
	RiskFactors   []string                `json:"risk_factors,omitempty"`
	WarningLevels map[string]WarningLevel `json:"warning_levels"`
}

// WarningLevel maps a closed score band to recommendations for that band.
type WarningLevel struct {
	ScoreRange      [2]float64 `json:"score_range"`
	Recommendations []string   `json:"recommendations"`
}

type CareerRiskInfo struct {
	Career        string   `json:"career"`
	StressLevel   float64  `json:"stress_level"`
	DropoutRate   string   `json:"dropout_rate"`
	CommonReasons []string `json:"common_reasons"`
}
