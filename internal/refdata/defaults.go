// internal/refdata/defaults.go
package refdata

// Built-in fallbacks used when a reference file is missing or fails
// validation. They keep every engine operation functional, just with a
// much smaller universe of careers.

func defaultModeConfig() ModeConfig {
	return ModeConfig{
		Regions: map[string]RegionInfo{
			"global": {CareerFile: "careers.json", Currency: "USD", SalaryPrefix: "$"},
			"india":  {CareerFile: "careers_india.json", Currency: "INR", SalaryPrefix: "₹"},
		},
		Modes: map[string]ModeInfo{
			"student": {
				AssessmentWeight: map[string]float64{
					"interests": 0.45, "subjects": 0.25, "skills": 0.20, "personality": 0.10,
				},
			},
			"professional": {
				AssessmentWeight: map[string]float64{
					"skills": 0.40, "interests": 0.30, "personality": 0.20, "subjects": 0.10,
				},
			},
		},
	}
}

func defaultCareers() []Career {
	return []Career{
		{
			Name:              "Software Engineer",
			RequiredSkills:    []string{"programming", "problem_solving", "logical_thinking", "mathematics"},
			Interests:         []string{"technology", "computers", "innovation", "problem_solving"},
			Subjects:          []string{"computer_science", "mathematics", "physics"},
			PersonalityTraits: []string{"analytical", "detail_oriented", "creative"},
			Description:       "Design and develop software applications and systems",
			GrowthRate:        "22%",
			MedianSalary:      "$110,000",
		},
	}
}

func defaultSkillsMapping() SkillsMapping {
	return SkillsMapping{
		SubjectsToSkills: map[string][]string{
			"computer_science": {"programming", "algorithms", "data_structures", "system_design"},
			"mathematics":      {"analytical_thinking", "problem_solving", "statistics", "logical_reasoning"},
			"business":         {"strategic_thinking", "communication", "leadership", "project_management"},
			"psychology":       {"empathy", "research", "communication", "analytical_thinking"},
			"art":              {"creativity", "design", "visual_thinking", "attention_to_detail"},
		},
		SkillCategories: map[string][]string{
			"technical": {"programming", "machine_learning", "data_analysis", "cybersecurity", "design"},
			"soft":      {"communication", "leadership", "teamwork", "problem_solving", "creativity"},
			"business":  {"project_management", "strategic_thinking", "marketing", "sales", "finance"},
		},
	}
}

func defaultRoleModels() []RoleModel {
	return []RoleModel{
		{
			Name:             "Grace Hopper",
			Career:           "Software Engineer",
			Title:            "Computer Science Pioneer",
			KeySkills:        []string{"programming", "problem_solving", "leadership"},
			InspirationQuote: "The most dangerous phrase in the language is: we've always done it this way.",
			CareerPath:       []string{"Mathematics professor", "Navy programmer", "Compiler inventor"},
			Advice:           "Go ahead and do it. You can apologize later.",
			Achievements:     []string{"Invented the first compiler", "Co-developed COBOL"},
		},
	}
}

func defaultCareerTips() []CareerTip {
	return []CareerTip{
		{
			Title:       "Build in public",
			Tip:         "Share your projects and progress openly, feedback compounds faster than solo practice.",
			Category:    "skill_building",
			CareerFocus: []string{"All careers"},
		},
		{
			Title:       "Network before you need it",
			Tip:         "Reach out to one professional in your target field every week.",
			Category:    "networking",
			CareerFocus: []string{"All careers"},
		},
	}
}

func defaultReality() RealityFile {
	return RealityFile{
		CareerRealityData: map[string]RealityEntry{
			"Software Engineer": {
				RealityCheck: RealitySnapshot{
					StressLevel:     "Medium",
					WorkLifeBalance: "Good",
					JobSecurity:     "High",
				},
				DailyChallenges: []string{"Debugging under deadlines", "Keeping up with changing tools"},
				CareerRisks:     []string{"Skill obsolescence without continuous learning"},
				BackupOptions:   []string{"Technical writing", "Product management"},
			},
		},
		GeneralInsights: map[string][]string{
			"before_committing": {
				"Talk to at least three people working in the field",
				"Try a small real project before enrolling in a long program",
			},
		},
	}
}

func defaultSimulations() SimulationsFile {
	return SimulationsFile{
		CareerSimulations: map[string]Simulation{
			"Software Engineer": {
				CareerTitle:        "Software Engineer",
				Overview:           "A day of focused building, collaboration, and problem solving",
				EducationRequired:  "Bachelor's degree in computer science or equivalent experience",
				WorkingHours:       WorkingHours{TotalHours: 8, Schedule: "9:00-17:00", Flexible: true},
				AverageStressLevel: 2.8,
				WorkLifeBalance:    "Good",
				SalaryRange:        "$90,000 - $150,000",
				StressFactors:      []string{"Production incidents", "Deadline pressure", "Context switching"},
				Rewards:            []string{"Creative problem solving", "Visible impact", "Strong compensation"},
				DailySchedule: []ScheduleTask{
					{Time: "09:00", Task: "Standup and planning", StressLevel: 2, Duration: 30, Description: "Sync with the team on priorities"},
					{Time: "09:30", Task: "Deep work: feature development", StressLevel: 3, Duration: 150, Description: "Uninterrupted coding block"},
					{Time: "12:00", Task: "Lunch break", StressLevel: 1, Duration: 60, Description: "Step away from the screen"},
					{Time: "13:00", Task: "Code review", StressLevel: 2, Duration: 60, Description: "Review teammates' changes"},
					{Time: "14:00", Task: "Incident triage", StressLevel: 4, Duration: 60, Description: "Investigate a production alert"},
					{Time: "15:00", Task: "Pairing session", StressLevel: 2, Duration: 60, Description: "Work through a tricky design"},
					{Time: "16:00", Task: "Documentation and wrap-up", StressLevel: 1, Duration: 60, Description: "Write up decisions and plan tomorrow"},
				},
				RegionSpecific: map[string]RegionVariant{
					"india": {Salary: "₹8,00,000 - ₹25,00,000", WorkCulture: "Product and services mix, hybrid offices common"},
				},
			},
		},
		SimulationMetadata: SimulationMetadata{
			StressScale: map[string]string{
				"1": "Relaxed", "2": "Engaged", "3": "Busy", "4": "Pressured", "5": "Intense",
			},
		},
	}
}

func defaultRiskCriteria() RiskCriteriaFile {
	warningLevels := map[string]WarningLevel{
		"low_risk": {
			ScoreRange: [2]float64{0.0, 0.3},
			Recommendations: []string{
				"Keep up current habits",
				"Revisit goals each semester",
			},
		},
		"moderate_risk": {
			ScoreRange: [2]float64{0.3, 0.6},
			Recommendations: []string{
				"Set up a regular study or review routine",
				"Find a mentor in your target field",
			},
		},
		"high_risk": {
			ScoreRange: [2]float64{0.6, 1.0},
			Recommendations: []string{
				"Seek structured academic and counseling support",
				"Reassess career choice with a professional counselor",
			},
		},
	}

	return RiskCriteriaFile{
		FailureWarningCriteria: map[string]RiskDimensionCriteria{
			"academic_consistency": {WarningLevels: warningLevels},
			"interest_stability":   {WarningLevels: warningLevels},
			"stress_tolerance":     {WarningLevels: warningLevels},
		},
		CareerRiskMapping: map[string][]CareerRiskInfo{
			"high_stress_careers": {
				{
					Career:        "Doctor",
					StressLevel:   4.5,
					DropoutRate:   "15-20%",
					CommonReasons: []string{"Burnout during residency", "Financial pressure of long training"},
				},
			},
			"moderate_stress_careers": {
				{
					Career:        "Software Engineer",
					StressLevel:   3.0,
					DropoutRate:   "8-12%",
					CommonReasons: []string{"Imposter syndrome", "Rapid technology churn"},
				},
			},
		},
		InterventionStrategies: map[string][]string{
			"academic_support": {
				"Weekly tutoring sessions",
				"Structured study schedule with accountability",
			},
			"stress_management": {
				"Mindfulness and relaxation training",
				"Regular exercise routine",
			},
			"interest_exploration": {
				"Job shadowing in fields of interest",
				"Short online courses to sample disciplines",
			},
			"career_alternatives": {
				"Explore adjacent lower-stress roles",
				"Consider vocational training paths",
			},
		},
	}
}
