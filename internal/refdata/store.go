// internal/refdata/store.go
package refdata

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"career-engine/internal/common/logger"
	"career-engine/internal/common/metrics"
)

// Store holds every reference table, loaded once at startup and then
// treated as read-only. All accessors are safe for concurrent use.
type Store struct {
	log logger.Logger

	modeConfig  ModeConfig
	careers     map[string][]Career
	skills      SkillsMapping
	roleModels  map[string][]RoleModel
	tips        []CareerTip
	reality     RealityFile
	simulations SimulationsFile
	risk        RiskCriteriaFile
}

// Load reads every reference table from dir. A missing or invalid table is
// replaced by its built-in default with a warning, so Load only fails when
// dir itself is unusable in a way the defaults cannot paper over.
func Load(dir string, log logger.Logger) (*Store, error) {
	s := &Store{
		log:     log,
		careers: make(map[string][]Career),
	}

	s.modeConfig = defaultModeConfig()
	if ok := loadTable(s, dir, "mode_config.json", &s.modeConfig); ok {
		if err := validateModeConfig(s.modeConfig); err != nil {
			s.fallback("mode_config.json", err)
			s.modeConfig = defaultModeConfig()
		}
	}

	for region, info := range s.modeConfig.Regions {
		var careers []Career
		if ok := loadTable(s, dir, info.CareerFile, &careers); !ok || len(careers) == 0 {
			careers = defaultCareers()
		}
		s.careers[region] = careers
	}

	s.skills = defaultSkillsMapping()
	loadTable(s, dir, "skills_mapping.json", &s.skills)
	if s.skills.SubjectsToSkills == nil {
		s.skills.SubjectsToSkills = defaultSkillsMapping().SubjectsToSkills
	}
	if s.skills.SkillCategories == nil {
		s.skills.SkillCategories = defaultSkillsMapping().SkillCategories
	}

	s.roleModels = make(map[string][]RoleModel)
	var globalModels []RoleModel
	if ok := loadTable(s, dir, "role_models.json", &globalModels); !ok || len(globalModels) == 0 {
		globalModels = defaultRoleModels()
	}
	s.roleModels["global"] = globalModels

	var indiaModels []RoleModel
	if ok := loadTable(s, dir, "role_models_india.json", &indiaModels); !ok || len(indiaModels) == 0 {
		indiaModels = globalModels
	}
	s.roleModels["india"] = indiaModels

	if ok := loadTable(s, dir, "career_tips.json", &s.tips); !ok || len(s.tips) == 0 {
		s.tips = defaultCareerTips()
	}

	s.reality = defaultReality()
	loadTable(s, dir, "career_reality_check.json", &s.reality)
	if s.reality.CareerRealityData == nil {
		s.reality = defaultReality()
	}

	s.simulations = defaultSimulations()
	if ok := loadTable(s, dir, "career_simulations.json", &s.simulations); ok {
		if err := validateSimulations(s.simulations); err != nil {
			s.fallback("career_simulations.json", err)
			s.simulations = defaultSimulations()
		}
	}
	if s.simulations.CareerSimulations == nil {
		s.simulations = defaultSimulations()
	}

	s.risk = defaultRiskCriteria()
	if ok := loadTable(s, dir, "failure_warning_criteria.json", &s.risk); ok {
		if err := validateRiskCriteria(s.risk); err != nil {
			s.fallback("failure_warning_criteria.json", err)
			s.risk = defaultRiskCriteria()
		}
	}
	if s.risk.FailureWarningCriteria == nil {
		s.risk = defaultRiskCriteria()
	}

	log.Info("reference data loaded", map[string]interface{}{
		"regions":     len(s.modeConfig.Regions),
		"careers":     len(s.careers["global"]),
		"tips":        len(s.tips),
		"simulations": len(s.simulations.CareerSimulations),
	})

	return s, nil
}

func loadTable(s *Store, dir, name string, out interface{}) bool {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		s.fallback(name, err)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.fallback(name, err)
		return false
	}
	return true
}

func (s *Store) fallback(table string, err error) {
	metrics.ReferenceDataFallbacks.WithLabelValues(table).Inc()
	s.log.Warn("reference table unavailable, using built-in defaults", map[string]interface{}{
		"table": table,
		"error": err.Error(),
	})
}

// --- load-time validation ---

func validateModeConfig(mc ModeConfig) error {
	if len(mc.Regions) == 0 || len(mc.Modes) == 0 {
		return fmt.Errorf("mode config must declare regions and modes")
	}
	for mode, info := range mc.Modes {
		sum := 0.0
		for _, w := range info.AssessmentWeight {
			if w < 0 {
				return fmt.Errorf("mode %q has a negative weight", mode)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			return fmt.Errorf("mode %q weights sum to %v, want 1.0", mode, sum)
		}
	}
	return nil
}

func validateSimulations(sf SimulationsFile) error {
	for name, sim := range sf.CareerSimulations {
		if len(sim.DailySchedule) == 0 {
			return fmt.Errorf("simulation %q has an empty schedule", name)
		}
		for _, task := range sim.DailySchedule {
			if task.StressLevel < 1 || task.StressLevel > 5 {
				return fmt.Errorf("simulation %q task %q has stress level %d outside 1..5",
					name, task.Task, task.StressLevel)
			}
			if task.Duration <= 0 {
				return fmt.Errorf("simulation %q task %q has non-positive duration", name, task.Task)
			}
		}
	}
	return nil
}

func validateRiskCriteria(rc RiskCriteriaFile) error {
	for dim, criteria := range rc.FailureWarningCriteria {
		if len(criteria.WarningLevels) == 0 {
			return fmt.Errorf("risk dimension %q has no warning levels", dim)
		}
		covered := 0.0
		for level, wl := range criteria.WarningLevels {
			lo, hi := wl.ScoreRange[0], wl.ScoreRange[1]
			if lo < 0 || hi > 1 || lo > hi {
				return fmt.Errorf("risk dimension %q level %q has invalid range [%v, %v]",
					dim, level, lo, hi)
			}
			covered += hi - lo
		}
		if covered < 1.0-1e-9 {
			return fmt.Errorf("risk dimension %q warning levels do not cover [0, 1]", dim)
		}
	}
	return nil
}

// --- accessors ---

// RegionInfo returns display metadata for a region.
func (s *Store) RegionInfo(region string) (RegionInfo, bool) {
	info, ok := s.modeConfig.Regions[region]
	return info, ok
}

// Regions returns the configured region names, sorted.
func (s *Store) Regions() []string {
	names := make([]string, 0, len(s.modeConfig.Regions))
	for name := range s.modeConfig.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModeWeights returns the assessment weights for a mode.
func (s *Store) ModeWeights(mode string) (map[string]float64, bool) {
	info, ok := s.modeConfig.Modes[mode]
	if !ok {
		return nil, false
	}
	return info.AssessmentWeight, true
}

// Careers returns the career table for a region. Unknown regions fall back
// to the global table.
func (s *Store) Careers(region string) []Career {
	if careers, ok := s.careers[region]; ok {
		return careers
	}
	return s.careers["global"]
}

// CareerByName looks up a career case-insensitively within a region.
func (s *Store) CareerByName(region, name string) (Career, bool) {
	for _, career := range s.Careers(region) {
		if strings.EqualFold(career.Name, name) {
			return career, true
		}
	}
	return Career{}, false
}

// CareerNames returns the sorted names in a region's career table.
func (s *Store) CareerNames(region string) []string {
	careers := s.Careers(region)
	names := make([]string, 0, len(careers))
	for _, c := range careers {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the subjects-to-skills and category mapping.
func (s *Store) Skills() SkillsMapping {
	return s.skills
}

// RoleModels returns the role model table for a region.
func (s *Store) RoleModels(region string) []RoleModel {
	if models, ok := s.roleModels[region]; ok {
		return models
	}
	return s.roleModels["global"]
}

// Tips returns the full career tip table.
func (s *Store) Tips() []CareerTip {
	return s.tips
}

// RealityEntry looks up reality data for a career, retrying
// case-insensitively. The canonical name is returned alongside the entry.
func (s *Store) RealityEntry(name string) (RealityEntry, string, bool) {
	if entry, ok := s.reality.CareerRealityData[name]; ok {
		return entry, name, true
	}
	for key, entry := range s.reality.CareerRealityData {
		if strings.EqualFold(key, name) {
			return entry, key, true
		}
	}
	return RealityEntry{}, "", false
}

// RealityNames returns the sorted careers with reality data.
func (s *Store) RealityNames() []string {
	names := make([]string, 0, len(s.reality.CareerRealityData))
	for name := range s.reality.CareerRealityData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneralInsights returns advice that applies across careers.
func (s *Store) GeneralInsights() map[string][]string {
	return s.reality.GeneralInsights
}

// Simulation looks up a day-in-the-life simulation, retrying
// case-insensitively.
func (s *Store) Simulation(name string) (Simulation, bool) {
	if sim, ok := s.simulations.CareerSimulations[name]; ok {
		return sim, true
	}
	for key, sim := range s.simulations.CareerSimulations {
		if strings.EqualFold(key, name) {
			return sim, true
		}
	}
	return Simulation{}, false
}

// SimulationNames returns the sorted careers with simulations.
func (s *Store) SimulationNames() []string {
	names := make([]string, 0, len(s.simulations.CareerSimulations))
	for name := range s.simulations.CareerSimulations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StressScale returns the legend for the 1..5 stress levels.
func (s *Store) StressScale() map[string]string {
	return s.simulations.SimulationMetadata.StressScale
}

// RiskCriteria returns the dropout-risk criteria table.
func (s *Store) RiskCriteria() RiskCriteriaFile {
	return s.risk
}

// ComparableCareers merges the regional career tables into a single map
// keyed by name. A career present in both tables keeps its global entry and
// gains the india salary and outlook.
func (s *Store) ComparableCareers() map[string]ComparableCareer {
	merged := make(map[string]ComparableCareer)

	for _, career := range s.careers["global"] {
		merged[career.Name] = ComparableCareer{Career: career, Region: "global"}
	}

	for _, career := range s.careers["india"] {
		if existing, ok := merged[career.Name]; ok {
			existing.IndiaSalary = career.MedianSalary
			existing.IndiaOutlook = career.JobOutlook
			existing.HasIndiaData = true
			merged[career.Name] = existing
		} else {
			merged[career.Name] = ComparableCareer{Career: career, Region: "india"}
		}
	}

	return merged
}

// ComparableNames returns the sorted careers available for comparison in a
// region. Region "all" returns everything.
func (s *Store) ComparableNames(region string) []string {
	merged := s.ComparableCareers()
	names := make([]string, 0, len(merged))

	for name, career := range merged {
		switch region {
		case "all":
			names = append(names, name)
		case "india":
			if career.Region == "india" || career.HasIndiaData {
				names = append(names, name)
			}
		default:
			if career.Region == "global" || career.HasIndiaData {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names
}
