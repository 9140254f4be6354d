// internal/recommender/rolemodels/rolemodels.go
package rolemodels

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"career-engine/internal/common/database"
	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/common/metrics"
	"career-engine/internal/refdata"

	"github.com/cespare/xxhash/v2"
)

const (
	maxCombinedModels = 3
	maxSkillTips      = 5
	weeklyTipCount    = 7
)

var professionalCategories = map[string]struct{}{
	"career_advancement":  {},
	"leadership":          {},
	"industry_transition": {},
	"networking":          {},
}

// Quote is an inspirational quote attributed to a role model.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

// PathExample shows how one role model reached their career.
type PathExample struct {
	Name         string   `json:"name"`
	CareerPath   []string `json:"career_path"`
	Advice       string   `json:"advice"`
	Achievements []string `json:"achievements"`
}

// SkillTip pairs a skill being developed with a tip that helps it.
type SkillTip struct {
	Skill string          `json:"skill"`
	Tip   refdata.CareerTip `json:"tip"`
}

// RegionAdvice carries a role model's region-specific context.
type RegionAdvice struct {
	Name    string `json:"name"`
	Context string `json:"context"`
	Advice  string `json:"advice"`
}

// Service serves role models, quotes and career tips. Tip and quote
// selection is deterministic per user and day so repeat calls within a day
// return the same content.
type Service struct {
	store  *refdata.Store
	region string
	cache  *database.RedisClient
	ttl    time.Duration
	log    logger.Logger
	now    func() time.Time
}

// New builds the service. cache may be nil; daily tips are then computed on
// every call.
func New(store *refdata.Store, region string, cache *database.RedisClient, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		store:  store,
		region: region,
		cache:  cache,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// ModelsForCareer matches role models whose career overlaps the given name
// in either direction. With no match, every model is returned so the user
// can still learn from adjacent fields.
func (s *Service) ModelsForCareer(career string) []refdata.RoleModel {
	models := s.store.RoleModels(s.region)
	target := strings.ToLower(career)

	var matched []refdata.RoleModel
	for _, model := range models {
		modelCareer := strings.ToLower(model.Career)
		if strings.Contains(target, modelCareer) || strings.Contains(modelCareer, target) {
			matched = append(matched, model)
		}
	}

	if len(matched) == 0 {
		return models
	}
	return matched
}

// ModelsForCareers merges matches for several careers, deduplicated by
// model name, capped at three.
func (s *Service) ModelsForCareers(careers []string) []refdata.RoleModel {
	var combined []refdata.RoleModel
	seen := make(map[string]struct{})

	for _, career := range careers {
		for _, model := range s.ModelsForCareer(career) {
			if _, dup := seen[model.Name]; dup {
				continue
			}
			seen[model.Name] = struct{}{}
			combined = append(combined, model)
			if len(combined) == maxCombinedModels {
				return combined
			}
		}
	}

	return combined
}

// DailyTip returns the tip of the day for a user. The same user gets the
// same tip all day; the result is cached in Redis when a cache is wired.
func (s *Service) DailyTip(ctx context.Context, careerFocus, userID, mode string) (refdata.CareerTip, error) {
	relevant := s.filterTips(careerFocus, mode)
	if len(relevant) == 0 {
		relevant = s.store.Tips()
	}
	if len(relevant) == 0 {
		return refdata.CareerTip{}, errors.NewTipsUnavailableError(careerFocus, mode)
	}

	date := s.now().Format("2006-01-02")
	cacheKey := fmt.Sprintf("dailytip:%s:%s:%s:%s", userID, date, careerFocus, mode)

	if s.cache != nil && userID != "" {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var tip refdata.CareerTip
			if err := json.Unmarshal([]byte(cached), &tip); err == nil {
				metrics.TipCacheHits.WithLabelValues("hit").Inc()
				return tip, nil
			}
		}
		metrics.TipCacheHits.WithLabelValues("miss").Inc()
	}

	seed := userID
	if seed == "" {
		seed = "anonymous"
	}
	idx := xxhash.Sum64String(seed+"_"+date) % uint64(len(relevant))
	tip := relevant[idx]

	if s.cache != nil && userID != "" {
		raw, err := json.Marshal(tip)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
				metrics.TipCacheHits.WithLabelValues("error").Inc()
				s.log.Warn("failed to cache daily tip", map[string]interface{}{
					"userId": userID,
					"error":  err.Error(),
				})
			}
		}
	}

	return tip, nil
}

// WeeklyTips returns up to seven tips for the current ISO week. The
// selection rotates with the week so consecutive weeks see different tips.
func (s *Service) WeeklyTips(careerFocus, mode string) []refdata.CareerTip {
	relevant := s.filterTips(careerFocus, mode)
	if len(relevant) == 0 {
		return nil
	}

	count := weeklyTipCount
	if count > len(relevant) {
		count = len(relevant)
	}

	year, week := s.now().ISOWeek()
	start := xxhash.Sum64String(fmt.Sprintf("week_%d_%d", year, week)) % uint64(len(relevant))

	tips := make([]refdata.CareerTip, 0, count)
	for i := 0; i < count; i++ {
		tips = append(tips, relevant[(int(start)+i)%len(relevant)])
	}
	return tips
}

// TipsByCategory returns every tip in a category.
func (s *Service) TipsByCategory(category string) []refdata.CareerTip {
	var tips []refdata.CareerTip
	for _, tip := range s.store.Tips() {
		if tip.Category == category {
			tips = append(tips, tip)
		}
	}
	return tips
}

// InspirationQuote picks the day's quote from role models matching the
// career, or from all models when no career is given.
func (s *Service) InspirationQuote(career string) (*Quote, bool) {
	models := s.store.RoleModels(s.region)
	if career != "" {
		models = s.ModelsForCareer(career)
	}
	if len(models) == 0 {
		return nil, false
	}

	model := models[s.dailyIndex("quote_"+career, len(models))]
	return &Quote{
		Quote:  model.InspirationQuote,
		Author: model.Name,
		Title:  model.Title,
	}, true
}

// CareerPathExample picks one role model's path for the career.
func (s *Service) CareerPathExample(career string) (*PathExample, bool) {
	models := s.ModelsForCareer(career)
	if len(models) == 0 {
		return nil, false
	}

	model := models[s.dailyIndex("path_"+career, len(models))]
	return &PathExample{
		Name:         model.Name,
		CareerPath:   model.CareerPath,
		Advice:       model.Advice,
		Achievements: model.Achievements,
	}, true
}

// Search matches the query against each model's name, career, title and
// skills.
func (s *Service) Search(query string) []refdata.RoleModel {
	query = strings.ToLower(query)

	var results []refdata.RoleModel
	for _, model := range s.store.RoleModels(s.region) {
		searchable := strings.ToLower(fmt.Sprintf("%s %s %s %s",
			model.Name, model.Career, model.Title, strings.Join(model.KeySkills, " ")))
		if strings.Contains(searchable, query) {
			results = append(results, model)
		}
	}
	return results
}

// SkillDevelopmentTips finds tips whose text or title mentions each skill,
// capped at five pairs.
func (s *Service) SkillDevelopmentTips(skills []string) []SkillTip {
	var pairs []SkillTip

	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, tip := range s.store.Tips() {
			if strings.Contains(strings.ToLower(tip.Tip), lower) ||
				strings.Contains(strings.ToLower(tip.Title), lower) {
				pairs = append(pairs, SkillTip{Skill: skill, Tip: tip})
				if len(pairs) == maxSkillTips {
					return pairs
				}
			}
		}
	}

	return pairs
}

// RegionAdvice collects region-specific context from matching role models.
func (s *Service) RegionAdvice(career string) []RegionAdvice {
	var advice []RegionAdvice
	for _, model := range s.ModelsForCareer(career) {
		if model.IndianContext == "" {
			continue
		}
		advice = append(advice, RegionAdvice{
			Name:    model.Name,
			Context: model.IndianContext,
			Advice:  model.Advice,
		})
	}
	return advice
}

func (s *Service) filterTips(careerFocus, mode string) []refdata.CareerTip {
	tips := s.store.Tips()

	var relevant []refdata.CareerTip
	for _, tip := range tips {
		if careerFocus != "" && !focusMatches(tip, careerFocus) {
			continue
		}
		if mode == "professional" {
			if _, ok := professionalCategories[tip.Category]; !ok {
				continue
			}
		}
		relevant = append(relevant, tip)
	}
	return relevant
}

func focusMatches(tip refdata.CareerTip, focus string) bool {
	for _, f := range tip.CareerFocus {
		if f == focus || f == "All careers" {
			return true
		}
	}
	return false
}

func (s *Service) dailyIndex(key string, n int) int {
	date := s.now().Format("2006-01-02")
	return int(xxhash.Sum64String(key+"_"+date) % uint64(n))
}
