// internal/workers/assessment/recommend-careers/config.go
package recommendcareers

import (
	"time"

	"career-engine/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	DefaultRegion string
	DefaultMode   string
	TipCacheTTL   time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	out := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
		DefaultRegion: cfg.Data.DefaultRegion,
		DefaultMode:   cfg.Data.DefaultMode,
		TipCacheTTL:   time.Duration(cfg.Data.TipCacheTTL) * time.Second,
	}
	if out.Timeout <= 0 {
		out.Timeout = 30 * time.Second
	}
	if out.MaxJobsActive <= 0 {
		out.MaxJobsActive = 5
	}
	if out.DefaultRegion == "" {
		out.DefaultRegion = "global"
	}
	if out.DefaultMode == "" {
		out.DefaultMode = "student"
	}
	if out.TipCacheTTL <= 0 {
		out.TipCacheTTL = 24 * time.Hour
	}
	return out
}
