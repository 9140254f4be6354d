// internal/workers/assessment/skills-gap-analysis/config.go
package skillsgapanalysis

import (
	"time"

	"career-engine/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	DefaultRegion string
}

func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	out := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
		DefaultRegion: cfg.Data.DefaultRegion,
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
	return out
}
