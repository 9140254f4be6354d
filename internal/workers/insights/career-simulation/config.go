// internal/workers/insights/career-simulation/config.go
package careersimulation

import (
	"time"

	"career-engine/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	DefaultRegion string
	SimCacheTTL   time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	out := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
		DefaultRegion: cfg.Data.DefaultRegion,
		// Simulations only change with the reference data, so cache
		// entries can live as long as daily tips.
		SimCacheTTL: time.Duration(cfg.Data.TipCacheTTL) * time.Second,
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
	if out.SimCacheTTL <= 0 {
		out.SimCacheTTL = 24 * time.Hour
	}
	return out
}
