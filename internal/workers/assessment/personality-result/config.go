// internal/workers/assessment/personality-result/config.go
package personalityresult

import (
	"time"

	"career-engine/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	out := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       time.Duration(wc.Timeout) * time.Millisecond,
	}
	if out.Timeout <= 0 {
		out.Timeout = 10 * time.Second
	}
	if out.MaxJobsActive <= 0 {
		out.MaxJobsActive = 10
	}
	return out
}
