// internal/workers/assessment/assess-dropout-risk/config.go
package assessdropoutrisk

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
		out.Timeout = 30 * time.Second
	}
	if out.MaxJobsActive <= 0 {
		out.MaxJobsActive = 5
	}
	return out
}
