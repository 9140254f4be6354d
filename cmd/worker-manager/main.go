// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-engine/internal/common/config"
	"career-engine/internal/common/database"
	"career-engine/internal/common/logger"
	"career-engine/internal/common/observability"
	"career-engine/internal/refdata"
	"career-engine/pkg/registry"

	// Assessment Workers (4)
	adr "career-engine/internal/workers/assessment/assess-dropout-risk"
	pr "career-engine/internal/workers/assessment/personality-result"
	rc "career-engine/internal/workers/assessment/recommend-careers"
	sga "career-engine/internal/workers/assessment/skills-gap-analysis"

	// Insights Workers (3)
	crc "career-engine/internal/workers/insights/career-reality-check"
	cs "career-engine/internal/workers/insights/career-simulation"
	cc "career-engine/internal/workers/insights/compare-careers"

	// Guidance Workers (1)
	dt "career-engine/internal/workers/guidance/daily-tip"
)

const registryPath = "configs/activity-registry.json"

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis with retry ---
	// Redis only backs daily-tip caching, so an outage degrades to
	// computing tips on every call instead of blocking startup.
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, tip caching disabled", zap.Error(err))
		redis = nil
	} else {
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Load Reference Data ---
	store, err := refdata.Load(cfg.Data.Dir, log)
	if err != nil {
		zapLog.Fatal("reference data load failed", zap.Error(err), zap.String("dir", cfg.Data.Dir))
	}
	zapLog.Info("Reference data loaded",
		zap.String("dir", cfg.Data.Dir),
		zap.Strings("regions", store.Regions()),
	)

	// --- Validate Activity Registry ---
	if reg, regErr := registry.LoadRegistry(registryPath); regErr != nil {
		zapLog.Warn("activity registry not loaded", zap.Error(regErr), zap.String("path", registryPath))
	} else if regErr := reg.Validate(); regErr != nil {
		zapLog.Fatal("activity registry invalid", zap.Error(regErr))
	} else {
		zapLog.Info("Activity registry validated",
			zap.String("version", reg.Version),
			zap.Int("activities", len(reg.Activities)),
		)
	}

	// --- START: Register ALL 8 Workers ---

	// --- 1. Assessment Workers (4) ---
	if cfg.Workers[rc.TaskType].Enabled {
		handler := rc.NewHandler(rc.LoadConfig(cfg), store, redis, log)
		startWorker(zeebeClient, rc.TaskType, cfg.Workers[rc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[pr.TaskType].Enabled {
		handler := pr.NewHandler(pr.LoadConfig(cfg), log)
		startWorker(zeebeClient, pr.TaskType, cfg.Workers[pr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sga.TaskType].Enabled {
		handler := sga.NewHandler(sga.LoadConfig(cfg), store, log)
		startWorker(zeebeClient, sga.TaskType, cfg.Workers[sga.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[adr.TaskType].Enabled {
		handler := adr.NewHandler(adr.LoadConfig(cfg), store, log)
		startWorker(zeebeClient, adr.TaskType, cfg.Workers[adr.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Insights Workers (3) ---
	if cfg.Workers[cc.TaskType].Enabled {
		handler := cc.NewHandler(cc.LoadConfig(cfg), store, log)
		startWorker(zeebeClient, cc.TaskType, cfg.Workers[cc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[cs.TaskType].Enabled {
		handler := cs.NewHandler(cs.LoadConfig(cfg), store, redis, log)
		startWorker(zeebeClient, cs.TaskType, cfg.Workers[cs.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[crc.TaskType].Enabled {
		handler := crc.NewHandler(crc.LoadConfig(cfg), store, log)
		startWorker(zeebeClient, crc.TaskType, cfg.Workers[crc.TaskType], handler.Handle, zapLog)
	}

	// --- 3. Guidance Workers (1) ---
	if cfg.Workers[dt.TaskType].Enabled {
		handler := dt.NewHandler(dt.LoadConfig(cfg), store, redis, log)
		startWorker(zeebeClient, dt.TaskType, cfg.Workers[dt.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 8 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
	)
}
