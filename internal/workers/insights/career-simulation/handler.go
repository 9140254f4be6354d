// internal/workers/insights/career-simulation/handler.go
package careersimulation

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
	"career-engine/internal/recommender/simulation"
	"career-engine/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "career-simulation"
)

type Handler struct {
	config *Config
	engine *simulation.Engine
	cache  *database.RedisClient
	logger logger.Logger
}

// NewHandler builds the handler. cache may be nil; full simulations are then
// computed on every call instead of being served from Redis.
func NewHandler(config *Config, store *refdata.Store, cache *database.RedisClient, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: simulation.New(store, log),
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(ctx, client, job, errors.NewValidationError("Failed to parse job variables", err.Error()))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, asStandardError(err))
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	region := input.Region
	if region == "" {
		region = h.config.DefaultRegion
	}

	output := &Output{
		AnalysisID: uuid.NewString(),
		Region:     region,
	}

	if input.ListAvailable {
		output.AvailableCareers = h.engine.AvailableCareers()
		return output, nil
	}

	if len(input.Compare) > 0 {
		result, err := h.engine.CompareSimulations(input.Compare, region)
		if err != nil {
			return nil, err
		}
		output.Comparison = result
		return output, nil
	}

	if input.Career == "" {
		return nil, errors.NewValidationError("Career is required", "provide the career to simulate")
	}

	detail := input.Detail
	if detail == "" {
		detail = DetailFull
	}
	output.Detail = detail

	var err error
	switch detail {
	case DetailFull:
		output.Simulation, err = h.cachedSimulate(ctx, input.Career, region)
	case DetailSummary:
		output.Summary, err = h.engine.Summary(input.Career, region)
	case DetailInsights:
		output.Insights, err = h.engine.Insights(input.Career, region)
	case DetailTimeline:
		output.Timeline, err = h.engine.StressTimeline(input.Career, region)
	default:
		return nil, errors.NewValidationError(
			"Unknown detail level",
			fmt.Sprintf("detail %q is not supported, use full, summary, insights or timeline", detail),
		)
	}
	if err != nil {
		return nil, err
	}

	h.logger.Info("career simulated", map[string]interface{}{
		"career": input.Career,
		"region": region,
		"detail": detail,
	})

	return output, nil
}

// cachedSimulate serves the full simulation from Redis when possible. The
// schedule metrics only change with the reference data, so a cache outage or
// miss just recomputes.
func (h *Handler) cachedSimulate(ctx context.Context, career, region string) (*simulation.Result, error) {
	if h.cache == nil {
		return h.engine.Simulate(career, region)
	}

	key := fmt.Sprintf("simulation:%s:%s", strings.ToLower(career), region)
	if cached, err := h.cache.Get(ctx, key); err == nil {
		var result simulation.Result
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	result, err := h.engine.Simulate(career, region)
	if err != nil {
		return nil, err
	}

	if raw, marshalErr := json.Marshal(result); marshalErr == nil {
		if setErr := h.cache.Set(ctx, key, raw, h.config.SimCacheTTL); setErr != nil {
			h.logger.Warn("failed to cache simulation", map[string]interface{}{
				"career": career,
				"region": region,
				"error":  setErr.Error(),
			})
		}
	}

	return result, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(ctx)
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, stdErr *errors.StandardError) {
	bpmnErr := errors.ConvertToBPMNError(stdErr)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    bpmnErr.Code,
		"errorMessage": bpmnErr.Message,
		"retryable":    bpmnErr.Retryable,
	})

	failCmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(bpmnErr.Retries)).
		ErrorMessage(fmt.Sprintf("[%s] %s", bpmnErr.Code, bpmnErr.Message))

	var finalCmd interface {
		Send(context.Context) (*pb.FailJobResponse, error)
	}
	if len(bpmnErr.ErrorVariables) > 0 {
		varCmd, varErr := failCmd.VariablesFromMap(bpmnErr.ToErrorVariables())
		if varErr != nil {
			h.logger.Error("failed to set error variables, sending without them", map[string]interface{}{
				"jobKey": job.Key,
				"error":  varErr.Error(),
			})
			finalCmd = failCmd
		} else {
			finalCmd = varCmd
		}
	} else {
		finalCmd = failCmd
	}

	if _, failErr := finalCmd.Send(ctx); failErr != nil {
		h.logger.Error("failed to send fail job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  failErr.Error(),
		})
	}
}

func asStandardError(err error) *errors.StandardError {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return stdErr
	}
	return errors.NewUnexpectedError(err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
