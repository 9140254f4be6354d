// internal/workers/assessment/assess-dropout-risk/handler.go
package assessdropoutrisk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/common/metrics"
	"career-engine/internal/recommender/risk"
	"career-engine/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "assess-dropout-risk"
)

type Handler struct {
	config   *Config
	assessor *risk.Assessor
	logger   logger.Logger
}

func NewHandler(config *Config, store *refdata.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		assessor: risk.New(store, log),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
	mode := input.Mode
	if mode == "" {
		mode = ModeFull
	}

	output := &Output{
		AnalysisID: uuid.NewString(),
		Mode:       mode,
	}

	switch mode {
	case ModeFull:
		output.Assessment = h.assessor.Assess(input.StudentData)
		h.logger.Info("dropout risk assessed", map[string]interface{}{
			"riskScore": output.Assessment.OverallRiskScore,
			"riskLevel": output.Assessment.OverallRiskLevel,
			"careers":   len(input.StudentData.CareerPreferences),
		})
	case ModeQuick:
		output.QuickAssessment = h.assessor.QuickAssess(input.QuickIndicators)
		h.logger.Info("quick risk check done", map[string]interface{}{
			"riskLevel":  output.QuickAssessment.RiskLevel,
			"indicators": output.QuickAssessment.RiskIndicatorsCount,
		})
	default:
		return nil, errors.NewValidationError(
			"Unknown assessment mode",
			fmt.Sprintf("mode %q is not supported, use %q or %q", mode, ModeFull, ModeQuick),
		)
	}

	return output, nil
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
