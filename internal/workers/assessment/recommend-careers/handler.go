// internal/workers/assessment/recommend-careers/handler.go
package recommendcareers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career-engine/internal/common/database"
	"career-engine/internal/common/errors"
	"career-engine/internal/common/logger"
	"career-engine/internal/common/metrics"
	"career-engine/internal/recommender/explainer"
	"career-engine/internal/recommender/matcher"
	"career-engine/internal/recommender/rolemodels"
	"career-engine/internal/recommender/skillsgap"
	"career-engine/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "recommend-careers"
)

type Handler struct {
	config    *Config
	store     *refdata.Store
	cache     *database.RedisClient
	explainer *explainer.Explainer
	analyzer  *skillsgap.Analyzer
	logger    logger.Logger
	baseLog   logger.Logger
}

// NewHandler builds the handler. cache may be nil; the daily tip attached
// to each result is then computed instead of served from Redis.
func NewHandler(config *Config, store *refdata.Store, cache *database.RedisClient, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		store:     store,
		cache:     cache,
		explainer: explainer.New(),
		analyzer:  skillsgap.New(store),
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		baseLog:   log,
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
	if len(input.Interests) == 0 && len(input.Skills) == 0 && len(input.Subjects) == 0 {
		return nil, errors.NewValidationError("Assessment data is required",
			"provide at least one of interests, skills or subjects")
	}

	region := input.Region
	if region == "" {
		region = h.config.DefaultRegion
	}
	mode := input.Mode
	if mode == "" {
		mode = h.config.DefaultMode
	}

	m, err := matcher.New(h.store, region, mode, h.baseLog)
	if err != nil {
		return nil, err
	}

	assessment := matcher.AssessmentInput{
		Interests:       input.Interests,
		Skills:          input.Skills,
		Subjects:        input.Subjects,
		Personality:     input.Personality,
		ExperienceLevel: input.ExperienceLevel,
	}

	scored := m.Recommend(assessment)
	metrics.RecommendationsGenerated.WithLabelValues(mode, region).Inc()

	recommendations := make([]CareerRecommendation, 0, len(scored))
	topNames := make([]string, 0, len(scored))
	for _, rec := range scored {
		recommendations = append(recommendations, CareerRecommendation{
			Career:      rec.Career,
			Score:       rec.Score,
			Explanation: h.explainer.Explain(rec.Career, assessment),
			SkillsGap:   h.analyzer.Analyze(input.Skills, rec.Career, input.Subjects),
		})
		topNames = append(topNames, rec.Career.Name)
	}

	output := &Output{
		AnalysisID:      uuid.NewString(),
		Region:          region,
		Mode:            mode,
		Recommendations: recommendations,
		Graph:           m.BuildGraph(assessment),
		RegionInfo:      m.RegionInfo(),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	// Enrichment is best effort. A tip outage must not fail the whole
	// recommendation, so errors degrade to a result without a tip.
	service := rolemodels.New(h.store, region, h.cache, h.config.TipCacheTTL, h.baseLog)
	output.RoleModels = service.ModelsForCareers(topNames)

	if len(topNames) > 0 {
		if tip, tipErr := service.DailyTip(ctx, topNames[0], input.UserID, mode); tipErr == nil {
			output.DailyTip = &tip
		} else {
			h.logger.Warn("daily tip unavailable, continuing without it", map[string]interface{}{
				"careerFocus": topNames[0],
				"error":       tipErr.Error(),
			})
		}
		if quote, ok := service.InspirationQuote(topNames[0]); ok {
			output.Quote = quote
		}
	}

	h.logger.Info("recommendations generated", map[string]interface{}{
		"region":          region,
		"mode":            mode,
		"recommendations": len(recommendations),
		"roleModels":      len(output.RoleModels),
	})

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
