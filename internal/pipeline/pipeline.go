// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/metrics"
	"proposal-assistant/internal/generator"
	"proposal-assistant/internal/knowledge"
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/proposales"
	"proposal-assistant/internal/rfp"
)

// PayloadGenerator produces the proposal payload from a validated RFP.
type PayloadGenerator interface {
	Generate(ctx context.Context, input *rfp.Input) (*generator.ProposalPayload, llm.Usage, error)
}

// Submitter posts the payload to the remote API.
type Submitter interface {
	CreateProposal(ctx context.Context, payload interface{}) (interface{}, error)
}

// Pipeline runs the staged proposal creation flow:
// analyzing -> mapping -> pricing -> generating.
type Pipeline struct {
	generator PayloadGenerator
	submitter Submitter
	pack      *knowledge.Pack
	logger    logger.Logger
}

func New(gen PayloadGenerator, submitter Submitter, pack *knowledge.Pack, log logger.Logger) *Pipeline {
	return &Pipeline{
		generator: gen,
		submitter: submitter,
		pack:      pack,
		logger: log.With(map[string]interface{}{
			"component": "pipeline",
		}),
	}
}

// run tracks mutable progress for one Run invocation.
type run struct {
	statuses map[string]string
	snapshot Snapshot
	out      chan Snapshot
}

func (r *run) emit() {
	states := make([]StageState, len(StageOrder))
	for i, name := range StageOrder {
		states[i] = StageState{Name: name, Status: r.statuses[name]}
	}
	r.snapshot.Stages = states
	r.out <- r.snapshot
}

func (r *run) start(stage string) {
	r.statuses[stage] = StatusInProgress
	r.emit()
}

func (r *run) complete(stage string) {
	r.statuses[stage] = StatusCompleted
	r.emit()
}

func (r *run) fail(stage string, err error) {
	r.statuses[stage] = StatusError
	r.snapshot.Error = err.Error()
	r.snapshot.Terminal = true
	r.emit()
}

// Run executes the pipeline for one RFP, emitting an ordered, finite sequence
// of snapshots. Exactly one stage is in_progress at a time; once a stage
// fails, later stages stay pending and the final snapshot is terminal. A
// failed run cannot be resumed, only restarted from scratch.
func (p *Pipeline) Run(ctx context.Context, input *rfp.Input) <-chan Snapshot {
	out := make(chan Snapshot, len(StageOrder)*2+1)

	go func() {
		defer close(out)

		r := &run{
			statuses: make(map[string]string, len(StageOrder)),
			out:      out,
		}
		for _, name := range StageOrder {
			r.statuses[name] = StatusPending
		}

		started := time.Now()

		// Analyzing: pure extraction, cannot fail.
		stageStart := time.Now()
		r.start(StageAnalyzing)
		r.snapshot.Analysis = Analyze(input)
		r.complete(StageAnalyzing)
		metrics.PipelineStageDuration.WithLabelValues(StageAnalyzing).Observe(time.Since(stageStart).Seconds())

		// Mapping: the LLM generates the payload, then the summary is derived
		// from it.
		stageStart = time.Now()
		r.start(StageMapping)
		payload, usage, err := p.generator.Generate(ctx, input)
		if err != nil {
			p.logger.Error("payload generation failed", map[string]interface{}{
				"error": err.Error(),
			})
			metrics.PipelineRunsTotal.WithLabelValues("error").Inc()
			r.fail(StageMapping, err)
			return
		}
		r.snapshot.Payload = payload
		r.snapshot.Mapping = MapPayload(p.pack, payload)
		r.complete(StageMapping)
		metrics.PipelineStageDuration.WithLabelValues(StageMapping).Observe(time.Since(stageStart).Seconds())

		// Pricing: local estimate, display only.
		stageStart = time.Now()
		r.start(StagePricing)
		r.snapshot.Pricing = Price(r.snapshot.Analysis)
		r.complete(StagePricing)
		metrics.PipelineStageDuration.WithLabelValues(StagePricing).Observe(time.Since(stageStart).Seconds())

		// Generating: submit to the remote API.
		stageStart = time.Now()
		r.start(StageGenerating)
		response, err := p.submitter.CreateProposal(ctx, payload)
		if err != nil {
			p.logger.Error("proposal submission failed", map[string]interface{}{
				"error": err.Error(),
			})
			metrics.PipelineRunsTotal.WithLabelValues("error").Inc()
			r.fail(StageGenerating, err)
			return
		}
		r.snapshot.Created = extractCreated(response)
		r.snapshot.Terminal = true
		r.complete(StageGenerating)
		metrics.PipelineStageDuration.WithLabelValues(StageGenerating).Observe(time.Since(stageStart).Seconds())
		metrics.PipelineRunsTotal.WithLabelValues("success").Inc()

		p.logger.Info("pipeline completed", map[string]interface{}{
			"durationMs":  time.Since(started).Milliseconds(),
			"totalTokens": usage.TotalTokens,
			"uuid":        r.snapshot.Created.UUID,
		})
	}()

	return out
}

func extractCreated(response interface{}) *Created {
	created := &Created{Response: response}
	if data, ok := proposales.UnwrapData(response).(map[string]interface{}); ok {
		if uuid, ok := data["uuid"].(string); ok {
			created.UUID = uuid
		}
		if url, ok := data["url"].(string); ok {
			created.URL = url
		}
	}
	return created
}
