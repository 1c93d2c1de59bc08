package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/neuroscan/internal/model"
)

// Step is one stage of a build.
type Step interface {
	// Do runs the stage against the report built so far. An error means the
	// build could not proceed (I/O, cancellation). Problems with the generated
	// page are recorded as report issues instead.
	Do(ctx context.Context, report *model.BuildReport) error

	// Name identifies the step in logs and in BuildReport.PerformedSteps.
	Name() string
}

// Pipeline runs steps in the order they were added.
//
// Steps share one BuildReport and communicate only through it: the asset step
// records the fingerprinted paths that the render step links, and the verify
// step reads back the page the render step wrote. Order therefore matters and
// is fixed by the caller; the pipeline never reorders or parallelises steps.
// Concurrency lives inside a step (see FileWriter).
//
// By default the first failing step stops the build. WithContinueOnError
// keeps going, which is useful when later steps still produce something
// worth inspecting, but a cancelled context always stops the build.
type Pipeline struct {
	steps           []Step
	logger          *slog.Logger
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithContinueOnError keeps running later steps after a failure.
// The report keeps the first error either way.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New returns an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddStep appends a step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name())
	}
	return names
}

// Execute runs every step and stores the total build time in the report.
//
// ctx is checked between steps. A cancelled build marks the report as
// cancelled and returns ctx.Err(). Only steps that succeed are appended to
// PerformedSteps.
func (p *Pipeline) Execute(ctx context.Context, report *model.BuildReport) error {
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("build cancelled", "next", step.Name(), "reason", err)
			report.Cancelled = true
			p.recordError(report, err)
			return err
		}

		if err := p.run(ctx, step, report); err != nil {
			p.recordError(report, err)
			if ctx.Err() != nil {
				report.Cancelled = true
				return err
			}
			if !p.continueOnError {
				return err
			}
			continue
		}
		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}
	return nil
}

// run executes one step and logs its outcome with the elapsed time.
func (p *Pipeline) run(ctx context.Context, step Step, report *model.BuildReport) error {
	logger := p.logger.With(slog.String("step", step.Name()))
	logger.Info("executing step", "output", report.OutputDir)

	began := time.Now()
	err := step.Do(ctx, report)
	elapsed := slog.Duration("elapsed", time.Since(began))
	if err != nil {
		logger.Error("step failed", elapsed, "error", err)
		return err
	}
	logger.Debug("step completed", elapsed)
	return nil
}

// recordError keeps the first failure of the build.
func (p *Pipeline) recordError(report *model.BuildReport, err error) {
	if report.Error == nil {
		report.SetError(err)
	}
}
