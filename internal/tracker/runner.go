// Package tracker runs batches of sensor packages through the workout
// calculators and writes one summary line per package.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"example.com/fittracker/internal/workout"
)

// Package is one batch of sensor readings tagged with its training type code.
type Package struct {
	Code   string
	Params []float64
}

// DefaultPackages returns the readings processed by the tracker binary.
func DefaultPackages() []Package {
	return []Package{
		{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Params: []float64{15000, 1, 75}},
		{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
	}
}

// Option configures optional behaviour for the Runner.
type Option func(*Runner)

// WithLogger overrides the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithFormat selects the output format of summary lines.
func WithFormat(format string) Option {
	return func(r *Runner) {
		r.format = format
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.runID = id
	}
}

// Runner dispatches packages, computes summaries and writes them to out.
type Runner struct {
	out    io.Writer
	format string
	runID  string
	logger *log.Logger
}

// NewRunner constructs a Runner writing summary lines to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:    out,
		format: workout.FormatText,
		runID:  uuid.NewString(),
		logger: log.New(log.Writer(), "[tracker] ", log.LstdFlags|log.Lshortfile),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID identifies the runner's batch in logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Run processes packages in order. The first failing package aborts the run;
// packages after it are not processed.
func (r *Runner) Run(ctx context.Context, packages []Package) error {
	r.logger.Printf("run %s started (packages=%d, format=%s)", r.runID, len(packages), r.format)
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.process(pkg); err != nil {
			recordFailure(err)
			r.logger.Printf("run %s aborted at package %d (code=%s): %v", r.runID, i, pkg.Code, err)
			return fmt.Errorf("package %d (%s): %w", i, pkg.Code, err)
		}
	}
	r.logger.Printf("run %s completed", r.runID)
	return nil
}

func (r *Runner) process(pkg Package) error {
	training, err := workout.ReadPackage(pkg.Code, pkg.Params)
	if err != nil {
		return err
	}
	info, err := workout.ShowTrainingInfo(training)
	if err != nil {
		return err
	}
	line, err := workout.Render(info, r.format)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	recordProcessed(info)
	return nil
}
