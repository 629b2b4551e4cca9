// Package convert drives a batch: classify every discovered image, run the
// encoder for it and delete the source when the encoder succeeds.
//
// A source file is deleted only after its encoder invocation exited with
// status 0. Failures are recorded and never abort the batch.
package convert

import (
	"context"
	"runtime"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/arthur-debert/ddsbatch/pkg/walker"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Options configures an Orchestrator
type Options struct {
	// Fs is used to delete converted sources
	Fs     afero.Fs
	Rules  *rules.RuleSet
	Runner encoder.Runner
	Scales encoder.Scales
	// Workers bounds concurrent encoder invocations; zero means NumCPU
	Workers int
	DryRun  bool
	// Observer receives every result; calls are serialised
	Observer func(Result)
}

// Orchestrator runs conversion batches
type Orchestrator struct {
	fs       afero.Fs
	rules    *rules.RuleSet
	runner   encoder.Runner
	scales   encoder.Scales
	workers  int
	dryRun   bool
	observer func(Result)
	logger   zerolog.Logger
}

// New creates an orchestrator
func New(opts Options) *Orchestrator {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Orchestrator{
		fs:       fs,
		rules:    opts.Rules,
		runner:   opts.Runner,
		scales:   opts.Scales,
		workers:  workers,
		dryRun:   opts.DryRun,
		observer: opts.Observer,
		logger:   logging.GetLogger("convert"),
	}
}

// Workers returns the effective worker count
func (o *Orchestrator) Workers() int {
	return o.workers
}

// RunBatch converts every image the walker yields. The returned error is
// non-nil only when the root cannot be enumerated or ctx is cancelled; in
// the latter case the summary covers the images handled so far.
//
// Once ctx is cancelled no new image is dispatched. Invocations already
// running finish under the runner's own timeout.
func (o *Orchestrator) RunBatch(ctx context.Context, w *walker.Walker) (*Summary, error) {
	if o.rules == nil {
		return nil, errors.New(errors.ErrInternal, "orchestrator has no rule set")
	}
	if o.runner == nil && !o.dryRun {
		return nil, errors.New(errors.ErrInternal, "orchestrator has no encoder runner")
	}

	done := logging.LogOperationStart(o.logger, "batch")
	defer done()

	start := time.Now()
	summary := &Summary{Root: w.Root(), DryRun: o.dryRun}

	o.logger.Info().
		Str("root", w.Root()).
		Str("rules", o.rules.Name).
		Int("workers", o.workers).
		Bool("dryRun", o.dryRun).
		Msg("Starting batch")

	g := new(errgroup.Group)
	g.SetLimit(o.workers)

	walkErr := w.Walk(ctx, func(c walker.Candidate) error {
		summary.discover()

		class := o.rules.Classify(c.Path)
		if class.Excluded {
			o.logger.Debug().Str("path", string(c.Path)).Msg("Excluded")
			summary.record(Result{
				Path:           c.Path,
				Abs:            c.Abs,
				Outcome:        Excluded,
				Classification: class,
			}, o.observer)
			return nil
		}

		// Blocks while all workers are busy
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			summary.record(o.convert(ctx, c, class), o.observer)
			return nil
		})
		return nil
	})
	_ = g.Wait()

	summary.finish(time.Since(start))

	if err := ctx.Err(); err != nil {
		summary.Cancelled = true
		o.logger.Warn().Int("converted", summary.Converted).Msg("Batch cancelled")
		return summary, err
	}
	if walkErr != nil {
		return summary, walkErr
	}

	o.logger.Info().
		Int("discovered", summary.Discovered).
		Int("excluded", summary.Excluded).
		Int("converted", summary.Converted).
		Int("failed", summary.Failed).
		Int("planned", summary.Planned).
		Dur("duration", summary.Duration).
		Msg("Batch finished")
	return summary, nil
}

// convert handles one non-excluded image
func (o *Orchestrator) convert(ctx context.Context, c walker.Candidate, class rules.Classification) Result {
	inv := encoder.Build(class, c.Abs, o.scales)
	res := Result{
		Path:           c.Path,
		Abs:            c.Abs,
		Classification: class,
		Invocation:     inv,
	}
	logger := o.logger.With().Str("path", string(c.Path)).Logger()

	if o.dryRun {
		logger.Debug().Str("invocation", inv.String()).Msg("Planned")
		res.Outcome = Planned
		return res
	}

	logger.Debug().Strs("args", inv.Args()).Msg("Encoding")
	if err := o.runner.Run(context.WithoutCancel(ctx), inv); err != nil {
		logger.Warn().Err(err).Msg("Encoder failed, keeping source")
		res.Outcome = Failed
		res.Err = err
		return res
	}

	if err := o.fs.Remove(c.Abs); err != nil {
		logger.Error().Err(err).Msg("Cannot delete converted source")
		res.Outcome = Failed
		res.Err = errors.Wrapf(err, errors.ErrFileDelete, "encoded but cannot delete %s", c.Abs).
			WithDetail("path", c.Abs)
		return res
	}

	logger.Info().Msg("Converted")
	res.Outcome = Converted
	return res
}
