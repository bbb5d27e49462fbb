package shipping

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/drawer"
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/measure"
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// Pipeline creates shipping orders through the configured collaborators. It
// holds configuration only; every Execute call owns its own run state, so a
// Pipeline is safe to reuse across invocations.
type Pipeline struct {
	collab      Collaborators
	log         *zap.Logger
	concurrency int
	measure     measure.Measure
	drawer      drawer.Drawer
}

// New creates a pipeline. All collaborators must be set.
func New(collab Collaborators, opts ...Option) (*Pipeline, error) {
	err := collab.validate()
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		collab:      collab,
		log:         zap.NewNop(),
		concurrency: -1,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.drawer != nil {
		err = p.prepareDrawer()
		if err != nil {
			return nil, errors.Wrap(err, "unable to prepare drawer")
		}
	}

	return p, nil
}

func (p *Pipeline) prepareDrawer() error {
	for i, state := range forwardStates {
		err := p.drawer.AddStep(state.String())
		if err != nil {
			return err
		}

		if i == 0 {
			continue
		}

		err = p.drawer.AddLink(forwardStates[i-1].String(), state.String())
		if err != nil {
			return err
		}
	}

	return nil
}

// Execute runs the pipeline for one input and returns the created shipping
// order.
//
// On critical failure it deletes everything created so far and returns a
// *PipelineError wrapping the original step error; CleanupComplete on that
// error reports whether the rollback fully succeeded. Failures while
// attaching images or recording activity are logged and never fail the run.
func (p *Pipeline) Execute(ctx context.Context, input model.Input) (*model.Order, error) {
	r := &run{p: p, input: input, state: StateIdle}

	order, err := r.forward(ctx)

	if p.drawer != nil {
		drawErr := p.drawer.Draw()
		if drawErr != nil {
			p.log.Warn("unable to draw pipeline run", zap.Error(drawErr))
		}
	}

	if err != nil {
		return nil, err
	}

	return order, nil
}

// run is the state of a single Execute call: the state machine position, the
// created-entity accumulator and the compensation stack. It is never shared
// between invocations.
type run struct {
	p     *Pipeline
	input model.Input

	state    State
	entities model.CreatedEntities
	comp     compensation

	// labels maps Package.LocalID to the bought label, filled by the
	// label purchase step.
	labels map[int]model.Label
}

func (r *run) forward(ctx context.Context) (*model.Order, error) {
	steps := []struct {
		state State
		fn    func(context.Context) error
	}{
		{StateValidating, func(context.Context) error { return Validate(r.input) }},
		{StateCreatingOrder, r.createOrder},
		{StatePurchasingLabels, r.purchaseLabels},
		{StateCreatingPackages, r.createPackageSpecs},
		{StateCreatingItems, r.createItems},
		{StateLinkingItems, r.linkItems},
	}

	for _, step := range steps {
		err := r.critical(ctx, step.state, step.fn)
		if err != nil {
			return nil, r.fail(ctx, step.state, err)
		}
	}

	r.bestEffort(ctx, StateAttachingImages, r.attachImages)
	r.bestEffort(ctx, StateRecordingActivity, r.recordActivity)

	r.state = StateSucceeded
	r.p.log.Info("shipping order pipeline succeeded",
		zap.String("order", r.entities.Order.Number),
		zap.Int("items", len(r.entities.Items)),
		zap.Int("packages", len(r.entities.PackageSpecs)),
		zap.Int("links", len(r.entities.Links)),
		zap.Int("images", len(r.entities.Images)))

	return r.entities.Order, nil
}

// fail rolls back whatever the run created and wraps the step error. A
// failure before anything was created (validation, order creation) skips
// rollback entirely.
func (r *run) fail(ctx context.Context, state State, stepErr error) error {
	r.p.log.Error("critical pipeline step failed",
		zap.Stringer("step", state),
		zap.Error(stepErr))

	var rollbackErrs []*RollbackError

	if !r.comp.empty() {
		r.state = StateRollingBack
		rollbackErrs = r.comp.unwind(ctx, r.p.log)
	}

	r.state = StateFailed

	return &PipelineError{State: state, Err: stepErr, Rollback: rollbackErrs}
}

// critical runs one step whose failure aborts the pipeline and triggers
// rollback.
func (r *run) critical(ctx context.Context, state State, fn func(context.Context) error) error {
	r.state = state
	start := time.Now()

	err := fn(ctx)

	r.finishStep(state, start, err)

	return err
}

// bestEffort runs one step whose failure is logged and swallowed. By
// construction it cannot abort the run.
func (r *run) bestEffort(ctx context.Context, state State, fn func(context.Context) error) {
	r.state = state
	start := time.Now()

	err := fn(ctx)
	if err != nil {
		r.p.log.Warn("non-critical pipeline step failed",
			zap.Stringer("step", state),
			zap.Error(err))
	}

	r.finishStep(state, start, err)
}

func (r *run) finishStep(state State, start time.Time, err error) {
	elapsed := time.Since(start)

	if r.p.measure != nil {
		r.p.measure.AddMetric(state.String()).AddDuration(elapsed)
	}

	if r.p.drawer != nil {
		status := drawer.StatusSucceeded
		if err != nil {
			status = drawer.StatusFailed
		}

		_ = r.p.drawer.SetStatus(state.String(), status)
		_ = r.p.drawer.SetDuration(state.String(), elapsed)
	}
}

func (r *run) countEntities(state State, created int64) {
	if r.p.measure == nil {
		return
	}

	r.p.measure.AddMetric(state.String()).AddCount(created)
}
