package shipping

import (
	"go.uber.org/zap"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/drawer"
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/measure"
)

// Option configures a Pipeline.
type Option func(p *Pipeline)

// Logger sets the structured logger. Defaults to a no-op logger.
func Logger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// Concurrency caps the number of concurrent collaborator calls within one
// step. Zero or negative means no limit.
func Concurrency(limit int) Option {
	return func(p *Pipeline) {
		if limit <= 0 {
			limit = -1
		}
		p.concurrency = limit
	}
}

// Measure records per-step durations and entity counts into msr.
func Measure(msr measure.Measure) Option {
	return func(p *Pipeline) {
		p.measure = msr
	}
}

// Drawer renders the step graph of the latest run after every Execute.
func Drawer(d drawer.Drawer) Option {
	return func(p *Pipeline) {
		p.drawer = d
	}
}
