package measure

import "time"

// Measure collects metrics for every step of a pipeline.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric collects the timings and entity counts of one step.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddCount(created int64)
	AVGDuration() time.Duration
	TotalDuration() time.Duration
	Count() int64
}
