package drawer

import "time"

// Drawer renders the step graph of a pipeline run.
type Drawer interface {
	// AddStep adds a step to the graph.
	AddStep(stepName string) error
	// AddLink adds an execution-order link between two steps.
	AddLink(parentStepName, childStepName string) error
	// SetStatus annotates a step with its outcome.
	SetStatus(stepName, status string) error
	// SetDuration annotates a step with how long it ran.
	SetDuration(stepName string, elapsed time.Duration) error
	// Draw writes the annotated graph to its destination.
	Draw() error
}

// Step outcomes understood by the drawers.
const (
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusSkipped    = "skipped"
	StatusRolledBack = "rolled back"
)
