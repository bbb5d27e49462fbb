package shipping

// State is the current position of a pipeline run.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateCreatingOrder
	StatePurchasingLabels
	StateCreatingPackages
	StateCreatingItems
	StateLinkingItems
	StateAttachingImages
	StateRecordingActivity
	StateSucceeded
	StateRollingBack
	StateFailed
)

// forwardStates is the success path, in execution order.
var forwardStates = []State{
	StateValidating,
	StateCreatingOrder,
	StatePurchasingLabels,
	StateCreatingPackages,
	StateCreatingItems,
	StateLinkingItems,
	StateAttachingImages,
	StateRecordingActivity,
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validate input"
	case StateCreatingOrder:
		return "create shipping order"
	case StatePurchasingLabels:
		return "purchase labels"
	case StateCreatingPackages:
		return "create package specifications"
	case StateCreatingItems:
		return "create line items"
	case StateLinkingItems:
		return "link items to packages"
	case StateAttachingImages:
		return "attach images"
	case StateRecordingActivity:
		return "record activity"
	case StateSucceeded:
		return "succeeded"
	case StateRollingBack:
		return "rolling back"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}
