package domain

// State is a step of the run state machine.
type State string

const (
	StateIdle             State = "idle"
	StateDiscovering      State = "discovering"
	StateFetchingMetadata State = "fetching_metadata"
	StatePlanningBatches  State = "planning_batches"
	StateProcessingBatch  State = "processing_batch"
	StateFinished         State = "finished"
	StateCancelled        State = "cancelled"
	StateFailed           State = "failed"
)

// validTransitions defines allowed state transitions.
// Key is the "from" state, value is list of valid "to" states.
var validTransitions = map[State][]State{
	StateIdle:             {StateDiscovering, StateFetchingMetadata, StateCancelled, StateFailed},
	StateDiscovering:      {StateFetchingMetadata, StateFinished, StateCancelled, StateFailed},
	StateFetchingMetadata: {StatePlanningBatches, StateFinished, StateCancelled, StateFailed},
	StatePlanningBatches:  {StateProcessingBatch, StateFinished, StateCancelled, StateFailed},
	StateProcessingBatch:  {StateProcessingBatch, StateFinished, StateCancelled, StateFailed},
	StateFinished:         {},
	StateCancelled:        {},
	StateFailed:           {},
}

func (s State) String() string {
	return string(s)
}

// CanTransitionTo returns true if transitioning from s to target is valid.
func (s State) CanTransitionTo(target State) bool {
	for _, v := range validTransitions[s] {
		if v == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the run has ended.
func (s State) IsTerminal() bool {
	return s == StateFinished || s == StateCancelled || s == StateFailed
}
