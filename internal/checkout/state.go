package checkout

// State tracks a checkout session from page load to completion.
type State string

const (
	StateLoading    State = "LOADING"
	StateReady      State = "READY"
	StateSubmitting State = "SUBMITTING"
	StateSucceeded  State = "SUCCEEDED"
	StateFailed     State = "FAILED"
)

// CanTransition reports whether moving from s to next is allowed. Failed is
// retryable (back to Submitting); Succeeded is terminal. A load that finds
// no draft never reaches Ready.
func (s State) CanTransition(next State) bool {
	switch s {
	case StateLoading:
		return next == StateReady
	case StateReady:
		return next == StateSubmitting
	case StateSubmitting:
		return next == StateSucceeded || next == StateFailed
	case StateFailed:
		return next == StateSubmitting
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == StateSucceeded
}

func (s State) String() string {
	return string(s)
}
