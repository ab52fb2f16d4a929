package entity

// ResolutionOutcome is the typed result of resolving a merchant's store.
type ResolutionOutcome string

const (
	// OutcomeUnresolved means no resolution has run for the current session yet.
	OutcomeUnresolved ResolutionOutcome = "unresolved"
	// OutcomeResolving means a resolution is in flight.
	OutcomeResolving ResolutionOutcome = "resolving"
	// OutcomeResolved means a strategy returned the store record.
	OutcomeResolved ResolutionOutcome = "resolved"
	// OutcomePending means the time budget ran out before any strategy decided.
	OutcomePending ResolutionOutcome = "pending"
	// OutcomeNotFound means every strategy answered and none had a store.
	OutcomeNotFound ResolutionOutcome = "not_found"
	// OutcomeTransportError means the chain ended on a network or server failure.
	OutcomeTransportError ResolutionOutcome = "transport_error"
	// OutcomeUnauthorized means the API rejected the session itself (401).
	OutcomeUnauthorized ResolutionOutcome = "unauthorized"
	// OutcomeNotApplicable means the session is not a merchant's.
	OutcomeNotApplicable ResolutionOutcome = "not_applicable"
)

// Terminal reports whether the outcome ends a resolution.
func (o ResolutionOutcome) Terminal() bool {
	return o != OutcomeUnresolved && o != OutcomeResolving
}

// Resolution describes how the current store record was obtained, or why it was not.
type Resolution struct {
	Outcome  ResolutionOutcome `json:"outcome"`
	Store    *Store            `json:"store,omitempty"`
	Strategy string            `json:"strategy,omitempty"`
	Attempts int               `json:"attempts"`
	Err      error             `json:"-"`
}

// FailureMessage returns the failure text, "" when the resolution succeeded.
func (r Resolution) FailureMessage() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.Error()
}
