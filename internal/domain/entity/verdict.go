package entity

// VerdictKind is the store access gate decision.
type VerdictKind string

const (
	VerdictAllowed VerdictKind = "allowed"
	VerdictBlocked VerdictKind = "blocked"
	VerdictPending VerdictKind = "pending"
)

// Reasons attached to a blocked or pending verdict.
const (
	ReasonNoStore       = "no_store"
	ReasonStoreNotFound = "store_not_found"
	ReasonResolving     = "store_resolving"
)

// Verdict answers whether the session may render store-gated pages.
type Verdict struct {
	Kind   VerdictKind `json:"kind"`
	Reason string      `json:"reason,omitempty"`
}

// Permits collapses the verdict to the two-valued gate: pending is let through
// so views render a loading state instead of a lockout while resolution runs.
func (v Verdict) Permits() bool {
	return v.Kind == VerdictAllowed || v.Kind == VerdictPending
}

func allowed() Verdict {
	return Verdict{Kind: VerdictAllowed}
}

func blocked(reason string) Verdict {
	return Verdict{Kind: VerdictBlocked, Reason: reason}
}

// EvaluateStoreAccess derives the verdict from the session, the resolved store
// and the state of the last resolution. It performs no I/O.
func EvaluateStoreAccess(session *Session, store *Store, outcome ResolutionOutcome) Verdict {
	if !session.IsMerchant() {
		return allowed()
	}

	if store != nil {
		if store.IsActive() {
			return allowed()
		}

		return blocked("store_" + string(store.Status))
	}

	if session.StorePointer() == "" {
		return blocked(ReasonNoStore)
	}

	if outcome == OutcomeNotFound {
		return blocked(ReasonStoreNotFound)
	}

	return Verdict{Kind: VerdictPending, Reason: ReasonResolving}
}
