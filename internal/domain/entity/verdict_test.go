package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func merchantSession(storeID string) *Session {
	s := &Session{ID: "u1", Email: "m@example.com", Role: RoleMerchant}
	if storeID != "" {
		s.MerchantInfo = &MerchantInfo{StoreID: storeID}
	}

	return s
}

func TestEvaluateStoreAccess_NonMerchantAlwaysAllowed(t *testing.T) {
	stores := []*Store{
		nil,
		{ID: "S1", Status: StoreStatusActive},
		{ID: "S1", Status: StoreStatusSuspended},
	}

	for _, role := range []Role{RoleCustomer, RoleAdmin} {
		for _, store := range stores {
			v := EvaluateStoreAccess(&Session{ID: "u", Role: role}, store, OutcomeUnresolved)
			assert.Equal(t, VerdictAllowed, v.Kind, "role %s", role)
			assert.True(t, v.Permits())
		}
	}

	assert.Equal(t, VerdictAllowed, EvaluateStoreAccess(nil, nil, OutcomeUnresolved).Kind)
}

func TestEvaluateStoreAccess_ActiveStoreAllowed(t *testing.T) {
	v := EvaluateStoreAccess(merchantSession("S1"), &Store{ID: "S1", Status: StoreStatusActive}, OutcomeResolved)

	assert.Equal(t, VerdictAllowed, v.Kind)
	assert.True(t, v.Permits())
}

func TestEvaluateStoreAccess_NonActiveStoreBlocked(t *testing.T) {
	for _, status := range []StoreStatus{StoreStatusSuspended, StoreStatusInactive, StoreStatusClosed, StoreStatusPending} {
		t.Run(string(status), func(t *testing.T) {
			v := EvaluateStoreAccess(merchantSession("S1"), &Store{ID: "S1", Status: status}, OutcomeResolved)

			assert.Equal(t, VerdictBlocked, v.Kind)
			assert.Equal(t, "store_"+string(status), v.Reason)
			assert.False(t, v.Permits())
		})
	}
}

func TestEvaluateStoreAccess_UnresolvedWithPointerIsOptimistic(t *testing.T) {
	for _, outcome := range []ResolutionOutcome{OutcomeUnresolved, OutcomeResolving, OutcomePending, OutcomeTransportError} {
		t.Run(string(outcome), func(t *testing.T) {
			v := EvaluateStoreAccess(merchantSession("S1"), nil, outcome)

			assert.Equal(t, VerdictPending, v.Kind)
			assert.True(t, v.Permits())
		})
	}
}

func TestEvaluateStoreAccess_NotFoundWithPointerBlocked(t *testing.T) {
	v := EvaluateStoreAccess(merchantSession("S1"), nil, OutcomeNotFound)

	assert.Equal(t, VerdictBlocked, v.Kind)
	assert.Equal(t, ReasonStoreNotFound, v.Reason)
}

func TestEvaluateStoreAccess_NoPointerBlocked(t *testing.T) {
	for _, outcome := range []ResolutionOutcome{OutcomeUnresolved, OutcomeResolving, OutcomeNotFound, OutcomeTransportError} {
		v := EvaluateStoreAccess(merchantSession(""), nil, outcome)

		assert.Equal(t, VerdictBlocked, v.Kind)
		assert.Equal(t, ReasonNoStore, v.Reason)
		assert.False(t, v.Permits())
	}

	blank := merchantSession("")
	blank.MerchantInfo = &MerchantInfo{StoreID: "  "}
	assert.Equal(t, VerdictBlocked, EvaluateStoreAccess(blank, nil, OutcomeUnresolved).Kind)
}
