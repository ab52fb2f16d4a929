package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Ref
	}{
		{name: "bare id", data: `{"owner":"u1"}`, want: "u1"},
		{name: "populated", data: `{"owner":{"_id":"u2","email":"m@example.com"}}`, want: "u2"},
		{name: "plain id key", data: `{"owner":{"id":"u3"}}`, want: "u3"},
		{name: "null", data: `{"owner":null}`, want: ""},
		{name: "absent", data: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store Store
			require.NoError(t, json.Unmarshal([]byte(tt.data), &store))
			assert.Equal(t, tt.want, store.OwnerID)
		})
	}
}

func TestRef_MarshalsAsID(t *testing.T) {
	b, err := json.Marshal(Product{Name: "Shoe", CategoryID: "c1"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"category":"c1"`)
	assert.NotContains(t, string(b), `"store"`)
}
