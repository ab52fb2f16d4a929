package entity

import (
	"bytes"
	"encoding/json"
)

// Ref is a document reference the API sends either as a bare id or populated
// as the referenced document. Only the id is kept.
type Ref string

// UnmarshalJSON accepts "id", {"_id": "id"}, {"id": "id"} and null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = ""

		return nil
	}

	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = Ref(id)

		return nil
	}

	var doc struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return err
	}
	if doc.MongoID != "" {
		*r = Ref(doc.MongoID)
	} else {
		*r = Ref(doc.ID)
	}

	return nil
}

// String returns the referenced id.
func (r Ref) String() string {
	return string(r)
}
