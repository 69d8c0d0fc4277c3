package datamodels

import (
	"encoding/json"
	"testing"
)

type testRecord struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`

	validateErr error
}

func (r *testRecord) Validate() error {
	return r.validateErr
}

func TestMarshalCanonical(t *testing.T) {
	data, err := Marshal(&testRecord{ID: "abc", Name: "widget"})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if string(wire["id"]) != `"abc"` {
		t.Errorf("id = %s", wire["id"])
	}
	if _, ok := wire["_id"]; ok {
		t.Error("canonical payload carries _id")
	}
}

func TestMarshalAliased(t *testing.T) {
	data, err := Marshal(&testRecord{ID: "abc", Name: "widget"}, WithAliasedID(true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if string(wire["_id"]) != `"abc"` {
		t.Errorf("_id = %s", wire["_id"])
	}
	if _, ok := wire["id"]; ok {
		t.Error("aliased payload still carries id")
	}
}

func TestMarshalAliasedWithoutID(t *testing.T) {
	// Records that never carried an identity pass through unchanged.
	data, err := Marshal(&testRecord{Name: "widget"}, WithAliasedID(true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if _, ok := wire["_id"]; ok {
		t.Error("an _id field was invented for a record without identity")
	}
}

func TestUnmarshalAliasedRoundTrip(t *testing.T) {
	original := &testRecord{ID: "abc", Name: "widget"}
	data, err := Marshal(original, WithAliasedID(true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var decoded testRecord
	if err := Unmarshal(data, &decoded, WithAliasedID(true)); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if decoded.ID != "abc" || decoded.Name != "widget" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestUnmarshalRunsValidation(t *testing.T) {
	bad := NewRequiredError("test record", "name")
	data := []byte(`{"id":"abc","name":""}`)

	rec := &testRecord{validateErr: bad}
	if err := Unmarshal(data, rec); err != bad {
		t.Errorf("error = %v; want the record's validation error", err)
	}

	rec = &testRecord{validateErr: bad}
	if err := Unmarshal(data, rec, WithoutValidation()); err != nil {
		t.Errorf("WithoutValidation still validated: %v", err)
	}
}

func TestUnmarshalIDWithSpecialCharacters(t *testing.T) {
	original := &testRecord{ID: `we"ird\id`, Name: "widget"}
	data, err := Marshal(original, WithAliasedID(true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var decoded testRecord
	if err := Unmarshal(data, &decoded, WithAliasedID(true)); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if decoded.ID != original.ID {
		t.Errorf("ID = %q; want %q", decoded.ID, original.ID)
	}
}
