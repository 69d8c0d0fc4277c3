package optional

import (
	"encoding/json"
	"testing"
)

type patch struct {
	Name  Value[string] `json:"name,omitzero"`
	Count Value[int]    `json:"count,omitzero"`
}

func TestValueStates(t *testing.T) {
	var absent Value[string]
	if absent.Present() || absent.IsNull() {
		t.Error("zero Value should be absent")
	}
	if !absent.IsZero() {
		t.Error("absent Value should report IsZero")
	}

	null := Null[string]()
	if !null.Present() || !null.IsNull() {
		t.Error("Null() should be present and null")
	}
	if _, ok := null.Get(); ok {
		t.Error("Get on null Value returned ok")
	}

	set := Of("hello")
	if !set.Present() || set.IsNull() {
		t.Error("Of() should be present and non-null")
	}
	got, ok := set.Get()
	if !ok || got != "hello" {
		t.Errorf("Get = %q, %v; want %q, true", got, ok, "hello")
	}
}

func TestTriStateDecoding(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{"absent", `{}`, false, false, ""},
		{"explicit null", `{"name":null}`, true, true, ""},
		{"set", `{"name":"Acme"}`, true, false, "Acme"},
		{"set empty string", `{"name":""}`, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			if err := json.Unmarshal([]byte(tt.payload), &p); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if p.Name.Present() != tt.wantPresent {
				t.Errorf("Present = %v; want %v", p.Name.Present(), tt.wantPresent)
			}
			if p.Name.IsNull() != tt.wantNull {
				t.Errorf("IsNull = %v; want %v", p.Name.IsNull(), tt.wantNull)
			}
			if got, _ := p.Name.Get(); got != tt.wantValue {
				t.Errorf("Get = %q; want %q", got, tt.wantValue)
			}
		})
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"count":3}`), &p); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"count":3}` {
		t.Errorf("re-serialized payload = %s; absent field must not be introduced", data)
	}
}

func TestNullSurvivesRoundTrip(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"name":null}`), &p); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"name":null}` {
		t.Errorf("re-serialized payload = %s; want explicit null preserved", data)
	}
}
