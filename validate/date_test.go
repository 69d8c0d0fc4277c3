package validate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"iso form", "2024-08-15", "2024-08-15", false},
		{"us form", "08/15/2024", "2024-08-15", false},
		{"us form january", "01/02/2024", "2024-01-02", false},
		{"invalid layout", "15-08-2024", "", true},
		{"invalid month", "2024-13-01", "", true},
		{"impossible day", "2024-02-30", "", true},
		{"invalid text", "yesterday", "", true},
		{"invalid empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseDateIdempotent(t *testing.T) {
	first, err := ParseDate("08/15/2024")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}
	second, err := ParseDate(first.String())
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", first, err)
	}
	if !first.Equal(second) {
		t.Errorf("ParseDate not idempotent: %v != %v", first, second)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"2024-03-15"` {
		t.Errorf("Marshal = %s; want %q", data, `"2024-03-15"`)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed date: %v != %v", back, d)
	}
}

func TestDateUnmarshalUSForm(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"08/15/2024"`), &d); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if d.String() != "2024-08-15" {
		t.Errorf("Unmarshal US form = %q; want %q", d, "2024-08-15")
	}
}

func TestDateUnmarshalRejectsBadLayout(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"Aug 15 2024"`), &d); err == nil {
		t.Error("Unmarshal accepted a non-canonical layout")
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 8, 15, 13, 45, 0, 0, time.UTC)
	d := DateOf(ts)
	if d.String() != "2024-08-15" {
		t.Errorf("DateOf = %q; want %q", d, "2024-08-15")
	}
}
