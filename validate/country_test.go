package validate

import (
	"slices"
	"testing"
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"valid US", "US", "US", false},
		{"valid lowercase", "de", "DE", false},
		{"valid padded", " jp ", "JP", false},
		{"invalid three letters", "USA", "", true},
		{"invalid unsupported", "XX", "", true},
		{"invalid one letter", "U", "", true},
		{"invalid empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountryCode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CountryCode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CountryCode(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSupportedCountryCodes(t *testing.T) {
	codes := SupportedCountryCodes()
	if len(codes) < 40 {
		t.Errorf("SupportedCountryCodes() returned %d codes; want at least 40", len(codes))
	}
	if !slices.IsSorted(codes) {
		t.Error("SupportedCountryCodes() not sorted")
	}
	for _, code := range []string{"US", "DE", "JP", "BR", "ZA"} {
		if !slices.Contains(codes, code) {
			t.Errorf("SupportedCountryCodes() missing %q", code)
		}
	}
}
