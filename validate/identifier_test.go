package validate

import (
	"errors"
	"testing"

	dm "github.com/ashmatics/datamodels"
)

func TestKNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"valid traditional", "K240001", "K240001", false},
		{"valid lowercase", "k240001", "K240001", false},
		{"valid CBER", "BK200001", "BK200001", false},
		{"valid de novo", "DEN180067", "DEN180067", false},
		{"valid mixed case", "den180067", "DEN180067", false},
		{"valid padded", " K240001 ", "K240001", false},
		{"invalid prefix", "X240001", "", true},
		{"invalid five digits", "K12345", "", true},
		{"invalid seven digits", "K1234567", "", true},
		{"invalid letters in suffix", "K24000A", "", true},
		{"invalid arbitrary", "INVALID", "", true},
		{"invalid empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KNumber(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("KNumber(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("KNumber(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestKNumberErrorDetails(t *testing.T) {
	_, err := KNumber("INVALID")
	var ferr *dm.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("KNumber error = %T; want *datamodels.FormatError", err)
	}
	if ferr.Value != "INVALID" {
		t.Errorf("FormatError.Value = %q; want %q", ferr.Value, "INVALID")
	}
	if ferr.Format == "" {
		t.Error("FormatError.Format is empty; want expected-pattern description")
	}
}

func TestKNumberIdempotent(t *testing.T) {
	for _, value := range []string{"k240001", "BK200001", "den180067"} {
		first, err := KNumber(value)
		if err != nil {
			t.Fatalf("KNumber(%q) error = %v", value, err)
		}
		second, err := KNumber(first)
		if err != nil {
			t.Fatalf("KNumber(%q) error = %v", first, err)
		}
		if first != second {
			t.Errorf("KNumber not idempotent: %q -> %q -> %q", value, first, second)
		}
	}
}

func TestPMANumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"valid", "P200001", "P200001", false},
		{"valid lowercase", "p200001", "P200001", false},
		{"invalid prefix", "K200001", "", true},
		{"invalid five digits", "P12345", "", true},
		{"invalid seven digits", "P1234567", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PMANumber(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PMANumber(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PMANumber(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDeNovoNumber(t *testing.T) {
	got, err := DeNovoNumber("den180067")
	if err != nil {
		t.Fatalf("DeNovoNumber error = %v", err)
	}
	if got != "DEN180067" {
		t.Errorf("DeNovoNumber = %q; want %q", got, "DEN180067")
	}

	if _, err := DeNovoNumber("K240001"); err == nil {
		t.Error("DeNovoNumber accepted a K-prefixed number")
	}
}

func TestProductCode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"valid", "MYN", "MYN", false},
		{"valid lowercase", "myn", "MYN", false},
		{"invalid four letters", "MYNA", "", true},
		{"invalid two letters", "MY", "", true},
		{"invalid digits", "M1N", "", true},
		{"invalid empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProductCode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProductCode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ProductCode(%q) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestProductCodeCaseInsensitive(t *testing.T) {
	lower, err := ProductCode("myn")
	if err != nil {
		t.Fatalf("ProductCode(myn) error = %v", err)
	}
	upper, err := ProductCode("MYN")
	if err != nil {
		t.Fatalf("ProductCode(MYN) error = %v", err)
	}
	if lower != upper || lower != "MYN" {
		t.Errorf("case-insensitive acceptance broken: %q vs %q", lower, upper)
	}
}
