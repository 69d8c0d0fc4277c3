package schema

import (
	"encoding/json"
	"errors"
	"testing"

	dm "github.com/ashmatics/datamodels"
)

func validRegulator() Regulator {
	return Regulator{
		Code:        "FDA",
		Name:        "Food and Drug Administration",
		FullName:    "U.S. Food and Drug Administration",
		CountryCode: "us",
		Region:      "North America",
		Website:     "https://www.fda.gov",
		APIEndpoint: "https://api.fda.gov",
		IsActive:    true,
	}
}

func TestRegulatorValidate(t *testing.T) {
	r := validRegulator()
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if r.CountryCode != "US" {
		t.Errorf("CountryCode = %q; want normalized %q", r.CountryCode, "US")
	}
}

func TestRegulatorValidateMissingCode(t *testing.T) {
	r := validRegulator()
	r.Code = ""
	err := r.Validate()
	var ferr *dm.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Validate error = %T; want *FormatError", err)
	}
	if ferr.Field != "code" {
		t.Errorf("FormatError.Field = %q; want %q", ferr.Field, "code")
	}
}

func TestRegulatorValidateBadCountry(t *testing.T) {
	r := validRegulator()
	r.CountryCode = "USA"
	err := r.Validate()
	var ferr *dm.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Validate error = %T; want *FormatError", err)
	}
	if ferr.Field != "country_code" {
		t.Errorf("FormatError.Field = %q; want %q", ferr.Field, "country_code")
	}
}

func TestNewRegulatorResponse(t *testing.T) {
	resp, err := NewRegulatorResponse(validRegulator())
	if err != nil {
		t.Fatalf("NewRegulatorResponse error = %v", err)
	}
	if resp.ID == "" {
		t.Error("response has no generated identity")
	}
	if resp.CreatedAt.IsZero() || resp.UpdatedAt.IsZero() {
		t.Error("response timestamps not defaulted")
	}
	if err := resp.Validate(); err != nil {
		t.Errorf("response Validate error = %v", err)
	}

	sum := resp.Summarize()
	if sum.ID != resp.ID || sum.Code != "FDA" || sum.Name != resp.Name {
		t.Errorf("Summarize() = %+v; identity fields diverged", sum)
	}
}

func TestNewRegulatorResponseRejectsInvalid(t *testing.T) {
	r := validRegulator()
	r.Name = ""
	if _, err := NewRegulatorResponse(r); err == nil {
		t.Error("NewRegulatorResponse accepted a nameless regulator")
	}
}

func TestRegulatorUpdateValidatesPresentFields(t *testing.T) {
	var u RegulatorUpdate
	if err := json.Unmarshal([]byte(`{"country_code":"de"}`), &u); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if got, _ := u.CountryCode.Get(); got != "DE" {
		t.Errorf("CountryCode = %q; want normalized %q", got, "DE")
	}

	var bad RegulatorUpdate
	if err := json.Unmarshal([]byte(`{"country_code":"XX"}`), &bad); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := bad.Validate(); err == nil {
		t.Error("Validate accepted an unsupported country code in a patch")
	}
}

func TestRegulatorUpdateAbsentFieldsStayAbsent(t *testing.T) {
	var u RegulatorUpdate
	if err := json.Unmarshal([]byte(`{"is_active":false}`), &u); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"is_active":false}` {
		t.Errorf("re-serialized patch = %s; absent fields must stay absent", data)
	}
}
