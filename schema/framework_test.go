package schema

import (
	"encoding/json"
	"testing"
)

func valid510KFramework() Framework {
	return Framework{
		FrameworkCode:           "510K",
		FrameworkName:           "Premarket Notification 510(k)",
		AuthorizationType:       AuthorizationTypeClearance,
		RequiresPremarketReview: true,
		TypicalReviewTimeDays:   90,
		IsActive:                true,
	}
}

func TestFrameworkValidate(t *testing.T) {
	f := valid510KFramework()
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}

	f.AuthorizationType = "blessing"
	if err := f.Validate(); err == nil {
		t.Error("Validate accepted an unknown authorization type")
	}

	f = valid510KFramework()
	f.FrameworkCode = ""
	if err := f.Validate(); err == nil {
		t.Error("Validate accepted a framework without a code")
	}
}

func TestNewFrameworkResponse(t *testing.T) {
	reg, err := NewRegulatorResponse(validRegulator())
	if err != nil {
		t.Fatalf("NewRegulatorResponse error = %v", err)
	}

	resp, err := NewFrameworkResponse(valid510KFramework(), reg.ID)
	if err != nil {
		t.Fatalf("NewFrameworkResponse error = %v", err)
	}
	if resp.RegulatorID != reg.ID {
		t.Errorf("RegulatorID = %q; want %q", resp.RegulatorID, reg.ID)
	}
	if err := resp.Validate(); err != nil {
		t.Errorf("response Validate error = %v", err)
	}

	regSum := reg.Summarize()
	resp.Regulator = &regSum
	sum := resp.Summarize()
	if sum.RegulatorCode != "FDA" {
		t.Errorf("Summarize().RegulatorCode = %q; want %q", sum.RegulatorCode, "FDA")
	}
	if sum.AuthorizationType != AuthorizationTypeClearance {
		t.Errorf("Summarize().AuthorizationType = %q; want %q", sum.AuthorizationType, AuthorizationTypeClearance)
	}
}

func TestFrameworkEnumSerializesAsValue(t *testing.T) {
	f := valid510KFramework()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if decoded["authorization_type"] != "clearance" {
		t.Errorf("authorization_type on the wire = %v; want underlying value %q",
			decoded["authorization_type"], "clearance")
	}
}

func TestFrameworkUpdateValidatesPresentFields(t *testing.T) {
	var u FrameworkUpdate
	if err := json.Unmarshal([]byte(`{"authorization_type":"approval"}`), &u); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := u.Validate(); err != nil {
		t.Errorf("Validate error = %v", err)
	}

	var bad FrameworkUpdate
	if err := json.Unmarshal([]byte(`{"authorization_type":"blessing"}`), &bad); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if err := bad.Validate(); err == nil {
		t.Error("Validate accepted an unknown authorization type in a patch")
	}
}
