package fda

import (
	"testing"
)

func validAdverseEvent() AdverseEvent {
	return AdverseEvent{
		MDRReportKey:        "18273645",
		ReportNumber:        "1234567-2024-00001",
		EventType:           EventMalfunction,
		ReportSourceCode:    SourceManufacturer,
		ManufacturerName:    "Acme Imaging Inc.",
		ManufacturerCountry: "us",
		Devices: []MAUDEDevice{
			{
				BrandName:      "TriageAI",
				ProductCode:    "qfm",
				DeviceClass:    DeviceClass2,
				DeviceOperator: OperatorHealthProfessional,
			},
		},
		Patients: []MAUDEPatient{
			{PatientSequenceNumber: "1"},
		},
		AdverseEventFlag: "N",
	}
}

func TestAdverseEventValidate(t *testing.T) {
	e := validAdverseEvent()
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if e.ManufacturerCountry != "US" {
		t.Errorf("ManufacturerCountry = %q; want normalized %q", e.ManufacturerCountry, "US")
	}
	if e.Devices[0].ProductCode != "QFM" {
		t.Errorf("device ProductCode = %q; want normalized %q", e.Devices[0].ProductCode, "QFM")
	}
}

func TestAdverseEventValidateRejects(t *testing.T) {
	e := validAdverseEvent()
	e.MDRReportKey = ""
	if err := e.Validate(); err == nil {
		t.Error("Validate accepted a report without an MDR key")
	}

	e = validAdverseEvent()
	e.EventType = "Mystery"
	if err := e.Validate(); err == nil {
		t.Error("Validate accepted an unknown event type")
	}

	e = validAdverseEvent()
	e.Devices[0].ProductCode = "TOOLONG"
	if err := e.Validate(); err == nil {
		t.Error("Validate accepted a malformed device product code")
	}
}

func TestNewAdverseEventResponse(t *testing.T) {
	resp, err := NewAdverseEventResponse(validAdverseEvent())
	if err != nil {
		t.Fatalf("NewAdverseEventResponse error = %v", err)
	}
	if resp.DeviceCount != 1 || resp.PatientCount != 1 {
		t.Errorf("counts = %d devices, %d patients; want 1, 1", resp.DeviceCount, resp.PatientCount)
	}
	if err := resp.Validate(); err != nil {
		t.Errorf("response Validate error = %v", err)
	}
}
