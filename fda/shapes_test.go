package fda

import (
	"testing"

	"github.com/ashmatics/datamodels/schema"
)

// Summary structs and the patch shapes are checked against their field
// tables so neither can drift from the canonical definition.
func TestShapesMatchTables(t *testing.T) {
	summaries := []struct {
		name string
		d    *schema.Descriptor
		v    any
	}{
		{"510(k) clearance", Clearance510KDescriptor(), &Clearance510KSummary{}},
		{"manufacturer", ManufacturerDescriptor(), &ManufacturerSummary{}},
		{"product", ProductDescriptor(), &ProductSummary{}},
		{"device recall", RecallDescriptor(), &RecallSummary{}},
		{"adverse event", AdverseEventDescriptor(), &AdverseEventSummary{}},
	}
	for _, tt := range summaries {
		if err := tt.d.SummaryMatches(tt.v); err != nil {
			t.Errorf("%s summary: %v", tt.name, err)
		}
	}

	updates := []struct {
		name string
		d    *schema.Descriptor
		v    any
	}{
		{"510(k) clearance", Clearance510KDescriptor(), &Clearance510KUpdate{}},
		{"manufacturer", ManufacturerDescriptor(), &ManufacturerUpdate{}},
		{"regulatory status", &regulatoryStatusDescriptor, &RegulatoryStatusUpdate{}},
	}
	for _, tt := range updates {
		if err := tt.d.Covers(tt.v); err != nil {
			t.Errorf("%s update: %v", tt.name, err)
		}
	}
}

func TestProductSummarize(t *testing.T) {
	resp, err := NewProductResponse(ProductCreate{Product: Product{
		ProductName:      "ChestView AI",
		ManufacturerName: "Acme Imaging",
		IsActive:         true,
	}})
	if err != nil {
		t.Fatalf("NewProductResponse error = %v", err)
	}

	s := resp.Summarize()
	if s.ID != resp.ID || s.ProductName != "ChestView AI" || s.ManufacturerName != "Acme Imaging" {
		t.Errorf("summary = %+v", s)
	}
}

func TestRecallSummarize(t *testing.T) {
	resp, err := NewRecallResponse(Recall{
		RecallNumber:       "Z-1234-2024",
		RecallClass:        RecallClassII,
		RecallStatus:       RecallOngoing,
		ProductDescription: "Chest CAD workstation",
		RecallingFirm:      "Acme Imaging",
	})
	if err != nil {
		t.Fatalf("NewRecallResponse error = %v", err)
	}

	s := resp.Summarize()
	if s.ID != resp.ID || s.RecallNumber != "Z-1234-2024" || s.RecallClass != RecallClassII {
		t.Errorf("summary = %+v", s)
	}
	if s.RecallingFirm != "Acme Imaging" {
		t.Errorf("RecallingFirm = %q", s.RecallingFirm)
	}
}

func TestAdverseEventSummarize(t *testing.T) {
	resp, err := NewAdverseEventResponse(AdverseEvent{
		MDRReportKey:     "1234567",
		EventType:        EventMalfunction,
		ManufacturerName: "Acme Imaging",
	})
	if err != nil {
		t.Fatalf("NewAdverseEventResponse error = %v", err)
	}

	s := resp.Summarize()
	if s.ID != resp.ID || s.MDRReportKey != "1234567" || s.EventType != EventMalfunction {
		t.Errorf("summary = %+v", s)
	}
}
