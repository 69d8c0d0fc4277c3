package document

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

func validRegulatoryMeta() RegulatoryMeta {
	m := RegulatoryMeta{
		ContentMeta: NewContentMeta(TypeRegulatoryDoc, Content510KSummary,
			"510(k) Summary: ChestAI Triage"),
		KNumber:     "k240001",
		Applicant:   "Acme Imaging Inc.",
		DeviceName:  "ChestAI Triage",
		DeviceClass: "2",
		ProductCode: "qfm",
	}
	m.ClearanceDate, _ = validate.ParseDate("2024-06-15")
	return m
}

func TestNewRegulatoryDocument(t *testing.T) {
	doc, err := NewRegulatoryDocument(validRegulatoryMeta(), NewRegulatoryContent())
	if err != nil {
		t.Fatalf("NewRegulatoryDocument error = %v", err)
	}
	if doc.Meta.KNumber != "K240001" {
		t.Errorf("KNumber = %q; want normalized %q", doc.Meta.KNumber, "K240001")
	}
	if doc.Meta.ProductCode != "QFM" {
		t.Errorf("ProductCode = %q; want normalized %q", doc.Meta.ProductCode, "QFM")
	}

	keys := OrderedKeys(doc.Body.Sections)
	want := []string{
		SectionSponsor, SectionDeviceDescription, SectionIndicationsForUse,
		SectionPredicateDevices, SectionPerformanceTesting, SectionSubstantialEquivalence,
	}
	if len(keys) != len(want) {
		t.Fatalf("default sections = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("section %d = %q; want %q", i, keys[i], want[i])
		}
	}
}

func TestRegulatoryMetaNormalizesPredicates(t *testing.T) {
	meta := validRegulatoryMeta()
	meta.PredicateDevices = []string{"k230500", "den210042"}

	doc, err := NewRegulatoryDocument(meta, NewRegulatoryContent())
	if err != nil {
		t.Fatalf("NewRegulatoryDocument error = %v", err)
	}
	if doc.Meta.PredicateDevices[0] != "K230500" || doc.Meta.PredicateDevices[1] != "DEN210042" {
		t.Errorf("PredicateDevices = %v", doc.Meta.PredicateDevices)
	}

	meta = validRegulatoryMeta()
	meta.PredicateDevices = []string{"NOTAK"}
	_, err = NewRegulatoryDocument(meta, NewRegulatoryContent())
	var cerr *dm.CompositionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T; want *datamodels.CompositionError", err)
	}
	if cerr.Tiers[0].Tier != TierContent {
		t.Errorf("failing tier = %q; want %q", cerr.Tiers[0].Tier, TierContent)
	}
}

func TestPerformanceMetricValidate(t *testing.T) {
	m := PerformanceMetric{
		MetricName: "Sensitivity (pneumothorax)",
		MetricType: MetricSensitivity,
		Value:      decimal.RequireFromString("0.952"),
		CILower:    decimal.NewNullDecimal(decimal.RequireFromString("0.93")),
		CIUpper:    decimal.NewNullDecimal(decimal.RequireFromString("0.97")),
		SampleSize: 1424,
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}

	m.Value = decimal.RequireFromString("1.05")
	var rerr *dm.RangeError
	if err := m.Validate(); !errors.As(err, &rerr) {
		t.Fatalf("error = %T; want *datamodels.RangeError", err)
	} else if rerr.Min != 0 || rerr.Max != 1 {
		t.Errorf("bounds = [%v, %v]; want [0, 1]", rerr.Min, rerr.Max)
	}

	m.Value = decimal.RequireFromString("0.95")
	m.CILower, m.CIUpper = m.CIUpper, m.CILower
	if err := m.Validate(); err == nil {
		t.Error("Validate accepted an inverted confidence interval")
	}
}

func TestPerformanceMetricUnboundedTypes(t *testing.T) {
	m := PerformanceMetric{
		MetricName: "Time to notification",
		MetricType: MetricTimeToNotification,
		Value:      decimal.RequireFromString("182.4"),
		Unit:       "seconds",
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate error = %v for an unbounded metric", err)
	}
}

func TestPerformanceMetricDecimalPrecision(t *testing.T) {
	m := PerformanceMetric{
		MetricName: "AUC",
		MetricType: MetricAUC,
		Value:      decimal.RequireFromString("0.95"),
	}
	data, err := json.Marshal(&m)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if !strings.Contains(string(data), `"value":"0.95"`) {
		t.Fatalf("payload = %s; value did not serialize as the exact decimal", data)
	}

	var decoded PerformanceMetric
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !decoded.Value.Equal(m.Value) || decoded.Value.String() != "0.95" {
		t.Errorf("Value = %s; want 0.95 exactly", decoded.Value)
	}
}

func TestPerformanceTestResultsValidate(t *testing.T) {
	r := PerformanceTestResults{
		ValidationStudies: []ValidationStudy{
			{StudyName: "Pivotal reader study", StudyType: StudyReaderStudy, NumReaders: 12},
		},
		Sensitivity:          decimal.NewNullDecimal(decimal.RequireFromString("0.95")),
		ExtractionConfidence: 87.5,
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}

	r.ExtractionConfidence = 104
	if err := r.Validate(); err == nil {
		t.Error("Validate accepted an extraction confidence above 100")
	}

	r.ExtractionConfidence = 87.5
	r.ValidationStudies[0].StudyType = "anecdote"
	if err := r.Validate(); err == nil {
		t.Error("Validate accepted an unknown study type")
	}
}

func TestRegulatoryContentStructuredExtractions(t *testing.T) {
	body := NewRegulatoryContent()
	body.Predicates = []PredicateDeviceInfo{{KNumber: "k230500", DeviceName: "PriorAI"}}
	body.TestResults = &PerformanceTestResults{ExtractionConfidence: 90}
	body.RawSections = []RawSection{
		{Section: Section{Title: "DEVICE DESCRIPTION"}, SectionID: "sec_003"},
	}

	doc, err := NewRegulatoryDocument(validRegulatoryMeta(), body)
	if err != nil {
		t.Fatalf("NewRegulatoryDocument error = %v", err)
	}
	if doc.Body.Predicates[0].KNumber != "K230500" {
		t.Errorf("predicate KNumber = %q; want normalized %q",
			doc.Body.Predicates[0].KNumber, "K230500")
	}

	body.RawSections[0].SectionID = ""
	if err := body.Validate(); err == nil {
		t.Error("Validate accepted a raw section without an id")
	}
}

func TestRegulatorySummarize(t *testing.T) {
	doc, err := NewRegulatoryDocument(validRegulatoryMeta(), NewRegulatoryContent())
	if err != nil {
		t.Fatalf("NewRegulatoryDocument error = %v", err)
	}
	sum := doc.Summarize()
	if sum.ID != doc.ID || sum.KNumber != "K240001" || sum.DeviceName != "ChestAI Triage" {
		t.Errorf("summary = %+v", sum)
	}
	if !sum.ClearanceDate.Equal(doc.Meta.ClearanceDate) {
		t.Errorf("ClearanceDate = %v; want %v", sum.ClearanceDate, doc.Meta.ClearanceDate)
	}
	if sum.DocumentType != TypeRegulatoryDoc {
		t.Errorf("DocumentType = %q", sum.DocumentType)
	}
}
