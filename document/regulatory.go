package document

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/fda"
	"github.com/ashmatics/datamodels/validate"
)

// StudyType classifies a validation study reported in a submission.
type StudyType string

const (
	StudyStandalone         StudyType = "standalone"
	StudyClinicalValidation StudyType = "clinical_validation"
	StudyReaderStudy        StudyType = "reader_study"
	StudyPivotal            StudyType = "pivotal_study"
	StudyPilot              StudyType = "pilot_study"
	StudyRetrospective      StudyType = "retrospective"
	StudyProspective        StudyType = "prospective"
	StudyUnknown            StudyType = "unknown"
)

// IsValid reports whether t is a recognized study type.
func (t StudyType) IsValid() bool {
	switch t {
	case StudyStandalone, StudyClinicalValidation, StudyReaderStudy,
		StudyPivotal, StudyPilot, StudyRetrospective, StudyProspective,
		StudyUnknown:
		return true
	}
	return false
}

// MetricType standardizes performance metric names for cross-device
// querying. Free-form metric names still travel in metric_name.
type MetricType string

const (
	MetricSensitivity        MetricType = "sensitivity"
	MetricSpecificity        MetricType = "specificity"
	MetricAUC                MetricType = "auc"
	MetricDice               MetricType = "dice"
	MetricAccuracy           MetricType = "accuracy"
	MetricPPV                MetricType = "ppv"
	MetricNPV                MetricType = "npv"
	MetricF1Score            MetricType = "f1_score"
	MetricPrecision          MetricType = "precision"
	MetricRecall             MetricType = "recall"
	MetricHausdorffDistance  MetricType = "hausdorff_distance"
	MetricTimeToDetection    MetricType = "time_to_detection"
	MetricTimeToNotification MetricType = "time_to_notification"
	MetricDetectionRate      MetricType = "detection_rate"
	MetricFalsePositiveRate  MetricType = "false_positive_rate"
	MetricOther              MetricType = "other"
)

// IsValid reports whether t is a recognized metric type.
func (t MetricType) IsValid() bool {
	switch t {
	case MetricSensitivity, MetricSpecificity, MetricAUC, MetricDice,
		MetricAccuracy, MetricPPV, MetricNPV, MetricF1Score,
		MetricPrecision, MetricRecall, MetricHausdorffDistance,
		MetricTimeToDetection, MetricTimeToNotification,
		MetricDetectionRate, MetricFalsePositiveRate, MetricOther:
		return true
	}
	return false
}

// IsRate reports whether the metric is a proportion bounded to [0, 1].
// Distances and timings are unbounded.
func (t MetricType) IsRate() bool {
	switch t {
	case MetricSensitivity, MetricSpecificity, MetricAUC, MetricDice,
		MetricAccuracy, MetricPPV, MetricNPV, MetricF1Score,
		MetricPrecision, MetricRecall, MetricDetectionRate,
		MetricFalsePositiveRate:
		return true
	}
	return false
}

// RawSection is a section exactly as the parser emitted it, before
// normalization into the enriched section set. NormalizedTo records
// which enriched section absorbed it, when one did.
type RawSection struct {
	Section

	SectionID    string `json:"section_id"`
	NormalizedTo string `json:"normalized_to,omitempty"`
}

// Validate checks the raw section and its identity.
func (s *RawSection) Validate() error {
	if s.SectionID == "" {
		return dm.NewRequiredError("raw section", "section_id")
	}
	return s.Section.Validate()
}

// StructuredIndication is the machine-readable decomposition of an
// indications-for-use statement.
type StructuredIndication struct {
	AnatomicalRegion    string `json:"anatomical_region,omitempty"`
	Modality            string `json:"modality,omitempty"`
	ClinicalApplication string `json:"clinical_application,omitempty"`
	PatientPopulation   string `json:"patient_population,omitempty"`
}

// PredicateDeviceInfo describes one predicate cited for substantial
// equivalence.
type PredicateDeviceInfo struct {
	KNumber           string `json:"k_number"`
	DeviceName        string `json:"device_name,omitempty"`
	Manufacturer      string `json:"manufacturer,omitempty"`
	ComparisonSummary string `json:"comparison_summary,omitempty"`
}

// Validate normalizes the predicate's clearance number.
func (p *PredicateDeviceInfo) Validate() error {
	n, err := validate.KNumber(p.KNumber)
	if err != nil {
		return dm.AttachField("k_number", err)
	}
	p.KNumber = n
	return nil
}

// PatientDemographics summarizes the patient population of a dataset.
// Distribution maps hold fractions keyed by category.
type PatientDemographics struct {
	AgeRange                  string             `json:"age_range,omitempty"`
	GenderDistribution        map[string]float64 `json:"gender_distribution,omitempty"`
	RaceEthnicityDistribution map[string]float64 `json:"race_ethnicity_distribution,omitempty"`
	AdditionalDemographics    map[string]any     `json:"additional_demographics,omitempty"`
}

// DatasetCharacteristics describes a dataset at the level submissions
// typically report.
type DatasetCharacteristics struct {
	DatasetSize               int            `json:"dataset_size,omitempty"`
	DataSource                string         `json:"data_source,omitempty"`
	MultiSite                 bool           `json:"multi_site,omitempty"`
	ImagingModality           string         `json:"imaging_modality,omitempty"`
	GroundTruthMethod         string         `json:"ground_truth_method,omitempty"`
	AdditionalCharacteristics map[string]any `json:"additional_characteristics,omitempty"`
}

// PerformanceMetric is one extracted performance figure. Values are
// decimals so reported precision survives round trips; 0.95 stays
// 0.95, not 0.9500000000000001.
type PerformanceMetric struct {
	MetricName string     `json:"metric_name"`
	MetricType MetricType `json:"metric_type,omitempty"`

	Value decimal.Decimal `json:"value"`
	Unit  string          `json:"unit,omitempty"`

	CILower       decimal.NullDecimal `json:"ci_lower"`
	CIUpper       decimal.NullDecimal `json:"ci_upper"`
	PValue        decimal.NullDecimal `json:"p_value"`
	StandardError decimal.NullDecimal `json:"standard_error"`

	SampleSize     int               `json:"sample_size,omitempty"`
	Stratification map[string]string `json:"stratification,omitempty"`

	SourceTable   string `json:"source_table,omitempty"`
	SourceSection string `json:"source_section,omitempty"`
}

var decimalOne = decimal.NewFromInt(1)

// Validate checks the metric's name, type, and bounds. Rate metrics
// must land in [0, 1]; unbounded metrics are taken as reported.
func (m *PerformanceMetric) Validate() error {
	if m.MetricName == "" {
		return dm.NewRequiredError("performance metric", "metric_name")
	}
	if m.MetricType != "" && !m.MetricType.IsValid() {
		return dm.NewVocabularyError("performance metric", "metric_type",
			string(m.MetricType), "a standardized metric type")
	}
	if m.MetricType.IsRate() {
		if m.Value.IsNegative() || m.Value.GreaterThan(decimalOne) {
			return &dm.RangeError{
				Field: "value",
				Value: m.Value.InexactFloat64(),
				Min:   0,
				Max:   1,
			}
		}
	}
	if m.CILower.Valid && m.CIUpper.Valid &&
		m.CILower.Decimal.GreaterThan(m.CIUpper.Decimal) {
		return &dm.FormatError{
			Kind:   "confidence interval",
			Field:  "ci_lower",
			Value:  m.CILower.Decimal.String(),
			Format: "ci_lower <= ci_upper",
		}
	}
	return nil
}

// TestDataset describes the dataset a validation study tested on.
type TestDataset struct {
	DatasetName      string `json:"dataset_name,omitempty"`
	DatasetSize      int    `json:"dataset_size,omitempty"`
	DataSource       string `json:"data_source,omitempty"`
	MultiSite        bool   `json:"multi_site,omitempty"`
	NumSites         int    `json:"num_sites,omitempty"`
	CollectionPeriod string `json:"collection_period,omitempty"`

	GroundTruthMethod string `json:"ground_truth_method,omitempty"`
	ImagingModality   string `json:"imaging_modality,omitempty"`

	PatientDemographics *PatientDemographics `json:"patient_demographics,omitempty"`
	DiseasePrevalence   string               `json:"disease_prevalence,omitempty"`
	InclusionCriteria   string               `json:"inclusion_criteria,omitempty"`
	ExclusionCriteria   string               `json:"exclusion_criteria,omitempty"`

	IndependentFromTraining bool `json:"independent_from_training,omitempty"`
}

// ValidationStudy describes one study reported in the performance
// testing section.
type ValidationStudy struct {
	StudyName        string    `json:"study_name,omitempty"`
	StudyType        StudyType `json:"study_type"`
	StudyDescription string    `json:"study_description,omitempty"`

	Prospective bool   `json:"prospective,omitempty"`
	Blinding    string `json:"blinding,omitempty"`
	ControlType string `json:"control_type,omitempty"`
	NumReaders  int    `json:"num_readers,omitempty"`
	NumCases    int    `json:"num_cases,omitempty"`

	TestDataset *TestDataset `json:"test_dataset,omitempty"`

	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
	AcceptanceMet      bool   `json:"acceptance_met,omitempty"`

	SourceSection string `json:"source_section,omitempty"`
}

// Validate checks the study classification.
func (s *ValidationStudy) Validate() error {
	if !s.StudyType.IsValid() {
		return dm.NewVocabularyError("validation study", "study_type",
			string(s.StudyType), "a recognized study type")
	}
	return nil
}

// PerformanceTestResults aggregates every validation study and metric
// extracted from a submission. The top-level sensitivity, specificity,
// and auc_roc fields carry the headline figures older documents report
// without per-study breakdown.
type PerformanceTestResults struct {
	ValidationStudies  []ValidationStudy   `json:"validation_studies,omitempty"`
	PerformanceMetrics []PerformanceMetric `json:"performance_metrics,omitempty"`

	ComparisonToPredicate string              `json:"comparison_to_predicate,omitempty"`
	PredicateMetrics      []PerformanceMetric `json:"predicate_metrics,omitempty"`

	Sensitivity decimal.NullDecimal `json:"sensitivity"`
	Specificity decimal.NullDecimal `json:"specificity"`
	AUCROC      decimal.NullDecimal `json:"auc_roc"`

	TestDatasetSize   int            `json:"test_dataset_size,omitempty"`
	AdditionalMetrics map[string]any `json:"additional_metrics,omitempty"`

	// ExtractionConfidence is the extractor's self-reported confidence,
	// 0 to 100.
	ExtractionConfidence float64  `json:"extraction_confidence"`
	SourceTables         []string `json:"source_tables,omitempty"`
}

// Validate checks the studies, the metrics, and the headline rates.
func (r *PerformanceTestResults) Validate() error {
	for i := range r.ValidationStudies {
		if err := r.ValidationStudies[i].Validate(); err != nil {
			return err
		}
	}
	for i := range r.PerformanceMetrics {
		if err := r.PerformanceMetrics[i].Validate(); err != nil {
			return err
		}
	}
	for i := range r.PredicateMetrics {
		if err := r.PredicateMetrics[i].Validate(); err != nil {
			return err
		}
	}
	for _, headline := range []struct {
		field string
		v     decimal.NullDecimal
	}{
		{"sensitivity", r.Sensitivity},
		{"specificity", r.Specificity},
		{"auc_roc", r.AUCROC},
	} {
		if !headline.v.Valid {
			continue
		}
		if headline.v.Decimal.IsNegative() || headline.v.Decimal.GreaterThan(decimalOne) {
			return &dm.RangeError{
				Field: headline.field,
				Value: headline.v.Decimal.InexactFloat64(),
				Min:   0,
				Max:   1,
			}
		}
	}
	if r.ExtractionConfidence < 0 || r.ExtractionConfidence > 100 {
		return &dm.RangeError{
			Field: "extraction_confidence",
			Value: r.ExtractionConfidence,
			Min:   0,
			Max:   100,
		}
	}
	return nil
}

// TrainingDataCharacteristics describes the training data a submission
// discloses, when it discloses any.
type TrainingDataCharacteristics struct {
	DatasetCharacteristics *DatasetCharacteristics `json:"dataset_characteristics,omitempty"`
	PatientDemographics    *PatientDemographics    `json:"patient_demographics,omitempty"`

	InclusionCriteria      string `json:"inclusion_criteria,omitempty"`
	ExclusionCriteria      string `json:"exclusion_criteria,omitempty"`
	DiseaseCharacteristics string `json:"disease_characteristics,omitempty"`
	DataCollectionPeriod   string `json:"data_collection_period,omitempty"`

	ExtractionConfidence float64  `json:"extraction_confidence"`
	SourceTables         []string `json:"source_tables,omitempty"`
}

// Validate bounds the extraction confidence.
func (t *TrainingDataCharacteristics) Validate() error {
	if t.ExtractionConfidence < 0 || t.ExtractionConfidence > 100 {
		return &dm.RangeError{
			Field: "extraction_confidence",
			Value: t.ExtractionConfidence,
			Min:   0,
			Max:   100,
		}
	}
	return nil
}

// RegulatoryMeta is tier 2 for regulatory documents: the shared
// classification fields plus the clearance identifiers searches filter
// on.
type RegulatoryMeta struct {
	ContentMeta

	KNumber      string `json:"k_number,omitempty"`
	PMANumber    string `json:"pma_number,omitempty"`
	DeNovoNumber string `json:"de_novo_number,omitempty"`

	ClearanceDate validate.Date   `json:"clearance_date,omitzero"`
	Applicant     string          `json:"applicant,omitempty"`
	DeviceName    string          `json:"device_name,omitempty"`
	DeviceClass   fda.DeviceClass `json:"device_class,omitempty"`
	ProductCode   string          `json:"product_code,omitempty"`

	PredicateDevices  []string `json:"predicate_devices,omitempty"`
	AdvisoryCommittee string   `json:"advisory_committee,omitempty"`
}

// Validate checks the shared tier-2 invariants, pins the document type,
// and normalizes every clearance identifier present.
func (m *RegulatoryMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	const entity = "regulatory metadata"
	if m.DocumentType != TypeRegulatoryDoc {
		return dm.NewVocabularyError(entity, "document_type",
			string(m.DocumentType), string(TypeRegulatoryDoc))
	}
	if m.KNumber != "" {
		n, err := validate.KNumber(m.KNumber)
		if err != nil {
			return dm.AttachField("k_number", err)
		}
		m.KNumber = n
	}
	if m.PMANumber != "" {
		n, err := validate.PMANumber(m.PMANumber)
		if err != nil {
			return dm.AttachField("pma_number", err)
		}
		m.PMANumber = n
	}
	if m.DeNovoNumber != "" {
		n, err := validate.DeNovoNumber(m.DeNovoNumber)
		if err != nil {
			return dm.AttachField("de_novo_number", err)
		}
		m.DeNovoNumber = n
	}
	if m.DeviceClass != "" && !m.DeviceClass.IsValid() {
		return dm.NewVocabularyError(entity, "device_class",
			string(m.DeviceClass), "1, 2, or 3")
	}
	if m.ProductCode != "" {
		c, err := validate.ProductCode(m.ProductCode)
		if err != nil {
			return dm.AttachField("product_code", err)
		}
		m.ProductCode = c
	}
	for i, p := range m.PredicateDevices {
		n, err := validate.KNumber(p)
		if err != nil {
			return dm.AttachField("predicate_devices", err)
		}
		m.PredicateDevices[i] = n
	}
	return nil
}

// Enriched section keys for a regulatory document body.
const (
	SectionSponsor                = "0_sponsor"
	SectionDeviceDescription      = "1_device_description"
	SectionIndicationsForUse      = "2_indications_for_use"
	SectionPredicateDevices       = "3_predicate_devices"
	SectionPerformanceTesting     = "4_performance_testing"
	SectionSubstantialEquivalence = "5_substantial_equivalence"
)

// RegulatoryContent is tier 3 for regulatory documents: the enriched
// section tree plus the structured extractions layered next to it.
// RawSections preserves the parser's full output untouched.
type RegulatoryContent struct {
	Content

	Indications  *StructuredIndication        `json:"structured_indications,omitempty"`
	Predicates   []PredicateDeviceInfo        `json:"predicates,omitempty"`
	TestResults  *PerformanceTestResults      `json:"test_results,omitempty"`
	TrainingData *TrainingDataCharacteristics `json:"training_data,omitempty"`

	RawSections []RawSection `json:"raw_sections,omitempty"`
}

// NewRegulatoryContent returns a body pre-populated with the enriched
// section skeleton in presentation order.
func NewRegulatoryContent() RegulatoryContent {
	return RegulatoryContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionSponsor:                {Title: "Sponsor Information", Order: 0},
				SectionDeviceDescription:      {Title: "Device Description", Order: 1},
				SectionIndicationsForUse:      {Title: "Indications for Use", Order: 2},
				SectionPredicateDevices:       {Title: "Predicate Devices", Order: 3},
				SectionPerformanceTesting:     {Title: "Performance Testing", Order: 4},
				SectionSubstantialEquivalence: {Title: "Substantial Equivalence", Order: 5},
			},
		},
	}
}

// Validate checks the section tree and every structured extraction.
func (c *RegulatoryContent) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	for i := range c.Predicates {
		if err := c.Predicates[i].Validate(); err != nil {
			return err
		}
	}
	if c.TestResults != nil {
		if err := c.TestResults.Validate(); err != nil {
			return err
		}
	}
	if c.TrainingData != nil {
		if err := c.TrainingData.Validate(); err != nil {
			return err
		}
	}
	for i := range c.RawSections {
		if err := c.RawSections[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RegulatoryDocument is a complete three-tier regulatory document.
type RegulatoryDocument struct {
	ID       string            `json:"id"`
	Artifact ArtifactMeta      `json:"metadata_object"`
	Meta     RegulatoryMeta    `json:"metadata_content"`
	Body     RegulatoryContent `json:"content"`
}

// NewRegulatoryDocument composes a document from tier-2 and tier-3
// input, generating identity and tier-1 defaults. All tiers validate
// before anything is returned; on failure the error is a
// CompositionError and no document exists.
func NewRegulatoryDocument(meta RegulatoryMeta, body RegulatoryContent) (*RegulatoryDocument, error) {
	d := &RegulatoryDocument{
		Artifact: NewArtifactMeta(),
		Meta:     meta,
		Body:     body,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.ID = uuid.NewString()
	return d, nil
}

// Validate re-checks every tier, aggregating failures per tier.
func (d *RegulatoryDocument) Validate() error {
	return composeTiers("regulatory document", &d.Artifact, &d.Meta, &d.Body)
}

// RegulatorySummary is the listing projection of a regulatory document.
type RegulatorySummary struct {
	Summary

	KNumber       string          `json:"k_number,omitempty"`
	PMANumber     string          `json:"pma_number,omitempty"`
	ClearanceDate validate.Date   `json:"clearance_date,omitzero"`
	Applicant     string          `json:"applicant,omitempty"`
	DeviceName    string          `json:"device_name,omitempty"`
	DeviceClass   fda.DeviceClass `json:"device_class,omitempty"`
	ProductCode   string          `json:"product_code,omitempty"`
}

// Summarize projects the document into its listing shape without
// touching the document.
func (d *RegulatoryDocument) Summarize() RegulatorySummary {
	return RegulatorySummary{
		Summary:       summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		KNumber:       d.Meta.KNumber,
		PMANumber:     d.Meta.PMANumber,
		ClearanceDate: d.Meta.ClearanceDate,
		Applicant:     d.Meta.Applicant,
		DeviceName:    d.Meta.DeviceName,
		DeviceClass:   d.Meta.DeviceClass,
		ProductCode:   d.Meta.ProductCode,
	}
}
