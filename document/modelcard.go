package document

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

// InputSpecs describes what a model consumes.
type InputSpecs struct {
	ImageSize        []int          `json:"image_size,omitempty"`
	Channels         int            `json:"channels,omitempty"`
	Format           string         `json:"format,omitempty"`
	AdditionalInputs map[string]any `json:"additional_inputs,omitempty"`
}

// OutputSpecs describes what a model produces.
type OutputSpecs struct {
	Classes           []string       `json:"classes,omitempty"`
	OutputFormat      string         `json:"output_format,omitempty"`
	AdditionalOutputs map[string]any `json:"additional_outputs,omitempty"`
}

// DataSplits holds training data split ratios, each in [0, 1].
type DataSplits struct {
	Train float64 `json:"train"`
	Val   float64 `json:"val"`
	Test  float64 `json:"test"`
}

// DefaultDataSplits is the conventional 70/15/15 split.
func DefaultDataSplits() DataSplits {
	return DataSplits{Train: 0.7, Val: 0.15, Test: 0.15}
}

// Validate bounds each ratio.
func (s *DataSplits) Validate() error {
	for _, ratio := range []struct {
		field string
		v     float64
	}{
		{"train", s.Train},
		{"val", s.Val},
		{"test", s.Test},
	} {
		if ratio.v < 0 || ratio.v > 1 {
			return &dm.RangeError{Field: ratio.field, Value: ratio.v, Min: 0, Max: 1}
		}
	}
	return nil
}

// ModelPerformance holds the headline metrics a model card reports.
// All rates are decimals in [0, 1].
type ModelPerformance struct {
	Accuracy    decimal.NullDecimal `json:"accuracy"`
	Sensitivity decimal.NullDecimal `json:"sensitivity"`
	Specificity decimal.NullDecimal `json:"specificity"`
	AUCROC      decimal.NullDecimal `json:"auc_roc"`
	F1Score     decimal.NullDecimal `json:"f1_score"`

	ValidationDataset string         `json:"validation_dataset,omitempty"`
	AdditionalMetrics map[string]any `json:"additional_metrics,omitempty"`
}

// Validate bounds every reported rate.
func (p *ModelPerformance) Validate() error {
	for _, m := range []struct {
		field string
		v     decimal.NullDecimal
	}{
		{"accuracy", p.Accuracy},
		{"sensitivity", p.Sensitivity},
		{"specificity", p.Specificity},
		{"auc_roc", p.AUCROC},
		{"f1_score", p.F1Score},
	} {
		if !m.v.Valid {
			continue
		}
		if m.v.Decimal.IsNegative() || m.v.Decimal.GreaterThan(decimalOne) {
			return &dm.RangeError{
				Field: m.field,
				Value: m.v.Decimal.InexactFloat64(),
				Min:   0,
				Max:   1,
			}
		}
	}
	return nil
}

// ExternalResources links a model card to the places the model lives.
type ExternalResources struct {
	GitHub        string `json:"github,omitempty"`
	HuggingFace   string `json:"huggingface,omitempty"`
	PaperDOI      string `json:"paper_doi,omitempty"`
	Documentation string `json:"documentation,omitempty"`
}

// ModelCardMeta is tier 2 for AI model cards.
type ModelCardMeta struct {
	ContentMeta

	ModelName        string        `json:"model_name"`
	ModelVersion     string        `json:"model_version,omitempty"`
	Developer        string        `json:"developer,omitempty"`
	LastUpdated      validate.Date `json:"last_updated,omitzero"`
	AnatomicalRegion string        `json:"anatomical_region,omitempty"`
}

// Validate checks the shared tier-2 invariants, pins the document type,
// and requires the model name.
func (m *ModelCardMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	const entity = "model card metadata"
	if m.DocumentType != TypeAIModelCard {
		return dm.NewVocabularyError(entity, "document_type",
			string(m.DocumentType), string(TypeAIModelCard))
	}
	if m.ModelName == "" {
		return dm.NewRequiredError(entity, "model_name")
	}
	return nil
}

// Section keys for a model card body.
const (
	SectionModelOverview      = "model_overview"
	SectionTrainingData       = "training_data"
	SectionPerformanceMetrics = "performance_metrics"
	SectionLimitations        = "limitations"
	SectionIntendedUse        = "intended_use"
)

// ModelCardContent is tier 3 for AI model cards: the section tree plus
// the structured specifications layered next to it.
type ModelCardContent struct {
	Content

	Architecture string       `json:"architecture,omitempty"`
	Framework    string       `json:"framework,omitempty"`
	InputSpecs   *InputSpecs  `json:"input_specs,omitempty"`
	OutputSpecs  *OutputSpecs `json:"output_specs,omitempty"`

	DatasetName string      `json:"dataset_name,omitempty"`
	DatasetSize int         `json:"dataset_size,omitempty"`
	DataSplits  *DataSplits `json:"data_splits,omitempty"`

	Metrics *ModelPerformance `json:"metrics,omitempty"`

	KnownLimitations     []string `json:"known_limitations,omitempty"`
	BiasConsiderations   []string `json:"bias_considerations,omitempty"`
	ClinicalApplications []string `json:"clinical_applications,omitempty"`
	Contraindications    []string `json:"contraindications,omitempty"`

	ExternalResources *ExternalResources `json:"external_resources,omitempty"`
}

// NewModelCardContent returns a body pre-populated with the standard
// model card sections.
func NewModelCardContent() ModelCardContent {
	return ModelCardContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionModelOverview:      {Title: "Model Overview", Order: 1},
				SectionTrainingData:       {Title: "Training Data", Order: 2},
				SectionPerformanceMetrics: {Title: "Performance", Order: 3},
				SectionLimitations:        {Title: "Limitations & Biases", Order: 4},
				SectionIntendedUse:        {Title: "Intended Use", Order: 5},
			},
		},
	}
}

// Validate checks the section tree and the structured specifications.
func (c *ModelCardContent) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if c.DataSplits != nil {
		if err := c.DataSplits.Validate(); err != nil {
			return err
		}
	}
	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ModelCardDocument is a complete three-tier AI model card.
type ModelCardDocument struct {
	ID       string           `json:"id"`
	Artifact ArtifactMeta     `json:"metadata_object"`
	Meta     ModelCardMeta    `json:"metadata_content"`
	Body     ModelCardContent `json:"content"`
}

// NewModelCardDocument composes a model card from tier-2 and tier-3
// input. Any tier failure aborts construction with a CompositionError.
func NewModelCardDocument(meta ModelCardMeta, body ModelCardContent) (*ModelCardDocument, error) {
	d := &ModelCardDocument{
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
func (d *ModelCardDocument) Validate() error {
	return composeTiers("model card", &d.Artifact, &d.Meta, &d.Body)
}

// ModelCardSummary is the listing projection of a model card.
type ModelCardSummary struct {
	Summary

	ModelName        string `json:"model_name"`
	ModelVersion     string `json:"model_version,omitempty"`
	Developer        string `json:"developer,omitempty"`
	AnatomicalRegion string `json:"anatomical_region,omitempty"`
}

// Summarize projects the model card into its listing shape without
// touching the document.
func (d *ModelCardDocument) Summarize() ModelCardSummary {
	return ModelCardSummary{
		Summary:          summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		ModelName:        d.Meta.ModelName,
		ModelVersion:     d.Meta.ModelVersion,
		Developer:        d.Meta.Developer,
		AnatomicalRegion: d.Meta.AnatomicalRegion,
	}
}
