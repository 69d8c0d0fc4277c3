package document

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

// FDAClearanceRef links a product card to one of the product's
// clearances.
type FDAClearanceRef struct {
	KNumber       string        `json:"k_number"`
	ClearanceDate validate.Date `json:"clearance_date,omitzero"`
	Indications   string        `json:"indications,omitempty"`
}

// Validate normalizes the referenced clearance number.
func (r *FDAClearanceRef) Validate() error {
	n, err := validate.KNumber(r.KNumber)
	if err != nil {
		return dm.AttachField("k_number", err)
	}
	r.KNumber = n
	return nil
}

// IntegratedModelRef links a product card to an AI model the product
// ships with.
type IntegratedModelRef struct {
	ModelID   string `json:"model_id,omitempty"`
	ModelName string `json:"model_name"`
	Version   string `json:"version,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
}

// EvidenceRef links a product card to a supporting publication.
type EvidenceRef struct {
	EvidenceID  string `json:"evidence_id,omitempty"`
	Title       string `json:"title"`
	Publication string `json:"publication,omitempty"`
}

// SystemRequirements describes what deploying the product takes.
type SystemRequirements struct {
	InputFormat            string         `json:"input_format,omitempty"`
	OutputFormat           string         `json:"output_format,omitempty"`
	Integration            []string       `json:"integration,omitempty"`
	AdditionalRequirements map[string]any `json:"additional_requirements,omitempty"`
}

// ProductCardMeta is tier 2 for product cards.
type ProductCardMeta struct {
	ContentMeta

	ProductName  string `json:"product_name"`
	Manufacturer string `json:"manufacturer"`

	FDAStatus string   `json:"fda_status,omitempty"`
	KNumbers  []string `json:"k_numbers,omitempty"`
}

// Validate checks the shared tier-2 invariants, pins the document type,
// requires the product identity, and normalizes every linked clearance
// number.
func (m *ProductCardMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	const entity = "product card metadata"
	if m.DocumentType != TypeProductCard {
		return dm.NewVocabularyError(entity, "document_type",
			string(m.DocumentType), string(TypeProductCard))
	}
	if m.ProductName == "" {
		return dm.NewRequiredError(entity, "product_name")
	}
	if m.Manufacturer == "" {
		return dm.NewRequiredError(entity, "manufacturer")
	}
	for i, k := range m.KNumbers {
		n, err := validate.KNumber(k)
		if err != nil {
			return dm.AttachField("k_numbers", err)
		}
		m.KNumbers[i] = n
	}
	return nil
}

// Section keys for a product card body.
const (
	SectionProductOverview  = "product_overview"
	SectionRegulatoryStatus = "regulatory_status"
	SectionAIModels         = "ai_models"
	SectionClinicalEvidence = "clinical_evidence"
	SectionTechnicalSpecs   = "technical_specifications"
)

// ProductCardContent is tier 3 for product cards.
type ProductCardContent struct {
	Content

	Description     string `json:"description,omitempty"`
	DeviceType      string `json:"device_type,omitempty"`
	DeploymentModel string `json:"deployment_model,omitempty"`

	FDAClearances    []FDAClearanceRef    `json:"fda_clearances,omitempty"`
	IntegratedModels []IntegratedModelRef `json:"integrated_models,omitempty"`
	KeyStudies       []EvidenceRef        `json:"key_studies,omitempty"`

	SystemRequirements *SystemRequirements `json:"system_requirements,omitempty"`
}

// NewProductCardContent returns a body pre-populated with the standard
// product card sections.
func NewProductCardContent() ProductCardContent {
	return ProductCardContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionProductOverview:  {Title: "Product Overview", Order: 1},
				SectionRegulatoryStatus: {Title: "Regulatory Status", Order: 2},
				SectionAIModels:         {Title: "AI Models", Order: 3},
				SectionClinicalEvidence: {Title: "Clinical Evidence", Order: 4},
				SectionTechnicalSpecs:   {Title: "Technical Specifications", Order: 5},
			},
		},
	}
}

// Validate checks the section tree and every reference.
func (c *ProductCardContent) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	for i := range c.FDAClearances {
		if err := c.FDAClearances[i].Validate(); err != nil {
			return err
		}
	}
	for _, m := range c.IntegratedModels {
		if m.ModelName == "" {
			return dm.NewRequiredError("integrated model", "model_name")
		}
	}
	for _, s := range c.KeyStudies {
		if s.Title == "" {
			return dm.NewRequiredError("key study", "title")
		}
	}
	return nil
}

// ProductCardDocument is a complete three-tier product card.
type ProductCardDocument struct {
	ID       string             `json:"id"`
	Artifact ArtifactMeta       `json:"metadata_object"`
	Meta     ProductCardMeta    `json:"metadata_content"`
	Body     ProductCardContent `json:"content"`
}

// NewProductCardDocument composes a product card from tier-2 and tier-3
// input. Any tier failure aborts construction with a CompositionError.
func NewProductCardDocument(meta ProductCardMeta, body ProductCardContent) (*ProductCardDocument, error) {
	d := &ProductCardDocument{
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
func (d *ProductCardDocument) Validate() error {
	return composeTiers("product card", &d.Artifact, &d.Meta, &d.Body)
}

// ProductCardSummary is the listing projection of a product card.
type ProductCardSummary struct {
	Summary

	ProductName  string   `json:"product_name"`
	Manufacturer string   `json:"manufacturer"`
	FDAStatus    string   `json:"fda_status,omitempty"`
	KNumbers     []string `json:"k_numbers,omitempty"`
}

// Summarize projects the product card into its listing shape without
// touching the document.
func (d *ProductCardDocument) Summarize() ProductCardSummary {
	var knums []string
	if len(d.Meta.KNumbers) > 0 {
		knums = make([]string, len(d.Meta.KNumbers))
		copy(knums, d.Meta.KNumbers)
	}
	return ProductCardSummary{
		Summary:      summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		ProductName:  d.Meta.ProductName,
		Manufacturer: d.Meta.Manufacturer,
		FDAStatus:    d.Meta.FDAStatus,
		KNumbers:     knums,
	}
}
