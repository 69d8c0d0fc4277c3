package document

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

// ApplicableProductRef links a use case to an FDA-cleared product that
// serves it.
type ApplicableProductRef struct {
	ProductID    string `json:"product_id,omitempty"`
	ProductName  string `json:"product_name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	KNumber      string `json:"k_number,omitempty"`
}

// Validate normalizes the linked clearance number when one is present.
func (r *ApplicableProductRef) Validate() error {
	if r.ProductName == "" {
		return dm.NewRequiredError("applicable product", "product_name")
	}
	if r.KNumber != "" {
		n, err := validate.KNumber(r.KNumber)
		if err != nil {
			return dm.AttachField("k_number", err)
		}
		r.KNumber = n
	}
	return nil
}

// SupportingEvidenceRef links a use case to a study backing it.
type SupportingEvidenceRef struct {
	EvidenceID       string `json:"evidence_id,omitempty"`
	Title            string `json:"title"`
	EvidenceStrength string `json:"evidence_strength,omitempty"`
	FindingsSummary  string `json:"findings_summary,omitempty"`
}

// UseCaseMeta is tier 2 for clinical use case documents.
type UseCaseMeta struct {
	ContentMeta

	ClinicalSpecialty string   `json:"clinical_specialty,omitempty"`
	AnatomicalRegion  string   `json:"anatomical_region,omitempty"`
	Pathology         []string `json:"pathology,omitempty"`
}

// Validate checks the shared tier-2 invariants and pins the document
// type.
func (m *UseCaseMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	if m.DocumentType != TypeUseCase {
		return dm.NewVocabularyError("use case metadata", "document_type",
			string(m.DocumentType), string(TypeUseCase))
	}
	return nil
}

// Section keys for a use case document body.
const (
	SectionUseCaseOverview       = "use_case_overview"
	SectionClinicalContext       = "clinical_context"
	SectionTechnicalRequirements = "technical_requirements"
	SectionApplicableProducts    = "applicable_products"
	SectionSupportingEvidence    = "supporting_evidence"
	SectionImplementation        = "implementation_considerations"
)

// UseCaseContent is tier 3 for clinical use case documents.
type UseCaseContent struct {
	Content

	Description      string `json:"description,omitempty"`
	Workflow         string `json:"workflow,omitempty"`
	ValueProposition string `json:"value_proposition,omitempty"`

	PainPoints           []string `json:"pain_points,omitempty"`
	ImagingModality      string   `json:"imaging_modality,omitempty"`
	ImageCharacteristics string   `json:"image_characteristics,omitempty"`
	IntegrationNeeds     []string `json:"integration_needs,omitempty"`

	FDAClearedProducts []ApplicableProductRef  `json:"fda_cleared_products,omitempty"`
	KeyStudies         []SupportingEvidenceRef `json:"key_studies,omitempty"`

	DeploymentModel          string `json:"deployment_model,omitempty"`
	TrainingRequirements     string `json:"training_requirements,omitempty"`
	RegulatoryConsiderations string `json:"regulatory_considerations,omitempty"`
}

// NewUseCaseContent returns a body pre-populated with the standard use
// case sections.
func NewUseCaseContent() UseCaseContent {
	return UseCaseContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionUseCaseOverview:       {Title: "Use Case Overview", Order: 1},
				SectionClinicalContext:       {Title: "Clinical Context", Order: 2},
				SectionTechnicalRequirements: {Title: "Technical Requirements", Order: 3},
				SectionApplicableProducts:    {Title: "Applicable Products", Order: 4},
				SectionSupportingEvidence:    {Title: "Clinical Evidence", Order: 5},
				SectionImplementation:        {Title: "Implementation", Order: 6},
			},
		},
	}
}

// Validate checks the section tree and every reference.
func (c *UseCaseContent) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	for i := range c.FDAClearedProducts {
		if err := c.FDAClearedProducts[i].Validate(); err != nil {
			return err
		}
	}
	for _, s := range c.KeyStudies {
		if s.Title == "" {
			return dm.NewRequiredError("key study", "title")
		}
	}
	return nil
}

// UseCaseDocument is a complete three-tier clinical use case document.
type UseCaseDocument struct {
	ID       string         `json:"id"`
	Artifact ArtifactMeta   `json:"metadata_object"`
	Meta     UseCaseMeta    `json:"metadata_content"`
	Body     UseCaseContent `json:"content"`
}

// NewUseCaseDocument composes a use case document from tier-2 and
// tier-3 input. Any tier failure aborts construction with a
// CompositionError.
func NewUseCaseDocument(meta UseCaseMeta, body UseCaseContent) (*UseCaseDocument, error) {
	d := &UseCaseDocument{
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
func (d *UseCaseDocument) Validate() error {
	return composeTiers("use case document", &d.Artifact, &d.Meta, &d.Body)
}

// UseCaseSummary is the listing projection of a use case document.
type UseCaseSummary struct {
	Summary

	ClinicalSpecialty string   `json:"clinical_specialty,omitempty"`
	AnatomicalRegion  string   `json:"anatomical_region,omitempty"`
	Pathology         []string `json:"pathology,omitempty"`
}

// Summarize projects the use case into its listing shape without
// touching the document.
func (d *UseCaseDocument) Summarize() UseCaseSummary {
	var pathology []string
	if len(d.Meta.Pathology) > 0 {
		pathology = make([]string, len(d.Meta.Pathology))
		copy(pathology, d.Meta.Pathology)
	}
	return UseCaseSummary{
		Summary:           summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		ClinicalSpecialty: d.Meta.ClinicalSpecialty,
		AnatomicalRegion:  d.Meta.AnatomicalRegion,
		Pathology:         pathology,
	}
}
