package usecase

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/fda"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// ApplicableProduct links a use case to an FDA-cleared product that
// serves it.
type ApplicableProduct struct {
	ProductID    string `json:"product_id,omitempty"`
	ProductName  string `json:"product_name"`
	Manufacturer string `json:"manufacturer,omitempty"`
	KNumber      string `json:"k_number,omitempty"`
}

// Validate requires the product name and normalizes the clearance
// number when one is linked.
func (p *ApplicableProduct) Validate() error {
	if p.ProductName == "" {
		return dm.NewRequiredError("applicable product", "product_name")
	}
	if p.KNumber != "" {
		n, err := validate.KNumber(p.KNumber)
		if err != nil {
			return dm.AttachField("k_number", err)
		}
		p.KNumber = n
	}
	return nil
}

// SupportingEvidence links a use case to a study backing it.
type SupportingEvidence struct {
	EvidenceID       string           `json:"evidence_id,omitempty"`
	Title            string           `json:"title"`
	EvidenceStrength EvidenceStrength `json:"evidence_strength,omitempty"`
	FindingsSummary  string           `json:"findings_summary,omitempty"`
	DOI              string           `json:"doi,omitempty"`
}

// Validate requires the title and checks the strength grading.
func (e *SupportingEvidence) Validate() error {
	if e.Title == "" {
		return dm.NewRequiredError("supporting evidence", "title")
	}
	if e.EvidenceStrength != "" && !e.EvidenceStrength.IsValid() {
		return dm.NewVocabularyError("supporting evidence", "evidence_strength",
			string(e.EvidenceStrength), "strong, moderate, limited, emerging, or theoretical")
	}
	return nil
}

// TechnicalRequirements describes what implementing a use case takes.
type TechnicalRequirements struct {
	ImagingModality      fda.Modality        `json:"imaging_modality,omitempty"`
	ImageCharacteristics string              `json:"image_characteristics,omitempty"`
	IntegrationTargets   []IntegrationTarget `json:"integration_targets,omitempty"`
	DeploymentModel      DeploymentModel     `json:"deployment_model,omitempty"`
	MinimumRequirements  string              `json:"minimum_requirements,omitempty"`
}

// Validate checks every vocabulary field that is set.
func (t *TechnicalRequirements) Validate() error {
	const entity = "technical requirements"
	if t.ImagingModality != "" && !t.ImagingModality.IsValid() {
		return dm.NewVocabularyError(entity, "imaging_modality",
			string(t.ImagingModality), "a recognized imaging modality")
	}
	for _, target := range t.IntegrationTargets {
		if !target.IsValid() {
			return dm.NewVocabularyError(entity, "integration_targets",
				string(target), "a recognized integration target")
		}
	}
	if t.DeploymentModel != "" && !t.DeploymentModel.IsValid() {
		return dm.NewVocabularyError(entity, "deployment_model",
			string(t.DeploymentModel), "cloud, on_premise, hybrid, or edge")
	}
	return nil
}

// ClinicalContext captures the workflow a use case lives in.
type ClinicalContext struct {
	WorkflowDescription string   `json:"workflow_description,omitempty"`
	PainPoints          []string `json:"pain_points,omitempty"`
	ValueProposition    string   `json:"value_proposition,omitempty"`
	TargetUsers         []string `json:"target_users,omitempty"`
}

// useCaseDescriptor is the canonical field table for use cases.
var useCaseDescriptor = schema.Descriptor{
	Entity: "use case",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse, schema.ShapeSummary}, Summary: true},
		{Name: "title", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse, schema.ShapeSummary}, Summary: true},
		{Name: "description"},
		{Name: "clinical_domain", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "clinical_specialty", Summary: true},
		{Name: "anatomical_region"},
		{Name: "pathology"},
		{Name: "category_ids"},
		{Name: "tags"},
		{Name: "status", Summary: true},
	},
}

// UseCaseDescriptor exposes the use case field table.
func UseCaseDescriptor() *schema.Descriptor { return &useCaseDescriptor }

// UseCase is the base record for a clinical AI use case.
type UseCase struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	ClinicalDomain    ClinicalDomain    `json:"clinical_domain"`
	ClinicalSpecialty ClinicalSpecialty `json:"clinical_specialty,omitempty"`
	AnatomicalRegion  string            `json:"anatomical_region,omitempty"`
	Pathology         []string          `json:"pathology,omitempty"`

	CategoryIDs []int64  `json:"category_ids,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Status defaults to draft when left empty.
	Status Status `json:"status,omitempty"`
}

// Validate checks required fields and every closed vocabulary. An
// empty status is defaulted to draft rather than rejected.
func (u *UseCase) Validate() error {
	if err := useCaseDescriptor.Validate(schema.ShapeCreate, u); err != nil {
		return err
	}
	const entity = "use case"
	if !u.ClinicalDomain.IsValid() {
		return dm.NewVocabularyError(entity, "clinical_domain",
			string(u.ClinicalDomain), "a recognized clinical domain")
	}
	if u.ClinicalSpecialty != "" && !u.ClinicalSpecialty.IsValid() {
		return dm.NewVocabularyError(entity, "clinical_specialty",
			string(u.ClinicalSpecialty), "a recognized clinical specialty")
	}
	if u.Status == "" {
		u.Status = StatusDraft
	}
	if !u.Status.IsValid() {
		return dm.NewVocabularyError(entity, "status",
			string(u.Status), "draft, in_review, published, archived, or deprecated")
	}
	return nil
}

// UseCaseCreate is the creation shape: the base record plus the
// optional structured context a curator may supply up front.
type UseCaseCreate struct {
	UseCase

	ClinicalContext       *ClinicalContext       `json:"clinical_context,omitempty"`
	TechnicalRequirements *TechnicalRequirements `json:"technical_requirements,omitempty"`
}

// Validate checks the base record and any supplied context.
func (c *UseCaseCreate) Validate() error {
	if err := c.UseCase.Validate(); err != nil {
		return err
	}
	if c.TechnicalRequirements != nil {
		return c.TechnicalRequirements.Validate()
	}
	return nil
}

// UseCaseUpdate is the partial-patch shape: every field optional, with
// absent and explicit-null kept apart on the wire.
type UseCaseUpdate struct {
	Title             optional.Value[string]            `json:"title,omitzero"`
	Description       optional.Value[string]            `json:"description,omitzero"`
	ClinicalDomain    optional.Value[ClinicalDomain]    `json:"clinical_domain,omitzero"`
	ClinicalSpecialty optional.Value[ClinicalSpecialty] `json:"clinical_specialty,omitzero"`
	AnatomicalRegion  optional.Value[string]            `json:"anatomical_region,omitzero"`
	Pathology         optional.Value[[]string]          `json:"pathology,omitzero"`
	CategoryIDs       optional.Value[[]int64]           `json:"category_ids,omitzero"`
	Tags              optional.Value[[]string]          `json:"tags,omitzero"`
	Status            optional.Value[Status]            `json:"status,omitzero"`
}

// Validate applies full validation to every present field.
func (u *UseCaseUpdate) Validate() error {
	const entity = "use case"
	if d, ok := u.ClinicalDomain.Get(); ok && !d.IsValid() {
		return dm.NewVocabularyError(entity, "clinical_domain",
			string(d), "a recognized clinical domain")
	}
	if s, ok := u.ClinicalSpecialty.Get(); ok && !s.IsValid() {
		return dm.NewVocabularyError(entity, "clinical_specialty",
			string(s), "a recognized clinical specialty")
	}
	if s, ok := u.Status.Get(); ok && !s.IsValid() {
		return dm.NewVocabularyError(entity, "status",
			string(s), "draft, in_review, published, archived, or deprecated")
	}
	return nil
}

// UseCaseResponse is the persisted view: the base record plus identity,
// audit metadata, structured context, and the product and evidence
// mappings curated for this use case.
type UseCaseResponse struct {
	ID string `json:"id"`
	UseCase
	schema.Audited

	ClinicalContext       *ClinicalContext       `json:"clinical_context,omitempty"`
	TechnicalRequirements *TechnicalRequirements `json:"technical_requirements,omitempty"`

	ApplicableProducts []ApplicableProduct  `json:"applicable_products,omitempty"`
	SupportingEvidence []SupportingEvidence `json:"supporting_evidence,omitempty"`

	ImplementationConsiderations string `json:"implementation_considerations,omitempty"`
	RegulatoryConsiderations     string `json:"regulatory_considerations,omitempty"`
}

// NewUseCaseResponse validates c and wraps it with a generated identity
// and audit metadata attributed to actor.
func NewUseCaseResponse(c UseCaseCreate, actor string) (*UseCaseResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &UseCaseResponse{
		ID:                    uuid.NewString(),
		UseCase:               c.UseCase,
		Audited:               schema.NewAudited(actor),
		ClinicalContext:       c.ClinicalContext,
		TechnicalRequirements: c.TechnicalRequirements,
	}, nil
}

// Validate checks the response's required fields and every mapping.
func (r *UseCaseResponse) Validate() error {
	if err := useCaseDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	if err := r.UseCase.Validate(); err != nil {
		return err
	}
	if r.TechnicalRequirements != nil {
		if err := r.TechnicalRequirements.Validate(); err != nil {
			return err
		}
	}
	for i := range r.ApplicableProducts {
		if err := r.ApplicableProducts[i].Validate(); err != nil {
			return err
		}
	}
	for i := range r.SupportingEvidence {
		if err := r.SupportingEvidence[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UseCaseSummary is the minimal use case view for list display.
type UseCaseSummary struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	ClinicalDomain    ClinicalDomain    `json:"clinical_domain"`
	ClinicalSpecialty ClinicalSpecialty `json:"clinical_specialty,omitempty"`
	Status            Status            `json:"status"`
}

// Summarize projects the response to its summary shape.
func (r *UseCaseResponse) Summarize() UseCaseSummary {
	return UseCaseSummary{
		ID:                r.ID,
		Title:             r.Title,
		ClinicalDomain:    r.ClinicalDomain,
		ClinicalSpecialty: r.ClinicalSpecialty,
		Status:            r.Status,
	}
}

// UseCaseStats is the reporting projection over the use case
// collection as a whole.
type UseCaseStats struct {
	TotalUseCases int            `json:"total_use_cases"`
	ByDomain      map[string]int `json:"by_domain"`
	ByStatus      map[string]int `json:"by_status"`
	WithProducts  int            `json:"with_products"`
	WithEvidence  int            `json:"with_evidence"`
}
