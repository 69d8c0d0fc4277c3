package document

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

// ProductRef links a manufacturer card to one of the company's
// products.
type ProductRef struct {
	ProductID      string `json:"product_id,omitempty"`
	ProductName    string `json:"product_name"`
	ClinicalDomain string `json:"clinical_domain,omitempty"`
	FDAStatus      string `json:"fda_status,omitempty"`
}

// ClearanceRef links a manufacturer card to one clearance in the
// company's regulatory history.
type ClearanceRef struct {
	KNumber       string        `json:"k_number"`
	Product       string        `json:"product,omitempty"`
	ClearanceDate validate.Date `json:"clearance_date,omitzero"`
}

// Validate normalizes the referenced clearance number.
func (r *ClearanceRef) Validate() error {
	n, err := validate.KNumber(r.KNumber)
	if err != nil {
		return dm.AttachField("k_number", err)
	}
	r.KNumber = n
	return nil
}

// ManufacturerCardMeta is tier 2 for manufacturer cards.
type ManufacturerCardMeta struct {
	ContentMeta

	CompanyName  string `json:"company_name"`
	Headquarters string `json:"headquarters,omitempty"`
	Founded      string `json:"founded,omitempty"`
	Website      string `json:"website,omitempty"`
}

// Validate checks the shared tier-2 invariants, pins the document type,
// and requires the company name.
func (m *ManufacturerCardMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	const entity = "manufacturer card metadata"
	if m.DocumentType != TypeManufacturerCard {
		return dm.NewVocabularyError(entity, "document_type",
			string(m.DocumentType), string(TypeManufacturerCard))
	}
	if m.CompanyName == "" {
		return dm.NewRequiredError(entity, "company_name")
	}
	return nil
}

// Section keys for a manufacturer card body.
const (
	SectionCompanyOverview      = "company_overview"
	SectionProductPortfolio     = "product_portfolio"
	SectionRegulatoryHistory    = "regulatory_history"
	SectionResearchPartnerships = "research_partnerships"
)

// ManufacturerCardContent is tier 3 for manufacturer cards.
type ManufacturerCardContent struct {
	Content

	Description   string `json:"description,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
	FundingStage  string `json:"funding_stage,omitempty"`

	Products      []ProductRef   `json:"products,omitempty"`
	FDAClearances []ClearanceRef `json:"fda_clearances,omitempty"`

	AcademicCollaborations []string `json:"academic_collaborations,omitempty"`
	IndustryPartners       []string `json:"industry_partners,omitempty"`
}

// NewManufacturerCardContent returns a body pre-populated with the
// standard manufacturer card sections.
func NewManufacturerCardContent() ManufacturerCardContent {
	return ManufacturerCardContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionCompanyOverview:      {Title: "Company Overview", Order: 1},
				SectionProductPortfolio:     {Title: "Product Portfolio", Order: 2},
				SectionRegulatoryHistory:    {Title: "Regulatory History", Order: 3},
				SectionResearchPartnerships: {Title: "Research & Partnerships", Order: 4},
			},
		},
	}
}

// Validate checks the section tree and every reference.
func (c *ManufacturerCardContent) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	for _, p := range c.Products {
		if p.ProductName == "" {
			return dm.NewRequiredError("product reference", "product_name")
		}
	}
	for i := range c.FDAClearances {
		if err := c.FDAClearances[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ManufacturerCardDocument is a complete three-tier manufacturer card.
type ManufacturerCardDocument struct {
	ID       string                  `json:"id"`
	Artifact ArtifactMeta            `json:"metadata_object"`
	Meta     ManufacturerCardMeta    `json:"metadata_content"`
	Body     ManufacturerCardContent `json:"content"`
}

// NewManufacturerCardDocument composes a manufacturer card from tier-2
// and tier-3 input. Any tier failure aborts construction with a
// CompositionError.
func NewManufacturerCardDocument(meta ManufacturerCardMeta, body ManufacturerCardContent) (*ManufacturerCardDocument, error) {
	d := &ManufacturerCardDocument{
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
func (d *ManufacturerCardDocument) Validate() error {
	return composeTiers("manufacturer card", &d.Artifact, &d.Meta, &d.Body)
}

// ManufacturerCardSummary is the listing projection of a manufacturer
// card.
type ManufacturerCardSummary struct {
	Summary

	CompanyName  string `json:"company_name"`
	Headquarters string `json:"headquarters,omitempty"`
	Founded      string `json:"founded,omitempty"`
}

// Summarize projects the manufacturer card into its listing shape
// without touching the document.
func (d *ManufacturerCardDocument) Summarize() ManufacturerCardSummary {
	return ManufacturerCardSummary{
		Summary:      summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		CompanyName:  d.Meta.CompanyName,
		Headquarters: d.Meta.Headquarters,
		Founded:      d.Meta.Founded,
	}
}
