package fda

import (
	"strings"

	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// PredicateDevice is a legally marketed device cited in a 510(k) to
// demonstrate substantial equivalence.
type PredicateDevice struct {
	KNumber           string `json:"k_number,omitempty"`
	PMANumber         string `json:"pma_number,omitempty"`
	DeviceName        string `json:"device_name,omitempty"`
	Manufacturer      string `json:"manufacturer,omitempty"`
	ComparisonSummary string `json:"comparison_summary,omitempty"`
}

// Validate normalizes the predicate's identifiers when present.
func (p *PredicateDevice) Validate() error {
	if p.KNumber != "" {
		k, err := validate.KNumber(p.KNumber)
		if err != nil {
			return dm.AttachField("k_number", err)
		}
		p.KNumber = k
	}
	if p.PMANumber != "" {
		pma, err := validate.PMANumber(p.PMANumber)
		if err != nil {
			return dm.AttachField("pma_number", err)
		}
		p.PMANumber = pma
	}
	return nil
}

// ClearanceBase carries the fields common to every FDA premarket
// pathway. Wire names match the OpenFDA Device 510k API.
type ClearanceBase struct {
	DeviceName       string      `json:"device_name"`
	DeviceClass      DeviceClass `json:"device_class,omitempty"`
	ProductCode      string      `json:"product_code,omitempty"`
	RegulationNumber string      `json:"regulation_number,omitempty"`

	SubmissionType SubmissionType `json:"submission_type,omitempty"`
	ReviewPanel    ReviewPanel    `json:"review_panel,omitempty"`

	// Applicant submits the application; ManufacturerName makes the
	// device. The two often but not always coincide.
	Applicant        string `json:"applicant,omitempty"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`

	IndicationsForUse  string `json:"indications_for_use,omitempty"`
	IntendedUseSummary string `json:"intended_use_summary,omitempty"`
}

// validateBase normalizes and checks the shared fields. entity names the
// concrete record kind in error messages.
func (b *ClearanceBase) validateBase(entity string) error {
	if b.DeviceName == "" {
		return dm.NewRequiredError(entity, "device_name")
	}
	if b.DeviceClass != "" && !b.DeviceClass.IsValid() {
		return dm.NewVocabularyError(entity, "device_class",
			string(b.DeviceClass), "device class 1, 2, or 3")
	}
	if b.ProductCode != "" {
		code, err := validate.ProductCode(b.ProductCode)
		if err != nil {
			return dm.AttachField("product_code", err)
		}
		b.ProductCode = code
	}
	if b.SubmissionType != "" && !b.SubmissionType.IsValid() {
		return dm.NewVocabularyError(entity, "submission_type",
			string(b.SubmissionType), "an OpenFDA submission type")
	}
	if b.ReviewPanel != "" && !b.ReviewPanel.IsValid() {
		return dm.NewVocabularyError(entity, "review_panel",
			string(b.ReviewPanel), "a two-letter FDA review panel code")
	}
	return nil
}

var clearance510KDescriptor = schema.Descriptor{
	Entity: "510(k) clearance",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "k_number", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "device_name", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "device_class", Summary: true},
		{Name: "product_code", Summary: true},
		{Name: "regulation_number"},
		{Name: "submission_type"},
		{Name: "review_panel"},
		{Name: "applicant", Summary: true},
		{Name: "manufacturer_name"},
		{Name: "indications_for_use"},
		{Name: "intended_use_summary"},
		{Name: "date_received"},
		{Name: "decision_date", Summary: true},
		{Name: "decision_code"},
		{Name: "decision_description"},
		{Name: "predicate_devices"},
		{Name: "statement_or_summary"},
		{Name: "third_party_flag"},
	},
}

// Clearance510KDescriptor exposes the 510(k) field table.
func Clearance510KDescriptor() *schema.Descriptor { return &clearance510KDescriptor }

// Clearance510K is an FDA 510(k) premarket notification record
// (21 CFR Part 807 Subpart E).
type Clearance510K struct {
	ClearanceBase

	// KNumber is the FDA-assigned submission number. Prefixes: K for a
	// 510(k), BK for a 510(k) reviewed by CBER, DEN for a De Novo.
	KNumber string `json:"k_number"`

	DateReceived validate.Date `json:"date_received,omitzero"`
	DecisionDate validate.Date `json:"decision_date,omitzero"`

	// DecisionCode is the FDA decision, e.g. "SESE" for substantially
	// equivalent.
	DecisionCode        string `json:"decision_code,omitempty"`
	DecisionDescription string `json:"decision_description,omitempty"`

	PredicateDevices []PredicateDevice `json:"predicate_devices,omitempty"`

	StatementOrSummary string `json:"statement_or_summary,omitempty"`
	ThirdPartyFlag     bool   `json:"third_party_flag,omitempty"`
}

// NewClearance510K validates and normalizes a raw clearance record.
func NewClearance510K(raw Clearance510K) (*Clearance510K, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Validate normalizes every identifier and checks required fields and
// vocabularies. It is safe to call repeatedly.
func (c *Clearance510K) Validate() error {
	if err := clearance510KDescriptor.Validate(schema.ShapeCreate, c); err != nil {
		return err
	}
	if err := c.validateBase(clearance510KDescriptor.Entity); err != nil {
		return err
	}
	k, err := validate.KNumber(c.KNumber)
	if err != nil {
		return dm.AttachField("k_number", err)
	}
	c.KNumber = k
	for i := range c.PredicateDevices {
		if err := c.PredicateDevices[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SetKNumber assigns a new submission number through the validator, so
// mutation cannot introduce a malformed identifier.
func (c *Clearance510K) SetKNumber(value string) error {
	k, err := validate.KNumber(value)
	if err != nil {
		return dm.AttachField("k_number", err)
	}
	c.KNumber = k
	return nil
}

// ClearanceType derives the premarket pathway from the submission
// number prefix.
func (c *Clearance510K) ClearanceType() ClearanceType {
	t, _ := ClearanceTypeFromNumber(c.KNumber)
	return t
}

// IsDeNovo reports whether the record is a De Novo classification.
func (c *Clearance510K) IsDeNovo() bool {
	return strings.HasPrefix(strings.ToUpper(c.KNumber), "DEN")
}

// IsCleared reports whether the device was found substantially
// equivalent. Without a decision code, a decision date alone counts.
func (c *Clearance510K) IsCleared() bool {
	if c.DecisionCode != "" {
		code := strings.ToUpper(c.DecisionCode)
		return code == "SESE" || code == "SE"
	}
	return !c.DecisionDate.IsZero()
}

// Clearance510KUpdate is the partial-patch shape for 510(k) records.
type Clearance510KUpdate struct {
	KNumber            optional.Value[string]            `json:"k_number,omitzero"`
	DeviceName         optional.Value[string]            `json:"device_name,omitzero"`
	DeviceClass        optional.Value[DeviceClass]       `json:"device_class,omitzero"`
	ProductCode        optional.Value[string]            `json:"product_code,omitzero"`
	RegulationNumber   optional.Value[string]            `json:"regulation_number,omitzero"`
	SubmissionType     optional.Value[SubmissionType]    `json:"submission_type,omitzero"`
	ReviewPanel        optional.Value[ReviewPanel]       `json:"review_panel,omitzero"`
	Applicant          optional.Value[string]            `json:"applicant,omitzero"`
	ManufacturerName   optional.Value[string]            `json:"manufacturer_name,omitzero"`
	IndicationsForUse  optional.Value[string]            `json:"indications_for_use,omitzero"`
	DateReceived       optional.Value[validate.Date]     `json:"date_received,omitzero"`
	DecisionDate       optional.Value[validate.Date]     `json:"decision_date,omitzero"`
	DecisionCode       optional.Value[string]            `json:"decision_code,omitzero"`
	PredicateDevices   optional.Value[[]PredicateDevice] `json:"predicate_devices,omitzero"`
	StatementOrSummary optional.Value[string]            `json:"statement_or_summary,omitzero"`
	ThirdPartyFlag     optional.Value[bool]              `json:"third_party_flag,omitzero"`
}

// Validate applies full validation to every present field; absent fields
// are left untouched.
func (u *Clearance510KUpdate) Validate() error {
	if raw, ok := u.KNumber.Get(); ok {
		k, err := validate.KNumber(raw)
		if err != nil {
			return dm.AttachField("k_number", err)
		}
		u.KNumber = optional.Of(k)
	}
	if raw, ok := u.ProductCode.Get(); ok {
		code, err := validate.ProductCode(raw)
		if err != nil {
			return dm.AttachField("product_code", err)
		}
		u.ProductCode = optional.Of(code)
	}
	if dc, ok := u.DeviceClass.Get(); ok && !dc.IsValid() {
		return dm.NewVocabularyError("510(k) clearance", "device_class",
			string(dc), "device class 1, 2, or 3")
	}
	if st, ok := u.SubmissionType.Get(); ok && !st.IsValid() {
		return dm.NewVocabularyError("510(k) clearance", "submission_type",
			string(st), "an OpenFDA submission type")
	}
	if rp, ok := u.ReviewPanel.Get(); ok && !rp.IsValid() {
		return dm.NewVocabularyError("510(k) clearance", "review_panel",
			string(rp), "a two-letter FDA review panel code")
	}
	if preds, ok := u.PredicateDevices.Get(); ok {
		for i := range preds {
			if err := preds[i].Validate(); err != nil {
				return err
			}
		}
		u.PredicateDevices = optional.Of(preds)
	}
	return nil
}

// Clearance510KResponse is the persisted view with identity and audit
// fields.
type Clearance510KResponse struct {
	ID string `json:"id"`
	Clearance510K
	schema.Audited
}

// NewClearance510KResponse validates the clearance and wraps it with a
// generated identity and audit trail for actor.
func NewClearance510KResponse(c Clearance510K, actor string) (*Clearance510KResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Clearance510KResponse{
		ID:            uuid.NewString(),
		Clearance510K: c,
		Audited:       schema.NewAudited(actor),
	}, nil
}

// Validate checks the response's required fields.
func (r *Clearance510KResponse) Validate() error {
	if err := clearance510KDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	return r.Clearance510K.Validate()
}

// Clearance510KSummary is the list-display view of a 510(k) record.
type Clearance510KSummary struct {
	ID           string        `json:"id"`
	KNumber      string        `json:"k_number"`
	DeviceName   string        `json:"device_name"`
	DeviceClass  DeviceClass   `json:"device_class,omitempty"`
	ProductCode  string        `json:"product_code,omitempty"`
	Applicant    string        `json:"applicant,omitempty"`
	DecisionDate validate.Date `json:"decision_date,omitzero"`
}

// Summarize projects the response to its summary shape.
func (r *Clearance510KResponse) Summarize() Clearance510KSummary {
	return Clearance510KSummary{
		ID:           r.ID,
		KNumber:      r.KNumber,
		DeviceName:   r.DeviceName,
		DeviceClass:  r.DeviceClass,
		ProductCode:  r.ProductCode,
		Applicant:    r.Applicant,
		DecisionDate: r.DecisionDate,
	}
}

// PMAClearance is an FDA Premarket Approval record (21 CFR Part 814),
// the most stringent device marketing application, typically for Class
// III devices.
type PMAClearance struct {
	ClearanceBase

	// PMANumber is the FDA-assigned approval number, P plus six digits.
	PMANumber string `json:"pma_number"`

	DateReceived validate.Date `json:"date_received,omitzero"`
	DecisionDate validate.Date `json:"decision_date,omitzero"`

	SupplementNumber string `json:"supplement_number,omitempty"`
	SupplementType   string `json:"supplement_type,omitempty"`
}

// NewPMAClearance validates and normalizes a raw PMA record.
func NewPMAClearance(raw PMAClearance) (*PMAClearance, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Validate normalizes the PMA number and checks the shared fields.
func (c *PMAClearance) Validate() error {
	const entity = "PMA approval"
	if c.PMANumber == "" {
		return dm.NewRequiredError(entity, "pma_number")
	}
	if err := c.validateBase(entity); err != nil {
		return err
	}
	pma, err := validate.PMANumber(c.PMANumber)
	if err != nil {
		return dm.AttachField("pma_number", err)
	}
	c.PMANumber = pma
	return nil
}

// IsSupplement reports whether the record is a PMA supplement rather
// than an original approval.
func (c *PMAClearance) IsSupplement() bool {
	return c.SupplementNumber != ""
}

// DeNovoClearance is an FDA De Novo classification request record
// (21 CFR 860.220), the pathway for novel low-to-moderate risk devices
// without a predicate.
type DeNovoClearance struct {
	ClearanceBase

	// DeNovoNumber is DEN plus six digits.
	DeNovoNumber string `json:"de_novo_number"`

	DateReceived validate.Date `json:"date_received,omitzero"`
	DecisionDate validate.Date `json:"decision_date,omitzero"`

	// A granted De Novo establishes a new product code and regulation.
	NewProductCode      string `json:"new_product_code,omitempty"`
	NewRegulationNumber string `json:"new_regulation_number,omitempty"`
}

// NewDeNovoClearance validates and normalizes a raw De Novo record.
func NewDeNovoClearance(raw DeNovoClearance) (*DeNovoClearance, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Validate normalizes the De Novo number and checks the shared fields.
func (c *DeNovoClearance) Validate() error {
	const entity = "De Novo classification"
	if c.DeNovoNumber == "" {
		return dm.NewRequiredError(entity, "de_novo_number")
	}
	if err := c.validateBase(entity); err != nil {
		return err
	}
	den, err := validate.DeNovoNumber(c.DeNovoNumber)
	if err != nil {
		return dm.AttachField("de_novo_number", err)
	}
	c.DeNovoNumber = den
	if c.NewProductCode != "" {
		code, err := validate.ProductCode(c.NewProductCode)
		if err != nil {
			return dm.AttachField("new_product_code", err)
		}
		c.NewProductCode = code
	}
	return nil
}
