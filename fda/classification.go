package fda

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// ProductCodeRecord defines one three-letter FDA product code: the
// device category it names and the regulation it maps to.
type ProductCodeRecord struct {
	ProductCode string      `json:"product_code"`
	DeviceName  string      `json:"device_name"`
	DeviceClass DeviceClass `json:"device_class"`

	RegulationNumber string         `json:"regulation_number,omitempty"`
	SubmissionType   SubmissionType `json:"submission_type,omitempty"`
	ReviewPanel      ReviewPanel    `json:"review_panel,omitempty"`

	GMPExempt       bool `json:"gmp_exempt,omitempty"`
	PremarketExempt bool `json:"premarket_exempt,omitempty"`

	Definition string `json:"definition,omitempty"`
}

// Validate normalizes the product code and checks required fields and
// vocabularies.
func (p *ProductCodeRecord) Validate() error {
	const entity = "product code"
	if p.ProductCode == "" {
		return dm.NewRequiredError(entity, "product_code")
	}
	code, err := validate.ProductCode(p.ProductCode)
	if err != nil {
		return dm.AttachField("product_code", err)
	}
	p.ProductCode = code
	if p.DeviceName == "" {
		return dm.NewRequiredError(entity, "device_name")
	}
	if !p.DeviceClass.IsValid() {
		return dm.NewVocabularyError(entity, "device_class",
			string(p.DeviceClass), "device class 1, 2, or 3")
	}
	if p.SubmissionType != "" && !p.SubmissionType.IsValid() {
		return dm.NewVocabularyError(entity, "submission_type",
			string(p.SubmissionType), "an OpenFDA submission type")
	}
	if p.ReviewPanel != "" && !p.ReviewPanel.IsValid() {
		return dm.NewVocabularyError(entity, "review_panel",
			string(p.ReviewPanel), "a two-letter FDA review panel code")
	}
	return nil
}

// CFRReference returns the full CFR citation, or "" without a
// regulation number.
func (p *ProductCodeRecord) CFRReference() string {
	if p.RegulationNumber == "" {
		return ""
	}
	return "21 CFR " + p.RegulationNumber
}

// DeviceClassification is a complete OpenFDA device classification
// record, including exemptions and special flags.
type DeviceClassification struct {
	ProductCode string      `json:"product_code"`
	DeviceName  string      `json:"device_name"`
	DeviceClass DeviceClass `json:"device_class"`

	RegulationNumber string         `json:"regulation_number,omitempty"`
	SubmissionType   SubmissionType `json:"submission_type_id,omitempty"`
	ReviewPanel      ReviewPanel    `json:"review_panel,omitempty"`

	MedicalSpecialty            string `json:"medical_specialty,omitempty"`
	MedicalSpecialtyDescription string `json:"medical_specialty_description,omitempty"`

	// Y/N flags as carried by OpenFDA.
	GMPExemptFlag               string `json:"gmp_exempt_flag,omitempty"`
	PremarketExempt             string `json:"premarket_exempt,omitempty"`
	SummaryMalfunctionReporting string `json:"summary_malfunction_reporting,omitempty"`
	LifeSustainSupportFlag      string `json:"life_sustain_support_flag,omitempty"`
	ImplantFlag                 string `json:"implant_flag,omitempty"`

	Definition string `json:"definition,omitempty"`
}

// Validate normalizes the product code and checks required fields and
// vocabularies.
func (c *DeviceClassification) Validate() error {
	const entity = "device classification"
	if c.ProductCode == "" {
		return dm.NewRequiredError(entity, "product_code")
	}
	code, err := validate.ProductCode(c.ProductCode)
	if err != nil {
		return dm.AttachField("product_code", err)
	}
	c.ProductCode = code
	if c.DeviceName == "" {
		return dm.NewRequiredError(entity, "device_name")
	}
	if !c.DeviceClass.IsValid() {
		return dm.NewVocabularyError(entity, "device_class",
			string(c.DeviceClass), "device class 1, 2, or 3")
	}
	if c.SubmissionType != "" && !c.SubmissionType.IsValid() {
		return dm.NewVocabularyError(entity, "submission_type_id",
			string(c.SubmissionType), "an OpenFDA submission type")
	}
	if c.ReviewPanel != "" && !c.ReviewPanel.IsValid() {
		return dm.NewVocabularyError(entity, "review_panel",
			string(c.ReviewPanel), "a two-letter FDA review panel code")
	}
	return nil
}

// IsClass3 reports whether the device is Class III (high risk).
func (c *DeviceClassification) IsClass3() bool {
	return c.DeviceClass == DeviceClass3
}

// RequiresPMA reports whether the classification typically demands a
// premarket approval.
func (c *DeviceClassification) RequiresPMA() bool {
	return c.DeviceClass == DeviceClass3 && c.SubmissionType == SubmissionPMA
}

// IsLifeSustaining reports whether the device is flagged as
// life-sustaining or life-supporting.
func (c *DeviceClassification) IsLifeSustaining() bool {
	return c.LifeSustainSupportFlag == "Y" || c.LifeSustainSupportFlag == "y"
}

// ClassificationSystem is a jurisdiction-specific device taxonomy:
// CDRH, EMDN, GMDN, ARTG, and peers.
type ClassificationSystem struct {
	SystemCode  string `json:"system_code"`
	SystemName  string `json:"system_name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	OfficialURL string `json:"official_url,omitempty"`
	IsActive    bool   `json:"is_active"`

	// RegulatorID is empty for global systems like GMDN.
	RegulatorID string `json:"regulator_id,omitempty"`
}

// Validate checks required fields.
func (s *ClassificationSystem) Validate() error {
	const entity = "classification system"
	if s.SystemCode == "" {
		return dm.NewRequiredError(entity, "system_code")
	}
	if s.SystemName == "" {
		return dm.NewRequiredError(entity, "system_name")
	}
	return nil
}

// ClassificationSystemInfo is the nested system view carried inside
// classification responses.
type ClassificationSystemInfo struct {
	ID            string `json:"id"`
	SystemCode    string `json:"system_code"`
	SystemName    string `json:"system_name"`
	Version       string `json:"version,omitempty"`
	RegulatorCode string `json:"regulator_code,omitempty"`
}

// Classification is one code within a classification system, e.g. LLZ
// within CDRH or a five-digit term within GMDN.
type Classification struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	DeviceName  string `json:"device_name,omitempty"`

	// DeviceClass is system-specific: 1/2/3 for FDA, I/IIa/IIb/III for
	// EU MDR.
	DeviceClass  string              `json:"device_class,omitempty"`
	RiskCategory schema.RiskCategory `json:"risk_category,omitempty"`

	Definition       string `json:"definition,omitempty"`
	RegulationNumber string `json:"regulation_number,omitempty"`
	MedicalSpecialty string `json:"medical_specialty,omitempty"`
	ReviewPanel      string `json:"review_panel,omitempty"`
	TargetArea       string `json:"target_area,omitempty"`
	TechnicalMethod  string `json:"technical_method,omitempty"`
	IsActive         bool   `json:"is_active"`

	GMPExemptFlag          bool           `json:"gmp_exempt_flag,omitempty"`
	ImplantFlag            bool           `json:"implant_flag,omitempty"`
	LifeSustainSupportFlag bool           `json:"life_sustain_support_flag,omitempty"`
	SubmissionType         SubmissionType `json:"submission_type,omitempty"`
}

// Validate checks required fields and vocabularies.
func (c *Classification) Validate() error {
	const entity = "product classification"
	if c.Code == "" {
		return dm.NewRequiredError(entity, "code")
	}
	if c.Description == "" {
		return dm.NewRequiredError(entity, "description")
	}
	if c.RiskCategory != "" && !c.RiskCategory.IsValid() {
		return dm.NewVocabularyError(entity, "risk_category",
			string(c.RiskCategory), "low, moderate, or high")
	}
	if c.SubmissionType != "" && !c.SubmissionType.IsValid() {
		return dm.NewVocabularyError(entity, "submission_type",
			string(c.SubmissionType), "an OpenFDA submission type")
	}
	return nil
}

// ClassificationResponse is the persisted view with identity,
// timestamps, and the nested system.
type ClassificationResponse struct {
	ID string `json:"id"`
	Classification
	schema.Timestamped

	ClassificationSystemID string `json:"classification_system_id"`

	System *ClassificationSystemInfo `json:"classification_system,omitempty"`
}

// NewClassificationResponse validates c and wraps it with a generated
// identity and fresh timestamps.
func NewClassificationResponse(c Classification, systemID string) (*ClassificationResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &ClassificationResponse{
		ID:                     uuid.NewString(),
		Classification:         c,
		Timestamped:            schema.NewTimestamped(),
		ClassificationSystemID: systemID,
	}, nil
}

// FullCode returns the code prefixed with its system, e.g. "CDRH:LLZ",
// or the bare code when no system is attached.
func (r *ClassificationResponse) FullCode() string {
	if r.System != nil {
		return r.System.SystemCode + ":" + r.Code
	}
	return r.Code
}
