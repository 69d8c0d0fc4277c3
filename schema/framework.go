package schema

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
)

// AuthorizationType classifies how a framework grants market access.
type AuthorizationType string

const (
	AuthorizationTypeClearance         AuthorizationType = "clearance"
	AuthorizationTypeApproval          AuthorizationType = "approval"
	AuthorizationTypeRegistration      AuthorizationType = "registration"
	AuthorizationTypeNotification      AuthorizationType = "notification"
	AuthorizationTypeSelfCertification AuthorizationType = "self_certification"
)

// IsValid reports whether t is a recognized authorization type.
func (t AuthorizationType) IsValid() bool {
	switch t {
	case AuthorizationTypeClearance, AuthorizationTypeApproval,
		AuthorizationTypeRegistration, AuthorizationTypeNotification,
		AuthorizationTypeSelfCertification:
		return true
	}
	return false
}

var frameworkDescriptor = Descriptor{
	Entity: "regulatory framework",
	Fields: []Field{
		{Name: "id", Required: []Shape{ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "framework_code", Required: []Shape{ShapeCreate, ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "framework_name", Required: []Shape{ShapeCreate, ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "authorization_type", Required: []Shape{ShapeCreate, ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "requires_premarket_review"},
		{Name: "requires_clinical_data"},
		{Name: "description"},
		{Name: "typical_review_time_days"},
		{Name: "renewal_required"},
		{Name: "renewal_frequency_years"},
		{Name: "is_active"},
		{Name: "regulator_id", Required: []Shape{ShapeResponse}},
		// regulator_code is lifted from the nested regulator for display.
		{Name: "regulator_code", Summary: true},
	},
}

// FrameworkDescriptor exposes the regulatory-framework field table.
func FrameworkDescriptor() *Descriptor { return &frameworkDescriptor }

// Framework is a specific authorization pathway within a jurisdiction:
// FDA 510(k), FDA PMA, EU CE Mark, TGA ARTG.
type Framework struct {
	// FrameworkCode is the unique pathway code, e.g. "510K", "PMA",
	// "CE_MARK", "ARTG".
	FrameworkCode string `json:"framework_code"`

	FrameworkName     string            `json:"framework_name"`
	AuthorizationType AuthorizationType `json:"authorization_type"`

	RequiresPremarketReview bool `json:"requires_premarket_review"`
	RequiresClinicalData    bool `json:"requires_clinical_data"`

	Description           string `json:"description,omitempty"`
	TypicalReviewTimeDays int    `json:"typical_review_time_days,omitempty"`
	RenewalRequired       bool   `json:"renewal_required"`
	RenewalFrequencyYears int    `json:"renewal_frequency_years,omitempty"`
	IsActive              bool   `json:"is_active"`
}

// Validate checks required fields and the authorization-type vocabulary.
func (f *Framework) Validate() error {
	if err := frameworkDescriptor.Validate(ShapeCreate, f); err != nil {
		return err
	}
	if !f.AuthorizationType.IsValid() {
		return dm.NewVocabularyError("regulatory framework", "authorization_type",
			string(f.AuthorizationType),
			"one of clearance, approval, registration, notification, self_certification")
	}
	return nil
}

// FrameworkUpdate is the partial-patch shape for frameworks.
type FrameworkUpdate struct {
	FrameworkName           optional.Value[string]            `json:"framework_name,omitzero"`
	AuthorizationType       optional.Value[AuthorizationType] `json:"authorization_type,omitzero"`
	RequiresPremarketReview optional.Value[bool]              `json:"requires_premarket_review,omitzero"`
	RequiresClinicalData    optional.Value[bool]              `json:"requires_clinical_data,omitzero"`
	Description             optional.Value[string]            `json:"description,omitzero"`
	TypicalReviewTimeDays   optional.Value[int]               `json:"typical_review_time_days,omitzero"`
	RenewalRequired         optional.Value[bool]              `json:"renewal_required,omitzero"`
	RenewalFrequencyYears   optional.Value[int]               `json:"renewal_frequency_years,omitzero"`
	IsActive                optional.Value[bool]              `json:"is_active,omitzero"`
}

// Validate applies full validation to every present field.
func (u *FrameworkUpdate) Validate() error {
	if at, ok := u.AuthorizationType.Get(); ok && !at.IsValid() {
		return dm.NewVocabularyError("regulatory framework", "authorization_type",
			string(at),
			"one of clearance, approval, registration, notification, self_certification")
	}
	return nil
}

// FrameworkResponse is the persisted view with identity, timestamps, the
// owning regulator, and serving-layer counts.
type FrameworkResponse struct {
	ID string `json:"id"`
	Framework
	Timestamped

	RegulatorID string            `json:"regulator_id"`
	Regulator   *RegulatorSummary `json:"regulator,omitempty"`

	AuthorizationCount int `json:"authorization_count"`
}

// NewFrameworkResponse validates f and wraps it with a generated identity,
// the owning regulator id, and fresh timestamps.
func NewFrameworkResponse(f Framework, regulatorID string) (*FrameworkResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &FrameworkResponse{
		ID:          uuid.NewString(),
		Framework:   f,
		Timestamped: NewTimestamped(),
		RegulatorID: regulatorID,
	}, nil
}

// Validate checks the response's required fields.
func (r *FrameworkResponse) Validate() error {
	if err := frameworkDescriptor.Validate(ShapeResponse, r); err != nil {
		return err
	}
	return r.Framework.Validate()
}

// FrameworkSummary is the minimal framework view for nested responses.
type FrameworkSummary struct {
	ID                string            `json:"id"`
	FrameworkCode     string            `json:"framework_code"`
	FrameworkName     string            `json:"framework_name"`
	AuthorizationType AuthorizationType `json:"authorization_type"`
	RegulatorCode     string            `json:"regulator_code,omitempty"`
}

// Summarize projects the response to its summary shape.
func (r *FrameworkResponse) Summarize() FrameworkSummary {
	s := FrameworkSummary{
		ID:                r.ID,
		FrameworkCode:     r.FrameworkCode,
		FrameworkName:     r.FrameworkName,
		AuthorizationType: r.AuthorizationType,
	}
	if r.Regulator != nil {
		s.RegulatorCode = r.Regulator.Code
	}
	return s
}

// FrameworkStats is the reporting projection over the framework
// collection.
type FrameworkStats struct {
	TotalFrameworks          int            `json:"total_frameworks"`
	ActiveFrameworks         int            `json:"active_frameworks"`
	ByAuthorizationType      map[string]int `json:"by_authorization_type"`
	ByRegulator              map[string]int `json:"by_regulator"`
	RequiringPremarketReview int            `json:"requiring_premarket_review"`
	RequiringClinicalData    int            `json:"requiring_clinical_data"`
	RequiringRenewal         int            `json:"requiring_renewal"`
	AvgReviewTimeDays        float64        `json:"avg_review_time_days,omitempty"`
}
