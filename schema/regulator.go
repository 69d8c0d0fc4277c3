package schema

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/validate"
)

// regulatorDescriptor is the canonical field table for regulators. All
// regulator shapes validate against it.
var regulatorDescriptor = Descriptor{
	Entity: "regulator",
	Fields: []Field{
		{Name: "id", Required: []Shape{ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "code", Required: []Shape{ShapeCreate, ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "name", Required: []Shape{ShapeCreate, ShapeResponse, ShapeSummary}, Summary: true},
		{Name: "full_name"},
		{Name: "country_code"},
		{Name: "region", Summary: true},
		{Name: "website"},
		{Name: "api_endpoint"},
		{Name: "is_active"},
	},
}

// RegulatorDescriptor exposes the regulator field table.
func RegulatorDescriptor() *Descriptor { return &regulatorDescriptor }

// Regulator is a governing body that oversees device authorization in its
// jurisdiction: FDA (US), EMA (EU), TGA (Australia), MHRA (UK), PMDA
// (Japan), and peers.
type Regulator struct {
	// Code is the short regulator code, e.g. "FDA", "EMA", "TGA".
	Code string `json:"code"`

	// Name is the short official name, e.g. "Food and Drug Administration".
	Name string `json:"name"`

	FullName    string `json:"full_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Region      string `json:"region,omitempty"`
	Website     string `json:"website,omitempty"`

	// APIEndpoint is the open-data integration endpoint, when the
	// regulator publishes one (e.g. OpenFDA).
	APIEndpoint string `json:"api_endpoint,omitempty"`

	IsActive bool `json:"is_active"`
}

// Validate checks required fields and normalizes the country code.
func (r *Regulator) Validate() error {
	if err := regulatorDescriptor.Validate(ShapeCreate, r); err != nil {
		return err
	}
	if r.CountryCode != "" {
		code, err := validate.CountryCode(r.CountryCode)
		if err != nil {
			return dm.AttachField("country_code", err)
		}
		r.CountryCode = code
	}
	return nil
}

// RegulatorUpdate is the partial-patch shape: every field optional, with
// absent and explicit-null kept apart on the wire.
type RegulatorUpdate struct {
	Code        optional.Value[string] `json:"code,omitzero"`
	Name        optional.Value[string] `json:"name,omitzero"`
	FullName    optional.Value[string] `json:"full_name,omitzero"`
	CountryCode optional.Value[string] `json:"country_code,omitzero"`
	Region      optional.Value[string] `json:"region,omitzero"`
	Website     optional.Value[string] `json:"website,omitzero"`
	APIEndpoint optional.Value[string] `json:"api_endpoint,omitzero"`
	IsActive    optional.Value[bool]   `json:"is_active,omitzero"`
}

// Validate applies full validation to every present field. A present
// country code is normalized in place.
func (u *RegulatorUpdate) Validate() error {
	if raw, ok := u.CountryCode.Get(); ok {
		code, err := validate.CountryCode(raw)
		if err != nil {
			return dm.AttachField("country_code", err)
		}
		u.CountryCode = optional.Of(code)
	}
	return nil
}

// RegulatorResponse is the persisted view: the base fields plus generated
// identity, timestamps, and counts computed by the serving layer.
type RegulatorResponse struct {
	ID string `json:"id"`
	Regulator
	Timestamped

	FrameworkCount            int `json:"framework_count"`
	ClassificationSystemCount int `json:"classification_system_count"`
}

// NewRegulatorResponse validates r and wraps it with a generated identity
// and fresh timestamps.
func NewRegulatorResponse(r Regulator) (*RegulatorResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &RegulatorResponse{
		ID:          uuid.NewString(),
		Regulator:   r,
		Timestamped: NewTimestamped(),
	}, nil
}

// Validate checks the response's required fields.
func (r *RegulatorResponse) Validate() error {
	if err := regulatorDescriptor.Validate(ShapeResponse, r); err != nil {
		return err
	}
	return r.Regulator.Validate()
}

// RegulatorSummary is the minimal regulator view for nested responses and
// list display.
type RegulatorSummary struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Summarize projects the response to its summary shape.
func (r *RegulatorResponse) Summarize() RegulatorSummary {
	return RegulatorSummary{
		ID:     r.ID,
		Code:   r.Code,
		Name:   r.Name,
		Region: r.Region,
	}
}

// RegulatorStats is the reporting projection over the regulator
// collection as a whole.
type RegulatorStats struct {
	TotalRegulators           int            `json:"total_regulators"`
	ActiveRegulators          int            `json:"active_regulators"`
	ByRegion                  map[string]int `json:"by_region"`
	ByCountry                 map[string]int `json:"by_country"`
	WithFrameworks            int            `json:"with_frameworks"`
	WithClassificationSystems int            `json:"with_classification_systems"`
}
