package fda

import (
	"strings"

	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// Address is a manufacturer address in OpenFDA vocabulary. Field names
// match the Device API exactly for direct mapping.
type Address struct {
	Address1   string `json:"manufacturer_address_1,omitempty"`
	Address2   string `json:"manufacturer_address_2,omitempty"`
	City       string `json:"manufacturer_city,omitempty"`
	State      string `json:"manufacturer_state,omitempty"`
	PostalCode string `json:"manufacturer_postal_code,omitempty"`

	// Country is an ISO 3166-1 alpha-2 code.
	Country string `json:"manufacturer_country,omitempty"`
}

// Validate normalizes the country code when present.
func (a *Address) Validate() error {
	if a.Country != "" {
		code, err := validate.CountryCode(a.Country)
		if err != nil {
			return dm.AttachField("manufacturer_country", err)
		}
		a.Country = code
	}
	return nil
}

var manufacturerDescriptor = schema.Descriptor{
	Entity: "manufacturer",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "manufacturer_name", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "applicant", Summary: true},
		{Name: "fei_number"},
		{Name: "registration_number"},
		{Name: "contact_name"},
		{Name: "contact_email"},
		{Name: "contact_phone"},
		{Name: "address"},
		{Name: "website"},
		// country is lifted from the nested address for list display.
		{Name: "country", Summary: true},
	},
}

// ManufacturerDescriptor exposes the manufacturer field table.
func ManufacturerDescriptor() *schema.Descriptor { return &manufacturerDescriptor }

// Manufacturer is the entity of record responsible for a device.
// ManufacturerName makes the device; Applicant submits the 510(k) and
// may be a third party or consultant.
type Manufacturer struct {
	ManufacturerName string `json:"manufacturer_name"`
	Applicant        string `json:"applicant,omitempty"`

	// FEINumbers are ten-digit Facility Establishment Identifiers; a
	// manufacturer with several facilities carries several.
	FEINumbers          []string `json:"fei_number,omitempty"`
	RegistrationNumbers []string `json:"registration_number,omitempty"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	Address *Address `json:"address,omitempty"`

	Website string `json:"website,omitempty"`
}

// Validate checks required fields and the nested address.
func (m *Manufacturer) Validate() error {
	if err := manufacturerDescriptor.Validate(schema.ShapeCreate, m); err != nil {
		return err
	}
	if m.Address != nil {
		if err := m.Address.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ManufacturerUpdate is the partial-patch shape for manufacturers.
type ManufacturerUpdate struct {
	ManufacturerName    optional.Value[string]   `json:"manufacturer_name,omitzero"`
	Applicant           optional.Value[string]   `json:"applicant,omitzero"`
	FEINumbers          optional.Value[[]string] `json:"fei_number,omitzero"`
	RegistrationNumbers optional.Value[[]string] `json:"registration_number,omitzero"`
	ContactName         optional.Value[string]   `json:"contact_name,omitzero"`
	ContactEmail        optional.Value[string]   `json:"contact_email,omitzero"`
	ContactPhone        optional.Value[string]   `json:"contact_phone,omitzero"`
	Address             optional.Value[Address]  `json:"address,omitzero"`
	Website             optional.Value[string]   `json:"website,omitzero"`
}

// Validate applies full validation to every present field.
func (u *ManufacturerUpdate) Validate() error {
	if addr, ok := u.Address.Get(); ok {
		if err := addr.Validate(); err != nil {
			return err
		}
		u.Address = optional.Of(addr)
	}
	return nil
}

// ManufacturerResponse is the persisted view with identity and audit
// fields.
type ManufacturerResponse struct {
	ID string `json:"id"`
	Manufacturer
	schema.Audited
}

// NewManufacturerResponse validates m and wraps it with a generated
// identity and audit trail for actor.
func NewManufacturerResponse(m Manufacturer, actor string) (*ManufacturerResponse, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &ManufacturerResponse{
		ID:           uuid.NewString(),
		Manufacturer: m,
		Audited:      schema.NewAudited(actor),
	}, nil
}

// Validate checks the response's required fields.
func (r *ManufacturerResponse) Validate() error {
	if err := manufacturerDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	return r.Manufacturer.Validate()
}

// IsUSBased reports whether the manufacturer's address is in the US.
func (m *Manufacturer) IsUSBased() bool {
	return m.Address != nil && strings.ToUpper(m.Address.Country) == "US"
}

// ApplicantIsManufacturer reports whether the applicant and the
// manufacturer are the same entity. An unspecified applicant counts as
// the manufacturer.
func (m *Manufacturer) ApplicantIsManufacturer() bool {
	if m.Applicant == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(m.Applicant), strings.TrimSpace(m.ManufacturerName))
}

// DisplayName is the manufacturer name, annotated with the applicant
// when a different entity filed.
func (m *Manufacturer) DisplayName() string {
	if m.Applicant != "" && !m.ApplicantIsManufacturer() {
		return m.ManufacturerName + " (via " + m.Applicant + ")"
	}
	return m.ManufacturerName
}

// ManufacturerSummary is the list-display view of a manufacturer.
type ManufacturerSummary struct {
	ID               string `json:"id"`
	ManufacturerName string `json:"manufacturer_name"`
	Applicant        string `json:"applicant,omitempty"`
	Country          string `json:"country,omitempty"`
}

// Summarize projects the response to its summary shape.
func (r *ManufacturerResponse) Summarize() ManufacturerSummary {
	s := ManufacturerSummary{
		ID:               r.ID,
		ManufacturerName: r.ManufacturerName,
		Applicant:        r.Applicant,
	}
	if r.Address != nil {
		s.Country = r.Address.Country
	}
	return s
}
