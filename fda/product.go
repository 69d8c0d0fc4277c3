package fda

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

var productDescriptor = schema.Descriptor{
	Entity: "product",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "product_name", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "manufacturer_name", Summary: true},
		{Name: "brand_name"},
		{Name: "generic_name"},
		{Name: "catalog_number"},
		{Name: "device_description"},
		{Name: "intended_use"},
		{Name: "is_active"},
	},
}

// ProductDescriptor exposes the product field table.
func ProductDescriptor() *schema.Descriptor { return &productDescriptor }

// Product is a marketed medical device with basic identification and
// manufacturer information.
type Product struct {
	ProductName      string `json:"product_name"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`
	BrandName        string `json:"brand_name,omitempty"`
	GenericName      string `json:"generic_name,omitempty"`
	CatalogNumber    string `json:"catalog_number,omitempty"`

	DeviceDescription string `json:"device_description,omitempty"`
	IntendedUse       string `json:"intended_use,omitempty"`

	IsActive bool `json:"is_active"`
}

// Validate checks required fields.
func (p *Product) Validate() error {
	return productDescriptor.Validate(schema.ShapeCreate, p)
}

// ProductCreate adds the owning manufacturer reference to the base
// shape. References are identifier strings only; resolution is the
// consuming application's concern.
type ProductCreate struct {
	Product

	ManufacturerID string `json:"manufacturer_id,omitempty"`
}

// ProductResponse is the persisted view with identity, timestamps, and
// serving-layer counts.
type ProductResponse struct {
	ID string `json:"id"`
	Product
	schema.Timestamped

	ManufacturerID string `json:"manufacturer_id,omitempty"`

	ClearanceCount        int `json:"clearance_count"`
	RegulatoryStatusCount int `json:"regulatory_status_count"`
}

// NewProductResponse validates p and wraps it with a generated identity
// and fresh timestamps.
func NewProductResponse(p ProductCreate) (*ProductResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &ProductResponse{
		ID:             uuid.NewString(),
		Product:        p.Product,
		Timestamped:    schema.NewTimestamped(),
		ManufacturerID: p.ManufacturerID,
	}, nil
}

// Validate checks the response's required fields.
func (r *ProductResponse) Validate() error {
	if err := productDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	return r.Product.Validate()
}

// ProductSummary is the list-display view of a product.
type ProductSummary struct {
	ID               string `json:"id"`
	ProductName      string `json:"product_name"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`
}

// Summarize projects the response to its summary shape.
func (r *ProductResponse) Summarize() ProductSummary {
	return ProductSummary{
		ID:               r.ID,
		ProductName:      r.ProductName,
		ManufacturerName: r.ManufacturerName,
	}
}

// RegulatorInfo is the nested regulator view carried inside status
// responses.
type RegulatorInfo struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// ClassificationInfo is the nested classification view carried inside
// status responses.
type ClassificationInfo struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	DeviceClass string `json:"device_class,omitempty"`
	SystemCode  string `json:"system_code,omitempty"`
}

// ProductInfo is the nested product view carried inside status
// responses.
type ProductInfo struct {
	ID               string `json:"id"`
	ProductName      string `json:"product_name"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`
}

var regulatoryStatusDescriptor = schema.Descriptor{
	Entity: "product regulatory status",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}},
		{Name: "regulatory_status", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}},
		{Name: "classification_id"},
		{Name: "status_date"},
		{Name: "status_reason"},
		{Name: "notes"},
		{Name: "is_active"},
		{Name: "product_id", Required: []schema.Shape{schema.ShapeResponse}},
		{Name: "regulator_id", Required: []schema.Shape{schema.ShapeResponse}},
	},
}

// RegulatoryStatusBase tracks a product's standing with one regulatory
// authority.
type RegulatoryStatusBase struct {
	RegulatoryStatus schema.RegulatoryStatus `json:"regulatory_status"`

	StatusDate   validate.Date `json:"status_date,omitzero"`
	StatusReason string        `json:"status_reason,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	IsActive     bool          `json:"is_active"`
}

// Validate checks required fields and the status vocabulary.
func (s *RegulatoryStatusBase) Validate() error {
	if err := regulatoryStatusDescriptor.Validate(schema.ShapeCreate, s); err != nil {
		return err
	}
	if !s.RegulatoryStatus.IsValid() {
		return dm.NewVocabularyError(regulatoryStatusDescriptor.Entity, "regulatory_status",
			string(s.RegulatoryStatus),
			"one of approved, pending, rejected, withdrawn, suspended")
	}
	return nil
}

// RegulatoryStatusCreate adds the product and regulator references.
type RegulatoryStatusCreate struct {
	RegulatoryStatusBase

	ProductID        string `json:"product_id"`
	RegulatorID      string `json:"regulator_id"`
	ClassificationID string `json:"classification_id,omitempty"`
}

// Validate checks the base fields and the required references.
func (c *RegulatoryStatusCreate) Validate() error {
	if err := c.RegulatoryStatusBase.Validate(); err != nil {
		return err
	}
	if c.ProductID == "" {
		return dm.NewRequiredError(regulatoryStatusDescriptor.Entity, "product_id")
	}
	if c.RegulatorID == "" {
		return dm.NewRequiredError(regulatoryStatusDescriptor.Entity, "regulator_id")
	}
	return nil
}

// RegulatoryStatusUpdate is the partial-patch shape for status records.
type RegulatoryStatusUpdate struct {
	RegulatoryStatus optional.Value[schema.RegulatoryStatus] `json:"regulatory_status,omitzero"`
	ClassificationID optional.Value[string]                  `json:"classification_id,omitzero"`
	StatusDate       optional.Value[validate.Date]           `json:"status_date,omitzero"`
	StatusReason     optional.Value[string]                  `json:"status_reason,omitzero"`
	Notes            optional.Value[string]                  `json:"notes,omitzero"`
	IsActive         optional.Value[bool]                    `json:"is_active,omitzero"`
}

// Validate applies full validation to every present field.
func (u *RegulatoryStatusUpdate) Validate() error {
	if rs, ok := u.RegulatoryStatus.Get(); ok && !rs.IsValid() {
		return dm.NewVocabularyError(regulatoryStatusDescriptor.Entity, "regulatory_status",
			string(rs), "one of approved, pending, rejected, withdrawn, suspended")
	}
	return nil
}

// RegulatoryStatusResponse is the persisted view with nested regulator,
// classification, and product info.
type RegulatoryStatusResponse struct {
	ID string `json:"id"`
	RegulatoryStatusBase
	schema.Timestamped

	ProductID        string `json:"product_id"`
	RegulatorID      string `json:"regulator_id"`
	ClassificationID string `json:"classification_id,omitempty"`

	Regulator      *RegulatorInfo      `json:"regulator,omitempty"`
	Classification *ClassificationInfo `json:"classification,omitempty"`
	Product        *ProductInfo        `json:"product,omitempty"`
}

// NewRegulatoryStatusResponse validates c and wraps it with a generated
// identity and fresh timestamps.
func NewRegulatoryStatusResponse(c RegulatoryStatusCreate) (*RegulatoryStatusResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &RegulatoryStatusResponse{
		ID:                   uuid.NewString(),
		RegulatoryStatusBase: c.RegulatoryStatusBase,
		Timestamped:          schema.NewTimestamped(),
		ProductID:            c.ProductID,
		RegulatorID:          c.RegulatorID,
		ClassificationID:     c.ClassificationID,
	}, nil
}

// RegulatoryStatusStats is the reporting projection over status records.
type RegulatoryStatusStats struct {
	TotalStatuses int            `json:"total_statuses"`
	TotalProducts int            `json:"total_products"`
	ByRegulator   map[string]int `json:"by_regulator"`
	ByStatus      map[string]int `json:"by_status"`
	ActiveCount   int            `json:"active_count"`
	InactiveCount int            `json:"inactive_count"`
}
