package fda

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// RecallStatus is the FDA recall lifecycle state.
type RecallStatus string

const (
	RecallOngoing    RecallStatus = "Ongoing"
	RecallCompleted  RecallStatus = "Completed"
	RecallTerminated RecallStatus = "Terminated"
	RecallPending    RecallStatus = "Pending"
)

// IsValid reports whether s is a recognized recall status.
func (s RecallStatus) IsValid() bool {
	switch s {
	case RecallOngoing, RecallCompleted, RecallTerminated, RecallPending:
		return true
	}
	return false
}

// RecallClass grades the health hazard of a recall. Class I is the most
// serious; Class III is unlikely to cause adverse health consequences.
type RecallClass string

const (
	RecallClassI   RecallClass = "Class I"
	RecallClassII  RecallClass = "Class II"
	RecallClassIII RecallClass = "Class III"
)

// IsValid reports whether c is a recognized recall class.
func (c RecallClass) IsValid() bool {
	switch c {
	case RecallClassI, RecallClassII, RecallClassIII:
		return true
	}
	return false
}

// RecallType is the kind of recall action taken.
type RecallType string

const (
	RecallTypeRecall           RecallType = "Recall"
	RecallTypeCorrection       RecallType = "Correction"
	RecallTypeRemoval          RecallType = "Removal"
	RecallTypeMarketWithdrawal RecallType = "Market Withdrawal"
)

// IsValid reports whether t is a recognized recall type.
func (t RecallType) IsValid() bool {
	switch t {
	case RecallTypeRecall, RecallTypeCorrection, RecallTypeRemoval,
		RecallTypeMarketWithdrawal:
		return true
	}
	return false
}

var recallDescriptor = schema.Descriptor{
	Entity: "device recall",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "recall_number", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "event_id"},
		{Name: "recall_class", Summary: true},
		{Name: "recall_status", Summary: true},
		{Name: "recall_type"},
		{Name: "product_description", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "product_code"},
		{Name: "k_numbers"},
		{Name: "pma_numbers"},
		{Name: "recalling_firm", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "firm_fei_number"},
		{Name: "reason_for_recall"},
		{Name: "root_cause_description"},
		{Name: "action"},
		{Name: "distribution_pattern"},
		{Name: "product_quantity"},
		{Name: "recall_initiation_date"},
		{Name: "center_classification_date"},
		{Name: "termination_date"},
		{Name: "additional_info_contact"},
		{Name: "code_info"},
	},
}

// RecallDescriptor exposes the recall field table.
func RecallDescriptor() *schema.Descriptor { return &recallDescriptor }

// Recall is a device recall, correction, or removal action, aligned
// with the OpenFDA Device Recall API (21 CFR Part 7).
type Recall struct {
	// RecallNumber is the FDA-assigned number, e.g. "Z-1234-2024".
	RecallNumber string `json:"recall_number"`

	// EventID links related recalls to one event.
	EventID string `json:"event_id,omitempty"`

	RecallClass  RecallClass  `json:"recall_class,omitempty"`
	RecallStatus RecallStatus `json:"recall_status,omitempty"`
	RecallType   RecallType   `json:"recall_type,omitempty"`

	ProductDescription string   `json:"product_description"`
	ProductCode        string   `json:"product_code,omitempty"`
	KNumbers           []string `json:"k_numbers,omitempty"`
	PMANumbers         []string `json:"pma_numbers,omitempty"`

	RecallingFirm string `json:"recalling_firm"`
	FirmFEINumber string `json:"firm_fei_number,omitempty"`

	ReasonForRecall      string `json:"reason_for_recall,omitempty"`
	RootCauseDescription string `json:"root_cause_description,omitempty"`
	Action               string `json:"action,omitempty"`

	DistributionPattern string `json:"distribution_pattern,omitempty"`
	ProductQuantity     string `json:"product_quantity,omitempty"`

	RecallInitiationDate     validate.Date `json:"recall_initiation_date,omitzero"`
	CenterClassificationDate validate.Date `json:"center_classification_date,omitzero"`
	TerminationDate          validate.Date `json:"termination_date,omitzero"`

	AdditionalInfoContact string `json:"additional_info_contact,omitempty"`

	// CodeInfo lists the affected lot, serial, and product codes.
	CodeInfo string `json:"code_info,omitempty"`
}

// Validate checks required fields, vocabularies, and every linked
// clearance identifier.
func (r *Recall) Validate() error {
	if err := recallDescriptor.Validate(schema.ShapeCreate, r); err != nil {
		return err
	}
	entity := recallDescriptor.Entity
	if r.RecallClass != "" && !r.RecallClass.IsValid() {
		return dm.NewVocabularyError(entity, "recall_class",
			string(r.RecallClass), "Class I, Class II, or Class III")
	}
	if r.RecallStatus != "" && !r.RecallStatus.IsValid() {
		return dm.NewVocabularyError(entity, "recall_status",
			string(r.RecallStatus), "Ongoing, Completed, Terminated, or Pending")
	}
	if r.RecallType != "" && !r.RecallType.IsValid() {
		return dm.NewVocabularyError(entity, "recall_type",
			string(r.RecallType), "Recall, Correction, Removal, or Market Withdrawal")
	}
	if r.ProductCode != "" {
		code, err := validate.ProductCode(r.ProductCode)
		if err != nil {
			return dm.AttachField("product_code", err)
		}
		r.ProductCode = code
	}
	for i, raw := range r.KNumbers {
		k, err := validate.KNumber(raw)
		if err != nil {
			return dm.AttachField("k_numbers", err)
		}
		r.KNumbers[i] = k
	}
	for i, raw := range r.PMANumbers {
		pma, err := validate.PMANumber(raw)
		if err != nil {
			return dm.AttachField("pma_numbers", err)
		}
		r.PMANumbers[i] = pma
	}
	return nil
}

// IsTerminated reports whether the recall has been closed out.
func (r *Recall) IsTerminated() bool {
	return r.RecallStatus == RecallTerminated || !r.TerminationDate.IsZero()
}

// RecallResponse is the persisted view with identity, timestamps, and
// serving-layer counts.
type RecallResponse struct {
	ID string `json:"id"`
	Recall
	schema.Timestamped

	RelatedClearancesCount int `json:"related_clearances_count"`
	AdverseEventsCount     int `json:"adverse_events_count"`
}

// NewRecallResponse validates r and wraps it with a generated identity
// and fresh timestamps.
func NewRecallResponse(r Recall) (*RecallResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &RecallResponse{
		ID:          uuid.NewString(),
		Recall:      r,
		Timestamped: schema.NewTimestamped(),
	}, nil
}

// Validate checks the response's required fields.
func (r *RecallResponse) Validate() error {
	if err := recallDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	return r.Recall.Validate()
}

// RecallSummary is the list-display view of a recall.
type RecallSummary struct {
	ID                 string       `json:"id"`
	RecallNumber       string       `json:"recall_number"`
	RecallClass        RecallClass  `json:"recall_class,omitempty"`
	RecallStatus       RecallStatus `json:"recall_status,omitempty"`
	ProductDescription string       `json:"product_description"`
	RecallingFirm      string       `json:"recalling_firm"`
}

// Summarize projects the response to its summary shape.
func (r *RecallResponse) Summarize() RecallSummary {
	return RecallSummary{
		ID:                 r.ID,
		RecallNumber:       r.RecallNumber,
		RecallClass:        r.RecallClass,
		RecallStatus:       r.RecallStatus,
		ProductDescription: r.ProductDescription,
		RecallingFirm:      r.RecallingFirm,
	}
}

// RecallStats is the reporting projection over the recall collection.
type RecallStats struct {
	TotalRecalls int            `json:"total_recalls"`
	ByClass      map[string]int `json:"by_class"`
	ByStatus     map[string]int `json:"by_status"`
	ByYear       map[string]int `json:"by_year"`
	ClassICount  int            `json:"class_i_count"`
	OngoingCount int            `json:"ongoing_count"`
}
