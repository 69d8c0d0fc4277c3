package fda

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/schema"
	"github.com/ashmatics/datamodels/validate"
)

// EventType classifies a MAUDE adverse event.
type EventType string

const (
	EventMalfunction EventType = "Malfunction"
	EventInjury      EventType = "Injury"
	EventDeath       EventType = "Death"
	EventOther       EventType = "Other"
	EventNoAnswer    EventType = "No answer provided"
)

// IsValid reports whether t is a recognized event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventMalfunction, EventInjury, EventDeath, EventOther, EventNoAnswer:
		return true
	}
	return false
}

// ReportSourceCode identifies who filed the medical device report.
type ReportSourceCode string

const (
	SourceManufacturer ReportSourceCode = "Manufacturer report"
	SourceUserFacility ReportSourceCode = "User facility report"
	SourceDistributor  ReportSourceCode = "Distributor report"
	SourceVoluntary    ReportSourceCode = "Voluntary report"
	SourceImporter     ReportSourceCode = "Importer report"
)

// IsValid reports whether c is a recognized report source.
func (c ReportSourceCode) IsValid() bool {
	switch c {
	case SourceManufacturer, SourceUserFacility, SourceDistributor,
		SourceVoluntary, SourceImporter:
		return true
	}
	return false
}

// DeviceOperator identifies who was operating the device when the
// event occurred.
type DeviceOperator string

const (
	OperatorHealthProfessional DeviceOperator = "Health Professional"
	OperatorLayUser            DeviceOperator = "Lay User/Patient"
	OperatorOther              DeviceOperator = "Other"
	OperatorUnknown            DeviceOperator = "Unknown"
	OperatorNotApplicable      DeviceOperator = "Not Applicable"
)

// IsValid reports whether o is a recognized operator value.
func (o DeviceOperator) IsValid() bool {
	switch o {
	case OperatorHealthProfessional, OperatorLayUser, OperatorOther,
		OperatorUnknown, OperatorNotApplicable:
		return true
	}
	return false
}

// MAUDEDevice is one device involved in an adverse event report. A
// single report may name several.
type MAUDEDevice struct {
	BrandName        string `json:"brand_name,omitempty"`
	GenericName      string `json:"generic_name,omitempty"`
	ManufacturerName string `json:"manufacturer_name,omitempty"`
	ModelNumber      string `json:"model_number,omitempty"`
	CatalogNumber    string `json:"catalog_number,omitempty"`
	LotNumber        string `json:"lot_number,omitempty"`

	DeviceSequenceNumber string `json:"device_sequence_number,omitempty"`

	ProductCode string      `json:"product_code,omitempty"`
	DeviceClass DeviceClass `json:"device_class,omitempty"`

	DeviceProblemCodes            []string `json:"device_problem_codes,omitempty"`
	DeviceAvailability            string   `json:"device_availability,omitempty"`
	DeviceEvaluatedByManufacturer string   `json:"device_evaluated_by_manufacturer,omitempty"`

	DeviceOperator DeviceOperator `json:"device_operator,omitempty"`
}

// Validate normalizes the product code and checks vocabularies.
func (d *MAUDEDevice) Validate() error {
	if d.ProductCode != "" {
		code, err := validate.ProductCode(d.ProductCode)
		if err != nil {
			return dm.AttachField("product_code", err)
		}
		d.ProductCode = code
	}
	if d.DeviceClass != "" && !d.DeviceClass.IsValid() {
		return dm.NewVocabularyError("MAUDE device", "device_class",
			string(d.DeviceClass), "device class 1, 2, or 3")
	}
	if d.DeviceOperator != "" && !d.DeviceOperator.IsValid() {
		return dm.NewVocabularyError("MAUDE device", "device_operator",
			string(d.DeviceOperator), "a MAUDE device-operator value")
	}
	return nil
}

// MAUDEPatient is one patient in an adverse event report. FDA redacts
// identifying information.
type MAUDEPatient struct {
	PatientSequenceNumber string        `json:"patient_sequence_number,omitempty"`
	DateReceived          validate.Date `json:"date_received,omitzero"`

	PatientProblems       []string `json:"patient_problems,omitempty"`
	SequenceNumberOutcome []string `json:"sequence_number_outcome,omitempty"`
}

var adverseEventDescriptor = schema.Descriptor{
	Entity: "adverse event",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "mdr_report_key", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse}, Summary: true},
		{Name: "report_number"},
		{Name: "event_key"},
		{Name: "event_type", Summary: true},
		{Name: "report_source_code"},
		{Name: "date_received"},
		{Name: "date_of_event", Summary: true},
		{Name: "date_report"},
		{Name: "date_manufacturer_received"},
		{Name: "reporter_occupation_code"},
		{Name: "initial_report_to_fda"},
		{Name: "event_description"},
		{Name: "manufacturer_narrative"},
		{Name: "manufacturer_name", Summary: true},
		{Name: "manufacturer_country"},
		{Name: "devices"},
		{Name: "patients"},
		{Name: "adverse_event_flag"},
		{Name: "product_problem_flag"},
		{Name: "report_to_fda"},
		{Name: "report_to_manufacturer"},
	},
}

// AdverseEventDescriptor exposes the adverse-event field table.
func AdverseEventDescriptor() *schema.Descriptor { return &adverseEventDescriptor }

// AdverseEvent is a MAUDE medical device report (MDR) under 21 CFR
// Part 803, aligned with the OpenFDA Device Event API.
type AdverseEvent struct {
	// MDRReportKey uniquely identifies the report.
	MDRReportKey string `json:"mdr_report_key"`
	ReportNumber string `json:"report_number,omitempty"`
	EventKey     string `json:"event_key,omitempty"`

	EventType        EventType        `json:"event_type,omitempty"`
	ReportSourceCode ReportSourceCode `json:"report_source_code,omitempty"`

	DateReceived             validate.Date `json:"date_received,omitzero"`
	DateOfEvent              validate.Date `json:"date_of_event,omitzero"`
	DateReport               validate.Date `json:"date_report,omitzero"`
	DateManufacturerReceived validate.Date `json:"date_manufacturer_received,omitzero"`

	ReporterOccupationCode string `json:"reporter_occupation_code,omitempty"`
	InitialReportToFDA     string `json:"initial_report_to_fda,omitempty"`

	EventDescription      string `json:"event_description,omitempty"`
	ManufacturerNarrative string `json:"manufacturer_narrative,omitempty"`

	ManufacturerName    string `json:"manufacturer_name,omitempty"`
	ManufacturerCountry string `json:"manufacturer_country,omitempty"`

	Devices  []MAUDEDevice  `json:"devices,omitempty"`
	Patients []MAUDEPatient `json:"patients,omitempty"`

	// Y/N flags as reported to OpenFDA.
	AdverseEventFlag     string `json:"adverse_event_flag,omitempty"`
	ProductProblemFlag   string `json:"product_problem_flag,omitempty"`
	ReportToFDA          string `json:"report_to_fda,omitempty"`
	ReportToManufacturer string `json:"report_to_manufacturer,omitempty"`
}

// Validate checks required fields, vocabularies, the manufacturer
// country, and every nested device.
func (e *AdverseEvent) Validate() error {
	if err := adverseEventDescriptor.Validate(schema.ShapeCreate, e); err != nil {
		return err
	}
	entity := adverseEventDescriptor.Entity
	if e.EventType != "" && !e.EventType.IsValid() {
		return dm.NewVocabularyError(entity, "event_type",
			string(e.EventType), "a MAUDE event type")
	}
	if e.ReportSourceCode != "" && !e.ReportSourceCode.IsValid() {
		return dm.NewVocabularyError(entity, "report_source_code",
			string(e.ReportSourceCode), "a MAUDE report source")
	}
	if e.ManufacturerCountry != "" {
		code, err := validate.CountryCode(e.ManufacturerCountry)
		if err != nil {
			return dm.AttachField("manufacturer_country", err)
		}
		e.ManufacturerCountry = code
	}
	for i := range e.Devices {
		if err := e.Devices[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AdverseEventResponse is the persisted view with identity, timestamps,
// and serving-layer counts.
type AdverseEventResponse struct {
	ID string `json:"id"`
	AdverseEvent
	schema.Timestamped

	DeviceCount         int `json:"device_count"`
	PatientCount        int `json:"patient_count"`
	RelatedRecallsCount int `json:"related_recalls_count"`
}

// NewAdverseEventResponse validates e and wraps it with a generated
// identity, fresh timestamps, and derived counts.
func NewAdverseEventResponse(e AdverseEvent) (*AdverseEventResponse, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &AdverseEventResponse{
		ID:           uuid.NewString(),
		AdverseEvent: e,
		Timestamped:  schema.NewTimestamped(),
		DeviceCount:  len(e.Devices),
		PatientCount: len(e.Patients),
	}, nil
}

// Validate checks the response's required fields.
func (r *AdverseEventResponse) Validate() error {
	if err := adverseEventDescriptor.Validate(schema.ShapeResponse, r); err != nil {
		return err
	}
	return r.AdverseEvent.Validate()
}

// AdverseEventSummary is the list-display view of an adverse event.
type AdverseEventSummary struct {
	ID               string        `json:"id"`
	MDRReportKey     string        `json:"mdr_report_key"`
	EventType        EventType     `json:"event_type,omitempty"`
	DateOfEvent      validate.Date `json:"date_of_event,omitzero"`
	ManufacturerName string        `json:"manufacturer_name,omitempty"`
}

// Summarize projects the response to its summary shape.
func (r *AdverseEventResponse) Summarize() AdverseEventSummary {
	return AdverseEventSummary{
		ID:               r.ID,
		MDRReportKey:     r.MDRReportKey,
		EventType:        r.EventType,
		DateOfEvent:      r.DateOfEvent,
		ManufacturerName: r.ManufacturerName,
	}
}

// AdverseEventStats is the reporting projection over the event
// collection.
type AdverseEventStats struct {
	TotalEvents       int            `json:"total_events"`
	ByEventType       map[string]int `json:"by_event_type"`
	BySource          map[string]int `json:"by_source"`
	ByYear            map[string]int `json:"by_year"`
	DeathsCount       int            `json:"deaths_count"`
	InjuriesCount     int            `json:"injuries_count"`
	MalfunctionsCount int            `json:"malfunctions_count"`
}
