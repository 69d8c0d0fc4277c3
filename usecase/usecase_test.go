package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
)

func validUseCase() UseCaseCreate {
	return UseCaseCreate{
		UseCase: UseCase{
			Title:             "Pneumothorax triage on chest radiographs",
			ClinicalDomain:    DomainRadiology,
			ClinicalSpecialty: SpecialtyThoracicRadiology,
			AnatomicalRegion:  "chest",
			Pathology:         []string{"pneumothorax"},
		},
		TechnicalRequirements: &TechnicalRequirements{
			ImagingModality:    "Xray",
			IntegrationTargets: []IntegrationTarget{TargetPACS, TargetWorklist},
			DeploymentModel:    DeployCloud,
		},
	}
}

func TestUseCaseValidate(t *testing.T) {
	c := validUseCase()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if c.Status != StatusDraft {
		t.Errorf("Status = %q; want defaulted %q", c.Status, StatusDraft)
	}
}

func TestUseCaseValidateRejects(t *testing.T) {
	c := validUseCase()
	c.Title = ""
	if err := c.Validate(); err == nil {
		t.Error("Validate accepted a use case without a title")
	}

	c = validUseCase()
	c.ClinicalDomain = "astrology"
	if err := c.Validate(); err == nil {
		t.Error("Validate accepted an unknown clinical domain")
	}

	c = validUseCase()
	c.TechnicalRequirements.IntegrationTargets = []IntegrationTarget{"fax"}
	if err := c.Validate(); err == nil {
		t.Error("Validate accepted an unknown integration target")
	}

	c = validUseCase()
	c.TechnicalRequirements.DeploymentModel = "mainframe"
	if err := c.Validate(); err == nil {
		t.Error("Validate accepted an unknown deployment model")
	}
}

func TestNewUseCaseResponse(t *testing.T) {
	resp, err := NewUseCaseResponse(validUseCase(), "curator@ashmatics.com")
	if err != nil {
		t.Fatalf("NewUseCaseResponse error = %v", err)
	}
	if resp.ID == "" || resp.CreatedBy != "curator@ashmatics.com" {
		t.Errorf("identity/audit not populated: %+v", resp)
	}
	if resp.TechnicalRequirements == nil || resp.TechnicalRequirements.DeploymentModel != DeployCloud {
		t.Error("technical requirements not carried into the response")
	}
	if err := resp.Validate(); err != nil {
		t.Errorf("response Validate error = %v", err)
	}

	sum := resp.Summarize()
	if sum.ID != resp.ID || sum.ClinicalDomain != DomainRadiology || sum.Status != StatusDraft {
		t.Errorf("summary = %+v", sum)
	}
}

func TestUseCaseResponseMappings(t *testing.T) {
	resp, err := NewUseCaseResponse(validUseCase(), "curator@ashmatics.com")
	if err != nil {
		t.Fatalf("NewUseCaseResponse error = %v", err)
	}
	resp.ApplicableProducts = []ApplicableProduct{
		{ProductName: "ChestAI Triage", KNumber: "k240001"},
	}
	resp.SupportingEvidence = []SupportingEvidence{
		{Title: "Multicenter validation of AI pneumothorax triage", EvidenceStrength: EvidenceStrong},
	}
	if err := resp.Validate(); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if resp.ApplicableProducts[0].KNumber != "K240001" {
		t.Errorf("KNumber = %q; want normalized %q", resp.ApplicableProducts[0].KNumber, "K240001")
	}

	resp.SupportingEvidence[0].EvidenceStrength = "gut_feeling"
	var ferr *dm.FormatError
	if err := resp.Validate(); !errors.As(err, &ferr) {
		t.Fatalf("error = %T; want *datamodels.FormatError", err)
	} else if ferr.Field != "evidence_strength" {
		t.Errorf("Field = %q; want %q", ferr.Field, "evidence_strength")
	}
}

func TestUseCaseUpdateTriState(t *testing.T) {
	payload := []byte(`{"description":null,"status":"published"}`)
	var u UseCaseUpdate
	if err := dm.Unmarshal(payload, &u); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !u.Description.IsNull() {
		t.Error("explicit null description decoded as something else")
	}
	if got, ok := u.Status.Get(); !ok || got != StatusPublished {
		t.Errorf("Status = %v, %v", got, ok)
	}
	if u.Title.Present() {
		t.Error("absent title decoded as present")
	}

	out, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(out, &wire); err != nil {
		t.Fatalf("re-decode error = %v", err)
	}
	if _, ok := wire["title"]; ok {
		t.Error("absent title re-emitted on the wire")
	}
	if string(wire["description"]) != "null" {
		t.Errorf("description re-emitted as %s; want null", wire["description"])
	}
}

func TestUseCaseUpdateRejectsBadVocabulary(t *testing.T) {
	u := UseCaseUpdate{Status: optional.Of(Status("mythical"))}
	if err := u.Validate(); err == nil {
		t.Error("Validate accepted an unknown status")
	}
}

// Summary and patch shapes are checked against their field tables so
// neither can drift from the canonical definition.
func TestShapesMatchTables(t *testing.T) {
	if err := UseCaseDescriptor().SummaryMatches(&UseCaseSummary{}); err != nil {
		t.Errorf("use case summary: %v", err)
	}
	if err := UseCaseDescriptor().Covers(&UseCaseUpdate{}); err != nil {
		t.Errorf("use case update: %v", err)
	}
	if err := CategoryDescriptor().SummaryMatches(&CategorySummary{}); err != nil {
		t.Errorf("category summary: %v", err)
	}
	if err := CategoryDescriptor().Covers(&CategoryUpdate{}); err != nil {
		t.Errorf("category update: %v", err)
	}
}
