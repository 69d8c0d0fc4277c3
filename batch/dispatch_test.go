package batch

import (
	"context"
	"errors"
	"testing"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/document"
)

func TestPeekDocumentType(t *testing.T) {
	got, err := PeekDocumentType(regulatoryPayload(t))
	if err != nil {
		t.Fatalf("PeekDocumentType error = %v", err)
	}
	if got != document.TypeRegulatoryDoc {
		t.Errorf("type = %q; want %q", got, document.TypeRegulatoryDoc)
	}

	if _, err := PeekDocumentType([]byte(`{"metadata_content":{}}`)); err == nil {
		t.Error("PeekDocumentType accepted a payload without a document type")
	}
	if _, err := PeekDocumentType([]byte(`{"metadata_content":{"document_type":"kb_mystery"}}`)); err == nil {
		t.Error("PeekDocumentType accepted an unknown document type")
	}
}

func TestDecodeDocumentDispatch(t *testing.T) {
	docType, doc, err := DecodeDocument(regulatoryPayload(t), nil)
	if err != nil {
		t.Fatalf("DecodeDocument error = %v", err)
	}
	if docType != document.TypeRegulatoryDoc {
		t.Errorf("type = %q", docType)
	}
	reg, ok := doc.(*document.RegulatoryDocument)
	if !ok {
		t.Fatalf("doc = %T; want *document.RegulatoryDocument", doc)
	}
	if reg.Meta.KNumber != "K240001" {
		t.Errorf("KNumber = %q", reg.Meta.KNumber)
	}
}

func TestDecodeDocumentValidationFailure(t *testing.T) {
	// Valid envelope, but tier 2 is missing its required title.
	payload := []byte(`{
		"metadata_object": {"created_at":"2026-01-05T10:00:00Z","updated_at":"2026-01-05T10:00:00Z","created_by":"system","version":"1.0"},
		"metadata_content": {"document_type":"kb_evidence_doc","content_type":"peer_reviewed_paper","title":"","language":"en"},
		"content": {}
	}`)

	_, doc, err := DecodeDocument(payload, nil)
	if doc != nil {
		t.Error("a document was returned alongside a validation failure")
	}
	var cerr *dm.CompositionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T; want *datamodels.CompositionError", err)
	}
}

func TestDecodeDocumentAliasedID(t *testing.T) {
	payload, err := dm.Marshal(mustEvidenceDoc(t), dm.WithAliasedID(true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	_, doc, err := DecodeDocument(payload, &JobOptions{AliasedID: true})
	if err != nil {
		t.Fatalf("DecodeDocument error = %v", err)
	}
	ev := doc.(*document.EvidenceDocument)
	if ev.ID == "" {
		t.Error("aliased identity was not recovered")
	}
}

func TestDecodeDocumentTypeOverride(t *testing.T) {
	_, _, err := DecodeDocument(regulatoryPayload(t),
		&JobOptions{DocumentType: document.TypeEvidenceDoc})
	if err == nil {
		t.Error("evidence decode accepted a regulatory payload")
	}
}

func mustEvidenceDoc(t *testing.T) *document.EvidenceDocument {
	t.Helper()
	meta := document.EvidenceMeta{
		ContentMeta: document.NewContentMeta(
			document.TypeEvidenceDoc, document.ContentPeerReviewedPaper,
			"AI triage of pneumothorax"),
	}
	doc, err := document.NewEvidenceDocument(meta, document.NewEvidenceContent())
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	return doc
}

func TestValidateBatchOrdered(t *testing.T) {
	payloads := [][]byte{
		evidencePayload(t),
		[]byte(`not json at all`),
		regulatoryPayload(t),
		evidencePayload(t),
	}

	br := NewValidator(DecodeDocument, 3).ValidateBatch(context.Background(), payloads)
	if br.TotalJobs != 4 || br.CompletedJobs != 4 {
		t.Fatalf("batch = %+v", br)
	}
	if br.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d; want 1", br.ErrorCount())
	}
	if br.Results[1].Err == nil {
		t.Error("the malformed payload did not fail in place")
	}
	if br.Results[2].DocumentType != document.TypeRegulatoryDoc {
		t.Errorf("Results[2] type = %q; results are out of order", br.Results[2].DocumentType)
	}
}

func TestValidateBatchEmpty(t *testing.T) {
	br := ValidateBatchSimple(context.Background(), nil)
	if br.TotalJobs != 0 || len(br.Results) != 0 {
		t.Errorf("batch = %+v", br)
	}
}

func TestValidateBatchSequentialPath(t *testing.T) {
	br := NewValidator(DecodeDocument, 4).ValidateBatch(context.Background(),
		[][]byte{evidencePayload(t), regulatoryPayload(t)})
	if br.CompletedJobs != 2 || br.HasErrors() {
		t.Errorf("batch = %+v", br)
	}
	if br.Results[0].ID != "0" || br.Results[1].ID != "1" {
		t.Errorf("ids = %q, %q", br.Results[0].ID, br.Results[1].ID)
	}
}

func TestValidateBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payloads := [][]byte{
		evidencePayload(t), evidencePayload(t),
		regulatoryPayload(t), evidencePayload(t),
	}
	br := NewValidator(DecodeDocument, 2).ValidateBatch(ctx, payloads)
	if br.TotalJobs != 4 || len(br.Results) != 4 {
		t.Fatalf("batch = %+v", br)
	}
	for i, r := range br.Results {
		if r == nil {
			t.Fatalf("Results[%d] is nil", i)
		}
	}
	if br.CompletedJobs != 0 || br.FailedJobs != 4 {
		t.Errorf("completed = %d, failed = %d; want 0 and 4",
			br.CompletedJobs, br.FailedJobs)
	}
	if !errors.Is(br.Results[2].Err, context.Canceled) {
		t.Errorf("Results[2].Err = %v; want context.Canceled", br.Results[2].Err)
	}

	// The sequential path marks skipped payloads the same way.
	br = NewValidator(DecodeDocument, 1).ValidateBatch(ctx, payloads[:2])
	if len(br.Results) != 2 || br.CompletedJobs != 0 || br.FailedJobs != 2 {
		t.Fatalf("sequential batch = %+v", br)
	}
	if !errors.Is(br.Results[0].Err, context.Canceled) {
		t.Errorf("Results[0].Err = %v; want context.Canceled", br.Results[0].Err)
	}
}
