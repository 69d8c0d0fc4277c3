package batch

import (
	"testing"
	"time"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/document"
)

func evidencePayload(t *testing.T) []byte {
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
	data, err := dm.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling fixture: %v", err)
	}
	return data
}

func regulatoryPayload(t *testing.T) []byte {
	t.Helper()
	meta := document.RegulatoryMeta{
		ContentMeta: document.NewContentMeta(
			document.TypeRegulatoryDoc, document.Content510KSummary,
			"510(k) Summary: ChestAI Triage"),
		KNumber: "K240001",
	}
	doc, err := document.NewRegulatoryDocument(meta, document.NewRegulatoryContent())
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	data, err := dm.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling fixture: %v", err)
	}
	return data
}

func TestPool_NewPool(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)
	defer pool.Close()

	if pool.workers != 2 {
		t.Errorf("workers = %d; want 2", pool.workers)
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	pool := NewPool(DecodeDocument, 0)
	defer pool.Close()

	if pool.workers <= 0 {
		t.Errorf("workers = %d; want > 0", pool.workers)
	}
}

func TestPool_SubmitAndReceive(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)
	defer pool.Close()

	if !pool.Submit(Job{ID: "ev-1", Payload: evidencePayload(t)}) {
		t.Fatal("Submit returned false on an open pool")
	}

	select {
	case result := <-pool.Results():
		if result.ID != "ev-1" {
			t.Errorf("ID = %q; want %q", result.ID, "ev-1")
		}
		if result.Err != nil {
			t.Fatalf("Err = %v", result.Err)
		}
		if result.DocumentType != document.TypeEvidenceDoc {
			t.Errorf("DocumentType = %q", result.DocumentType)
		}
		if _, ok := result.Document.(*document.EvidenceDocument); !ok {
			t.Errorf("Document = %T; want *document.EvidenceDocument", result.Document)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_ContinuesPastBadPayload(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)

	pool.Submit(Job{ID: "bad", Payload: []byte(`{"metadata_content":{}}`)})
	pool.Submit(Job{ID: "good", Payload: regulatoryPayload(t)})

	summary := pool.CloseAndWait()
	if summary.CompletedJobs != 2 {
		t.Fatalf("CompletedJobs = %d; want 2", summary.CompletedJobs)
	}
	if summary.FailedJobs != 1 {
		t.Errorf("FailedJobs = %d; want 1", summary.FailedJobs)
	}
	if got := summary.FailedIDs(); len(got) != 1 || got[0] != "bad" {
		t.Errorf("FailedIDs = %v", got)
	}
}

func TestPool_SubmitToClosedPool(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)
	pool.Close()

	if pool.Submit(Job{ID: "after-close"}) {
		t.Error("Submit succeeded after close")
	}
}

func TestPool_DoubleClose(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)

	pool.Close()
	pool.Close()
}

func TestPool_NilDecoder(t *testing.T) {
	pool := NewPool(nil, 1)

	pool.Submit(Job{ID: "no-decoder", Payload: []byte(`{}`)})
	summary := pool.CloseAndWait()
	if len(summary.Results) != 1 || summary.Results[0].Err != ErrNoDecoder {
		t.Errorf("results = %+v; want ErrNoDecoder", summary.Results)
	}
}

func TestPool_Stats(t *testing.T) {
	pool := NewPool(DecodeDocument, 2)

	payload := evidencePayload(t)
	for i := 0; i < 4; i++ {
		pool.Submit(Job{ID: "s", Payload: payload})
	}
	summary := pool.CloseAndWait()

	if summary.TotalJobs != 4 || summary.CompletedJobs != 4 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.HasErrors() {
		t.Errorf("unexpected failures: %v", summary.FailedIDs())
	}
}
