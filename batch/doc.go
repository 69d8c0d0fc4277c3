// Package batch provides a worker pool for validating document and
// record payloads in parallel.
//
// Payloads are dispatched by the document_type field of their tier-2
// metadata, decoded into the matching concrete document kind, and
// validated. One bad payload never aborts the batch; each job carries
// its own result.
//
// Example usage:
//
//	pool := batch.NewPool(batch.DecodeDocument, 4)
//
//	for id, payload := range payloads {
//	    pool.Submit(batch.Job{ID: id, Payload: payload})
//	}
//
//	summary := pool.CloseAndWait()
//	if summary.HasErrors() {
//	    // inspect summary.Results
//	}
package batch
