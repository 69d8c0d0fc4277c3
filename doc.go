// Package datamodels provides shared data-contract schemas for a healthcare
// regulatory data ecosystem: FDA submission records, manufacturer records,
// clinical use-case taxonomy, and a three-tier document structure for
// schema-less document stores.
//
// The package gives independent applications a single, versioned definition
// of what a 510(k) clearance record looks like, so producers and consumers
// agree on field names, types, and value constraints without sharing
// business logic.
//
// # Quick Start
//
//	import (
//	    dm "github.com/ashmatics/datamodels"
//	    "github.com/ashmatics/datamodels/fda"
//	)
//
//	clearance := fda.Clearance510K{
//	    KNumber:    "k240001",
//	    DeviceName: "AI-Chest Scanner",
//	}
//	if err := clearance.Validate(); err != nil {
//	    var ferr *dm.FormatError
//	    if errors.As(err, &ferr) {
//	        fmt.Println(ferr.Field, ferr.Format)
//	    }
//	}
//	// clearance.KNumber == "K240001"
//
// # Architecture
//
// Record construction is all-or-nothing: Validate normalizes identifier
// fields in place (uppercase canonical forms, parsed dates) and rejects the
// whole record on the first malformed value. Validated records serialize to
// a JSON wire form in two field-naming modes: canonical (the schema's own
// field names) and aliased (document-store compatible, substituting "_id"
// for the identity field). Both modes round-trip losslessly.
//
// Subpackages:
//
//   - validate: pure identifier and date validators (510(k)/PMA numbers,
//     product codes, ISO 3166-1 country codes, calendar dates)
//   - schema: base record scaffolding, shared enumerations, and the
//     per-entity field-descriptor tables driving shape-variant validation
//   - optional: tri-state field values for partial-update payloads
//   - fda: OpenFDA-aligned clearance, manufacturer, product, recall,
//     adverse-event, and classification schemas
//   - document: three-tier document composition with summary projections
//   - usecase: clinical use-case taxonomy
//   - batch: concurrent bulk validation with per-item error reporting
package datamodels
