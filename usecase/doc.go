// Package usecase defines the clinical AI use case records: scenarios
// where an AI solution applies, with clinical context, technical
// requirements, product and evidence mapping, and the hierarchical
// category taxonomy use cases are filed under.
package usecase
