// Package document defines the three-tier document structure shared by
// every knowledge-base collection: artifact metadata (tier 1), content
// classification metadata (tier 2), and the document body (tier 3).
//
// Concrete document kinds (regulatory summaries, evidence papers, model
// cards, product cards, manufacturer cards, clinical use cases) extend
// tiers 2 and 3 with their own searchable fields. Construction is
// all-or-nothing: every tier validates independently and any failure is
// reported as a CompositionError naming the offending tier.
package document
