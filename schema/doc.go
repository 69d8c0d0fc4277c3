// Package schema provides the structural scaffolding shared by every
// domain record: timestamp and audit embeds, cross-jurisdiction
// enumerations, and the per-entity field-descriptor tables that drive
// required-field validation for each shape variant.
//
// Every record family (Create, Update, Response, Summary, Stats) derives
// its required-field rules from a single Descriptor, so the shapes cannot
// drift apart as an entity's vocabulary evolves.
package schema
