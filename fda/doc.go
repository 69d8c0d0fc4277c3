// Package fda defines record schemas for FDA medical-device data:
// premarket clearances (510(k), PMA, De Novo), manufacturers, products
// and their per-jurisdiction regulatory status, recalls, MAUDE adverse
// events, and device classifications.
//
// Wire names follow the OpenFDA Device API data dictionary so payloads
// from the open-data endpoints map onto these records without renaming.
// Construction validates every identifier field; a record that fails
// validation is never returned.
package fda
