package datamodels

// SchemaVersion identifies a published revision of the data-contract
// schemas. Producers stamp documents with the version they were written
// under so consumers can detect contract drift.
type SchemaVersion string

// Published schema versions.
const (
	// V1 is the initial three-tier document contract.
	V1 SchemaVersion = "1.0"
	// V1_1 adds structured performance-data extraction fields to
	// regulatory documents.
	V1_1 SchemaVersion = "1.1"
)

// CurrentVersion is the revision new documents are stamped with.
const CurrentVersion = V1_1

// String returns the version string.
func (v SchemaVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a published schema version.
func (v SchemaVersion) IsValid() bool {
	switch v {
	case V1, V1_1:
		return true
	default:
		return false
	}
}
