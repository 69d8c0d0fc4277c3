package schema

// AuthorizationStatus is the lifecycle state of a single regulatory
// authorization (a 510(k) clearance, a PMA approval, a CE Mark).
//
// Workflow: under_review -> active -> {expired | withdrawn | suspended}.
type AuthorizationStatus string

const (
	AuthorizationActive      AuthorizationStatus = "active"
	AuthorizationExpired     AuthorizationStatus = "expired"
	AuthorizationWithdrawn   AuthorizationStatus = "withdrawn"
	AuthorizationSuspended   AuthorizationStatus = "suspended"
	AuthorizationUnderReview AuthorizationStatus = "under_review"
)

// IsValid reports whether s is a recognized authorization status.
func (s AuthorizationStatus) IsValid() bool {
	switch s {
	case AuthorizationActive, AuthorizationExpired, AuthorizationWithdrawn,
		AuthorizationSuspended, AuthorizationUnderReview:
		return true
	}
	return false
}

// RegulatoryStatus is the product-level regulatory standing across
// jurisdictions, distinct from any single authorization's status.
//
// Workflow: pending -> {approved | rejected}; approved -> {withdrawn | suspended}.
type RegulatoryStatus string

const (
	RegulatoryApproved  RegulatoryStatus = "approved"
	RegulatoryPending   RegulatoryStatus = "pending"
	RegulatoryRejected  RegulatoryStatus = "rejected"
	RegulatoryWithdrawn RegulatoryStatus = "withdrawn"
	RegulatorySuspended RegulatoryStatus = "suspended"
)

// IsValid reports whether s is a recognized regulatory status.
func (s RegulatoryStatus) IsValid() bool {
	switch s {
	case RegulatoryApproved, RegulatoryPending, RegulatoryRejected,
		RegulatoryWithdrawn, RegulatorySuspended:
		return true
	}
	return false
}

// RiskCategory is a jurisdiction-agnostic risk grouping. It maps onto the
// FDA device classes: low (I), moderate (II), high (III).
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"
	RiskModerate RiskCategory = "moderate"
	RiskHigh     RiskCategory = "high"
)

// IsValid reports whether c is a recognized risk category.
func (c RiskCategory) IsValid() bool {
	switch c {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

// ParsingStatus tracks a document through the extraction workflow.
//
// Workflow: pending -> in_progress -> {completed | failed}, or
// pending -> skipped.
type ParsingStatus string

const (
	ParsingPending    ParsingStatus = "pending"
	ParsingInProgress ParsingStatus = "in_progress"
	ParsingCompleted  ParsingStatus = "completed"
	ParsingFailed     ParsingStatus = "failed"
	ParsingSkipped    ParsingStatus = "skipped"
)

// IsValid reports whether s is a recognized parsing status.
func (s ParsingStatus) IsValid() bool {
	switch s {
	case ParsingPending, ParsingInProgress, ParsingCompleted,
		ParsingFailed, ParsingSkipped:
		return true
	}
	return false
}

// Region is a coarse geographic grouping for manufacturer categorization.
// Values follow ISO 3166-1 codes where one applies, with custom regional
// groupings for EU, APAC, and LATAM.
type Region string

const (
	RegionUSA   Region = "USA"
	RegionEU    Region = "EU"
	RegionDE    Region = "DE"
	RegionUK    Region = "UK"
	RegionChina Region = "CHINA"
	RegionAPAC  Region = "APAC"
	RegionLATAM Region = "LATAM"
	RegionAUS   Region = "AUS"
	RegionJP    Region = "JP"
	RegionKR    Region = "KR"
	RegionOther Region = "OTHER"
)

// IsValid reports whether r is a recognized region.
func (r Region) IsValid() bool {
	switch r {
	case RegionUSA, RegionEU, RegionDE, RegionUK, RegionChina, RegionAPAC,
		RegionLATAM, RegionAUS, RegionJP, RegionKR, RegionOther:
		return true
	}
	return false
}
