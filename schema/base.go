package schema

import "time"

// Timestamped carries creation and last-update instants. Records embed it
// when they need temporal tracking without a full audit trail.
type Timestamped struct {
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NewTimestamped returns a Timestamped with both instants set to now.
// UpdatedAt is the caller's responsibility afterwards; see Touch.
func NewTimestamped() Timestamped {
	now := time.Now().UTC()
	return Timestamped{CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt to the current instant.
func (t *Timestamped) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// Audited extends Timestamped with actor attribution.
type Audited struct {
	Timestamped

	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

// NewAudited returns an Audited stamped with the current instant and the
// given actor in both attribution fields.
func NewAudited(actor string) Audited {
	return Audited{
		Timestamped: NewTimestamped(),
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
}
