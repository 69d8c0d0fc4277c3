package datamodels

import (
	"errors"
	"fmt"
	"strings"
)

// FormatError reports a raw value that does not satisfy a validator's
// pattern. It carries enough context for a human correcting bad input data:
// the identifier class, the offending field, the rejected value, and the
// expected canonical format.
type FormatError struct {
	// Kind identifies the identifier class that failed
	// (e.g. "510(k) number", "product code", "country code").
	Kind string

	// Field is the record field carrying the value, when known.
	Field string

	// Value is the rejected raw value.
	Value string

	// Format describes the expected canonical pattern
	// (e.g. "K######" or "ISO 3166-1 alpha-2").
	Format string
}

// Error returns a message naming the field, the rejected value, and the
// expected format.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("invalid ")
	b.WriteString(e.Kind)
	if e.Field != "" {
		b.WriteString(" for field ")
		b.WriteString(e.Field)
	}
	fmt.Fprintf(&b, ": %q does not match expected format %s", e.Value, e.Format)
	return b.String()
}

// WithField returns a copy of the error naming the record field the value
// came from. Validators are field-agnostic; record Validate methods attach
// the field name on the way out.
func (e *FormatError) WithField(field string) *FormatError {
	c := *e
	c.Field = field
	return &c
}

// AttachField names the record field a validator error came from. Non-format
// errors pass through unchanged.
func AttachField(field string, err error) error {
	if err == nil {
		return nil
	}
	var ferr *FormatError
	if errors.As(err, &ferr) {
		return ferr.WithField(field)
	}
	return err
}

// NewRequiredError reports a required field that is absent or empty.
func NewRequiredError(entity, field string) *FormatError {
	return &FormatError{
		Kind:   entity + " field",
		Field:  field,
		Format: "a non-empty value (required)",
	}
}

// NewVocabularyError reports a closed-vocabulary field holding a value
// outside its vocabulary. allowed describes the accepted values.
func NewVocabularyError(entity, field, value, allowed string) *FormatError {
	return &FormatError{
		Kind:   entity + " field",
		Field:  field,
		Value:  value,
		Format: allowed,
	}
}

// RangeError reports a numeric field outside its declared closed interval.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

// Error returns a message naming the field, value, and allowed interval.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value %v for field %s out of range [%v, %v]",
		e.Value, e.Field, e.Min, e.Max)
}

// TierError pairs a document tier name with the validation error it produced.
type TierError struct {
	// Tier is the wire name of the failing tier
	// ("metadata_object", "metadata_content", or "content").
	Tier string

	// Err is the tier-local validation failure.
	Err error
}

// Error returns the tier-qualified message.
func (e *TierError) Error() string {
	return e.Tier + ": " + e.Err.Error()
}

// Unwrap exposes the tier-local error to errors.Is / errors.As.
func (e *TierError) Unwrap() error {
	return e.Err
}

// CompositionError reports that one or more tiers of a three-tier document
// failed their own validation. Construction of a document is all-or-nothing:
// callers never observe a partially valid document alongside this error.
type CompositionError struct {
	// Entity names the document kind that failed to compose.
	Entity string

	// Tiers holds one entry per failing tier, in tier order.
	Tiers []*TierError
}

// Error joins the per-tier messages.
func (e *CompositionError) Error() string {
	msgs := make([]string, len(e.Tiers))
	for i, t := range e.Tiers {
		msgs[i] = t.Error()
	}
	return fmt.Sprintf("%s failed validation: %s", e.Entity, strings.Join(msgs, "; "))
}

// Unwrap exposes the tier errors to errors.Is / errors.As.
func (e *CompositionError) Unwrap() []error {
	errs := make([]error, len(e.Tiers))
	for i, t := range e.Tiers {
		errs[i] = t
	}
	return errs
}

// AddTier records a failing tier. A nil err is ignored so callers can
// compose tier validations unconditionally.
func (e *CompositionError) AddTier(tier string, err error) {
	if err == nil {
		return
	}
	e.Tiers = append(e.Tiers, &TierError{Tier: tier, Err: err})
}

// HasErrors reports whether any tier failed.
func (e *CompositionError) HasErrors() bool {
	return len(e.Tiers) > 0
}
