package validate

import (
	"encoding/json"
	"time"

	dm "github.com/ashmatics/datamodels"
)

// Accepted calendar date layouts, tried in order.
const (
	isoDateLayout = "2006-01-02"
	usDateLayout  = "01/02/2006"
)

const dateFormat = "YYYY-MM-DD or MM/DD/YYYY"

// Date is a calendar date without a time-of-day component. Its canonical
// wire form is the ISO layout (YYYY-MM-DD); the US layout (MM/DD/YYYY) is
// accepted on input.
type Date struct {
	time.Time
}

// DateOf truncates a time value to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate validates and parses a calendar date string. ISO form is tried
// first, then the US form. Impossible calendar dates (e.g. 2024-02-30) are
// rejected by the underlying parser.
func ParseDate(value string) (Date, error) {
	for _, layout := range []string{isoDateLayout, usDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, &dm.FormatError{
		Kind:   "date",
		Value:  value,
		Format: dateFormat,
	}
}

// String returns the canonical ISO form.
func (d Date) String() string {
	return d.Format(isoDateLayout)
}

// IsZero reports whether the date is unset, enabling omitzero wire tags.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.YearDay() == other.YearDay()
}

// MarshalJSON emits the canonical ISO form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either supported layout, or null for an unset date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
