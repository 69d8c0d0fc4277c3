package datamodels

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// Wire field names for the identity field in the two naming modes.
const (
	canonicalIDField = "id"
	aliasedIDField   = "_id"
)

// Validator is implemented by every record and document type in this
// module. Validate normalizes identifier fields in place and returns a
// FormatError, RangeError, or CompositionError on the first violation.
type Validator interface {
	Validate() error
}

// Marshal serializes a record or document to its JSON wire form.
// With WithAliasedID, the top-level "id" field is emitted as "_id" for
// document-store compatibility. Values that validated successfully
// round-trip without loss in either mode.
func Marshal(v any, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !o.AliasID {
		return data, nil
	}
	return renameKey(data, canonicalIDField, aliasedIDField)
}

// Unmarshal decodes a record or document from its JSON wire form and, when
// the target implements Validator, validates it. Decoding is all-or-nothing:
// on a validation error the caller must discard the target value.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o := applyOptions(opts)

	if o.AliasID {
		renamed, err := renameKey(data, aliasedIDField, canonicalIDField)
		if err != nil {
			return err
		}
		data = renamed
	}

	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if o.SkipValidation {
		return nil
	}
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}

// renameKey moves a top-level object key without touching the rest of the
// payload. Missing keys are a no-op so documents that never carried an
// identity field pass through unchanged.
func renameKey(data []byte, from, to string) ([]byte, error) {
	raw, dataType, _, err := jsonparser.Get(data, from)
	if dataType == jsonparser.NotExist {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading field %q: %w", from, err)
	}

	value := raw
	if dataType == jsonparser.String {
		// jsonparser returns string values unquoted and unescaped.
		quoted, err := json.Marshal(string(raw))
		if err != nil {
			return nil, err
		}
		value = quoted
	}

	out := jsonparser.Delete(append([]byte(nil), data...), from)
	out, err = jsonparser.Set(out, value, to)
	if err != nil {
		return nil, fmt.Errorf("writing field %q: %w", to, err)
	}
	return out, nil
}
