package batch

import (
	"github.com/buger/jsonparser"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/document"
)

// PeekDocumentType reads the tier-2 document_type from a raw payload
// without decoding the document. Missing or malformed metadata is a
// FormatError.
func PeekDocumentType(payload []byte) (document.DocumentType, error) {
	raw, err := jsonparser.GetString(payload, document.TierContent, "document_type")
	if err != nil {
		return "", &dm.FormatError{
			Kind:   "document payload",
			Field:  document.TierContent + ".document_type",
			Format: "a kb_* document type string",
		}
	}
	t := document.DocumentType(raw)
	if !t.IsValid() {
		return "", &dm.FormatError{
			Kind:   "document payload",
			Field:  document.TierContent + ".document_type",
			Value:  raw,
			Format: "a kb_* document type",
		}
	}
	return t, nil
}

// DecodeFunc decodes and validates one payload, returning the decoded
// value and the dispatched document type when known.
type DecodeFunc func(payload []byte, opts *JobOptions) (document.DocumentType, any, error)

// DecodeDocument dispatches a payload by its tier-2 document_type,
// decodes it into the matching concrete kind, and validates it.
// Decoding is all-or-nothing: a validation failure yields no document.
func DecodeDocument(payload []byte, opts *JobOptions) (document.DocumentType, any, error) {
	if opts == nil {
		opts = &JobOptions{}
	}

	docType := opts.DocumentType
	if docType == "" {
		t, err := PeekDocumentType(payload)
		if err != nil {
			return "", nil, err
		}
		docType = t
	}

	var codecOpts []dm.Option
	if opts.AliasedID {
		codecOpts = append(codecOpts, dm.WithAliasedID(true))
	}

	var doc any
	var err error
	switch docType {
	case document.TypeRegulatoryDoc:
		v := new(document.RegulatoryDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	case document.TypeEvidenceDoc:
		v := new(document.EvidenceDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	case document.TypeAIModelCard:
		v := new(document.ModelCardDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	case document.TypeProductCard:
		v := new(document.ProductCardDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	case document.TypeManufacturerCard:
		v := new(document.ManufacturerCardDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	case document.TypeUseCase:
		v := new(document.UseCaseDocument)
		err = dm.Unmarshal(payload, v, codecOpts...)
		doc = v
	default:
		return docType, nil, &dm.FormatError{
			Kind:   "document payload",
			Field:  document.TierContent + ".document_type",
			Value:  string(docType),
			Format: "a kb_* document type",
		}
	}
	if err != nil {
		return docType, nil, err
	}
	return docType, doc, nil
}
