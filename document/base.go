package document

import (
	"time"

	dm "github.com/ashmatics/datamodels"
)

// DocumentType names the knowledge-base collection a document belongs to.
type DocumentType string

const (
	TypeEvidenceDoc      DocumentType = "kb_evidence_doc"
	TypeAIModelCard      DocumentType = "kb_aimodel_card"
	TypeRegulatoryDoc    DocumentType = "kb_regulatory_doc"
	TypeProductCard      DocumentType = "kb_product_card"
	TypeManufacturerCard DocumentType = "kb_manufacturer_card"
	TypeUseCase          DocumentType = "kb_use_case"
)

// IsValid reports whether t is a recognized document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case TypeEvidenceDoc, TypeAIModelCard, TypeRegulatoryDoc,
		TypeProductCard, TypeManufacturerCard, TypeUseCase:
		return true
	}
	return false
}

// ContentType is the content subtype within a document type.
type ContentType string

const (
	ContentPeerReviewedPaper ContentType = "peer_reviewed_paper"
	ContentPreprint          ContentType = "preprint"
	ContentClinicalTrial     ContentType = "clinical_trial"
	ContentSystematicReview  ContentType = "systematic_review"
	ContentMetaAnalysis      ContentType = "meta_analysis"

	Content510KSummary   ContentType = "510k_summary"
	ContentPMASummary    ContentType = "pma_summary"
	ContentDeNovoSummary ContentType = "de_novo_summary"

	ContentModelCardV1 ContentType = "model_card_v1"

	ContentProductProfile  ContentType = "product_profile"
	ContentCompanyProfile  ContentType = "company_profile"
	ContentClinicalUseCase ContentType = "clinical_use_case"
)

// IsValid reports whether t is a recognized content type.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentPeerReviewedPaper, ContentPreprint, ContentClinicalTrial,
		ContentSystematicReview, ContentMetaAnalysis,
		Content510KSummary, ContentPMASummary, ContentDeNovoSummary,
		ContentModelCardV1,
		ContentProductProfile, ContentCompanyProfile, ContentClinicalUseCase:
		return true
	}
	return false
}

// ArtifactMeta is tier 1: facts about the document as a stored file,
// not about its content. Provenance, storage, and processing state.
type ArtifactMeta struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CreatedBy is a user id, or "system" for automated creation.
	CreatedBy string `json:"created_by"`
	Version   string `json:"version"`

	FileSizeBytes    int64  `json:"file_size_bytes,omitempty"`
	StorageLocation  string `json:"storage_location,omitempty"`
	SourcePDFURL     string `json:"source_pdf_url,omitempty"`
	MarkdownURL      string `json:"markdown_url,omitempty"`
	ChecksumMD5      string `json:"checksum_md5,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`

	ProcessingPipeline    string    `json:"processing_pipeline,omitempty"`
	ProcessingCompletedAt time.Time `json:"processing_completed_at,omitzero"`
	ProcessingErrors      []string  `json:"processing_errors,omitempty"`
}

// NewArtifactMeta returns tier-1 metadata with creation defaults: both
// timestamps set to now, a "system" creator, and the current schema
// version as the stamp.
func NewArtifactMeta() ArtifactMeta {
	now := time.Now().UTC()
	return ArtifactMeta{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "system",
		Version:   dm.CurrentVersion.String(),
	}
}

// Validate checks the tier's own invariants. It never inspects another
// tier.
func (a *ArtifactMeta) Validate() error {
	const entity = "artifact metadata"
	if a.CreatedAt.IsZero() {
		return dm.NewRequiredError(entity, "created_at")
	}
	if a.UpdatedAt.IsZero() {
		return dm.NewRequiredError(entity, "updated_at")
	}
	if a.CreatedBy == "" {
		return dm.NewRequiredError(entity, "created_by")
	}
	if a.Version == "" {
		return dm.NewRequiredError(entity, "version")
	}
	if len(a.ChecksumMD5) > 32 {
		return &dm.FormatError{
			Kind:   "artifact checksum",
			Field:  "checksum_md5",
			Value:  a.ChecksumMD5,
			Format: "32-character MD5 hex digest",
		}
	}
	return nil
}

// ContentMeta is tier 2: searchable classification metadata about the
// document's subject matter. Concrete kinds embed it and add their own
// fields.
type ContentMeta struct {
	DocumentType DocumentType `json:"document_type"`
	ContentType  ContentType  `json:"content_type"`

	Title string `json:"title"`

	// Language is an ISO 639-1 code; NewContentMeta defaults it to "en".
	Language string `json:"language"`

	Tags           []string `json:"tags,omitempty"`
	ClinicalDomain string   `json:"clinical_domain,omitempty"`
	Abstract       string   `json:"abstract,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

// NewContentMeta returns tier-2 metadata with the language defaulted.
func NewContentMeta(docType DocumentType, contentType ContentType, title string) ContentMeta {
	return ContentMeta{
		DocumentType: docType,
		ContentType:  contentType,
		Title:        title,
		Language:     "en",
	}
}

// Validate checks the tier's own invariants.
func (m *ContentMeta) Validate() error {
	const entity = "content metadata"
	if !m.DocumentType.IsValid() {
		return dm.NewVocabularyError(entity, "document_type",
			string(m.DocumentType), "a kb_* document type")
	}
	if !m.ContentType.IsValid() {
		return dm.NewVocabularyError(entity, "content_type",
			string(m.ContentType), "a recognized content type")
	}
	if m.Title == "" {
		return dm.NewRequiredError(entity, "title")
	}
	if len(m.Language) > 5 {
		return &dm.FormatError{
			Kind:   "language code",
			Field:  "language",
			Value:  m.Language,
			Format: "ISO 639-1",
		}
	}
	return nil
}

// tierValidator is implemented by each tier of a document.
type tierValidator interface {
	Validate() error
}

// Tier wire names, shared by every document kind.
const (
	TierArtifact = "metadata_object"
	TierContent  = "metadata_content"
	TierBody     = "content"
)

// composeTiers validates the three tiers independently and aggregates
// every failure into one CompositionError. Construction stays
// all-or-nothing: callers return the error and discard the document.
func composeTiers(entity string, artifact, meta, body tierValidator) error {
	cerr := &dm.CompositionError{Entity: entity}
	cerr.AddTier(TierArtifact, artifact.Validate())
	cerr.AddTier(TierContent, meta.Validate())
	cerr.AddTier(TierBody, body.Validate())
	if cerr.HasErrors() {
		return cerr
	}
	return nil
}
