package document

import (
	"github.com/google/uuid"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/validate"
)

// EvidenceMeta is tier 2 for evidence documents: published clinical
// literature about a device or algorithm.
type EvidenceMeta struct {
	ContentMeta

	PublicationDate validate.Date `json:"publication_date,omitzero"`
	Authors         []string      `json:"authors,omitempty"`
	Journal         string        `json:"journal,omitempty"`
	DOI             string        `json:"doi,omitempty"`
	PubMedID        string        `json:"pubmed_id,omitempty"`

	AnatomicalRegion string   `json:"anatomical_region,omitempty"`
	PathologyFocus   []string `json:"pathology_focus,omitempty"`
}

// Validate checks the shared tier-2 invariants and pins the document
// type.
func (m *EvidenceMeta) Validate() error {
	if err := m.ContentMeta.Validate(); err != nil {
		return err
	}
	if m.DocumentType != TypeEvidenceDoc {
		return dm.NewVocabularyError("evidence metadata", "document_type",
			string(m.DocumentType), string(TypeEvidenceDoc))
	}
	return nil
}

// Standard academic section keys for an evidence document body.
const (
	SectionIntroduction = "1_introduction"
	SectionMethods      = "2_methods"
	SectionResults      = "3_results"
	SectionDiscussion   = "4_discussion"
	SectionConclusion   = "5_conclusion"
)

// EvidenceContent is tier 3 for evidence documents. It is the generic
// body with a standard academic section skeleton.
type EvidenceContent struct {
	Content
}

// NewEvidenceContent returns a body pre-populated with the standard
// paper sections in reading order.
func NewEvidenceContent() EvidenceContent {
	return EvidenceContent{
		Content: Content{
			Sections: map[string]*Section{
				SectionIntroduction: {Title: "Introduction", Order: 1},
				SectionMethods:      {Title: "Methods", Order: 2},
				SectionResults:      {Title: "Results", Order: 3},
				SectionDiscussion:   {Title: "Discussion", Order: 4},
				SectionConclusion:   {Title: "Conclusion", Order: 5},
			},
		},
	}
}

// EvidenceDocument is a complete three-tier evidence document.
type EvidenceDocument struct {
	ID       string          `json:"id"`
	Artifact ArtifactMeta    `json:"metadata_object"`
	Meta     EvidenceMeta    `json:"metadata_content"`
	Body     EvidenceContent `json:"content"`
}

// NewEvidenceDocument composes a document from tier-2 and tier-3 input,
// generating identity and tier-1 defaults. Any tier failure aborts
// construction with a CompositionError.
func NewEvidenceDocument(meta EvidenceMeta, body EvidenceContent) (*EvidenceDocument, error) {
	d := &EvidenceDocument{
		Artifact: NewArtifactMeta(),
		Meta:     meta,
		Body:     body,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.ID = uuid.NewString()
	return d, nil
}

// Validate re-checks every tier, aggregating failures per tier.
func (d *EvidenceDocument) Validate() error {
	return composeTiers("evidence document", &d.Artifact, &d.Meta, &d.Body)
}

// EvidenceSummary is the listing projection of an evidence document,
// flattening the publication fields search results show.
type EvidenceSummary struct {
	Summary

	Authors          []string      `json:"authors,omitempty"`
	Journal          string        `json:"journal,omitempty"`
	PublicationDate  validate.Date `json:"publication_date,omitzero"`
	DOI              string        `json:"doi,omitempty"`
	Abstract         string        `json:"abstract,omitempty"`
	AnatomicalRegion string        `json:"anatomical_region,omitempty"`
}

// Summarize projects the document into its listing shape without
// touching the document.
func (d *EvidenceDocument) Summarize() EvidenceSummary {
	var authors []string
	if len(d.Meta.Authors) > 0 {
		authors = make([]string, len(d.Meta.Authors))
		copy(authors, d.Meta.Authors)
	}
	return EvidenceSummary{
		Summary:          summarize(d.ID, d.Artifact, d.Meta.ContentMeta),
		Authors:          authors,
		Journal:          d.Meta.Journal,
		PublicationDate:  d.Meta.PublicationDate,
		DOI:              d.Meta.DOI,
		Abstract:         d.Meta.Abstract,
		AnatomicalRegion: d.Meta.AnatomicalRegion,
	}
}
