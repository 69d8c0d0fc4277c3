package document

import "time"

// Summary is the lightweight listing projection of a document: identity
// plus the tier-2 classification fields search results need. Building a
// summary never mutates the source document.
type Summary struct {
	ID             string       `json:"id"`
	DocumentType   DocumentType `json:"document_type"`
	ContentType    ContentType  `json:"content_type"`
	Title          string       `json:"title"`
	ClinicalDomain string       `json:"clinical_domain,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// summarize projects the shared tiers of any document kind. Tags are
// copied so the summary cannot alias the document's slice.
func summarize(id string, artifact ArtifactMeta, meta ContentMeta) Summary {
	var tags []string
	if len(meta.Tags) > 0 {
		tags = make([]string, len(meta.Tags))
		copy(tags, meta.Tags)
	}
	return Summary{
		ID:             id,
		DocumentType:   meta.DocumentType,
		ContentType:    meta.ContentType,
		Title:          meta.Title,
		ClinicalDomain: meta.ClinicalDomain,
		Tags:           tags,
		CreatedAt:      artifact.CreatedAt,
		UpdatedAt:      artifact.UpdatedAt,
	}
}
