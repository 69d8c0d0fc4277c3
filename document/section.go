package document

import (
	"sort"
	"strconv"
	"strings"

	dm "github.com/ashmatics/datamodels"
)

// Section is one node of a document body. Sections nest arbitrarily
// deep through Subsections; keys are unique within their parent map but
// may repeat across parents. Order controls presentation, not storage.
type Section struct {
	Title       string              `json:"title"`
	Order       int                 `json:"order"`
	Text        string              `json:"text,omitempty"`
	Subsections map[string]*Section `json:"subsections,omitempty"`
}

// Validate checks the section and its subtree.
func (s *Section) Validate() error {
	if s.Title == "" {
		return dm.NewRequiredError("section", "title")
	}
	if s.Order < 0 {
		return &dm.FormatError{
			Kind:   "section",
			Field:  "order",
			Value:  strconv.Itoa(s.Order),
			Format: "a non-negative integer",
		}
	}
	for key, sub := range s.Subsections {
		if sub == nil {
			return dm.NewRequiredError("section "+key, "subsection")
		}
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup descends the subtree by section keys. An empty path returns s.
func (s *Section) Lookup(path ...string) (*Section, bool) {
	cur := s
	for _, key := range path {
		next, ok := cur.Subsections[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// OrderedKeys returns the keys of sections sorted by their order value,
// with ties broken by key so traversal is deterministic.
func OrderedKeys(sections map[string]*Section) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := sections[keys[i]], sections[keys[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return keys[i] < keys[j]
	})
	return keys
}

// FigureRef points at a figure extracted from the source document.
type FigureRef struct {
	FigureID             string   `json:"figure_id"`
	Caption              string   `json:"caption,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	ReferencedInSections []string `json:"referenced_in_sections,omitempty"`
}

// TableRef points at a table extracted from the source document. Data
// holds the rows as loosely typed objects; extraction decides the
// column set.
type TableRef struct {
	TableID              string           `json:"table_id"`
	Caption              string           `json:"caption,omitempty"`
	Data                 []map[string]any `json:"data,omitempty"`
	ReferencedInSections []string         `json:"referenced_in_sections,omitempty"`
	Metadata             map[string]any   `json:"metadata,omitempty"`
}

// CitationRef is one bibliography entry.
type CitationRef struct {
	RefID    string `json:"ref_id"`
	Citation string `json:"citation"`
	DOI      string `json:"doi,omitempty"`
	PubMedID string `json:"pubmed_id,omitempty"`
}

// Content is tier 3: the document body. Concrete kinds embed it and
// add structured fields alongside the free-form section tree.
type Content struct {
	Sections   map[string]*Section `json:"sections,omitempty"`
	Figures    []FigureRef         `json:"figures,omitempty"`
	Tables     []TableRef          `json:"tables,omitempty"`
	References []CitationRef       `json:"references,omitempty"`
}

// Validate checks the body's own invariants.
func (c *Content) Validate() error {
	for key, sec := range c.Sections {
		if sec == nil {
			return dm.NewRequiredError("content section "+key, "section")
		}
		if err := sec.Validate(); err != nil {
			return err
		}
	}
	for _, f := range c.Figures {
		if f.FigureID == "" {
			return dm.NewRequiredError("figure", "figure_id")
		}
	}
	for _, tb := range c.Tables {
		if tb.TableID == "" {
			return dm.NewRequiredError("table", "table_id")
		}
	}
	for _, r := range c.References {
		if r.RefID == "" {
			return dm.NewRequiredError("reference", "ref_id")
		}
		if strings.TrimSpace(r.Citation) == "" {
			return dm.NewRequiredError("reference "+r.RefID, "citation")
		}
	}
	return nil
}

// Section returns the top-level section under key, descending into any
// further path elements.
func (c *Content) Section(key string, path ...string) (*Section, bool) {
	top, ok := c.Sections[key]
	if !ok {
		return nil, false
	}
	return top.Lookup(path...)
}
