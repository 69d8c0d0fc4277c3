package usecase

import (
	"strconv"

	dm "github.com/ashmatics/datamodels"
	"github.com/ashmatics/datamodels/optional"
	"github.com/ashmatics/datamodels/schema"
)

// categoryDescriptor is the canonical field table for use case
// categories.
var categoryDescriptor = schema.Descriptor{
	Entity: "use case category",
	Fields: []schema.Field{
		{Name: "id", Required: []schema.Shape{schema.ShapeResponse}, Summary: true},
		{Name: "category_name", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse, schema.ShapeSummary}, Summary: true},
		{Name: "category_code", Required: []schema.Shape{schema.ShapeCreate, schema.ShapeResponse, schema.ShapeSummary}, Summary: true},
		{Name: "description"},
		{Name: "display_order"},
		{Name: "is_active"},
		{Name: "parent_category_id"},
	},
}

// CategoryDescriptor exposes the category field table.
func CategoryDescriptor() *schema.Descriptor { return &categoryDescriptor }

// Category is one node of the use case taxonomy. Categories form a
// hierarchy through parent ids; DisplayOrder ranks siblings.
type Category struct {
	// CategoryName is the human-readable name, e.g. "Chest Radiology".
	CategoryName string `json:"category_name"`

	// CategoryCode is the unique short code, e.g. "RAD_CHEST".
	CategoryCode string `json:"category_code"`

	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// Validate checks required fields.
func (c *Category) Validate() error {
	return categoryDescriptor.Validate(schema.ShapeCreate, c)
}

// CategoryCreate is the creation shape; a zero parent id files the
// category at the top level.
type CategoryCreate struct {
	Category

	ParentCategoryID int64 `json:"parent_category_id,omitempty"`
}

// Validate checks the base fields and the parent reference.
func (c *CategoryCreate) Validate() error {
	if err := c.Category.Validate(); err != nil {
		return err
	}
	if c.ParentCategoryID < 0 {
		return &dm.FormatError{
			Kind:   "use case category",
			Field:  "parent_category_id",
			Value:  strconv.FormatInt(c.ParentCategoryID, 10),
			Format: "a non-negative category id",
		}
	}
	return nil
}

// CategoryUpdate is the partial-patch shape.
type CategoryUpdate struct {
	CategoryName     optional.Value[string] `json:"category_name,omitzero"`
	CategoryCode     optional.Value[string] `json:"category_code,omitzero"`
	Description      optional.Value[string] `json:"description,omitzero"`
	ParentCategoryID optional.Value[int64]  `json:"parent_category_id,omitzero"`
	DisplayOrder     optional.Value[int]    `json:"display_order,omitzero"`
	IsActive         optional.Value[bool]   `json:"is_active,omitzero"`
}

// Validate applies full validation to every present field.
func (u *CategoryUpdate) Validate() error {
	if name, ok := u.CategoryName.Get(); ok && name == "" {
		return dm.NewRequiredError("use case category", "category_name")
	}
	if code, ok := u.CategoryCode.Get(); ok && code == "" {
		return dm.NewRequiredError("use case category", "category_code")
	}
	return nil
}

// CategoryResponse is the persisted view, carrying database identity
// and the nested children used in tree views.
type CategoryResponse struct {
	ID int64 `json:"id"`
	Category
	schema.Timestamped

	ParentCategoryID int64 `json:"parent_category_id,omitempty"`

	// FullPath is the display path from the root, e.g.
	// "Clinical Specialties > Radiology".
	FullPath string `json:"full_path,omitempty"`

	Children []*CategoryResponse `json:"children,omitempty"`
}

// NewCategoryResponse validates c and wraps it with the assigned
// database identity and fresh timestamps.
func NewCategoryResponse(c CategoryCreate, id int64) (*CategoryResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &CategoryResponse{
		ID:               id,
		Category:         c.Category,
		Timestamped:      schema.NewTimestamped(),
		ParentCategoryID: c.ParentCategoryID,
	}, nil
}

// IsTopLevel reports whether the category has no parent.
func (r *CategoryResponse) IsTopLevel() bool {
	return r.ParentCategoryID == 0
}

// CategorySummary is the minimal category view for list display.
type CategorySummary struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	CategoryCode string `json:"category_code"`
}

// Summarize projects the response to its summary shape.
func (r *CategoryResponse) Summarize() CategorySummary {
	return CategorySummary{
		ID:           r.ID,
		CategoryName: r.CategoryName,
		CategoryCode: r.CategoryCode,
	}
}

// CategoryTree is the hierarchical view over the whole taxonomy.
type CategoryTree struct {
	TopLevelCategories []*CategoryResponse `json:"top_level_categories"`
	TotalCategories    int                 `json:"total_categories"`
	MaxDepth           int                 `json:"max_depth"`
}

// BuildCategoryTree nests a flat category list by parent id and
// computes full display paths. Siblings are ordered by display_order
// as given; categories pointing at a missing parent are treated as
// top-level.
func BuildCategoryTree(categories []*CategoryResponse) *CategoryTree {
	byID := make(map[int64]*CategoryResponse, len(categories))
	for _, c := range categories {
		c.Children = nil
		byID[c.ID] = c
	}

	tree := &CategoryTree{TotalCategories: len(categories)}
	for _, c := range categories {
		parent, ok := byID[c.ParentCategoryID]
		if c.IsTopLevel() || !ok {
			tree.TopLevelCategories = append(tree.TopLevelCategories, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}

	for _, root := range tree.TopLevelCategories {
		depth := annotate(root, "")
		if depth > tree.MaxDepth {
			tree.MaxDepth = depth
		}
	}
	return tree
}

// annotate fills in full paths below c and returns the subtree depth.
func annotate(c *CategoryResponse, parentPath string) int {
	if parentPath == "" {
		c.FullPath = c.CategoryName
	} else {
		c.FullPath = parentPath + " > " + c.CategoryName
	}
	depth := 1
	for _, child := range c.Children {
		if d := annotate(child, c.FullPath) + 1; d > depth {
			depth = d
		}
	}
	return depth
}
