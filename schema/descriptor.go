package schema

import (
	"fmt"
	"reflect"
	"strings"

	dm "github.com/ashmatics/datamodels"
)

// Shape names one field-visibility projection of an entity.
type Shape string

const (
	ShapeCreate   Shape = "create"
	ShapeUpdate   Shape = "update"
	ShapeResponse Shape = "response"
	ShapeSummary  Shape = "summary"
	ShapeStats    Shape = "stats"
)

// Field is one entry in an entity's canonical field table. Name is the
// wire name, matching the struct's json tag. Required lists the shapes in
// which the field must carry a non-zero value. Summary marks fields the
// Summary projection carries.
type Field struct {
	Name     string
	Required []Shape
	Summary  bool
}

func (f Field) requiredIn(shape Shape) bool {
	for _, s := range f.Required {
		if s == shape {
			return true
		}
	}
	return false
}

// Descriptor is the single canonical field table an entity's shape
// variants all derive their required-field rules from. Shapes share one
// table so they cannot drift apart.
type Descriptor struct {
	Entity string
	Fields []Field
}

// RequiredIn returns the wire names of the fields required in shape, in
// table order.
func (d *Descriptor) RequiredIn(shape Shape) []string {
	var names []string
	for _, f := range d.Fields {
		if f.requiredIn(shape) {
			names = append(names, f.Name)
		}
	}
	return names
}

// SummaryFields returns the wire names the Summary projection carries, in
// table order.
func (d *Descriptor) SummaryFields() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Summary {
			names = append(names, f.Name)
		}
	}
	return names
}

// SummaryMatches checks that v, an entity's Summary shape, carries
// exactly the wire fields the table marks Summary. Entity packages
// assert this in their tests, so a table edit and its Summary struct
// cannot drift apart.
func (d *Descriptor) SummaryMatches(v any) error {
	got := wireNames(v)
	want := make(map[string]bool, len(d.Fields))
	for _, name := range d.SummaryFields() {
		want[name] = true
		if !got[name] {
			return fmt.Errorf("%s summary: field %q is in the table but not the struct", d.Entity, name)
		}
	}
	for _, f := range structWireNames(v) {
		if !want[f] {
			return fmt.Errorf("%s summary: field %q is in the struct but not the table", d.Entity, f)
		}
	}
	return nil
}

// Covers checks that every wire field v exposes has a table entry.
// Update shapes assert this in entity tests, so a patch field cannot
// exist without a canonical definition.
func (d *Descriptor) Covers(v any) error {
	known := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		known[f.Name] = true
	}
	for _, name := range structWireNames(v) {
		if !known[name] {
			return fmt.Errorf("%s: field %q has no table entry", d.Entity, name)
		}
	}
	return nil
}

func wireNames(v any) map[string]bool {
	names := make(map[string]bool)
	for _, name := range structWireNames(v) {
		names[name] = true
	}
	return names
}

// structWireNames lists the json wire names v exposes, flattening
// embedded structs the way encoding/json does.
func structWireNames(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv = reflect.New(rv.Type().Elem())
		}
		rv = rv.Elem()
	}
	fields := make(map[string]reflect.Value)
	collectWireFields(rv, fields)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}

// Validate checks that every field the table requires in shape holds a
// non-zero value on v. Struct fields are matched to table entries by json
// tag, descending into embedded structs. The first missing field is
// reported as a required-field error naming the entity and wire name.
func (d *Descriptor) Validate(shape Shape, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return dm.NewRequiredError(d.Entity, "(nil record)")
		}
		rv = rv.Elem()
	}

	found := make(map[string]reflect.Value)
	collectWireFields(rv, found)

	for _, f := range d.Fields {
		if !f.requiredIn(shape) {
			continue
		}
		fv, ok := found[f.Name]
		if !ok || isEmptyValue(fv) {
			return dm.NewRequiredError(d.Entity, f.Name)
		}
	}
	return nil
}

// collectWireFields maps json wire names to struct field values,
// flattening embedded structs the way encoding/json does.
func collectWireFields(rv reflect.Value, out map[string]reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("json") == "" {
			collectWireFields(rv.Field(i), out)
			continue
		}
		tag := sf.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		out[name] = rv.Field(i)
	}
}

// isEmptyValue mirrors the json ",omitzero" notion of emptiness: an
// IsZero method wins when the type has one, otherwise the reflect zero
// check applies.
func isEmptyValue(fv reflect.Value) bool {
	if z, ok := fv.Interface().(interface{ IsZero() bool }); ok {
		return z.IsZero()
	}
	switch fv.Kind() {
	case reflect.Slice, reflect.Map:
		return fv.Len() == 0
	}
	return fv.IsZero()
}
