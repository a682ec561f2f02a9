package dataset

import (
	"fmt"
	"strings"
)

// Field identifies a semantic column of the nutrition dataset.
type Field int

const (
	FieldDiet Field = iota
	FieldRecipe
	FieldCuisine
	FieldProtein
	FieldCarbs
	FieldFat
)

// requiredFields lists every field the pipeline needs, in display order.
var requiredFields = []Field{
	FieldDiet, FieldRecipe, FieldCuisine, FieldProtein, FieldCarbs, FieldFat,
}

// spellings maps each semantic field to its accepted header names.
// Resolution picks the first spelling present in the table, so the order
// here encodes preference, not priority of meaning: any single accepted
// spelling resolves to the same field.
var spellings = map[Field][]string{
	FieldDiet:    {"Diet_type", "Diet Type", "diet_type", "diet"},
	FieldRecipe:  {"Recipe_name", "Recipe Name", "recipe_name", "Recipe"},
	FieldCuisine: {"Cuisine_type", "Cuisine Type", "cuisine_type", "Cuisine"},
	FieldProtein: {"Protein(g)", "Protein", "protein"},
	FieldCarbs:   {"Carbs(g)", "Carbs", "carbs", "Carbohydrates(g)", "Carbohydrates"},
	FieldFat:     {"Fat(g)", "Fat", "fat"},
}

// String returns the field's display name.
func (f Field) String() string {
	switch f {
	case FieldDiet:
		return "diet type"
	case FieldRecipe:
		return "recipe name"
	case FieldCuisine:
		return "cuisine type"
	case FieldProtein:
		return "protein"
	case FieldCarbs:
		return "carbs"
	case FieldFat:
		return "fat"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Columns maps each resolved semantic field to its column index.
type Columns map[Field]int

// Name returns the header spelling the table actually uses for a field.
func (c Columns) Name(t *Table, f Field) string {
	idx, ok := c[f]
	if !ok || idx >= len(t.Headers) {
		return ""
	}
	return t.Headers[idx]
}

// UnresolvedColumnsError reports semantic fields that could not be matched
// against the table header, along with every header the table does carry
// so the mismatch can be diagnosed.
type UnresolvedColumnsError struct {
	Missing  []Field
	Detected []string
}

// Error implements the error interface.
func (e *UnresolvedColumnsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return fmt.Sprintf("could not detect required columns [%s]; detected columns: %s",
		strings.Join(names, ", "), strings.Join(e.Detected, ", "))
}

// Resolve maps every required semantic field to a column index using the
// accepted spellings, first match wins. Returns *UnresolvedColumnsError
// when any field has no accepted spelling in the table.
func Resolve(t *Table) (Columns, error) {
	index := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		// First occurrence wins for duplicated headers.
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make(Columns, len(requiredFields))
	var missing []Field

	for _, field := range requiredFields {
		found := false
		for _, name := range spellings[field] {
			if idx, ok := index[name]; ok {
				cols[field] = idx
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		detected := make([]string, len(t.Headers))
		copy(detected, t.Headers)
		return nil, &UnresolvedColumnsError{Missing: missing, Detected: detected}
	}

	return cols, nil
}
