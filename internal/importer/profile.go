package importer

import "strings"

// field is a logical column of a seed file.
type field string

const (
	fieldID          field = "id"
	fieldTitle       field = "title"
	fieldDescription field = "description"
	fieldCost        field = "cost"
	fieldValueAdd    field = "value_add_percent"
	fieldCategory    field = "category"
	fieldImage       field = "image"
	fieldAddress     field = "address"
	fieldType        field = "type"
	fieldArea        field = "sqft"
	fieldValue       field = "current_value"
)

// Profile describes the header layout of one kind of seed file. Each field
// lists the header spellings accepted for it, compared case-insensitively.
type Profile struct {
	Name     string
	Required []field
	Aliases  map[field][]string
}

var recommendationProfile = Profile{
	Name:     "recommendations",
	Required: []field{fieldTitle, fieldCost},
	Aliases: map[field][]string{
		fieldID:          {"id"},
		fieldTitle:       {"title", "name"},
		fieldDescription: {"description", "details"},
		fieldCost:        {"cost", "estimated cost", "estimated cost (₹)", "cost (₹)"},
		fieldValueAdd:    {"value_add_percent", "value add %", "value add", "value_add"},
		fieldCategory:    {"category"},
		fieldImage:       {"image", "image url", "image_ref"},
	},
}

var propertyProfile = Profile{
	Name:     "properties",
	Required: []field{fieldAddress, fieldArea},
	Aliases: map[field][]string{
		fieldID:      {"id"},
		fieldAddress: {"address"},
		fieldType:    {"type", "property type"},
		fieldArea:    {"sqft", "area", "area (in sq. ft.)", "area_sqft"},
		fieldValue:   {"current_value", "current value", "value"},
		fieldImage:   {"image", "image url", "image_ref"},
	},
}

// colIndex maps a field to its column in the row.
type colIndex map[field]int

// match returns the column index for every field found in header, and
// whether all required fields are present.
func (p Profile) match(header []string) (colIndex, bool) {
	cols := make(colIndex)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}

		for f, aliases := range p.Aliases {
			for _, alias := range aliases {
				if name == alias {
					cols[f] = i
				}
			}
		}
	}

	for _, f := range p.Required {
		if _, ok := cols[f]; !ok {
			return cols, false
		}
	}

	return cols, true
}
