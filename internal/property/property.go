package property

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
)

// Type is the kind of dwelling.
type Type string

const (
	TypeApartment        Type = "Apartment"
	TypeVilla            Type = "Villa"
	TypeIndependentHouse Type = "Independent House"
)

var Types = []Type{TypeApartment, TypeVilla, TypeIndependentHouse}

// ParseType accepts a type name in any letter case. An empty name yields TypeApartment.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeApartment, nil
	}

	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}

	return "", apperr.Validation("property_type", fmt.Sprintf("unknown property type %q", s))
}

// Record is a listed property.
type Record struct {
	ID           int64
	Address      string
	Type         Type
	AreaSqFt     float64
	CurrentValue decimal.Decimal
	ImageRef     string
}

// Listing is the read-only set of properties loaded at start.
type Listing struct {
	records []Record
}

// NewListing validates records and freezes them in the given order.
func NewListing(records []Record) (*Listing, error) {
	seen := make(map[int64]struct{}, len(records))

	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate property id %d", r.ID)
		}

		seen[r.ID] = struct{}{}

		if !(r.AreaSqFt > 0) || math.IsInf(r.AreaSqFt, 1) {
			return nil, fmt.Errorf("property %d: area must be positive", r.ID)
		}

		if r.CurrentValue.IsNegative() {
			return nil, fmt.Errorf("property %d: current value must not be negative", r.ID)
		}
	}

	return &Listing{records: slices.Clone(records)}, nil
}

func (l *Listing) List() []Record {
	return slices.Clone(l.records)
}

func (l *Listing) Get(id int64) (*Record, error) {
	idx := slices.IndexFunc(l.records, func(r Record) bool { return r.ID == id })
	if idx < 0 {
		return nil, apperr.NotFound(fmt.Sprintf("property %d not found", id))
	}

	r := l.records[idx]

	return &r, nil
}
