package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

// Match returns the records whose cost is within budget (inclusive), in
// their original order. The input slice is never modified.
func Match(records []recommendation.Record, budget decimal.Decimal) []recommendation.Record {
	matched := make([]recommendation.Record, 0, len(records))

	for _, r := range records {
		if r.Cost.LessThanOrEqual(budget) {
			matched = append(matched, r)
		}
	}

	return matched
}

// ParseBudget parses a user-supplied budget. A missing, non-numeric or
// negative budget is a validation error and no match should run.
func ParseBudget(s string) (decimal.Decimal, error) {
	clean := recommendation.CleanAmount(s)
	if clean == "" {
		return decimal.Zero, apperr.Validation("budget", "budget is required")
	}

	budget, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, apperr.Validation("budget", fmt.Sprintf("budget %q is not a number", s))
	}

	if budget.IsNegative() {
		return decimal.Zero, apperr.Validation("budget", "budget must not be negative")
	}

	return budget, nil
}

// Query is what a homeowner fills in to get personalised ideas.
type Query struct {
	PropertyType property.Type
	AreaSqFt     float64
	Budget       decimal.Decimal
}

// ParseQuery builds a Query from form values. Property type, area and budget
// are all required.
func ParseQuery(propertyType, areaSqFt, budget string) (Query, error) {
	if strings.TrimSpace(propertyType) == "" {
		return Query{}, apperr.Validation("property_type", "please fill in all fields")
	}

	pt, err := property.ParseType(propertyType)
	if err != nil {
		return Query{}, err
	}

	areaSqFt = strings.TrimSpace(strings.ReplaceAll(areaSqFt, ",", ""))
	if areaSqFt == "" {
		return Query{}, apperr.Validation("area_sqft", "please fill in all fields")
	}

	area, err := strconv.ParseFloat(areaSqFt, 64)
	if err != nil {
		return Query{}, apperr.Validation("area_sqft", fmt.Sprintf("area %q is not a number", areaSqFt))
	}

	b, err := ParseBudget(budget)
	if err != nil {
		return Query{}, err
	}

	q := Query{PropertyType: pt, AreaSqFt: area, Budget: b}

	return q, q.Validate()
}

func (q Query) Validate() error {
	if _, err := property.ParseType(string(q.PropertyType)); err != nil {
		return err
	}

	// NaN fails every comparison, so test for the valid range.
	if !(q.AreaSqFt > 0) || math.IsInf(q.AreaSqFt, 1) {
		return apperr.Validation("area_sqft", "area must be a positive number")
	}

	if q.Budget.IsNegative() {
		return apperr.Validation("budget", "budget must not be negative")
	}

	return nil
}
