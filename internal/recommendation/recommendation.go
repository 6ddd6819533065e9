package recommendation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
)

// Category groups improvements by the part of the home they touch.
type Category string

const (
	CategoryInterior       Category = "Interior"
	CategoryExterior       Category = "Exterior"
	CategoryTechnology     Category = "Technology"
	CategorySustainability Category = "Sustainability"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryInterior,
	CategoryExterior,
	CategoryTechnology,
	CategorySustainability,
}

// ParseCategory accepts a category name in any letter case. An empty name
// yields CategoryInterior, the form's default.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryInterior, nil
	}

	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}

	return "", apperr.Validation("category", fmt.Sprintf("unknown category %q", s))
}

// Record is a single property-improvement recommendation.
type Record struct {
	ID              int64
	Title           string
	Description     string
	Cost            decimal.Decimal // Estimated cost in rupees
	ValueAddPercent float64
	Category        Category
	ImageRef        string
}

// CreateParams holds the fields an admin submits for a new recommendation.
type CreateParams struct {
	Title           string
	Description     string
	Cost            decimal.NullDecimal
	ValueAddPercent float64
	Category        Category
	ImageRef        string
}

// Validate checks presence of the title and cost and that the cost is not negative.
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return apperr.Validation("title", "title is required")
	}

	if !p.Cost.Valid {
		return apperr.Validation("cost", "cost is required")
	}

	if p.Cost.Decimal.IsNegative() {
		return apperr.Validation("cost", "cost must not be negative")
	}

	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}

	return nil
}

// ParseCost parses a cost typed by a user. Indian digit grouping and a leading
// rupee sign are accepted: "₹1,50,000" and "150000" are the same cost.
func ParseCost(s string) (decimal.NullDecimal, error) {
	clean := CleanAmount(s)
	if clean == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NullDecimal{}, apperr.Validation("cost", fmt.Sprintf("cost %q is not a number", s))
	}

	return decimal.NewNullDecimal(d), nil
}

// CleanAmount strips currency markers, grouping separators and spaces.
func CleanAmount(s string) string {
	clean := strings.TrimSpace(s)
	for _, prefix := range []string{"₹", "Rs.", "Rs", "INR"} {
		clean = strings.TrimPrefix(clean, prefix)
	}

	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	return clean
}
