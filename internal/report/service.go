// Package report renders a plain-text summary of the recommendations that fit
// a homeowner's budget.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

// Recommender is the part of the matching service the report needs.
type Recommender interface {
	Recommend(ctx context.Context, q matching.Query) (*matching.Result, error)
}

// Summary is a rendered report together with the values it was built from.
type Summary struct {
	Query           matching.Query
	Recommendations []recommendation.Record
	TotalCost       decimal.Decimal
	Body            string
}

type Service struct {
	recommender Recommender
	format      *Formatter
}

func NewService(recommender Recommender, format *Formatter) *Service {
	return &Service{
		recommender: recommender,
		format:      format,
	}
}

// Summary matches q against the catalog and renders one line per record
// followed by a total line.
func (s *Service) Summary(ctx context.Context, q matching.Query) (*Summary, error) {
	result, err := s.recommender.Recommend(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("matching recommendations: %w", err)
	}

	total := decimal.Zero
	for _, r := range result.Recommendations {
		total = total.Add(r.Cost)
	}

	return &Summary{
		Query:           q,
		Recommendations: result.Recommendations,
		TotalCost:       total,
		Body:            s.Render(q, result.Recommendations),
	}, nil
}

// Render formats records as report lines without consulting the catalog.
func (s *Service) Render(q matching.Query, records []recommendation.Record) string {
	var sb strings.Builder

	if len(records) == 0 {
		sb.WriteString(fmt.Sprintf("No recommendations found for your budget of %s.\n", s.format.INR(q.Budget)))

		return sb.String()
	}

	total := decimal.Zero

	for _, r := range records {
		total = total.Add(r.Cost)

		sb.WriteString(fmt.Sprintf("* %s | %s | %s | ~%s value add\n",
			r.Title, r.Category, s.format.INR(r.Cost), Percent(r.ValueAddPercent)))
	}

	noun := "upgrades"
	if len(records) == 1 {
		noun = "upgrade"
	}

	sb.WriteString(fmt.Sprintf("Total: %s for %d %s within %s\n",
		s.format.INR(total), len(records), noun, s.format.INR(q.Budget)))

	return sb.String()
}
