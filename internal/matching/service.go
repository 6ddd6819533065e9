package matching

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

// Catalog is the read side of the recommendation catalog.
type Catalog interface {
	List(ctx context.Context) ([]recommendation.Record, error)
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Result is the outcome of a recommendation request. An empty Recommendations
// slice means nothing fits the budget; it is not an error.
type Result struct {
	Query           Query
	Recommendations []recommendation.Record
}

func (r Result) Empty() bool {
	return len(r.Recommendations) == 0
}

// Recommend validates q and matches the current catalog against its budget.
func (s *Service) Recommend(ctx context.Context, q Query) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	records, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	return &Result{
		Query:           q,
		Recommendations: Match(records, q.Budget),
	}, nil
}
