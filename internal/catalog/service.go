package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	// Insert assigns rec a fresh ID and stores it ahead of every existing record.
	Insert(ctx context.Context, rec *recommendation.Record) error
	// Delete removes the record with id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*recommendation.Record, error)
	List(ctx context.Context) ([]recommendation.Record, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates params and stores a new recommendation at the front of the catalog.
func (s *Service) Add(ctx context.Context, params recommendation.CreateParams) (*recommendation.Record, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	category, err := recommendation.ParseCategory(string(params.Category))
	if err != nil {
		return nil, err
	}

	rec := &recommendation.Record{
		Title:           strings.TrimSpace(params.Title),
		Description:     strings.TrimSpace(params.Description),
		Cost:            params.Cost.Decimal,
		ValueAddPercent: params.ValueAddPercent,
		Category:        category,
		ImageRef:        strings.TrimSpace(params.ImageRef),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("adding recommendation: %w", err)
	}

	return rec, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing recommendation %d: %w", id, err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*recommendation.Record, error) {
	return s.repo.Get(ctx, id)
}

// List returns the catalog, newest additions first.
func (s *Service) List(ctx context.Context) ([]recommendation.Record, error) {
	return s.repo.List(ctx)
}
