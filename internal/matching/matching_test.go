package matching_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

func rec(id, cost int64) recommendation.Record {
	return recommendation.Record{ID: id, Cost: decimal.NewFromInt(cost)}
}

func costs(recs []recommendation.Record) []int64 {
	out := make([]int64, len(recs))
	for i, r := range recs {
		out[i] = r.Cost.IntPart()
	}

	return out
}

func TestMatch_BudgetScenario(t *testing.T) {
	catalog := []recommendation.Record{rec(1, 150000), rec(2, 80000), rec(3, 50000), rec(4, 120000)}

	got := matching.Match(catalog, decimal.NewFromInt(100000))

	if diff := cmp.Diff([]int64{80000, 50000}, costs(got)); diff != "" {
		t.Errorf("matched costs mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []int64{2, 3}, []int64{got[0].ID, got[1].ID})
}

func TestMatch_BoundaryIsInclusive(t *testing.T) {
	catalog := []recommendation.Record{rec(1, 150000), rec(2, 80000), rec(3, 150000)}

	got := matching.Match(catalog, decimal.NewFromInt(150000))
	assert.Len(t, got, 3)

	got = matching.Match(catalog, decimal.RequireFromString("149999.99"))
	assert.Equal(t, []int64{80000}, costs(got))
}

func TestMatch_EmptyCatalog(t *testing.T) {
	got := matching.Match(nil, decimal.NewFromInt(10))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		n := r.IntN(12)
		catalog := make([]recommendation.Record, n)

		for i := range catalog {
			catalog[i] = rec(int64(i+1), r.Int64N(200000))
		}

		snapshot := slices.Clone(catalog)
		budget := decimal.NewFromInt(r.Int64N(220000))

		got := matching.Match(catalog, budget)

		require.Equal(t, snapshot, catalog, "input must not be mutated")

		for _, m := range got {
			require.True(t, m.Cost.LessThanOrEqual(budget))
		}

		// Relative order follows the catalog: IDs were assigned ascending.
		require.True(t, slices.IsSortedFunc(got, func(a, b recommendation.Record) int {
			return int(a.ID - b.ID)
		}))

		require.Equal(t, got, matching.Match(got, budget), "match must be idempotent")

		want := 0
		for _, c := range catalog {
			if c.Cost.LessThanOrEqual(budget) {
				want++
			}
		}

		require.Len(t, got, want)
	}
}

func TestParseBudget(t *testing.T) {
	type testCase struct {
		in      string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{in: "100000", want: 100000},
		{in: "₹2,00,000", want: 200000},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := matching.ParseBudget(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IntPart())
		})
	}
}

func TestParseQuery(t *testing.T) {
	q, err := matching.ParseQuery("Villa", "2,000", "150000")
	require.NoError(t, err)
	assert.Equal(t, property.TypeVilla, q.PropertyType)
	assert.InDelta(t, 2000, q.AreaSqFt, 0.001)
	assert.Equal(t, int64(150000), q.Budget.IntPart())

	_, err = matching.ParseQuery("Apartment", "", "150000")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = matching.ParseQuery("Apartment", "0", "150000")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = matching.ParseQuery("Apartment", "1200", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = matching.ParseQuery("Houseboat", "1200", "10")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = matching.ParseQuery("  ", "1200", "10")
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "please fill in all fields")
}

type fakeCatalog struct {
	records []recommendation.Record
	err     error
}

func (f fakeCatalog) List(context.Context) ([]recommendation.Record, error) {
	return f.records, f.err
}

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()
	q := matching.Query{PropertyType: property.TypeApartment, AreaSqFt: 1200, Budget: decimal.NewFromInt(60000)}

	svc := matching.NewService(fakeCatalog{records: []recommendation.Record{rec(1, 150000), rec(3, 50000), rec(4, 60000)}})

	res, err := svc.Recommend(ctx, q)
	require.NoError(t, err)
	assert.False(t, res.Empty())
	assert.Equal(t, []int64{50000, 60000}, costs(res.Recommendations))

	res, err = svc.Recommend(ctx, matching.Query{AreaSqFt: 1200, Budget: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, res.Empty())

	_, err = svc.Recommend(ctx, matching.Query{Budget: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	failing := matching.NewService(fakeCatalog{err: errors.New("unavailable")})
	_, err = failing.Recommend(ctx, q)
	assert.Error(t, err)
}
