package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/catalog/store"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

func seed() []recommendation.Record {
	return []recommendation.Record{
		{ID: 1, Title: "Modular Kitchen Upgrade", Cost: decimal.NewFromInt(150000), Category: recommendation.CategoryInterior},
		{ID: 2, Title: "Install Energy Efficient Windows", Cost: decimal.NewFromInt(80000), Category: recommendation.CategoryExterior},
	}
}

func ids(recs []recommendation.Record) []int64 {
	out := make([]int64, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}

	return out
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := store.New([]recommendation.Record{{ID: 7}, {ID: 7}})
	assert.Error(t, err)
}

func TestStore_InsertPrependsWithFreshIDs(t *testing.T) {
	ctx := context.Background()
	fixed := time.UnixMilli(1_700_000_000_000)

	s, err := store.New(seed())
	require.NoError(t, err)
	s.WithClock(func() time.Time { return fixed })

	a := &recommendation.Record{Title: "Smart Home Integration"}
	b := &recommendation.Record{Title: "Terrace Garden"}

	require.NoError(t, s.Insert(ctx, a))
	require.NoError(t, s.Insert(ctx, b))

	assert.Equal(t, fixed.UnixMilli(), a.ID)
	assert.Equal(t, fixed.UnixMilli()+1, b.ID)

	got, err := s.List(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff([]int64{b.ID, a.ID, 1, 2}, ids(got)); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_IDsStayAboveSeed(t *testing.T) {
	s, err := store.New([]recommendation.Record{{ID: 5_000_000_000_000}})
	require.NoError(t, err)
	s.WithClock(func() time.Time { return time.UnixMilli(10) })

	rec := &recommendation.Record{Title: "x"}
	require.NoError(t, s.Insert(context.Background(), rec))
	assert.Equal(t, int64(5_000_000_000_001), rec.ID)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()

	s, err := store.New(seed())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, 1))
	require.NoError(t, s.Delete(ctx, 1))
	require.NoError(t, s.Delete(ctx, 99))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	s, err := store.New(seed())
	require.NoError(t, err)

	rec, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Install Energy Efficient Windows", rec.Title)

	_, err = s.Get(ctx, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()

	s, err := store.New(seed())
	require.NoError(t, err)

	got, err := s.List(ctx)
	require.NoError(t, err)
	got[0].Title = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Modular Kitchen Upgrade", again[0].Title)
}
