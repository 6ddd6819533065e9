package property_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
)

func TestNewListing(t *testing.T) {
	type testCase struct {
		name    string
		records []property.Record
		wantErr bool
	}

	tests := []testCase{
		{
			name: "Valid",
			records: []property.Record{
				{ID: 1, Address: "2BHK, Green Park, New Delhi", Type: property.TypeApartment, AreaSqFt: 1100, CurrentValue: decimal.NewFromInt(12000000)},
				{ID: 2, Address: "3BHK Villa, HSR Layout, Bengaluru", Type: property.TypeVilla, AreaSqFt: 2000, CurrentValue: decimal.NewFromInt(25000000)},
			},
		},
		{
			name:    "DuplicateID",
			records: []property.Record{{ID: 1, AreaSqFt: 1}, {ID: 1, AreaSqFt: 1}},
			wantErr: true,
		},
		{
			name:    "ZeroArea",
			records: []property.Record{{ID: 1}},
			wantErr: true,
		},
		{
			name:    "NaNArea",
			records: []property.Record{{ID: 1, AreaSqFt: math.NaN()}},
			wantErr: true,
		},
		{
			name:    "InfiniteArea",
			records: []property.Record{{ID: 1, AreaSqFt: math.Inf(1)}},
			wantErr: true,
		},
		{
			name:    "NegativeValue",
			records: []property.Record{{ID: 1, AreaSqFt: 10, CurrentValue: decimal.NewFromInt(-1)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := property.NewListing(tt.records)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, l.List(), len(tt.records))
		})
	}
}

func TestListing_ReadOnly(t *testing.T) {
	l, err := property.NewListing([]property.Record{{ID: 1, Address: "Green Park", AreaSqFt: 1100}})
	require.NoError(t, err)

	got := l.List()
	got[0].Address = "changed"

	rec, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Green Park", rec.Address)

	_, err = l.Get(2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestParseType(t *testing.T) {
	got, err := property.ParseType("independent house")
	require.NoError(t, err)
	assert.Equal(t, property.TypeIndependentHouse, got)

	got, err = property.ParseType("")
	require.NoError(t, err)
	assert.Equal(t, property.TypeApartment, got)

	_, err = property.ParseType("Castle")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
