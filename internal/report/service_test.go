package report_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/report"
)

type fakeCatalog struct {
	records []recommendation.Record
	err     error
}

func (f fakeCatalog) List(context.Context) ([]recommendation.Record, error) {
	return f.records, f.err
}

func seed() []recommendation.Record {
	return []recommendation.Record{
		{ID: 1, Title: "Modular Kitchen Upgrade", Cost: decimal.NewFromInt(150000), ValueAddPercent: 10, Category: recommendation.CategoryInterior},
		{ID: 3, Title: "Smart Home Integration", Cost: decimal.NewFromInt(50000), ValueAddPercent: 7, Category: recommendation.CategoryTechnology},
		{ID: 4, Title: "Terrace Garden", Cost: decimal.NewFromInt(60000), ValueAddPercent: 8.5, Category: recommendation.CategoryExterior},
	}
}

func newService(t *testing.T, catalog matching.Catalog) *report.Service {
	t.Helper()

	f, err := report.NewFormatter("en-US")
	require.NoError(t, err)

	return report.NewService(matching.NewService(catalog), f)
}

func TestService_Summary(t *testing.T) {
	svc := newService(t, fakeCatalog{records: seed()})

	q := matching.Query{PropertyType: property.TypeVilla, AreaSqFt: 2000, Budget: decimal.NewFromInt(60000)}

	sum, err := svc.Summary(context.Background(), q)
	require.NoError(t, err)

	assert.Len(t, sum.Recommendations, 2)
	assert.True(t, decimal.NewFromInt(110000).Equal(sum.TotalCost))

	want := "* Smart Home Integration | Technology | ₹50,000 | ~7% value add\n" +
		"* Terrace Garden | Exterior | ₹60,000 | ~8.5% value add\n" +
		"Total: ₹110,000 for 2 upgrades within ₹60,000\n"
	assert.Equal(t, want, sum.Body)
}

func TestService_Summary_NoMatches(t *testing.T) {
	svc := newService(t, fakeCatalog{records: seed()})

	q := matching.Query{AreaSqFt: 900, Budget: decimal.NewFromInt(1000)}

	sum, err := svc.Summary(context.Background(), q)
	require.NoError(t, err)

	assert.Empty(t, sum.Recommendations)
	assert.True(t, sum.TotalCost.IsZero())
	assert.Equal(t, "No recommendations found for your budget of ₹1,000.\n", sum.Body)
}

func TestService_Summary_Errors(t *testing.T) {
	t.Run("InvalidQuery", func(t *testing.T) {
		svc := newService(t, fakeCatalog{records: seed()})

		_, err := svc.Summary(context.Background(), matching.Query{Budget: decimal.NewFromInt(1000)})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("CatalogFailure", func(t *testing.T) {
		svc := newService(t, fakeCatalog{err: errors.New("unavailable")})

		q := matching.Query{AreaSqFt: 900, Budget: decimal.NewFromInt(1000)}

		_, err := svc.Summary(context.Background(), q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unavailable")
	})
}

func TestFormatter_INR(t *testing.T) {
	f, err := report.NewFormatter("")
	require.NoError(t, err)

	got := f.INR(decimal.NewFromInt(150000))
	assert.True(t, strings.HasPrefix(got, "₹"))
	assert.Equal(t, "150000", strings.ReplaceAll(strings.TrimPrefix(got, "₹"), ",", ""))

	frac := f.INR(decimal.RequireFromString("999.5"))
	assert.Equal(t, "₹999.50", frac)
}

func TestNewFormatter_BadLocale(t *testing.T) {
	_, err := report.NewFormatter("not a locale!")
	assert.Error(t, err)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "10%", report.Percent(10))
	assert.Equal(t, "8.5%", report.Percent(8.5))
}
