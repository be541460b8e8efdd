package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
)

type fakeAnalyticsRepo struct {
	total, low, out, cats int
	recent                []*entity.Product
	failCounts            bool
}

func (r *fakeAnalyticsRepo) CountProducts(_ context.Context) (int, error) {
	if r.failCounts {
		return 0, errors.New("db caída")
	}
	return r.total, nil
}
func (r *fakeAnalyticsRepo) CountProductsByStatus(_ context.Context, status string) (int, error) {
	switch status {
	case string(product.StatusLowStock):
		return r.low, nil
	case string(product.StatusOutOfStock):
		return r.out, nil
	}
	return 0, nil
}
func (r *fakeAnalyticsRepo) CountCategories(_ context.Context) (int, error) {
	return r.cats, nil
}
func (r *fakeAnalyticsRepo) RecentProducts(_ context.Context, limit int) ([]*entity.Product, error) {
	if limit < len(r.recent) {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func TestGetSummary_AgregaTodosLosConteos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: 42, low: 7, out: 3, cats: 5,
		recent: []*entity.Product{
			{ID: "p-1", Name: "Arroz 500g", SKU: "ABA-001", Quantity: 10},
			{ID: "p-2", Name: "Jabón", SKU: "ASE-001", Quantity: 2},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, out.TotalProducts)
	assert.Equal(t, 7, out.LowStockCount)
	assert.Equal(t, 3, out.OutOfStockCount)
	assert.Equal(t, 5, out.TotalCategories)
	require.Len(t, out.RecentProducts, 2)
	assert.Equal(t, "ABA-001", out.RecentProducts[0].SKU)
}

func TestGetSummary_PropagaErrorDeConsulta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{failCounts: true})

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard")
}
