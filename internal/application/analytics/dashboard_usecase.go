// Package analytics contiene los casos de uso de agregados para el dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const dashboardRecentProducts = 5 // productos en el widget "recientes"

// DashboardUseCase arma el resumen de la vista principal: total de productos,
// conteos low/out of stock, total de categorías y los 5 productos más recientes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo: total productos, low_stock, out_of_stock,
// total categorías y recientes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type recentResult struct {
		items []dto.ProductResponse
		err   error
	}

	totalCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	outCh := make(chan countResult, 1)
	catCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProductsByStatus(ctx, string(product.StatusLowStock))
		lowCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProductsByStatus(ctx, string(product.StatusOutOfStock))
		outCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCategories(ctx)
		catCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.analyticsRepo.RecentProducts(ctx, dashboardRecentProducts)
		if err != nil {
			recentCh <- recentResult{nil, err}
			return
		}
		items := make([]dto.ProductResponse, 0, len(list))
		for _, p := range list {
			items = append(items, dto.FromProduct(p))
		}
		recentCh <- recentResult{items, nil}
	}()

	total := <-totalCh
	low := <-lowCh
	out := <-outCh
	cats := <-catCh
	recent := <-recentCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: low stock: %w", low.err)
	}
	if out.err != nil {
		return nil, fmt.Errorf("dashboard: out of stock: %w", out.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: total categorías: %w", cats.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: productos recientes: %w", recent.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:   total.n,
		LowStockCount:   low.n,
		OutOfStockCount: out.n,
		TotalCategories: cats.n,
		RecentProducts:  recent.items,
	}, nil
}
