package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountProductsByStatus(ctx context.Context, status string) (int, error)
	CountCategories(ctx context.Context) (int, error)
	RecentProducts(ctx context.Context, limit int) ([]*entity.Product, error)
}
