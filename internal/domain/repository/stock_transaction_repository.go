package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockTransactionRepository define el puerto del libro de movimientos.
// Append-only: no existen Update ni Delete, el historial es inmutable.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id string) (*entity.StockTransaction, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockTransaction, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error)
}
