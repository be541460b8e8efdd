package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LedgerUseCase consultas read-only sobre el libro de movimientos.
// La lectura es para cualquier usuario autenticado; el middleware de auth es el filtro.
type LedgerUseCase struct {
	transactions repository.StockTransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(transactions repository.StockTransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{transactions: transactions}
}

// List devuelve el libro completo paginado, más reciente primero.
func (uc *LedgerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	list, err := uc.transactions.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toTransactionList(list, page), nil
}

// ListByProduct devuelve los movimientos de un producto, más reciente primero.
func (uc *LedgerUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	list, err := uc.transactions.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toTransactionList(list, page), nil
}

func toTransactionList(list []*entity.StockTransaction, page dto.PageRequest) *dto.TransactionListResponse {
	items := make([]dto.StockTransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, dto.FromTransaction(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
