package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: solo INSERT y SELECT.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

const transactionColumns = `id, product_id, user_id, quantity, type, notes, created_at`

// Create persiste una entrada del libro.
func (r *StockTransactionRepo) Create(ctx context.Context, t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, user_id, quantity, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.UserID, t.Quantity, t.Type, t.Notes, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *StockTransactionRepo) GetByID(ctx context.Context, id string) (*entity.StockTransaction, error) {
	var t entity.StockTransaction
	err := r.q.QueryRow(ctx, `SELECT `+transactionColumns+` FROM stock_transactions WHERE id = $1`, id).Scan(
		&t.ID, &t.ProductID, &t.UserID, &t.Quantity, &t.Type, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &t, nil
}

// List lista el libro completo, más reciente primero.
func (r *StockTransactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(ctx, query, limit, offset)
}

// ListByProduct lista los movimientos de un producto, más reciente primero.
func (r *StockTransactionRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(ctx, query, productID, limit, offset)
}

func (r *StockTransactionRepo) scanMany(ctx context.Context, query string, args ...any) ([]*entity.StockTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.UserID, &t.Quantity, &t.Type, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
