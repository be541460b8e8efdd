package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
// Search ya llega plegado (sin tildes) desde el caso de uso.
type ProductFilter struct {
	Search     string // substring sobre name o sku
	CategoryID string
	Status     string // out_of_stock, low_stock, in_stock
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay método para escribir Quantity fuera de UpdateQuantity: la cantidad
// se muta solo desde el motor de movimientos, dentro de su transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
