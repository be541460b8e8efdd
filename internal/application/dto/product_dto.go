package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// InitialQuantity > 0 genera un movimiento IN de apertura en la misma transacción,
// para que el libro siempre sume la cantidad vigente.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description" validate:"max=1000"`
	CategoryID      *string         `json:"category_id" validate:"omitempty,uuid"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int             `json:"initial_quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Sin Quantity ni Status: la cantidad se muta solo vía movimientos y el estado es derivado.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	Price       *decimal.Decimal `json:"price"`
}

// ListProductsRequest filtros del listado de productos.
type ListProductsRequest struct {
	Search     string `query:"search"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Status     string `query:"status" validate:"omitempty,oneof=out_of_stock low_stock in_stock"`
	PageRequest
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
