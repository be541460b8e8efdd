package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity es el estado vigente y se muta EXCLUSIVAMENTE vía el libro de movimientos
// (stock_transactions); Status es columna generada en DB, derivada de Quantity, nunca se escribe.
type Product struct {
	ID          string
	Name        string
	SKU         string // código único
	CategoryID  *string
	Price       decimal.Decimal // precio de venta, no negativo
	Quantity    int             // entero no negativo (CHECK en DB)
	Status      string          // out_of_stock, low_stock, in_stock (solo lectura)
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
