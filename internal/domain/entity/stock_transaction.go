package entity

import "time"

// Tipos de movimiento de stock.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// StockTransaction es una entrada inmutable del libro de movimientos (append-only).
// Quantity siempre positiva; el signo lo determina Type.
type StockTransaction struct {
	ID        string
	ProductID string
	UserID    string
	Quantity  int
	Type      string // IN, OUT
	Notes     string
	CreatedAt time.Time
}
