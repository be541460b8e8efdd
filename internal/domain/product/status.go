// Package product contiene reglas puras de dominio sobre productos.
package product

// Status clasificación derivada del nivel de stock de un producto.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusInStock    Status = "in_stock"
)

// LowStockThreshold cantidad mínima para considerarse in_stock.
// Por debajo (y mayor que cero) el producto está en low_stock.
const LowStockThreshold = 5

// StatusFor deriva el estado a partir de la cantidad actual.
// Función pura y total: la cantidad ya llega no negativa (CHECK en DB).
// Debe coincidir con la columna generada `status` de la tabla products.
func StatusFor(quantity int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
