package entity

import "time"

// Category representa una categoría de productos. Nombre único global.
// Al eliminarla, los productos asociados quedan sin categoría (SET NULL, nunca cascada).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
