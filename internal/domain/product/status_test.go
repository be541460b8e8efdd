package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/product"
)

// La clasificación debe coincidir exactamente con la columna generada de la DB.
func TestStatusFor_Fronteras(t *testing.T) {
	cases := []struct {
		quantity int
		want     product.Status
	}{
		{0, product.StatusOutOfStock},
		{1, product.StatusLowStock},
		{4, product.StatusLowStock},
		{5, product.StatusInStock},
		{100, product.StatusInStock},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, product.StatusFor(c.quantity),
			"cantidad %d debe clasificar como %s", c.quantity, c.want)
	}
}

// El estado nunca "retrocede" al subir la cantidad: out -> low -> in, en ese orden.
func TestStatusFor_MonotonoConCantidad(t *testing.T) {
	rank := map[product.Status]int{
		product.StatusOutOfStock: 0,
		product.StatusLowStock:   1,
		product.StatusInStock:    2,
	}
	prev := product.StatusFor(0)
	for q := 1; q <= 20; q++ {
		cur := product.StatusFor(q)
		assert.GreaterOrEqual(t, rank[cur], rank[prev],
			"el estado no debe empeorar al pasar de %d a %d unidades", q-1, q)
		prev = cur
	}
}
