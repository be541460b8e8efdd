package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldSearchTerm(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"azúcar", "azucar"},
		{"Azúcar  ", "Azucar"},
		{"café", "cafe"},
		{"niño", "nino"},
		{"jabon", "jabon"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, foldSearchTerm(c.in), "plegado de %q", c.in)
	}
}
