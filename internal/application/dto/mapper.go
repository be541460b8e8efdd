package dto

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Mapeos entidad → DTO compartidos por los casos de uso.

// FromProfile convierte un Profile (sin exponer el hash).
func FromProfile(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Role:      p.Role,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromCategory convierte una Category.
func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromProduct convierte un Product.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromTransaction convierte una StockTransaction.
func FromTransaction(t *entity.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		ID:        t.ID,
		ProductID: t.ProductID,
		UserID:    t.UserID,
		Quantity:  t.Quantity,
		Type:      t.Type,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
}
