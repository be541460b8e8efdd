package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/policy"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías; toda mutación exige admin activo.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	profiles   repository.ProfileRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, profiles repository.ProfileRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, profiles: profiles}
}

func (uc *CategoryUseCase) authorize(ctx context.Context, actorID string, action policy.Action) error {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if !policy.Can(actor, action, policy.ResourceCategories) {
		return domain.ErrForbidden
	}
	return nil
}

// Create persiste una categoría nueva. Nombre duplicado → ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.authorize(ctx, actorID, policy.ActionCreate); err != nil {
		return nil, err
	}
	existing, err := uc.categories.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// GetByID obtiene una categoría; nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// List lista categorías paginadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, err := uc.categories.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.FromCategory(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza nombre/descripción de una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.authorize(ctx, actorID, policy.ActionUpdate); err != nil {
		return nil, err
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != c.Name {
		dup, err := uc.categories.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	c.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// Delete elimina una categoría. Los productos asociados NO se borran:
// la FK (ON DELETE SET NULL) los deja sin categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.authorize(ctx, actorID, policy.ActionDelete); err != nil {
		return err
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(ctx, id)
}
