package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/policy"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos detrás del evaluador de políticas.
// La cantidad NO se edita aquí: un saldo inicial > 0 se registra como movimiento IN
// de apertura en la misma transacción del alta, y de ahí en adelante todo cambio de
// cantidad pasa por el motor de movimientos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	profiles   repository.ProfileRepository
	txRunner   inventory.TxRunner
	movements  *inventory.RecordMovementUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	profiles repository.ProfileRepository,
	txRunner inventory.TxRunner,
	movements *inventory.RecordMovementUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		profiles:   profiles,
		txRunner:   txRunner,
		movements:  movements,
	}
}

func (uc *ProductUseCase) actor(ctx context.Context, actorID string) (*entity.Profile, error) {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

// Create persiste un producto nuevo (staff o admin activos). SKU duplicado → ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	actor, err := uc.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceProducts) {
		return nil, domain.ErrForbidden
	}
	if in.Price.IsNegative() || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != nil {
		cat, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, err := uc.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Quantity:    in.InitialQuantity,
		Status:      string(product.StatusFor(in.InitialQuantity)),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Alta + movimiento de apertura en un solo Commit, para que el libro
	// sume siempre la cantidad vigente desde el primer día.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		if err := productRepo.Create(ctx, p); err != nil {
			return err
		}
		if in.InitialQuantity > 0 {
			return uc.movements.RecordOpeningInTx(ctx, txRepo, p.ID, actor.ID, in.InitialQuantity, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// List lista productos con búsqueda sin tildes, filtro por categoría y por estado.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		Search:     foldSearchTerm(in.Search),
		CategoryID: in.CategoryID,
		Status:     in.Status,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	list, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Update actualiza nombre/descripción/categoría/precio (usuario activo).
// Ni Quantity ni Status son editables por este camino.
func (uc *ProductUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	actor, err := uc.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceProducts) {
		return nil, domain.ErrForbidden
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			p.CategoryID = nil
		} else {
			cat, err := uc.categories.GetByID(ctx, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
			p.CategoryID = in.CategoryID
		}
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Delete elimina un producto (solo admin activo). Sus movimientos caen en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, actorID, id string) error {
	actor, err := uc.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if !policy.Can(actor, policy.ActionDelete, policy.ResourceProducts) {
		return domain.ErrForbidden
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}
