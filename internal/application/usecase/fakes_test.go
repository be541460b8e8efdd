package usecase_test

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso CRUD. El borrado de categoría
// replica el ON DELETE SET NULL de la FK: desasocia, nunca borra productos.

type fakeStore struct {
	profiles map[string]*entity.Profile
	catalog  map[string]*entity.Category
	products map[string]*entity.Product
	ledger   []*entity.StockTransaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[string]*entity.Profile),
		catalog:  make(map[string]*entity.Category),
		products: make(map[string]*entity.Product),
	}
}

func (s *fakeStore) addProfile(role string, active bool) *entity.Profile {
	p := &entity.Profile{
		ID:       uuid.New().String(),
		Email:    strings.ToLower(role) + "@almacen.local",
		Name:     role,
		Role:     role,
		IsActive: active,
	}
	s.profiles[p.ID] = p
	return p
}

func (s *fakeStore) addCategory(name string) *entity.Category {
	c := &entity.Category{ID: uuid.New().String(), Name: name}
	s.catalog[c.ID] = c
	return c
}

type fakeProfileRepo struct{ store *fakeStore }

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.store.profiles[p.ID] = p
	return nil
}
func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	return r.store.profiles[id], nil
}
func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	for _, p := range r.store.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.store.profiles[p.ID] = p
	return nil
}
func (r *fakeProfileRepo) List(_ context.Context, _, _ int) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		out = append(out, p)
	}
	return out, nil
}

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.store.catalog[c.ID] = c
	return nil
}
func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.store.catalog[id], nil
}
func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.store.catalog {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.store.catalog[c.ID] = c
	return nil
}
func (r *fakeCategoryRepo) List(_ context.Context, _, _ int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.store.catalog))
	for _, c := range r.store.catalog {
		out = append(out, c)
	}
	return out, nil
}

// Delete replica la FK ON DELETE SET NULL: los productos quedan sin categoría.
func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.store.catalog, id)
	for _, p := range r.store.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
		}
	}
	return nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.Status = string(product.StatusFor(p.Quantity))
	r.store.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = string(product.StatusFor(quantity))
	return nil
}
func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(p.SKU), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeTransactionRepo struct{ store *fakeStore }

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	r.store.ledger = append(r.store.ledger, tx)
	return nil
}
func (r *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.StockTransaction, error) {
	for _, tx := range r.store.ledger {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}
func (r *fakeTransactionRepo) List(_ context.Context, _, _ int) ([]*entity.StockTransaction, error) {
	return append([]*entity.StockTransaction(nil), r.store.ledger...), nil
}
func (r *fakeTransactionRepo) ListByProduct(_ context.Context, productID string, _, _ int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range r.store.ledger {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los repos del store directo al callback, sin rollback:
// estos tests no ejercitan fallas a mitad de transacción.
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	return fn(&fakeProductRepo{store: r.store}, &fakeTransactionRepo{store: r.store})
}
