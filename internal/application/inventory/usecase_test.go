package inventory_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	profiles map[string]*entity.Profile
	products map[string]*entity.Product
	ledger   []*entity.StockTransaction
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[string]*entity.Profile),
		products: make(map[string]*entity.Product),
	}
}

// snapshot/restore emulan el Rollback: si el callback del runner falla,
// el estado vuelve exactamente a como estaba antes.
func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.profiles {
		p := *v
		cp.profiles[k] = &p
	}
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	cp.ledger = append(cp.ledger, s.ledger...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.profiles = from.profiles
	s.products = from.products
	s.ledger = from.ledger
}

type memProfileRepo struct{ store *memStore }

func (r *memProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.store.profiles[p.ID] = p
	return nil
}
func (r *memProfileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	return r.store.profiles[id], nil
}
func (r *memProfileRepo) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	for _, p := range r.store.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.store.profiles[p.ID] = p
	return nil
}
func (r *memProfileRepo) List(_ context.Context, _, _ int) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		out = append(out, p)
	}
	return out, nil
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.Status = string(product.StatusFor(p.Quantity))
	r.store.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}
func (r *memProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		// Misma respuesta que el CHECK de la tabla
		return domain.ErrInsufficientStock
	}
	p.Quantity = quantity
	p.Status = string(product.StatusFor(quantity))
	return nil
}
func (r *memProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

type memTransactionRepo struct{ store *memStore }

func (r *memTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	r.store.ledger = append(r.store.ledger, tx)
	return nil
}
func (r *memTransactionRepo) GetByID(_ context.Context, id string) (*entity.StockTransaction, error) {
	for _, tx := range r.store.ledger {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}
func (r *memTransactionRepo) List(_ context.Context, limit, offset int) ([]*entity.StockTransaction, error) {
	out := append([]*entity.StockTransaction(nil), r.store.ledger...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
func (r *memTransactionRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockTransaction, error) {
	all, err := r.List(ctx, len(r.store.ledger), 0)
	if err != nil {
		return nil, err
	}
	var filtered []*entity.StockTransaction
	for _, tx := range all {
		if tx.ProductID == productID {
			filtered = append(filtered, tx)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// memTxRunner ejecuta el callback contra el store y deshace todo si falla,
// igual que el Rollback de una transacción real.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	before := r.store.snapshot()
	if err := fn(&memProductRepo{store: r.store}, &memTransactionRepo{store: r.store}); err != nil {
		r.store.restore(before)
		return err
	}
	return nil
}

var _ inventory.TxRunner = (*memTxRunner)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memStore
	uc       *inventory.RecordMovementUseCase
	actorID  string
	products *memProductRepo
}

func newFixture(t *testing.T, initialQty int) (*fixture, string) {
	t.Helper()
	store := newMemStore()
	profiles := &memProfileRepo{store: store}
	products := &memProductRepo{store: store}
	runner := &memTxRunner{store: store}

	actor := &entity.Profile{
		ID:       uuid.New().String(),
		Email:    "staff@almacen.local",
		Role:     entity.RoleStaff,
		IsActive: true,
	}
	require.NoError(t, profiles.Create(context.Background(), actor))

	p := &entity.Product{
		ID:       uuid.New().String(),
		Name:     "Arroz 500g",
		SKU:      "ABA-001",
		Quantity: initialQty,
	}
	require.NoError(t, products.Create(context.Background(), p))

	return &fixture{
		store:    store,
		uc:       inventory.NewRecordMovementUseCase(runner, profiles),
		actorID:  actor.ID,
		products: products,
	}, p.ID
}

func (f *fixture) move(t *testing.T, productID, typ string, qty int) (*dto.RecordMovementResponse, error) {
	t.Helper()
	return f.uc.RecordMovement(context.Background(), f.actorID, dto.RecordMovementRequest{
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_INSumaYDerivaEstado(t *testing.T) {
	f, productID := newFixture(t, 0)

	out, err := f.move(t, productID, entity.TransactionTypeIN, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Product.Quantity)
	assert.Equal(t, string(product.StatusLowStock), out.Product.Status,
		"3 unidades debe quedar en low_stock")
	assert.Equal(t, entity.TransactionTypeIN, out.Transaction.Type)
	assert.Len(t, f.store.ledger, 1, "debe quedar exactamente una entrada en el libro")
}

func TestRecordMovement_OUTInsuficiente_NoEscribeNada(t *testing.T) {
	f, productID := newFixture(t, 2)

	_, err := f.move(t, productID, entity.TransactionTypeOUT, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Atómico: ni entrada en el libro ni cambio de cantidad.
	assert.Empty(t, f.store.ledger, "un OUT rechazado no debe dejar rastro en el libro")
	p, _ := f.products.GetByID(context.Background(), productID)
	assert.Equal(t, 2, p.Quantity, "la cantidad debe quedar intacta")
}

func TestRecordMovement_INLuegoOUTIgual_QuedaEnCero(t *testing.T) {
	f, productID := newFixture(t, 0)

	_, err := f.move(t, productID, entity.TransactionTypeIN, 7)
	require.NoError(t, err)
	out, err := f.move(t, productID, entity.TransactionTypeOUT, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Product.Quantity)
	assert.Equal(t, string(product.StatusOutOfStock), out.Product.Status)
	assert.Len(t, f.store.ledger, 2, "el libro debe registrar ambos movimientos")
}

// Secuencia del día a día: 3 → IN 2 → 5 → OUT 5 → 0 → OUT 1 falla.
func TestRecordMovement_SecuenciaCompleta(t *testing.T) {
	f, productID := newFixture(t, 3)

	out, err := f.move(t, productID, entity.TransactionTypeIN, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Product.Quantity)
	assert.Equal(t, string(product.StatusInStock), out.Product.Status)

	out, err = f.move(t, productID, entity.TransactionTypeOUT, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Product.Quantity)
	assert.Equal(t, string(product.StatusOutOfStock), out.Product.Status)

	_, err = f.move(t, productID, entity.TransactionTypeOUT, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"sacar de un producto en cero debe fallar")
	assert.Len(t, f.store.ledger, 2, "el movimiento rechazado no entra al libro")
}

func TestRecordMovement_Validaciones(t *testing.T) {
	f, productID := newFixture(t, 10)

	_, err := f.move(t, productID, entity.TransactionTypeIN, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero es inválida")

	_, err = f.move(t, productID, entity.TransactionTypeIN, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa es inválida")

	_, err = f.move(t, productID, "AJUSTE", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo IN y OUT son tipos válidos")

	_, err = f.move(t, "", entity.TransactionTypeIN, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	f, _ := newFixture(t, 0)

	_, err := f.move(t, uuid.New().String(), entity.TransactionTypeIN, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.ledger)
}

func TestRecordMovement_ActorInexistenteOInactivo(t *testing.T) {
	f, productID := newFixture(t, 10)

	_, err := f.uc.RecordMovement(context.Background(), uuid.New().String(), dto.RecordMovementRequest{
		ProductID: productID,
		Type:      entity.TransactionTypeIN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "actor desconocido no registra movimientos")

	// Desactivar al actor bloquea de inmediato, aunque su token siguiera vivo.
	f.store.profiles[f.actorID].IsActive = false
	_, err = f.move(t, productID, entity.TransactionTypeIN, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.store.ledger)
}
