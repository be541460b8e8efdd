package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/policy"
	"github.com/jhoicas/Almacen-api/internal/domain/product"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock (IN, OUT) de forma transaccional:
// bloqueo de fila (SELECT FOR UPDATE), re-chequeo de suficiencia DENTRO de la tx,
// alta inmutable en stock_transactions y actualización de products.quantity, todo en
// un solo Commit. El estado (status) lo deriva la columna generada de la tabla.
type RecordMovementUseCase struct {
	txRunner TxRunner
	profiles repository.ProfileRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, profiles repository.ProfileRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, profiles: profiles}
}

// RecordMovement valida el movimiento, autoriza al actor con su perfil fresco y ejecuta
// los dos pasos (libro + cantidad) en una transacción.
//
// Errores: ErrInvalidInput (tipo o cantidad inválidos), ErrUnauthorized (actor inexistente),
// ErrForbidden (actor inactivo), ErrNotFound (producto), ErrInsufficientStock (OUT sin
// stock: no se escribe nada), y fallas de persistencia envueltas.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, actorID string, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.TransactionTypeIN && in.Type != entity.TransactionTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceTransactions) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	mov := &entity.StockTransaction{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		UserID:    actor.ID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Notes:     in.Notes,
		CreatedAt: now,
	}
	var updated *entity.Product

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		// Bloquea la fila del producto; el re-chequeo de suficiencia ocurre con
		// la cantidad leída bajo el lock, no con la que vio el cliente.
		p, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		newQty := p.Quantity
		if in.Type == entity.TransactionTypeIN {
			newQty += in.Quantity
		} else {
			if p.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty -= in.Quantity
		}

		if err := txRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, p.ID, newQty); err != nil {
			return err
		}

		p.Quantity = newQty
		p.Status = string(product.StatusFor(newQty))
		p.UpdatedAt = now
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordMovementResponse{
		Transaction: dto.FromTransaction(mov),
		Product:     dto.FromProduct(updated),
	}, nil
}

// RecordOpeningInTx registra el movimiento IN de apertura de un producto recién creado,
// usando los repositorios de la transacción del caller (alta de producto + saldo inicial
// en el mismo Commit). El producto ya debe existir dentro de esa tx.
func (uc *RecordMovementUseCase) RecordOpeningInTx(
	ctx context.Context,
	txRepo repository.StockTransactionRepository,
	productID, userID string,
	quantity int,
	now time.Time,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return txRepo.Create(ctx, &entity.StockTransaction{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    userID,
		Quantity:  quantity,
		Type:      entity.TransactionTypeIN,
		Notes:     "saldo inicial",
		CreatedAt: now,
	})
}
