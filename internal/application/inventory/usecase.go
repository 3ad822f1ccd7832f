package inventory

import (
	"context"
	"time"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/domain"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase valida y aplica movimientos de inventario (Entry/Exit)
// contra el stock de un producto. La actualización de stock y el registro del
// movimiento ocurren en una sola transacción con bloqueo de fila
// (SELECT FOR UPDATE), de modo que dos movimientos concurrentes sobre el mismo
// producto se serializan en la base de datos.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductQueryRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductQueryRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterMovement valida las reglas de negocio, calcula el nuevo stock,
// persiste stock y movimiento, y devuelve el id generado del movimiento.
//
// Orden de validación: cantidad positiva (precondición, antes de cualquier
// lectura) → existencia del producto → tipo de movimiento → suficiencia de
// stock. Ningún fallo de validación produce escrituras.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.CreateMovementRequest) (int64, error) {
	if in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}

	// Lectura previa sin bloqueo: los fallos de validación salen antes de
	// abrir transacción alguna.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, &domain.NotFoundError{Entity: "Product", Key: in.ProductID}
	}

	movType := entity.MovementType(in.MovementType)
	if !movType.Valid() {
		return 0, &domain.InvalidMovementTypeError{MovementType: in.MovementType}
	}

	if movType == entity.MovementTypeExit && in.Quantity > product.Stock {
		return 0, &domain.InsufficientStockError{
			ProductID:         product.ID,
			CurrentStock:      product.Stock,
			RequestedQuantity: in.Quantity,
		}
	}

	var movementID int64
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductCommandRepository,
		movementRepo repository.InventoryMovementCommandRepository,
	) error {
		// Relee la fila con bloqueo: el stock visto fuera de la transacción
		// puede estar obsoleto si otro movimiento se confirmó entre medias.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return &domain.NotFoundError{Entity: "Product", Key: in.ProductID}
		}

		newStock := locked.Stock
		switch movType {
		case entity.MovementTypeEntry:
			newStock += in.Quantity
		case entity.MovementTypeExit:
			if in.Quantity > locked.Stock {
				return &domain.InsufficientStockError{
					ProductID:         locked.ID,
					CurrentStock:      locked.Stock,
					RequestedQuantity: in.Quantity,
				}
			}
			newStock -= in.Quantity
		}

		ok, err := productRepo.UpdateStock(in.ProductID, newStock)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.NotFoundError{Entity: "Product", Key: in.ProductID}
		}

		movement := &entity.InventoryMovement{
			ProductID:    in.ProductID,
			MovementType: movType,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			MovementDate: time.Now(),
		}
		movementID, err = movementRepo.Create(movement)
		return err
	})
	if err != nil {
		return 0, err
	}
	return movementID, nil
}
