package repository

import "github.com/jortega/almacen-api/internal/domain/entity"

// InventoryMovementQueryRepository puerto de lectura para movimientos.
type InventoryMovementQueryRepository interface {
	GetAll(pageNumber, pageSize int) ([]*entity.InventoryMovement, int, error)
	GetByProduct(productID int64) ([]*entity.InventoryMovement, error)
}

// InventoryMovementCommandRepository puerto de escritura para movimientos.
// Create asigna id y devuelve el generado; los movimientos nunca se mutan.
type InventoryMovementCommandRepository interface {
	Create(movement *entity.InventoryMovement) (int64, error)
}
