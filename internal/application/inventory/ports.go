package inventory

import (
	"context"

	"github.com/jortega/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios de escritura atados a esa tx. Garantiza que la actualización de
// stock y el registro del movimiento se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductCommandRepository,
		movementRepo repository.InventoryMovementCommandRepository,
	) error) error
}
