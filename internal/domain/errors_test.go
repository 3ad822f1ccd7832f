package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortega/almacen-api/internal/domain"
)

// Los errores estructurados envuelven su centinela: errors.Is debe funcionar
// a través de capas que solo conocen los centinelas.
func TestErroresEstructurados_EnvuelvenCentinela(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&domain.NotFoundError{Entity: "Product", Key: int64(7)}, domain.ErrNotFound},
		{&domain.InvalidMovementTypeError{MovementType: "Transfer"}, domain.ErrInvalidMovementType},
		{&domain.InsufficientStockError{ProductID: 1, CurrentStock: 10, RequestedQuantity: 50}, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.sentinel)
	}
}

func TestInsufficientStockError_MensajeConDetalle(t *testing.T) {
	err := &domain.InsufficientStockError{ProductID: 1, CurrentStock: 10, RequestedQuantity: 50}
	assert.Contains(t, err.Error(), "actual 10")
	assert.Contains(t, err.Error(), "solicitado 50")
}

func TestErrorIs_AtravesDeWrapping(t *testing.T) {
	inner := &domain.NotFoundError{Entity: "Category", Key: int64(3)}
	wrapped := errors.Join(errors.New("consultando categoría"), inner)
	assert.ErrorIs(t, wrapped, domain.ErrNotFound)
}
