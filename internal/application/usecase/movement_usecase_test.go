package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/application/usecase"
	"github.com/jortega/almacen-api/internal/domain/entity"
)

type fakeMovementQueryRepo struct {
	movements   []*entity.InventoryMovement
	getAllCalls int
}

func (r *fakeMovementQueryRepo) GetAll(pageNumber, pageSize int) ([]*entity.InventoryMovement, int, error) {
	r.getAllCalls++
	return r.movements, len(r.movements), nil
}

func (r *fakeMovementQueryRepo) GetByProduct(productID int64) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func movimiento(id, productID int64, movType entity.MovementType, qty int) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:           id,
		ProductID:    productID,
		MovementType: movType,
		Quantity:     qty,
		MovementDate: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestMovementList_DevuelvePaginaConMetadatos(t *testing.T) {
	repo := &fakeMovementQueryRepo{movements: []*entity.InventoryMovement{
		movimiento(1, 1, entity.MovementTypeEntry, 50),
		movimiento(2, 1, entity.MovementTypeExit, 30),
	}}
	uc := usecase.NewMovementQueryUseCase(repo, nil, 0)

	result, err := uc.List(context.Background(), dto.PageRequest{PageNumber: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, "Entry", result.Items[0].MovementType)
}

func TestMovementList_SegundaLlamadaSirveDeCache(t *testing.T) {
	repo := &fakeMovementQueryRepo{movements: []*entity.InventoryMovement{
		movimiento(1, 1, entity.MovementTypeEntry, 50),
	}}
	c := newFakeCache()
	uc := usecase.NewMovementQueryUseCase(repo, c, time.Minute)

	_, err := uc.List(context.Background(), dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	result, err := uc.List(context.Background(), dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, repo.getAllCalls, "la segunda llamada debe servirse de caché")
}

func TestMovementGetByProduct_FiltraPorProducto(t *testing.T) {
	repo := &fakeMovementQueryRepo{movements: []*entity.InventoryMovement{
		movimiento(1, 1, entity.MovementTypeEntry, 50),
		movimiento(2, 2, entity.MovementTypeExit, 10),
		movimiento(3, 1, entity.MovementTypeExit, 5),
	}}
	uc := usecase.NewMovementQueryUseCase(repo, nil, 0)

	items, err := uc.GetByProduct(1)

	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, m := range items {
		assert.Equal(t, int64(1), m.ProductID)
	}
}

func TestMovementGetByProduct_SinMovimientos(t *testing.T) {
	repo := &fakeMovementQueryRepo{}
	uc := usecase.NewMovementQueryUseCase(repo, nil, 0)

	items, err := uc.GetByProduct(99)

	require.NoError(t, err)
	assert.Empty(t, items, "un producto sin movimientos devuelve lista vacía, no error")
}
