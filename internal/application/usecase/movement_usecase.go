package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
	"github.com/jortega/almacen-api/internal/infrastructure/cache"
)

// MovementQueryUseCase consultas de solo lectura sobre el histórico de movimientos.
type MovementQueryUseCase struct {
	queryRepo repository.InventoryMovementQueryRepository
	cache     cache.Cache
	listTTL   time.Duration
}

// NewMovementQueryUseCase construye el caso de uso. cache puede ser nil.
func NewMovementQueryUseCase(
	queryRepo repository.InventoryMovementQueryRepository,
	c cache.Cache,
	listTTL time.Duration,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{queryRepo: queryRepo, cache: c, listTTL: listTTL}
}

// List devuelve una página del histórico de movimientos (cache-aside).
func (uc *MovementQueryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PaginatedResult[dto.MovementResponse], error) {
	key := cache.ListKey(cache.MovementsKeyPrefix, page.PageNumber, page.PageSize)
	if uc.cache != nil {
		var cached dto.PaginatedResult[dto.MovementResponse]
		found, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("caché de movimientos no disponible")
		}
		if found {
			return &cached, nil
		}
	}

	list, total, err := uc.queryRepo.GetAll(page.PageNumber, page.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	result := dto.NewPaginatedResult(items, page.PageNumber, page.PageSize, total)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result, uc.listTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear listado de movimientos")
		}
	}
	return &result, nil
}

// GetByProduct devuelve los movimientos de un producto (sin paginar).
func (uc *MovementQueryUseCase) GetByProduct(productID int64) ([]dto.MovementResponse, error) {
	list, err := uc.queryRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: string(m.MovementType),
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		MovementDate: m.MovementDate,
	}
}
