package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/domain"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
	"github.com/jortega/almacen-api/internal/infrastructure/cache"
)

// CategoryUseCase casos de uso CRUD para categorías. El borrado es lógico.
type CategoryUseCase struct {
	queryRepo repository.CategoryQueryRepository
	cmdRepo   repository.CategoryCommandRepository
	cache     cache.Cache
	listTTL   time.Duration
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil.
func NewCategoryUseCase(
	queryRepo repository.CategoryQueryRepository,
	cmdRepo repository.CategoryCommandRepository,
	c cache.Cache,
	listTTL time.Duration,
) *CategoryUseCase {
	return &CategoryUseCase{queryRepo: queryRepo, cmdRepo: cmdRepo, cache: c, listTTL: listTTL}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	id, err := uc.cmdRepo.Create(category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por id.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.queryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &domain.NotFoundError{Entity: "Category", Key: id}
	}
	return toCategoryResponse(category), nil
}

// List devuelve una página de categorías (cache-aside, igual que productos).
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PaginatedResult[dto.CategoryResponse], error) {
	key := cache.ListKey(cache.CategoriesKeyPrefix, page.PageNumber, page.PageSize)
	if uc.cache != nil {
		var cached dto.PaginatedResult[dto.CategoryResponse]
		found, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("caché de categorías no disponible")
		}
		if found {
			return &cached, nil
		}
	}

	list, total, err := uc.queryRepo.GetAll(page.PageNumber, page.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	result := dto.NewPaginatedResult(items, page.PageNumber, page.PageSize, total)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result, uc.listTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear listado de categorías")
		}
	}
	return &result, nil
}

// Update actualiza una categoría existente.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.queryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &domain.NotFoundError{Entity: "Category", Key: id}
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	ok, err := uc.cmdRepo.Update(category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Category", Key: id}
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría como eliminada (borrado lógico, nunca físico).
func (uc *CategoryUseCase) Delete(id int64) error {
	ok, err := uc.cmdRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Entity: "Category", Key: id}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
