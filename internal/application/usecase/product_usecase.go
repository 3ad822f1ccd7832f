package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/domain"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
	"github.com/jortega/almacen-api/internal/infrastructure/cache"
)

// ProductUseCase casos de uso CRUD y de consulta para productos. El stock no
// se modifica por aquí: pasa por el motor de movimientos.
type ProductUseCase struct {
	queryRepo repository.ProductQueryRepository
	cmdRepo   repository.ProductCommandRepository
	cache     cache.Cache
	listTTL   time.Duration
}

// NewProductUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewProductUseCase(
	queryRepo repository.ProductQueryRepository,
	cmdRepo repository.ProductCommandRepository,
	c cache.Cache,
	listTTL time.Duration,
) *ProductUseCase {
	return &ProductUseCase{queryRepo: queryRepo, cmdRepo: cmdRepo, cache: c, listTTL: listTTL}
}

// Create crea un producto. Price debe ser mayor que cero.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.cmdRepo.Create(product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.queryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Entity: "Product", Key: id}
	}
	return toProductResponse(product), nil
}

// List devuelve una página de productos con metadatos de navegación.
// Aplica cache-aside: los fallos de caché se registran y se tratan como miss.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PaginatedResult[dto.ProductResponse], error) {
	key := cache.ListKey(cache.ProductsKeyPrefix, page.PageNumber, page.PageSize)
	if uc.cache != nil {
		var cached dto.PaginatedResult[dto.ProductResponse]
		found, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("caché de productos no disponible")
		}
		if found {
			return &cached, nil
		}
	}

	list, total, err := uc.queryRepo.GetAll(page.PageNumber, page.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	result := dto.NewPaginatedResult(items, page.PageNumber, page.PageSize, total)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result, uc.listTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear listado de productos")
		}
	}
	return &result, nil
}

// GetByCategory devuelve los productos de una categoría (sin paginar).
func (uc *ProductUseCase) GetByCategory(categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.queryRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. No modifica Stock.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.queryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Entity: "Product", Key: id}
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now()
	ok, err := uc.cmdRepo.Update(product)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Product", Key: id}
	}
	return toProductResponse(product), nil
}

// Delete elimina lógicamente un producto.
func (uc *ProductUseCase) Delete(id int64) error {
	ok, err := uc.cmdRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Entity: "Product", Key: id}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
