package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache puerto de caché para respuestas de consultas de listado.
// Get devuelve found=false en cache miss sin error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Prefijos de clave por tipo de consulta.
const (
	ProductsKeyPrefix   = "products"
	CategoriesKeyPrefix = "categories"
	MovementsKeyPrefix  = "movements"
)

// ListKey construye una clave determinista para un listado paginado.
func ListKey(prefix string, pageNumber, pageSize int) string {
	return fmt.Sprintf("%s:all:p%d:s%d", prefix, pageNumber, pageSize)
}
