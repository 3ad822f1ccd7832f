package repository

import "github.com/jortega/almacen-api/internal/domain/entity"

// ProductQueryRepository puerto de lectura para Product (lado query del CQRS).
// Los productos eliminados lógicamente no se devuelven.
type ProductQueryRepository interface {
	GetAll(pageNumber, pageSize int) ([]*entity.Product, int, error)
	GetByID(id int64) (*entity.Product, error)
	GetByCategory(categoryID int64) ([]*entity.Product, error)
}

// ProductCommandRepository puerto de escritura para Product.
// UpdateStock devuelve false (sin error) si la fila no existe o está eliminada.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de transacción.
type ProductCommandRepository interface {
	Create(product *entity.Product) (int64, error)
	Update(product *entity.Product) (bool, error)
	Delete(id int64) (bool, error)
	UpdateStock(productID int64, newStock int) (bool, error)
	GetForUpdate(id int64) (*entity.Product, error)
}
