package repository

import "github.com/jortega/almacen-api/internal/domain/entity"

// CategoryQueryRepository puerto de lectura para Category.
type CategoryQueryRepository interface {
	GetAll(pageNumber, pageSize int) ([]*entity.Category, int, error)
	GetByID(id int64) (*entity.Category, error)
}

// CategoryCommandRepository puerto de escritura para Category.
// Delete es borrado lógico; devuelve false si la fila no existe.
type CategoryCommandRepository interface {
	Create(category *entity.Category) (int64, error)
	Update(category *entity.Category) (bool, error)
	Delete(id int64) (bool, error)
}
