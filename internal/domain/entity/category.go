package entity

import "time"

// Category representa una categoría de productos. El borrado es lógico (IsDeleted).
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	IsDeleted   bool
}
