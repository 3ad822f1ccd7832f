package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Stock se muta únicamente a través
// del motor de movimientos de inventario (o por ajuste administrativo directo).
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, 2 decimales
	Stock       int
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDeleted   bool
}
