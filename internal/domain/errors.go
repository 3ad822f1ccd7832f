package domain

import (
	"errors"
	"fmt"
)

// Errores centinela de dominio (sin dependencias externas). Los errores
// estructurados de abajo envuelven estos centinelas vía Unwrap, de modo que
// errors.Is sigue funcionando en handlers y casos de uso.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)

// NotFoundError indica que la entidad referenciada no existe (o está eliminada).
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con clave %v no encontrado", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidMovementTypeError indica un tipo de movimiento fuera de {Entry, Exit}.
type InvalidMovementTypeError struct {
	MovementType string
}

func (e *InvalidMovementTypeError) Error() string {
	return fmt.Sprintf("tipo de movimiento %q inválido; valores permitidos: Entry, Exit", e.MovementType)
}

func (e *InvalidMovementTypeError) Unwrap() error { return ErrInvalidMovementType }

// InsufficientStockError indica una salida con cantidad mayor al stock actual.
type InsufficientStockError struct {
	ProductID         int64
	CurrentStock      int
	RequestedQuantity int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d: actual %d, solicitado %d",
		e.ProductID, e.CurrentStock, e.RequestedQuantity)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
