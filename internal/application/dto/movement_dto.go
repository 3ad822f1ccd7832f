package dto

import "time"

// CreateMovementRequest body para POST /api/v1/inventory-movements.
// MovementType debe ser "Entry" o "Exit"; Quantity estrictamente positiva.
type CreateMovementRequest struct {
	ProductID    int64  `json:"product_id" validate:"required,gt=0"`
	MovementType string `json:"movement_type" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Reason       string `json:"reason" validate:"omitempty,max=250"`
}

// MovementResponse salida de un movimiento de inventario.
type MovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason,omitempty"`
	MovementDate time.Time `json:"movement_date"`
}

// CreateMovementResponse respuesta al registrar un movimiento.
type CreateMovementResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
