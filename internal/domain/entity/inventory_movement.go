package entity

import "time"

// MovementType tipo cerrado de movimiento de inventario. Solo Entry y Exit son
// válidos; cualquier otro valor se rechaza antes de persistir.
type MovementType string

const (
	MovementTypeEntry MovementType = "Entry" // entrada: incrementa stock
	MovementTypeExit  MovementType = "Exit"  // salida: decrementa stock
)

// Valid indica si el tipo es uno de los valores permitidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit:
		return true
	}
	return false
}

// InventoryMovement registro de auditoría inmutable de un cambio de stock.
// Se crea una vez y nunca se actualiza ni se elimina.
type InventoryMovement struct {
	ID           int64
	ProductID    int64
	MovementType MovementType
	Quantity     int
	Reason       string
	MovementDate time.Time
}
