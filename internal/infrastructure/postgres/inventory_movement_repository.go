package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
)

var _ repository.InventoryMovementQueryRepository = (*InventoryMovementQueryRepo)(nil)
var _ repository.InventoryMovementCommandRepository = (*InventoryMovementCommandRepo)(nil)

// InventoryMovementQueryRepo lado de lectura de movimientos sobre PostgreSQL.
type InventoryMovementQueryRepo struct {
	q Querier
}

// NewInventoryMovementQueryRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewInventoryMovementQueryRepository(q Querier) *InventoryMovementQueryRepo {
	return &InventoryMovementQueryRepo{q: q}
}

// GetAll devuelve una página del histórico (más recientes primero) y el total de filas.
func (r *InventoryMovementQueryRepo) GetAll(pageNumber, pageSize int) ([]*entity.InventoryMovement, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory_movements`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `
		SELECT id, product_id, movement_type, quantity, reason, movement_date
		FROM inventory_movements
		ORDER BY movement_date DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list, err := scanMovements(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// GetByProduct lista los movimientos de un producto, más recientes primero.
func (r *InventoryMovementQueryRepo) GetByProduct(productID int64) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, reason, movement_date
		FROM inventory_movements WHERE product_id = $1
		ORDER BY movement_date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.InventoryMovement, error) {
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var reason *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity,
			&reason, &m.MovementDate); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// InventoryMovementCommandRepo lado de escritura de movimientos sobre PostgreSQL.
type InventoryMovementCommandRepo struct {
	q Querier
}

// NewInventoryMovementCommandRepository construye el adaptador de escritura. Pasar pool o tx (Querier).
func NewInventoryMovementCommandRepository(q Querier) *InventoryMovementCommandRepo {
	return &InventoryMovementCommandRepo{q: q}
}

// Create persiste un movimiento y devuelve el id generado. Los movimientos son
// inmutables: no hay Update ni Delete.
func (r *InventoryMovementCommandRepo) Create(movement *entity.InventoryMovement) (int64, error) {
	query := `
		INSERT INTO inventory_movements (product_id, movement_type, quantity, reason, movement_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, string(movement.MovementType), movement.Quantity,
		reason, movement.MovementDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create inventory movement: %w", err)
	}
	return id, nil
}
