package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jortega/almacen-api/internal/domain"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
)

var _ repository.ProductQueryRepository = (*ProductQueryRepo)(nil)
var _ repository.ProductCommandRepository = (*ProductCommandRepo)(nil)

const productColumns = `id, name, description, price, stock, category_id, created_at, updated_at, is_deleted`

// ProductQueryRepo lado de lectura de Product sobre PostgreSQL (usable con pool o tx).
type ProductQueryRepo struct {
	q Querier
}

// NewProductQueryRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewProductQueryRepository(q Querier) *ProductQueryRepo {
	return &ProductQueryRepo{q: q}
}

// GetAll devuelve una página de productos no eliminados y el total de filas.
func (r *ProductQueryRepo) GetAll(pageNumber, pageSize int) ([]*entity.Product, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE is_deleted = FALSE`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products WHERE is_deleted = FALSE
		ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// GetByID obtiene un producto por id. Devuelve nil si no existe o está eliminado.
func (r *ProductQueryRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND is_deleted = FALSE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &p.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByCategory lista los productos de una categoría.
func (r *ProductQueryRepo) GetByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE category_id = $1 AND is_deleted = FALSE
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ProductCommandRepo lado de escritura de Product sobre PostgreSQL (usable con pool o tx).
type ProductCommandRepo struct {
	q Querier
}

// NewProductCommandRepository construye el adaptador de escritura. Pasar pool o tx (Querier).
func NewProductCommandRepository(q Querier) *ProductCommandRepo {
	return &ProductCommandRepo{q: q}
}

// Create persiste un producto nuevo y devuelve el id generado.
func (r *ProductCommandRepo) Create(product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.CreatedAt, product.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrInvalidInput
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Update actualiza un producto no eliminado. No toca Stock. Devuelve false si
// la fila no existe o está eliminada.
func (r *ProductCommandRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category_id = $5, updated_at = $6
		WHERE id = $1 AND is_deleted = FALSE`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete marca el producto como eliminado (borrado lógico).
func (r *ProductCommandRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_deleted = TRUE, updated_at = now() WHERE id = $1 AND is_deleted = FALSE`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStock sobrescribe el stock del producto. Devuelve false (sin error) si
// la fila no existe o está eliminada al momento de escribir.
func (r *ProductCommandRepo) UpdateStock(productID int64, newStock int) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1 AND is_deleted = FALSE`,
		productID, newStock,
	)
	if err != nil {
		return false, fmt.Errorf("update stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *ProductCommandRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND is_deleted = FALSE
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &p.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}
