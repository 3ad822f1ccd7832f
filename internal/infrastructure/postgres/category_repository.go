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

var _ repository.CategoryQueryRepository = (*CategoryQueryRepo)(nil)
var _ repository.CategoryCommandRepository = (*CategoryCommandRepo)(nil)

// CategoryQueryRepo lado de lectura de Category sobre PostgreSQL.
type CategoryQueryRepo struct {
	q Querier
}

// NewCategoryQueryRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewCategoryQueryRepository(q Querier) *CategoryQueryRepo {
	return &CategoryQueryRepo{q: q}
}

// GetAll devuelve una página de categorías no eliminadas y el total de filas.
func (r *CategoryQueryRepo) GetAll(pageNumber, pageSize int) ([]*entity.Category, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM categories WHERE is_deleted = FALSE`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := `
		SELECT id, name, description, created_at, is_deleted
		FROM categories WHERE is_deleted = FALSE
		ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.IsDeleted); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// GetByID obtiene una categoría por id. Devuelve nil si no existe o está eliminada.
func (r *CategoryQueryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, description, created_at, is_deleted
		FROM categories WHERE id = $1 AND is_deleted = FALSE`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// CategoryCommandRepo lado de escritura de Category sobre PostgreSQL.
type CategoryCommandRepo struct {
	q Querier
}

// NewCategoryCommandRepository construye el adaptador de escritura. Pasar pool o tx (Querier).
func NewCategoryCommandRepository(q Querier) *CategoryCommandRepo {
	return &CategoryCommandRepo{q: q}
}

// Create persiste una categoría nueva y devuelve el id generado.
func (r *CategoryCommandRepo) Create(category *entity.Category) (int64, error) {
	query := `
		INSERT INTO categories (name, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.Description, category.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrInvalidInput
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// Update actualiza una categoría no eliminada. Devuelve false si no existe.
func (r *CategoryCommandRepo) Update(category *entity.Category) (bool, error) {
	query := `
		UPDATE categories SET name = $2, description = $3
		WHERE id = $1 AND is_deleted = FALSE`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description,
	)
	if err != nil {
		return false, fmt.Errorf("update category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete marca la categoría como eliminada (borrado lógico, nunca físico).
func (r *CategoryCommandRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categories SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
