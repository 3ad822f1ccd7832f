package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/application/usecase"
	"github.com/jortega/almacen-api/internal/domain"
	"github.com/jortega/almacen-api/internal/domain/entity"
)

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int64]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *fakeCategoryRepo) GetAll(pageNumber, pageSize int) ([]*entity.Category, int, error) {
	var all []*entity.Category
	for _, c := range r.categories {
		all = append(all, c)
	}
	return all, len(all), nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Create(category *entity.Category) (int64, error) {
	r.nextID++
	cp := *category
	cp.ID = r.nextID
	r.categories[cp.ID] = &cp
	return cp.ID, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) (bool, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return false, nil
	}
	cp := *category
	r.categories[cp.ID] = &cp
	return true, nil
}

func (r *fakeCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func TestCategoryCreate_OK(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, repo, nil, 0)

	resp, err := uc.Create(dto.CreateCategoryRequest{Name: "Electrónica"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Electrónica", resp.Name)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, repo, nil, 0)

	_, err := uc.GetByID(7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, repo, nil, 0)

	nombre := "Hogar"
	_, err := uc.Update(7, dto.UpdateCategoryRequest{Name: &nombre})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryList_CacheAside(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: 1, Name: "Electrónica"})
	c := newFakeCache()
	uc := usecase.NewCategoryUseCase(repo, repo, c, time.Minute)

	first, err := uc.List(context.Background(), dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	second, err := uc.List(context.Background(), dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, first.TotalCount, second.TotalCount)
	assert.Equal(t, 1, c.setCalls, "solo el primer miss debe escribir en la caché")
}
