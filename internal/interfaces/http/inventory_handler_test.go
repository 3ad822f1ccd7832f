package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/almacen-api/internal/application/inventory"
	apphttp "github.com/jortega/almacen-api/internal/interfaces/http"
	"github.com/jortega/almacen-api/internal/domain/entity"
	"github.com/jortega/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el caso de uso real detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	product *entity.Product
}

func (r *stubProductRepo) GetAll(pageNumber, pageSize int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		cp := *r.product
		return &cp, nil
	}
	return nil, nil
}

func (r *stubProductRepo) GetByCategory(categoryID int64) ([]*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Create(p *entity.Product) (int64, error)  { return 0, nil }
func (r *stubProductRepo) Update(p *entity.Product) (bool, error)   { return false, nil }
func (r *stubProductRepo) Delete(id int64) (bool, error)            { return false, nil }
func (r *stubProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *stubProductRepo) UpdateStock(productID int64, newStock int) (bool, error) {
	if r.product == nil || r.product.ID != productID {
		return false, nil
	}
	r.product.Stock = newStock
	return true, nil
}

type stubMovementRepo struct{}

func (r *stubMovementRepo) Create(m *entity.InventoryMovement) (int64, error) { return 123, nil }

type stubTxRunner struct {
	products *stubProductRepo
}

func (tx *stubTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductCommandRepository,
	movementRepo repository.InventoryMovementCommandRepository,
) error) error {
	return fn(tx.products, &stubMovementRepo{})
}

// buildMovementsApp monta la ruta POST /inventory-movements sin middleware de
// auth, con un producto de stock conocido detrás.
func buildMovementsApp(stock int) *fiber.App {
	repo := &stubProductRepo{product: &entity.Product{ID: 1, Name: "Laptop", Stock: stock}}
	uc := inventory.NewRegisterMovementUseCase(&stubTxRunner{products: repo}, repo)
	handler := apphttp.NewInventoryHandler(uc, nil)

	app := fiber.New()
	app.Post("/inventory-movements", handler.Create)
	return app
}

func postMovement(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/inventory-movements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de mapeo error → status HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Movimiento válido → 201 con el id generado.
func TestCreateMovement_Valido_Retorna201(t *testing.T) {
	app := buildMovementsApp(100)
	resp := postMovement(t, app, `{"product_id":1,"movement_type":"Entry","quantity":50}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(123), body["id"], "debe devolver el id del movimiento creado")
}

// Cantidad cero la rechaza la validación del DTO → 400.
func TestCreateMovement_CantidadCero_Retorna400(t *testing.T) {
	app := buildMovementsApp(100)
	resp := postMovement(t, app, `{"product_id":1,"movement_type":"Entry","quantity":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Producto inexistente → 404 NOT_FOUND.
func TestCreateMovement_ProductoNoExiste_Retorna404(t *testing.T) {
	app := buildMovementsApp(100)
	resp := postMovement(t, app, `{"product_id":999,"movement_type":"Entry","quantity":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotEmpty(t, body["trace_id"], "toda respuesta de error lleva trace_id")
}

// Tipo de movimiento desconocido → 422 INVALID_MOVEMENT_TYPE.
func TestCreateMovement_TipoInvalido_Retorna422(t *testing.T) {
	app := buildMovementsApp(100)
	resp := postMovement(t, app, `{"product_id":1,"movement_type":"Transfer","quantity":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_MOVEMENT_TYPE", body["code"])
}

// Salida mayor al stock → 422 INSUFFICIENT_STOCK.
func TestCreateMovement_StockInsuficiente_Retorna422(t *testing.T) {
	app := buildMovementsApp(10)
	resp := postMovement(t, app, `{"product_id":1,"movement_type":"Exit","quantity":50}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

// Cuerpo que no es JSON → 400 INVALID_BODY.
func TestCreateMovement_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildMovementsApp(100)
	resp := postMovement(t, app, `esto no es json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
