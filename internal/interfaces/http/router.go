package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/almacen-api/internal/application/inventory"
	"github.com/jortega/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	MovementQueries  *usecase.MovementQueryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	JWTSecret        string
}

// Router registra las rutas de la API (v1). Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1", AuthMiddleware(deps.JWTSecret))

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/category/:categoryId", productHandler.GetByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	movements := api.Group("/inventory-movements")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQueries)
	movements.Get("/", inventoryHandler.List)
	movements.Post("/", inventoryHandler.Create)
	movements.Get("/product/:productId", inventoryHandler.GetByProduct)
}
