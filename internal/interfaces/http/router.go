package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	api.Use(AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", RequireRole("admin", "bodeguero"), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Patch("/:code", RequireRole("admin", "bodeguero"), productHandler.Update)

	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery)
	inv := api.Group("/inventory")
	inv.Post("/movements", RequireRole("admin", "bodeguero"), inventoryHandler.RegisterMovement)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/movements/:id", inventoryHandler.GetMovement)
	inv.Delete("/movements/:id", inventoryHandler.RemoveMovement)
	inv.Get("/product/:code/stock", inventoryHandler.GetProductStock)
	inv.Get("/product/:code/movements", inventoryHandler.GetMovementsByProduct)
}
