package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/saep-api/internal/application/auth"
	"github.com/jhoicas/saep-api/internal/application/dto"
	"github.com/jhoicas/saep-api/internal/application/stock"
	"github.com/jhoicas/saep-api/internal/application/usecase"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *usecase.ClientUseCase
	CategoryUC   *usecase.CategoryUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	LogUC        *usecase.LogUseCase
	Ledger       *stock.Ledger
	MovementRepo repository.StockMovementRepository
	JWTSecret    string
}

// rejectDelete responde 405 con ErrNotAllowed a todo DELETE. Nada se borra
// en este sistema: el historial de movimientos es la fuente de verdad del
// stock y las referencias (productos, estoques, clientes) deben seguir
// resolubles.
func rejectDelete(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: fmt.Sprintf("%s: eliminar", domain.ErrNotAllowed),
	})
}

// rejectMutation responde 405 a intentos de editar un movimiento: el libro
// de movimientos es append-only y una corrección se hace con un movimiento
// compensatorio, nunca editando el historial.
func rejectMutation(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: fmt.Sprintf("%s: los movimientos no se modifican", domain.ErrNotAllowed),
	})
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveUser())

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", rejectDelete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", rejectDelete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", rejectDelete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Ledger)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.GetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", rejectDelete)

	// Stock movements (protegido, append-only)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Ledger, deps.MovementRepo)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", rejectMutation)
	movements.Delete("/:id", rejectDelete)

	// Activity logs (protegido; se desactivan, no se borran)
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Post("/", logHandler.Create)
	logs.Get("/", logHandler.List)
	logs.Get("/:id", logHandler.GetByID)
	logs.Put("/:id/activate", logHandler.Toggle)
	logs.Delete("/:id", rejectDelete)
}
