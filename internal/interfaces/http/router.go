package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/renova-gestion/internal/application/auth"
	"github.com/tu-usuario/renova-gestion/internal/application/usecase"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Delete("/:id", RequireUserType(entity.RoleAdmin), clientHandler.Delete)

	// Inventory (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id/quantity", inventoryHandler.SetQuantity)
	inventory.Post("/:id/adjustments", inventoryHandler.AdjustQuantity)

	// Orders (protegido; las órdenes nunca se eliminan)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/reports/status", orderHandler.Report)
	orders.Get("/:number", orderHandler.GetByNumber)
	orders.Put("/:number/status", orderHandler.SetStatus)
}
