package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TallerStock-api/internal/application/auth"
	appstock "github.com/jhoicas/TallerStock-api/internal/application/stock"
	apptransfer "github.com/jhoicas/TallerStock-api/internal/application/transfer"
	"github.com/jhoicas/TallerStock-api/internal/application/usecase"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC   *usecase.LocationUseCase
	ItemUC       *usecase.ItemUseCase
	TransferUC   *apptransfer.TransferUseCase
	TransitionUC *apptransfer.TransitionStatusUseCase
	StockQuery   *appstock.QueryUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
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

	// Locations (protegido; eliminar solo admin)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", RequireRole(entity.RoleAdmin), locationHandler.Delete)

	// Items y variaciones (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Post("/:id/variations", itemHandler.CreateVariation)
	items.Get("/:id/variations", itemHandler.ListVariations)

	// Transfers (protegido). El cambio de estado mueve stock, así que
	// queda restringido a admin y técnico; el borrado solo a admin.
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC, deps.TransitionUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Delete("/:id", RequireRole(entity.RoleAdmin), transferHandler.Delete)
	transfers.Put("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleTecnico), transferHandler.TransitionStatus)

	// Stock y bitácora de ajustes (protegido, solo lectura)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQuery)
	stock.Get("/", stockHandler.ListLevels)
	stock.Get("/adjustments", stockHandler.ListAdjustments)
	stock.Get("/adjustments/report", stockHandler.AdjustmentReport)
}
