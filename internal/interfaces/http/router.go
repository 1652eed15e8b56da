package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/auth"
	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/application/production"
	"github.com/jhoicas/carnicos-api/internal/application/sales"
	"github.com/jhoicas/carnicos-api/internal/application/transfers"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/infrastructure/report"
	"github.com/jhoicas/carnicos-api/internal/interfaces/ws"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	LedgerUC     *ledger.UseCase
	SalesUC      *sales.UseCase
	ProductionUC *production.UseCase
	TransfersUC  *transfers.UseCase
	IngredientUC *usecase.IngredientUseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *usecase.InventoryUseCase
	StoreUC      *usecase.StoreUseCase
	SupplierUC   *usecase.SupplierUseCase
	CategoryUC   *usecase.CategoryUseCase
	UserUC       *usecase.UserUseCase
	DiscountUC   *usecase.DiscountUseCase
	HistoryUC    *usecase.HistoryUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *usecase.ReportUseCase

	CSVExporter *report.CSVExporter
	XMLExporter *report.XMLExporter
	PDFExporter *report.PDFExporter

	Hub       *ws.Hub
	Log       *logger.Logger
	JWTSecret string
	Debug     bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público, refresh protegido)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log, deps.Debug)
	api.Post("/auth/login", authHandler.Login)

	// WebSocket de eventos de stock (solo lectura, sin auth)
	app.Use("/ws", WSUpgrade)
	app.Get("/ws", WSHandler(deps.Hub))

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/refresh", authHandler.Refresh)

	// Libro de ajustes de stock (protegido)
	adjustmentHandler := NewAdjustmentHandler(deps.LedgerUC, deps.Log, deps.Debug)
	adjustments := protected.Group("/stock-adjustments")
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/", adjustmentHandler.List)
	adjustments.Get("/summary", adjustmentHandler.Summary)

	// Ingredientes (protegido)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.Log, deps.Debug)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Post("/reset", RequireRole("admin"), ingredientHandler.Reset)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.Get)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", RequireRole("admin", "manager"), ingredientHandler.Delete)
	ingredients.Get("/:id/adjustments", adjustmentHandler.History)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log, deps.Debug)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/", RequireRole("admin"), productHandler.DeleteAll)
	products.Delete("/:id", RequireRole("admin", "manager"), productHandler.Delete)

	// Inventario de producto terminado (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.InventoryUC, deps.Log, deps.Debug)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Set)
	inventory.Put("/update", inventoryHandler.Set)
	inventory.Get("/:productId", inventoryHandler.Get)

	// Ventas (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.Log, deps.Debug)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.Get)

	// Producción (protegido)
	productionGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.Log, deps.Debug)
	productionGroup.Post("/", productionHandler.Create)
	productionGroup.Get("/", productionHandler.List)
	productionGroup.Get("/:id", productionHandler.Get)
	productionGroup.Patch("/:id/status", productionHandler.UpdateStatus)
	productionGroup.Put("/:id/status", productionHandler.UpdateStatus)
	productionGroup.Delete("/:id", RequireRole("admin", "manager"), productionHandler.Delete)

	// Traslados (protegido)
	transfersGroup := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransfersUC, deps.Log, deps.Debug)
	transfersGroup.Post("/", transferHandler.Create)
	transfersGroup.Get("/", transferHandler.List)
	transfersGroup.Get("/:id", transferHandler.Get)
	transfersGroup.Patch("/:id/status", transferHandler.UpdateStatus)
	transfersGroup.Put("/:id/status", transferHandler.UpdateStatus)

	// Tiendas (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.Log, deps.Debug)
	stores.Post("/", RequireRole("admin", "manager"), storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.Get)
	stores.Put("/:id", RequireRole("admin", "manager"), storeHandler.Update)
	stores.Delete("/:id", RequireRole("admin"), storeHandler.Delete)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log, deps.Debug)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole("admin", "manager"), supplierHandler.Delete)

	// Categorías (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log, deps.Debug)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", RequireRole("admin", "manager"), categoryHandler.Delete)

	// Empleados (solo admin/manager)
	employees := protected.Group("/employees", RequireRole("admin", "manager"))
	employeeHandler := NewEmployeeHandler(deps.UserUC, deps.Log, deps.Debug)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.Get)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", RequireRole("admin"), employeeHandler.Delete)

	// Descuento mayorista (lectura libre, escritura admin/manager)
	discountHandler := NewDiscountHandler(deps.DiscountUC, deps.Log, deps.Debug)
	protected.Get("/discount-settings", discountHandler.Get)
	protected.Put("/discount-settings", RequireRole("admin", "manager"), discountHandler.Update)

	// Historial del sistema (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Log, deps.Debug)
	protected.Get("/history", historyHandler.List)
	protected.Get("/history/pos", historyHandler.ListEntity(entity.HistoryEntitySale))
	protected.Get("/history/inventory", historyHandler.ListEntity(entity.HistoryEntityInventory))
	protected.Get("/history/production", historyHandler.ListEntity(entity.HistoryEntityProduction))
	protected.Get("/history/ingredients", historyHandler.ListEntity(entity.HistoryEntityIngredient))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log, deps.Debug)
	protected.Get("/dashboard", dashboardHandler.Summary)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.CSVExporter, deps.XMLExporter, deps.PDFExporter, deps.Log, deps.Debug)
	protected.Get("/reports/daily", reportHandler.Daily)
}
