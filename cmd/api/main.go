package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/carnicos-api/internal/application/auth"
	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/application/production"
	"github.com/jhoicas/carnicos-api/internal/application/sales"
	"github.com/jhoicas/carnicos-api/internal/application/transfers"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/internal/cache"
	"github.com/jhoicas/carnicos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carnicos-api/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/carnicos-api/internal/interfaces/http"
	"github.com/jhoicas/carnicos-api/internal/interfaces/ws"
	"github.com/jhoicas/carnicos-api/pkg/config"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché: Redis si hay REDIS_ADDR, si no en memoria.
	var appCache cache.Cache = cache.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, usando caché en memoria")
		} else {
			appCache = redisCache
			defer redisCache.Close()
		}
	}

	ingredientRepo := postgres.NewIngredientRepository(pool)
	adjustmentRepo := postgres.NewStockAdjustmentRepository(pool)
	positionRepo := postgres.NewInventoryPositionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	discountRepo := postgres.NewDiscountSettingRepository(pool)
	historyRepo := postgres.NewSystemHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Hub WebSocket: reparte los cambios de stock a los clientes conectados.
	hub := ws.NewHub(log)
	go hub.Run()

	ledgerUC := ledger.NewUseCase(txRunner, ingredientRepo, adjustmentRepo, positionRepo, productRepo, hub)
	salesUC := sales.NewUseCase(txRunner, saleRepo, storeRepo, discountRepo, hub)
	productionUC := production.NewUseCase(txRunner, productionRepo, productRepo, ingredientRepo)
	transfersUC := transfers.NewUseCase(txRunner, transferRepo, productRepo, hub)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := usecase.NewInventoryUseCase(positionRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	discountUC := usecase.NewDiscountUseCase(discountRepo, appCache)
	historyUC := usecase.NewHistoryUseCase(historyRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, ingredientRepo, saleRepo, transferRepo, productionRepo, appCache)
	reportUC := usecase.NewReportUseCase(saleRepo, productionRepo, adjustmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LedgerUC:     ledgerUC,
		SalesUC:      salesUC,
		ProductionUC: productionUC,
		TransfersUC:  transfersUC,
		IngredientUC: ingredientUC,
		ProductUC:    productUC,
		InventoryUC:  inventoryUC,
		StoreUC:      storeUC,
		SupplierUC:   supplierUC,
		CategoryUC:   categoryUC,
		UserUC:       userUC,
		DiscountUC:   discountUC,
		HistoryUC:    historyUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		CSVExporter:  report.NewCSVExporter(),
		XMLExporter:  report.NewXMLExporter(),
		PDFExporter:  report.NewPDFExporter(cfg.App.Name),
		Hub:          hub,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		Debug:        cfg.App.Debug,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
