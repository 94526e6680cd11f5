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

	"github.com/puntofresco/puntofresco-api/internal/application/auth"
	"github.com/puntofresco/puntofresco-api/internal/application/inventory"
	"github.com/puntofresco/puntofresco-api/internal/application/pos"
	"github.com/puntofresco/puntofresco-api/internal/application/purchasing"
	"github.com/puntofresco/puntofresco-api/internal/application/reports"
	"github.com/puntofresco/puntofresco-api/internal/application/usecase"
	infracache "github.com/puntofresco/puntofresco-api/internal/infrastructure/cache"
	infrapdf "github.com/puntofresco/puntofresco-api/internal/infrastructure/pdf"
	"github.com/puntofresco/puntofresco-api/internal/infrastructure/postgres"
	httpRouter "github.com/puntofresco/puntofresco-api/internal/interfaces/http"
	"github.com/puntofresco/puntofresco-api/pkg/config"
	"github.com/puntofresco/puntofresco-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	lossRepo := postgres.NewLossRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Núcleo transaccional: venta, compra y merma
	processSaleUC := pos.NewProcessSaleUseCase(txRunner)
	saleQueryUC := pos.NewSaleQueryUseCase(saleRepo)
	processPurchaseUC := purchasing.NewProcessPurchaseUseCase(txRunner, supplierRepo)
	purchaseQueryUC := purchasing.NewPurchaseQueryUseCase(purchaseRepo)
	registerLossUC := inventory.NewRegisterLossUseCase(txRunner, productRepo)
	lossQueryUC := inventory.NewLossQueryUseCase(lossRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

	// Caché de reportes opcional: sin REDIS_ADDR, el resumen se calcula siempre
	var reportCache reports.SummaryCache
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, reportes sin caché")
		} else {
			reportCache = redisCache
			defer redisCache.Close()
		}
	}
	reportUC := reports.NewSummaryUseCase(reportRepo, reportCache,
		time.Duration(cfg.Redis.TTLSecs)*time.Second)

	// Recibo de venta en PDF
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator("Punto Fresco")
	receiptUC := pos.NewReceiptUseCase(saleRepo, userRepo, receiptGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Punto Fresco API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		SupplierUC:      supplierUC,
		CategoryUC:      categoryUC,
		ProcessSale:     processSaleUC,
		SaleQuery:       saleQueryUC,
		Receipt:         receiptUC,
		ProcessPurchase: processPurchaseUC,
		PurchaseQuery:   purchaseQueryUC,
		RegisterLoss:    registerLossUC,
		LossQuery:       lossQueryUC,
		ReportUC:        reportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
