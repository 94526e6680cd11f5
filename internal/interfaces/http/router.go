package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntofresco/puntofresco-api/internal/application/auth"
	"github.com/puntofresco/puntofresco-api/internal/application/inventory"
	"github.com/puntofresco/puntofresco-api/internal/application/pos"
	"github.com/puntofresco/puntofresco-api/internal/application/purchasing"
	"github.com/puntofresco/puntofresco-api/internal/application/reports"
	"github.com/puntofresco/puntofresco-api/internal/application/usecase"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	SupplierUC      *usecase.SupplierUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProcessSale     *pos.ProcessSaleUseCase
	SaleQuery       *pos.SaleQueryUseCase
	Receipt         *pos.ReceiptUseCase
	ProcessPurchase *purchasing.ProcessPurchaseUseCase
	PurchaseQuery   *purchasing.PurchaseQueryUseCase
	RegisterLoss    *inventory.RegisterLossUseCase
	LossQuery       *inventory.LossQueryUseCase
	ReportUC        *reports.SummaryUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; registro y listado solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", admin, authHandler.Register)
	protected.Get("/usuarios", admin, authHandler.ListUsers)

	// Productos: lectura para todos; escritura solo admin
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/stock-bajo", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Ventas (punto de venta, cualquier usuario autenticado)
	sales := protected.Group("/ventas")
	saleHandler := NewSaleHandler(deps.ProcessSale, deps.SaleQuery, deps.Receipt)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/mi-sesion", saleHandler.MySession) // antes de /:id
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/recibo", saleHandler.Receipt)

	// Compras (entrada de mercancía, solo admin)
	purchases := protected.Group("/compras", admin)
	purchaseHandler := NewPurchaseHandler(deps.ProcessPurchase, deps.PurchaseQuery)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)

	// Mermas
	losses := protected.Group("/mermas")
	lossHandler := NewLossHandler(deps.RegisterLoss, deps.LossQuery)
	losses.Post("/", lossHandler.Create)
	losses.Get("/", lossHandler.List)

	// Proveedores (solo admin)
	suppliers := protected.Group("/proveedores", admin)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categorías (lectura para todos; escritura solo admin)
	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Reportes (solo admin)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/resumen", admin, reportHandler.Summary)
}
