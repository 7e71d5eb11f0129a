package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/textile-backoffice/internal/application/auth"
	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// Catalogs casos de uso CRUD de cada recurso.
type Catalogs struct {
	Inventory    *usecase.CatalogUseCase[entity.InventoryItem, dto.InventoryRequest]
	Buyers       *usecase.CatalogUseCase[entity.Buyer, dto.BuyerRequest]
	Suppliers    *usecase.CatalogUseCase[entity.Supplier, dto.SupplierRequest]
	Machines     *usecase.CatalogUseCase[entity.Machine, dto.MachineRequest]
	Operators    *usecase.CatalogUseCase[entity.Operator, dto.OperatorRequest]
	KnitFormulas *usecase.CatalogUseCase[entity.KnitFormula, dto.KnitFormulaRequest]
	Purchases    *usecase.CatalogUseCase[entity.Purchase, dto.PurchaseRequest]
	Sales        *usecase.CatalogUseCase[entity.Sale, dto.SaleRequest]
	KnittingLogs *usecase.CatalogUseCase[entity.KnittingLog, dto.KnittingLogRequest]
	DyeingLogs   *usecase.CatalogUseCase[entity.DyeingLog, dto.DyeingLogRequest]
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Catalogs     Catalogs
	FormulaUC    *usecase.FormulaUseCase
	ReceivableUC *usecase.ReceivableUseCase
	DashboardUC  *usecase.DashboardUseCase
	Cookie       CookieConfig
	Logger       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Logger)
	authMW := AuthMiddleware(deps.AuthUC, deps.Cookie.Name)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authMW, authHandler.Logout)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Formato numérico (público)
	localeHandler := NewLocaleHandler()
	localeGroup := api.Group("/locale")
	localeGroup.Post("/parse", localeHandler.Parse)
	localeGroup.Post("/typing", localeHandler.Typing)
	localeGroup.Get("/format", localeHandler.Format)

	// Rutas protegidas (sesión por Bearer o cookie; borrar solo admin)
	protected := api.Group("/", authMW)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Get)

	c := deps.Catalogs
	NewCatalogHandler(c.Inventory, "inventario").Register(protected.Group("/inventory"), adminOnly)
	NewCatalogHandler(c.Buyers, "compradores").Register(protected.Group("/buyers"), adminOnly)
	NewCatalogHandler(c.Suppliers, "proveedores").Register(protected.Group("/suppliers"), adminOnly)
	NewCatalogHandler(c.Machines, "maquinas").Register(protected.Group("/machines"), adminOnly)
	NewCatalogHandler(c.Operators, "operarios").Register(protected.Group("/operators"), adminOnly)
	NewCatalogHandler(c.Purchases, "compras").Register(protected.Group("/purchases"), adminOnly)
	NewCatalogHandler(c.Sales, "ventas").Register(protected.Group("/sales"), adminOnly)
	NewCatalogHandler(c.KnittingLogs, "tejido").Register(protected.Group("/knitting-logs"), adminOnly)
	NewCatalogHandler(c.DyeingLogs, "tenido").Register(protected.Group("/dyeing-logs"), adminOnly)

	// Fórmulas: CRUD + escalado + hoja de producción
	formulas := protected.Group("/knit-formulas")
	formulaHandler := NewFormulaHandler(deps.FormulaUC)
	formulas.Post("/:id/scale", formulaHandler.Scale)
	formulas.Get("/:id/sheet.pdf", formulaHandler.ProductionSheet)
	NewCatalogHandler(c.KnitFormulas, "formulas").Register(formulas, adminOnly)

	// Cuentas por cobrar (solo lectura + abonos)
	receivables := protected.Group("/receivables")
	receivableHandler := NewReceivableHandler(deps.ReceivableUC)
	receivables.Get("/", receivableHandler.List)
	receivables.Get("/:id", receivableHandler.Get)
	receivables.Post("/:id/payments", receivableHandler.RecordPayment)
}

// NewCatalogs arma los casos de uso CRUD de todos los recursos sobre el mismo backend.
func NewCatalogs(backend ports.BackendAPI, exporter ports.SpreadsheetExporter, formulas *usecase.FormulaUseCase, export usecase.ExportConfig) Catalogs {
	return Catalogs{
		Inventory:    usecase.NewCatalogUseCase(backend, exporter, usecase.InventoryResource(), export),
		Buyers:       usecase.NewCatalogUseCase(backend, exporter, usecase.BuyerResource(), export),
		Suppliers:    usecase.NewCatalogUseCase(backend, exporter, usecase.SupplierResource(), export),
		Machines:     usecase.NewCatalogUseCase(backend, exporter, usecase.MachineResource(), export),
		Operators:    usecase.NewCatalogUseCase(backend, exporter, usecase.OperatorResource(), export),
		KnitFormulas: usecase.NewCatalogUseCase(backend, exporter, usecase.KnitFormulaResource(), export),
		Purchases:    usecase.NewCatalogUseCase(backend, exporter, usecase.PurchaseResource(), export),
		Sales:        usecase.NewCatalogUseCase(backend, exporter, usecase.SaleResource(), export),
		KnittingLogs: usecase.NewCatalogUseCase(backend, exporter, usecase.KnittingLogResource(formulas), export),
		DyeingLogs:   usecase.NewCatalogUseCase(backend, exporter, usecase.DyeingLogResource(), export),
	}
}
