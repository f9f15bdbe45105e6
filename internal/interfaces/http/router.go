package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kirana-api/internal/application/auth"
	"github.com/jhoicas/kirana-api/internal/application/orders"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Pinger chequeo de vida de la base de datos para /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	AuthUC        *auth.Usecase
	ProductUC     *usecase.ProductUsecase
	TransactionUC *usecase.TransactionUsecase
	LedgerUC      *usecase.LedgerUsecase
	UserUC        *usecase.UserUsecase
	OrdersUC      *orders.Usecase
	PDFGen        *pdf.ProfitLossPDFGenerator
	Users         UserLoader
	DB            Pinger
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	SetErrorLogger(deps.Log)

	// Banner del servicio
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": deps.AppName, "status": "running"})
	})

	api := app.Group("/api")

	// Salud (público), con ping a la base si hay conexión inyectada
	api.Get("/health", func(c *fiber.Ctx) error {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).
					JSON(fiber.Map{"status": "unhealthy", "database": "down"})
			}
		}
		return c.JSON(fiber.Map{"status": "healthy", "database": "up"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Webhooks de mensajería (públicos; un proveedor real firmaría)
	webhookHandler := NewWebhookHandler(deps.OrdersUC)
	api.Post("/webhook/whatsapp", webhookHandler.WhatsAppOrder)
	api.Post("/sms", webhookHandler.SMS)

	// Catálogo público para el frontend
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)

	// Rutas protegidas (Bearer Token); la autorización fina es por permiso
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := func(p entity.Permission) fiber.Handler {
		return RequirePermission(deps.Users, p)
	}

	// Productos (protegido)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", perm(entity.PermCreateProduct), productHandler.Create)
	protected.Put("/products/:id", perm(entity.PermCreateProduct), productHandler.Update)
	protected.Delete("/products/:id", perm(entity.PermDeleteProduct), productHandler.Delete)

	// Ventas y compras
	txHandler := NewTransactionHandler(deps.TransactionUC)
	protected.Post("/sales", perm(entity.PermSales), txHandler.CreateSale)
	protected.Delete("/sales/:id", perm(entity.PermSales), txHandler.DeleteSale)
	protected.Post("/purchases", perm(entity.PermPurchase), txHandler.CreatePurchase)
	protected.Delete("/purchases/:id", perm(entity.PermPurchase), txHandler.DeletePurchase)

	// Libros y reportes
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgers := protected.Group("/ledgers")
	ledgers.Get("/sales", perm(entity.PermSalesLedger), ledgerHandler.Sales)
	ledgers.Get("/purchases", perm(entity.PermPurchaseLedger), ledgerHandler.Purchases)
	ledgers.Get("/products", perm(entity.PermStockLedger), ledgerHandler.Products)
	ledgers.Get("/summary", perm(entity.PermStockLedger), ledgerHandler.Summary)
	ledgers.Get("/stock", perm(entity.PermStockLedger), ledgerHandler.Snapshot)
	ledgers.Get("/stock/:product_id", perm(entity.PermStockLedger), ledgerHandler.Stock)
	ledgers.Get("/opening-stock", perm(entity.PermOpeningStock), ledgerHandler.Opening)
	ledgers.Get("/profit-loss", perm(entity.PermProfitLoss), ledgerHandler.ProfitLoss)

	// Descargas
	downloadHandler := NewDownloadHandler(deps.LedgerUC, deps.PDFGen)
	downloads := protected.Group("/downloads")
	downloads.Get("/sales-ledger", perm(entity.PermSalesLedger), downloadHandler.SalesCSV)
	downloads.Get("/purchase-ledger", perm(entity.PermPurchaseLedger), downloadHandler.PurchasesCSV)
	downloads.Get("/stock", perm(entity.PermStockLedger), downloadHandler.SnapshotCSV)
	downloads.Get("/stock-ledger/:product_id", perm(entity.PermStockLedger), downloadHandler.StockLedgerCSV)
	downloads.Get("/opening-stock", perm(entity.PermOpeningStock), downloadHandler.OpeningCSV)
	downloads.Get("/profit-loss", perm(entity.PermProfitLoss), downloadHandler.ProfitLossCSV)
	downloads.Get("/profit-loss.pdf", perm(entity.PermProfitLoss), downloadHandler.ProfitLossPDF)

	// Usuarios (protegido, gestión)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", perm(entity.PermUserManagement))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
}
