package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/kirana-api/internal/application/auth"
	"github.com/jhoicas/kirana-api/internal/application/orders"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/kirana-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kirana-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/kirana-api/internal/interfaces/http"
	"github.com/jhoicas/kirana-api/pkg/config"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("creación de esquema")
	}
	if cfg.App.Seed {
		if err := postgres.Seed(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("siembra inicial")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUsecase(userRepo, cfg.JWT, log)
	productUC := usecase.NewProductUsecase(productRepo, txRunner, log)
	transactionUC := usecase.NewTransactionUsecase(txRunner, log)
	ledgerUC := usecase.NewLedgerUsecase(productRepo, saleRepo, purchaseRepo, log)
	userUC := usecase.NewUserUsecase(userRepo, log)
	ordersUC := orders.NewUsecase(productRepo, txRunner, log)
	pdfGenerator := infrapdf.NewProfitLossPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kirana Store API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		AuthUC:        authUC,
		ProductUC:     productUC,
		TransactionUC: transactionUC,
		LedgerUC:      ledgerUC,
		UserUC:        userUC,
		OrdersUC:      ordersUC,
		PDFGen:        pdfGenerator,
		Users:         userRepo,
		DB:            pool,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
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
