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
	"github.com/jhoicas/TallerStock-api/internal/application/auth"
	appstock "github.com/jhoicas/TallerStock-api/internal/application/stock"
	apptransfer "github.com/jhoicas/TallerStock-api/internal/application/transfer"
	"github.com/jhoicas/TallerStock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/TallerStock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/TallerStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/TallerStock-api/internal/interfaces/http"
	"github.com/jhoicas/TallerStock-api/pkg/config"
	"github.com/jhoicas/TallerStock-api/pkg/logger"
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

	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	variationRepo := postgres.NewVariationRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	adjustmentRepo := postgres.NewStockAdjustmentRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	locationUC := usecase.NewLocationUseCase(locationRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, variationRepo)
	transferUC := apptransfer.NewTransferUseCase(txRunner, transferRepo, itemRepo, variationRepo, locationRepo)
	transitionUC := apptransfer.NewTransitionStatusUseCase(txRunner, transferRepo, staffRepo)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	stockQueryUC := appstock.NewQueryUseCase(stockRepo, adjustmentRepo, locationRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(staffRepo, auth.JWTConfig{
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
		Title:    "TallerStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC:   locationUC,
		ItemUC:       itemUC,
		TransferUC:   transferUC,
		TransitionUC: transitionUC,
		StockQuery:   stockQueryUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
