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
	"github.com/tu-usuario/packtrack-api/internal/application/auth"
	apppacking "github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/application/usecase"
	"github.com/tu-usuario/packtrack-api/internal/infrastructure/events"
	infrapdf "github.com/tu-usuario/packtrack-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/packtrack-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/packtrack-api/internal/infrastructure/xmlmanifest"
	httpRouter "github.com/tu-usuario/packtrack-api/internal/interfaces/http"
	"github.com/tu-usuario/packtrack-api/pkg/config"
	"github.com/tu-usuario/packtrack-api/pkg/logger"
	"github.com/tu-usuario/packtrack-api/pkg/uid"
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

	boxTypeRepo := postgres.NewBoxTypeRepository(pool)
	trayTypeRepo := postgres.NewTrayTypeRepository(pool)
	shipdocRepo := postgres.NewShipdocRepository(pool)
	boxRepo := postgres.NewBoxRepository(pool)
	trayRepo := postgres.NewTrayRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Señales de invalidación de páginas: los listados cacheados por los
	// clientes se re-consultan tras cada mutación.
	invalidator := events.NewMemoryInvalidator()
	invLog := log.Component("invalidator")
	invalidator.Subscribe(func(s events.Invalidation) {
		invLog.Debug().
			Str("entity", s.Entity).
			Str("scope", s.ScopeUID).
			Msg("páginas invalidadas")
	})

	uids := uid.New(cfg.Packing.UIDNamespace)
	rules := apppacking.Rules{
		EnforceBoxCapacity:    cfg.Packing.EnforceBoxCapacity,
		EnforceUpdateCapacity: cfg.Packing.EnforceUpdateCapacity,
		ItemsPerPage:          cfg.Packing.ItemsPerPage,
	}

	core := apppacking.NewContainmentUseCase(
		txRunner,
		boxRepo, trayRepo, lotRepo,
		boxTypeRepo, trayTypeRepo, shipdocRepo,
		uids, invalidator, rules,
	)
	exportUC := apppacking.NewExportUseCase(
		core,
		infrapdf.NewMarotoPackingList(),
		xmlmanifest.NewBuilder(),
	)

	boxTypeUC := usecase.NewBoxTypeUseCase(boxTypeRepo, uids, invalidator, cfg.Packing.ItemsPerPage)
	trayTypeUC := usecase.NewTrayTypeUseCase(trayTypeRepo, uids, invalidator, cfg.Packing.ItemsPerPage)
	shipdocUC := usecase.NewShipdocUseCase(shipdocRepo, uids, invalidator, cfg.Packing.ItemsPerPage)
	userUC := usecase.NewUserUseCase(userRepo, invalidator, cfg.Packing.ItemsPerPage)
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
		Title:    "PackTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BoxTypeUC:  boxTypeUC,
		TrayTypeUC: trayTypeUC,
		ShipdocUC:  shipdocUC,
		UserUC:     userUC,
		Core:       core,
		Export:     exportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
