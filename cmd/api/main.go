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

	"github.com/cesge/control-equipos/internal/application/auth"
	"github.com/cesge/control-equipos/internal/application/movimientos"
	"github.com/cesge/control-equipos/internal/application/usecase"
	"github.com/cesge/control-equipos/internal/infrastructure/postgres"
	httpRouter "github.com/cesge/control-equipos/internal/interfaces/http"
	"github.com/cesge/control-equipos/pkg/config"
	"github.com/cesge/control-equipos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	movimientoRepo := postgres.NewMovimientoRepository(pool)
	personaRepo := postgres.NewPersonaRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	clock := movimientos.RelojLocal{}
	movimientoUC := movimientos.NewUseCase(movimientoRepo, clock, cfg.App.CentroFormacion, log)
	scanUC := movimientos.NewScanUseCase(movimientoRepo, clock, cfg.App.CentroFormacion, log)
	personaUC := usecase.NewPersonaUseCase(personaRepo)
	equipoUC := usecase.NewEquipoUseCase(equipoRepo, personaRepo)
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
		Title:    "Control de Equipos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovimientoUC: movimientoUC,
		ScanUC:       scanUC,
		PersonaUC:    personaUC,
		EquipoUC:     equipoUC,
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
