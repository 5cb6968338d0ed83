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
	"github.com/jhoicas/unitflow-api/internal/application/auth"
	"github.com/jhoicas/unitflow-api/internal/application/employees"
	"github.com/jhoicas/unitflow-api/internal/application/movements"
	"github.com/jhoicas/unitflow-api/internal/application/stats"
	"github.com/jhoicas/unitflow-api/internal/application/units"
	"github.com/jhoicas/unitflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/unitflow-api/internal/interfaces/http"
	"github.com/jhoicas/unitflow-api/internal/migrate"
	"github.com/jhoicas/unitflow-api/pkg/config"
	"github.com/jhoicas/unitflow-api/pkg/logger"
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

	// Esquema canónico: una sola rutina de bootstrap, aplicada en el arranque.
	if err := migrate.Up(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	unitRepo := postgres.NewUnitRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	unitUC := units.NewUseCase(unitRepo)
	movementUC := movements.NewUseCase(txRunner, movementRepo)
	statsUC := stats.NewUseCase(statsRepo)
	employeeUC := employees.NewUseCase(employeeRepo)
	authUC := auth.NewUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Debe existir siempre una identidad administrativa no eliminable.
	if err := employeeUC.EnsureRootAdmin(ctx, employees.RootAdmin{
		Name:     cfg.Admin.Name,
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}); err != nil {
		log.Fatal().Err(err).Msg("sembrar administrador raíz")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El artefacto lo
	// genera el CLI de swag; si no está presente se omite el UI.
	if h := swaggerHandler("./docs/swagger.json"); h != nil {
		app.Use(h)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UnitUC:     unitUC,
		MovementUC: movementUC,
		StatsUC:    statsUC,
		EmployeeUC: employeeUC,
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

// swaggerHandler devuelve el middleware de Swagger UI, o nil si el artefacto
// generado no existe: el middleware hace panic cuando FilePath está ausente y
// el arranque del servidor no debe depender de él.
func swaggerHandler(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "UnitFlow API",
	})
}
