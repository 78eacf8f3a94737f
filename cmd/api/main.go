package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/fiscal-api/docs"
	appfiscal "github.com/jhoicas/fiscal-api/internal/application/fiscal"
	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	"github.com/jhoicas/fiscal-api/internal/domain/repository"
	"github.com/jhoicas/fiscal-api/internal/infrastructure/cache"
	"github.com/jhoicas/fiscal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fiscal-api/internal/interfaces/http"
	"github.com/jhoicas/fiscal-api/pkg/config"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// @title        Fiscal API
// @version      1.0
// @description  Motor fiscal: DAS del Simples Nacional e IRPJ del Lucro Presumido.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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
		Str("catalog_source", cfg.Fiscal.CatalogSource).
		Int("irpj_period_months", cfg.Fiscal.IRPJPeriodMonths).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Catálogo fiscal: tablas embebidas o leídas de PostgreSQL una sola vez al arrancar.
	var catalogRepo repository.FiscalCatalogRepository
	if cfg.Fiscal.CatalogSource == config.CatalogSourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		repo := postgres.NewCatalogRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migración del catálogo fiscal")
		}
		catalogRepo = repo
	}
	catalog, err := appfiscal.LoadCatalog(ctx, catalogRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo fiscal inválido")
	}

	// Caché de resultados opcional.
	var resultCache appfiscal.ResultCache
	if cfg.Redis.Enabled() {
		rc := cache.NewResultCache(cfg.Redis)
		defer rc.Close()
		if rc.IsAvailable() {
			resultCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Int("ttl_seconds", cfg.Redis.TTLSeconds).Msg("caché Redis activa")
		} else {
			log.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, se continúa sin caché")
		}
	}

	dasUC := appfiscal.NewDASUseCase(fiscal.NewDASCalculator(catalog), resultCache, log)
	irpjUC := appfiscal.NewIRPJUseCase(fiscal.NewPresumptionResolver(catalog), cfg.Fiscal.IRPJPeriodMonths, resultCache, log)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas /api/fiscal sin autenticación")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		DASUC:     dasUC,
		IRPJUC:    irpjUC,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
		Logger:    log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fiscal API",
	}))

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
