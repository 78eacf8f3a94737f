package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fiscal-api/internal/application/fiscal"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	DASUC     *fiscal.DASUseCase
	IRPJUC    *fiscal.IRPJUseCase
	JWTSecret string // vacío = rutas sin autenticación
	JWTIssuer string
	Logger    *logger.Logger
}

// NewApp crea la aplicación Fiber con los middlewares comunes y registra las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(deps.Logger),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	api := app.Group("/api")

	fiscalGroup := api.Group("/fiscal")
	if deps.JWTSecret != "" {
		fiscalGroup.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	h := NewFiscalHandler(deps.DASUC, deps.IRPJUC, deps.Logger)
	fiscalGroup.Post("/das", h.CalculateDAS)
	fiscalGroup.Get("/simples/brackets", h.Brackets)
	fiscalGroup.Get("/irpj/rates", h.IRPJRates)
	fiscalGroup.Post("/irpj", h.CalculateIRPJ)
}
