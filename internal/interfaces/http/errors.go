package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiscal-api/internal/application/dto"
	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// statusFor traduce la categoría del error fiscal a código HTTP.
//
//	Validation  → 400
//	DomainLimit → 422
//	Lookup      → 404, salvo UNKNOWN_ANNEX que es un valor de entrada inválido (400)
//	Internal    → 500
func statusFor(fe *domain.FiscalError) int {
	switch {
	case errors.Is(fe, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(fe, domain.ErrDomainLimit):
		return fiber.StatusUnprocessableEntity
	case errors.Is(fe, domain.ErrLookup):
		if fe.Code == domain.CodeUnknownAnnex {
			return fiber.StatusBadRequest
		}
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde con dto.ErrorResponse. Los errores internos no exponen el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log = requestLog(c, log)
	fe, ok := domain.AsFiscalError(err)
	if !ok {
		log.Error().Err(err).Str("path", c.Path()).Msg("error no tipado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	status := statusFor(fe)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno del motor fiscal")
		return c.Status(status).JSON(dto.ErrorResponse{Code: fe.Code, Message: "error interno"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: fe.Code, Message: fe.Message})
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados, etc.).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
