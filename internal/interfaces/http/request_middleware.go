package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación; se respeta la del cliente si viene.
const HeaderRequestID = "X-Request-ID"

const localLogger = "logger"

// RequestLogger asigna un request id y registra cada petición al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals(LocalRequestID, reqID)

		reqLog := log.WithField("request_id", reqID)
		c.Locals(localLogger, reqLog)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Str("user_id", GetUserID(c)).
			Str("company_id", GetCompanyID(c)).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// requestLog devuelve el sublogger con request_id de la petición, o fallback
// si RequestLogger no está montado.
func requestLog(c *fiber.Ctx, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return fallback
}
