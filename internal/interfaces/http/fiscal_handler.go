package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiscal-api/internal/application/dto"
	"github.com/jhoicas/fiscal-api/internal/application/fiscal"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// FiscalHandler maneja las peticiones HTTP del motor fiscal (DAS e IRPJ).
type FiscalHandler struct {
	das  *fiscal.DASUseCase
	irpj *fiscal.IRPJUseCase
	log  *logger.Logger
}

// NewFiscalHandler construye el handler inyectando los casos de uso.
func NewFiscalHandler(das *fiscal.DASUseCase, irpj *fiscal.IRPJUseCase, log *logger.Logger) *FiscalHandler {
	return &FiscalHandler{das: das, irpj: irpj, log: log}
}

// CalculateDAS godoc
// @Summary      Calcular DAS del Simples Nacional
// @Description  Resuelve la faixa por RBT12, aplica la reducción del Fator R (anexos III, IV y V) y devuelve el valor a pagar.
// @Tags         fiscal
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DASCalculateRequest  true  "Datos del cálculo"
// @Success      200   {object}  dto.DASResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/fiscal/das [post]
func (h *FiscalHandler) CalculateDAS(c *fiber.Ctx) error {
	var in dto.DASCalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.das.Calculate(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Brackets godoc
// @Summary      Tablas del Simples Nacional
// @Tags         fiscal
// @Produce      json
// @Param        annex  query     string  false  "Anexo (I a V); vacío = todos"
// @Success      200    {array}   dto.BracketTableResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/fiscal/simples/brackets [get]
func (h *FiscalHandler) Brackets(c *fiber.Ctx) error {
	out, err := h.das.Brackets(c.Query("annex"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// IRPJRates godoc
// @Summary      Tasas del IRPJ (Lucro Presumido)
// @Description  Sin activityKey lista todas las actividades con título legible.
// @Tags         fiscal
// @Produce      json
// @Param        activityKey  query     string  false  "Actividad (ej. comercio, advocacia)"
// @Param        year         query     int     false  "Año de referencia; por defecto el actual"
// @Success      200          {array}   dto.IRPJRateResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/fiscal/irpj/rates [get]
func (h *FiscalHandler) IRPJRates(c *fiber.Ctx) error {
	var in dto.IRPJRatesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.irpj.Rates(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CalculateIRPJ godoc
// @Summary      Calcular IRPJ (Lucro Presumido)
// @Tags         fiscal
// @Accept       json
// @Produce      json
// @Param        body  body      dto.IRPJCalculateRequest  true  "Datos del cálculo"
// @Success      200   {object}  dto.IRPJResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/fiscal/irpj [post]
func (h *FiscalHandler) CalculateIRPJ(c *fiber.Ctx) error {
	var in dto.IRPJCalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.irpj.Calculate(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
