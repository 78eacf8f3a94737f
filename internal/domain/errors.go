package domain

import (
	"errors"
	"fmt"
)

// Categorías de error del motor fiscal (sin dependencias externas).
// Se comparan con errors.Is contra cualquier *FiscalError de la misma categoría.
var (
	ErrValidation  = errors.New("entrada inválida")
	ErrDomainLimit = errors.New("fuera del rango legal modelado")
	ErrLookup      = errors.New("clave de catálogo no encontrada")
	ErrInternal    = errors.New("error interno del motor fiscal")
)

// Códigos legibles por máquina que viajan en la respuesta {code, message}.
const (
	CodeInvalidRevenue      = "INVALID_REVENUE"
	CodeRevenueExceedsLimit = "REVENUE_EXCEEDS_LIMIT"
	CodeUnknownAnnex        = "UNKNOWN_ANNEX"
	CodeInvalidCompetence   = "INVALID_COMPETENCE"
	CodeInvalidFactorR      = "INVALID_FACTOR_R"
	CodeInvalidActivity     = "INVALID_ACTIVITY"
	CodeInvalidPeriod       = "INVALID_PERIOD"
	CodeInvalidYear         = "INVALID_YEAR"
	CodeBracketNotFound     = "BRACKET_NOT_FOUND"
	CodeActivityNotFound    = "ACTIVITY_NOT_FOUND"
	CodeCorruptedCatalog    = "CORRUPTED_CATALOG"
)

// FiscalError es el error tipado que devuelve el dominio fiscal.
// Kind es uno de ErrValidation, ErrDomainLimit, ErrLookup o ErrInternal.
type FiscalError struct {
	Kind    error
	Code    string
	Message string
}

func (e *FiscalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap expone la categoría: errors.Is(err, domain.ErrValidation) y similares.
func (e *FiscalError) Unwrap() error {
	return e.Kind
}

func newError(kind error, code, format string, args ...any) *FiscalError {
	return &FiscalError{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError crea un error de validación de entrada.
func NewValidationError(code, format string, args ...any) *FiscalError {
	return newError(ErrValidation, code, format, args...)
}

// NewDomainLimitError crea un error de límite legal (ingreso fuera de rango).
func NewDomainLimitError(code, format string, args ...any) *FiscalError {
	return newError(ErrDomainLimit, code, format, args...)
}

// NewLookupError crea un error de clave desconocida (anexo, actividad).
func NewLookupError(code, format string, args ...any) *FiscalError {
	return newError(ErrLookup, code, format, args...)
}

// NewInternalError crea un error interno (por ejemplo, catálogo corrupto al arrancar).
func NewInternalError(code, format string, args ...any) *FiscalError {
	return newError(ErrInternal, code, format, args...)
}

// AsFiscalError extrae el *FiscalError de una cadena de errores.
func AsFiscalError(err error) (*FiscalError, bool) {
	var fe *FiscalError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
