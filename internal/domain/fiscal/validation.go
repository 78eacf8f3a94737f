package fiscal

import (
	"strings"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DASRequest datos crudos del cálculo del DAS tal como llegan del llamador.
type DASRequest struct {
	GrossRevenue decimal.Decimal
	Annex        string
	Competence   string
	FactorR      *decimal.Decimal
}

// CalculationInput entrada tipada y validada del DASCalculator.
type CalculationInput struct {
	GrossRevenue decimal.Decimal
	Annex        Annex
	Competence   Competence
	FactorR      OptionalRatio // solo se usa en los anexos III, IV y V
}

// IRPJRequest datos crudos del cálculo del IRPJ.
// PeriodMonths cero significa "usar el período por defecto del llamador".
type IRPJRequest struct {
	GrossRevenue decimal.Decimal
	ActivityKey  string
	Competence   string
	PeriodMonths int
}

// IRPJCalculationInput entrada tipada y validada del IRPJCalculator.
type IRPJCalculationInput struct {
	GrossRevenue decimal.Decimal
	ActivityKey  string
	Competence   Competence
	PeriodMonths int // 1 mensual, 3 trimestral, 12 anual
}

// ValidateDAS convierte y valida la petición del DAS.
func ValidateDAS(req DASRequest) (CalculationInput, error) {
	if err := validateRevenue(req.GrossRevenue, SimplesNacionalCeiling); err != nil {
		return CalculationInput{}, err
	}
	annex, err := ParseAnnex(req.Annex)
	if err != nil {
		return CalculationInput{}, err
	}
	competence, err := ParseCompetence(req.Competence)
	if err != nil {
		return CalculationInput{}, err
	}
	in := CalculationInput{
		GrossRevenue: req.GrossRevenue,
		Annex:        annex,
		Competence:   competence,
		FactorR:      RatioFromPtr(req.FactorR),
	}
	if err := in.Validate(); err != nil {
		return CalculationInput{}, err
	}
	return in, nil
}

// Validate comprueba los rangos de una entrada ya tipada. Un Fator R presente
// en los anexos I y II no es error: simplemente se ignora al calcular.
func (in CalculationInput) Validate() error {
	if err := validateRevenue(in.GrossRevenue, SimplesNacionalCeiling); err != nil {
		return err
	}
	if !in.Annex.Valid() {
		return domain.NewLookupError(domain.CodeUnknownAnnex, "anexo %d desconocido", uint8(in.Annex))
	}
	if !in.Competence.Valid() {
		return domain.NewValidationError(domain.CodeInvalidCompetence, "competência %s inválida", in.Competence)
	}
	if r, ok := in.FactorR.Get(); ok {
		if r.IsNegative() {
			return domain.NewValidationError(domain.CodeInvalidFactorR, "Fator R no puede ser negativo")
		}
		if err := checkScale(r, domain.CodeInvalidFactorR, "Fator R"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateIRPJ convierte y valida la petición del IRPJ. defaultPeriod se usa si
// PeriodMonths viene en cero.
func ValidateIRPJ(req IRPJRequest, defaultPeriod int) (IRPJCalculationInput, error) {
	if err := validateRevenue(req.GrossRevenue, MaxIRPJRevenue); err != nil {
		return IRPJCalculationInput{}, err
	}
	competence, err := ParseCompetence(req.Competence)
	if err != nil {
		return IRPJCalculationInput{}, err
	}
	period := req.PeriodMonths
	if period == 0 {
		period = defaultPeriod
	}
	in := IRPJCalculationInput{
		GrossRevenue: req.GrossRevenue,
		ActivityKey:  req.ActivityKey,
		Competence:   competence,
		PeriodMonths: period,
	}
	if err := in.Validate(); err != nil {
		return IRPJCalculationInput{}, err
	}
	return in, nil
}

// Validate comprueba los rangos de una entrada IRPJ ya tipada.
func (in IRPJCalculationInput) Validate() error {
	if err := validateRevenue(in.GrossRevenue, MaxIRPJRevenue); err != nil {
		return err
	}
	if strings.TrimSpace(in.ActivityKey) == "" {
		return domain.NewValidationError(domain.CodeInvalidActivity, "activityKey es requerido")
	}
	if !in.Competence.Valid() {
		return domain.NewValidationError(domain.CodeInvalidCompetence, "competência %s inválida", in.Competence)
	}
	if !ValidPeriodMonths(in.PeriodMonths) {
		return domain.NewValidationError(domain.CodeInvalidPeriod, "período de %d meses no soportado: se espera 1, 3 o 12", in.PeriodMonths)
	}
	return nil
}

// ValidPeriodMonths informa si el período de apuración del IRPJ es soportado.
func ValidPeriodMonths(months int) bool {
	return months == 1 || months == 3 || months == 12
}

// Rango de exponentes aceptado en importes y razones. Se comprueba antes de
// cualquier Cmp: fuera de él el reescalado produce un big.Int enorme.
const (
	minDecimalExponent = -12
	maxDecimalExponent = 15
)

// checkScale descarta valores con exponente fuera de rango. Un exponente por
// encima del máximo con coeficiente no nulo ya supera 10^15.
func checkScale(d decimal.Decimal, code, field string) error {
	exp := d.Exponent()
	if exp > maxDecimalExponent {
		if code == domain.CodeInvalidRevenue {
			return domain.NewDomainLimitError(domain.CodeRevenueExceedsLimit, "%s fuera de rango", field)
		}
		return domain.NewValidationError(code, "%s fuera de rango", field)
	}
	if exp < minDecimalExponent {
		return domain.NewValidationError(code, "%s con más de %d decimales", field, -minDecimalExponent)
	}
	return nil
}

func validateRevenue(revenue, limit decimal.Decimal) error {
	if !revenue.IsPositive() {
		return domain.NewValidationError(domain.CodeInvalidRevenue, "el ingreso bruto debe ser mayor que cero")
	}
	if err := checkScale(revenue, domain.CodeInvalidRevenue, "ingreso bruto"); err != nil {
		return err
	}
	if revenue.GreaterThan(limit) {
		return domain.NewDomainLimitError(domain.CodeRevenueExceedsLimit,
			"ingreso bruto %s supera el límite de %s", revenue.StringFixed(2), limit.StringFixed(2))
	}
	return nil
}
