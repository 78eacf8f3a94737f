package fiscal

import (
	"time"

	"github.com/shopspring/decimal"
)

// DASResult resultado del cálculo del DAS del Simples Nacional.
type DASResult struct {
	AmountDue               decimal.Decimal
	NominalRatePercent      decimal.Decimal
	EffectiveRatePercent    decimal.Decimal
	FactorRReductionPercent *decimal.Decimal // nil si no hubo reducción
	DueDate                 time.Time
	Annex                   Annex
	Competence              Competence
	Bracket                 TaxBracket
}

// DASCalculator orquesta validación → faixa → alíquota efectiva → vencimiento.
type DASCalculator struct {
	catalog *Catalog
}

// NewDASCalculator construye el calculador sobre un catálogo inmutable.
func NewDASCalculator(catalog *Catalog) *DASCalculator {
	return &DASCalculator{catalog: catalog}
}

// Catalog devuelve el catálogo usado por el calculador.
func (c *DASCalculator) Catalog() *Catalog {
	return c.catalog
}

// Calculate calcula el valor del DAS.
// amountDue = round(grossRevenue * effectiveRatePercent / 100, 2), redondeo half-up.
// La alíquota efectiva es la nominal de la faixa (menos la reducción del Fator R, si aplica).
func (c *DASCalculator) Calculate(in CalculationInput) (DASResult, error) {
	if err := in.Validate(); err != nil {
		return DASResult{}, err
	}
	bracket, err := c.catalog.ResolveBracket(in.Annex, in.GrossRevenue)
	if err != nil {
		return DASResult{}, err
	}
	rate, err := ComputeEffectiveRate(bracket, in.Annex, in.FactorR)
	if err != nil {
		return DASResult{}, err
	}

	return DASResult{
		AmountDue:               roundMoney(in.GrossRevenue.Mul(rate.EffectiveRatePercent).Div(hundred)),
		NominalRatePercent:      bracket.NominalRatePercent,
		EffectiveRatePercent:    rate.EffectiveRatePercent,
		FactorRReductionPercent: rate.ReductionPercent,
		DueDate:                 in.Competence.DueDate(),
		Annex:                   in.Annex,
		Competence:              in.Competence,
		Bracket:                 bracket,
	}, nil
}

// roundMoney redondea a centavos. decimal.Round redondea "half away from zero",
// que para montos positivos equivale a half-up.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
