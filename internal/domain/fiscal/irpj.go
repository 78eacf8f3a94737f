package fiscal

import (
	"time"

	"github.com/shopspring/decimal"
)

// IRPJRates tasas fijas del IRPJ en el Lucro Presumido.
type IRPJRates struct {
	NormalRatePercent      decimal.Decimal // 15%
	SurtaxRatePercent      decimal.Decimal // adicional de 10%
	SurtaxMonthlyThreshold decimal.Decimal // R$ 20.000,00 por mes del período
}

// StatutoryIRPJRates devuelve las tasas legales vigentes.
func StatutoryIRPJRates() IRPJRates {
	return IRPJRates{
		NormalRatePercent:      irpjNormalRatePercent,
		SurtaxRatePercent:      irpjSurtaxRatePercent,
		SurtaxMonthlyThreshold: irpjSurtaxMonthlyThreshold,
	}
}

// IRPJResult resultado del cálculo del IRPJ.
type IRPJResult struct {
	ActivityKey        string
	PresumptionPercent decimal.Decimal
	TaxBase            decimal.Decimal
	BaseTaxAmount      decimal.Decimal
	SurtaxThreshold    decimal.Decimal
	SurtaxAmount       decimal.Decimal
	AmountDue          decimal.Decimal
	DueDate            time.Time
	Competence         Competence
	PeriodMonths       int
}

// IRPJCalculator calcula el IRPJ del Lucro Presumido.
type IRPJCalculator struct {
	presumptions *PresumptionResolver
	rates        IRPJRates
}

// NewIRPJCalculator construye el calculador con las tasas legales.
func NewIRPJCalculator(presumptions *PresumptionResolver) *IRPJCalculator {
	return &IRPJCalculator{presumptions: presumptions, rates: StatutoryIRPJRates()}
}

// Rates devuelve las tasas usadas por el calculador.
func (c *IRPJCalculator) Rates() IRPJRates {
	return c.rates
}

// Calculate aplica la regla legal:
//
//	base      = receita × presunção / 100
//	imposto   = base × 15%
//	adicional = max(0, base − 20.000 × meses) × 10%
//	devido    = imposto + adicional
//
// Cada paso monetario se redondea a centavos (half-up).
func (c *IRPJCalculator) Calculate(in IRPJCalculationInput) (IRPJResult, error) {
	if err := in.Validate(); err != nil {
		return IRPJResult{}, err
	}
	presumption, err := c.presumptions.Resolve(in.ActivityKey)
	if err != nil {
		return IRPJResult{}, err
	}

	base := roundMoney(in.GrossRevenue.Mul(presumption.PresumptionPercent).Div(hundred))
	baseTax := roundMoney(base.Mul(c.rates.NormalRatePercent).Div(hundred))

	threshold := c.rates.SurtaxMonthlyThreshold.Mul(decimal.NewFromInt(int64(in.PeriodMonths)))
	surtax := decimal.Zero
	if excess := base.Sub(threshold); excess.IsPositive() {
		surtax = roundMoney(excess.Mul(c.rates.SurtaxRatePercent).Div(hundred))
	}

	return IRPJResult{
		ActivityKey:        presumption.ActivityKey,
		PresumptionPercent: presumption.PresumptionPercent,
		TaxBase:            base,
		BaseTaxAmount:      baseTax,
		SurtaxThreshold:    threshold,
		SurtaxAmount:       surtax,
		AmountDue:          baseTax.Add(surtax),
		DueDate:            in.Competence.DueDate(),
		Competence:         in.Competence,
		PeriodMonths:       in.PeriodMonths,
	}, nil
}
