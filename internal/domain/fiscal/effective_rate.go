package fiscal

import (
	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// OptionalRatio es un ratio opcional (p. ej. Fator R). El valor cero de
// OptionalRatio representa "ausente", distinto de un ratio presente igual a 0.
type OptionalRatio struct {
	value decimal.Decimal
	set   bool
}

// SomeRatio crea un ratio presente.
func SomeRatio(v decimal.Decimal) OptionalRatio {
	return OptionalRatio{value: v, set: true}
}

// RatioFromPtr crea un ratio presente si p no es nil.
func RatioFromPtr(p *decimal.Decimal) OptionalRatio {
	if p == nil {
		return OptionalRatio{}
	}
	return SomeRatio(*p)
}

// Get devuelve el valor y si está presente.
func (r OptionalRatio) Get() (decimal.Decimal, bool) {
	return r.value, r.set
}

// IsSet informa si el ratio está presente.
func (r OptionalRatio) IsSet() bool {
	return r.set
}

// EffectiveRate resultado del cálculo de alíquota efectiva.
// ReductionPercent es nil cuando no se aplicó la reducción del Fator R.
type EffectiveRate struct {
	EffectiveRatePercent decimal.Decimal
	ReductionPercent     *decimal.Decimal
}

// ComputeEffectiveRate deriva la alíquota efectiva de la nominal de la faixa.
// Si el anexo es III, IV o V y hay Fator R < 0.28, se reduce la nominal en
// 40%, 32% o 25% respectivamente. En otro caso la efectiva es la nominal.
func ComputeEffectiveRate(bracket TaxBracket, annex Annex, factorR OptionalRatio) (EffectiveRate, error) {
	nominal := bracket.NominalRatePercent
	factor, supported, err := annex.factorRReduction()
	if err != nil {
		return EffectiveRate{}, err
	}

	ratio, present := factorR.Get()
	if present {
		if err := checkScale(ratio, domain.CodeInvalidFactorR, "Fator R"); err != nil {
			return EffectiveRate{}, err
		}
	}
	if !supported || !present || !ratio.LessThan(factorRThreshold) {
		return EffectiveRate{EffectiveRatePercent: nominal}, nil
	}

	reduction := nominal.Mul(factor)
	return EffectiveRate{
		EffectiveRatePercent: nominal.Sub(reduction),
		ReductionPercent:     &reduction,
	}, nil
}
