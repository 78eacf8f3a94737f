package fiscal

import (
	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket es una faixa de la tabla progresiva de un anexo.
type TaxBracket struct {
	Annex              Annex
	RevenueCeiling     decimal.Decimal // techo de ingreso bruto (inclusive)
	NominalRatePercent decimal.Decimal
}

// ResolveBracket recorre brackets en orden ascendente de techo y devuelve la
// primera faixa cuyo techo es >= revenue. Un ingreso igual al techo pertenece a esa faixa.
// No asume que la entrada haya sido validada.
func ResolveBracket(brackets []TaxBracket, revenue decimal.Decimal) (TaxBracket, error) {
	if !revenue.IsPositive() {
		return TaxBracket{}, domain.NewValidationError(domain.CodeInvalidRevenue, "el ingreso bruto debe ser mayor que cero")
	}
	if err := checkScale(revenue, domain.CodeInvalidRevenue, "ingreso bruto"); err != nil {
		return TaxBracket{}, err
	}
	for _, b := range brackets {
		if b.RevenueCeiling.GreaterThanOrEqual(revenue) {
			return b, nil
		}
	}
	return TaxBracket{}, domain.NewDomainLimitError(domain.CodeBracketNotFound,
		"ingreso bruto %s supera la última faixa de la tabla", revenue.StringFixed(2))
}

// ResolveBracket resuelve la faixa del anexo para el ingreso bruto.
func (c *Catalog) ResolveBracket(annex Annex, revenue decimal.Decimal) (TaxBracket, error) {
	brackets, ok := c.brackets[annex]
	if !ok {
		return TaxBracket{}, domain.NewLookupError(domain.CodeUnknownAnnex, "anexo %d desconocido", uint8(annex))
	}
	return ResolveBracket(brackets, revenue)
}
