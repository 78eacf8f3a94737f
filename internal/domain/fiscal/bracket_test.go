package fiscal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
)

var ceilings = []string{"180000", "360000", "720000", "1800000", "3600000", "4800000"}

// Al cruzar cada techo dentro de un anexo la alíquota nominal nunca baja.
func TestResolveBracket_Monotonica(t *testing.T) {
	catalog := fiscal.DefaultCatalog()
	for _, a := range fiscal.Annexes() {
		prev := dec("0")
		for i, c := range ceilings {
			at, err := catalog.ResolveBracket(a, dec(c))
			require.NoError(t, err)
			assertDecimal(t, c, at.RevenueCeiling)
			assert.True(t, at.NominalRatePercent.GreaterThanOrEqual(prev), "anexo %s techo %s", a, c)
			prev = at.NominalRatePercent

			if i == len(ceilings)-1 {
				continue
			}
			above, err := catalog.ResolveBracket(a, dec(c).Add(dec("0.01")))
			require.NoError(t, err)
			assertDecimal(t, ceilings[i+1], above.RevenueCeiling)
			assert.True(t, above.NominalRatePercent.GreaterThanOrEqual(at.NominalRatePercent), "anexo %s sobre %s", a, c)
		}
	}
}

func TestResolveBracket_IgualAlTecho_FaixaInferior(t *testing.T) {
	b, err := fiscal.DefaultCatalog().ResolveBracket(fiscal.AnnexIII, dec("360000.00"))
	require.NoError(t, err)
	assertDecimal(t, "360000", b.RevenueCeiling)
	assertDecimal(t, "11.2", b.NominalRatePercent)
}

// El resolver se defiende solo, aunque no haya pasado por el validador.
func TestResolveBracket_SobreUltimoTecho_BracketNotFound(t *testing.T) {
	_, err := fiscal.DefaultCatalog().ResolveBracket(fiscal.AnnexII, dec("4800000.01"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDomainLimit))
	fe, ok := domain.AsFiscalError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeBracketNotFound, fe.Code)
}

func TestResolveBracket_IngresoNoPositivo(t *testing.T) {
	_, err := fiscal.DefaultCatalog().ResolveBracket(fiscal.AnnexI, dec("0"))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestResolveBracket_AnexoDesconocido(t *testing.T) {
	_, err := fiscal.DefaultCatalog().ResolveBracket(fiscal.Annex(0), dec("1000"))
	assert.True(t, errors.Is(err, domain.ErrLookup))
}

func TestResolveBracket_ListaVacia(t *testing.T) {
	_, err := fiscal.ResolveBracket(nil, dec("1"))
	assert.True(t, errors.Is(err, domain.ErrDomainLimit))
}

func TestCatalog_BracketsDevuelveCopia(t *testing.T) {
	catalog := fiscal.DefaultCatalog()
	list, err := catalog.Brackets(fiscal.AnnexI)
	require.NoError(t, err)
	require.Len(t, list, 6)
	list[0].NominalRatePercent = dec("99")

	again, err := catalog.Brackets(fiscal.AnnexI)
	require.NoError(t, err)
	assertDecimal(t, "4.0", again[0].NominalRatePercent)
}

func TestResolveBracket_ExponenteExtremo(t *testing.T) {
	catalog := fiscal.DefaultCatalog()

	_, err := catalog.ResolveBracket(fiscal.AnnexI, dec("1e5000000"))
	requireCode(t, err, domain.ErrDomainLimit, domain.CodeRevenueExceedsLimit)

	_, err = catalog.ResolveBracket(fiscal.AnnexI, dec("1e-5000000"))
	requireCode(t, err, domain.ErrValidation, domain.CodeInvalidRevenue)
}
