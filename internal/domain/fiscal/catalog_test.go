package fiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
)

func TestNewCatalog_TablasEmbebidasValidas(t *testing.T) {
	c, err := fiscal.NewCatalog(fiscal.DefaultBrackets(), fiscal.DefaultPresumptions())
	require.NoError(t, err)
	for _, a := range fiscal.Annexes() {
		list, err := c.Brackets(a)
		require.NoError(t, err)
		assert.Len(t, list, 6)
		assertDecimal(t, "4800000", list[len(list)-1].RevenueCeiling)
	}
}

// ── tablas corruptas → ErrInternal ────────────────────────────────────────────

func TestNewCatalog_TechosNoCrecientes(t *testing.T) {
	brackets := fiscal.DefaultBrackets()
	brackets[1].RevenueCeiling = brackets[0].RevenueCeiling // anexo I, faixa 2 = faixa 1
	_, err := fiscal.NewCatalog(brackets, fiscal.DefaultPresumptions())
	requireCode(t, err, domain.ErrInternal, domain.CodeCorruptedCatalog)
}

func TestNewCatalog_NoLlegaAlTecho(t *testing.T) {
	var brackets []fiscal.TaxBracket
	for _, b := range fiscal.DefaultBrackets() {
		if b.Annex == fiscal.AnnexV && b.RevenueCeiling.Equal(fiscal.SimplesNacionalCeiling) {
			continue
		}
		brackets = append(brackets, b)
	}
	_, err := fiscal.NewCatalog(brackets, fiscal.DefaultPresumptions())
	requireCode(t, err, domain.ErrInternal, domain.CodeCorruptedCatalog)
}

func TestNewCatalog_AnexoFaltante(t *testing.T) {
	var brackets []fiscal.TaxBracket
	for _, b := range fiscal.DefaultBrackets() {
		if b.Annex != fiscal.AnnexII {
			brackets = append(brackets, b)
		}
	}
	_, err := fiscal.NewCatalog(brackets, fiscal.DefaultPresumptions())
	requireCode(t, err, domain.ErrInternal, domain.CodeCorruptedCatalog)
}

func TestNewCatalog_PresuncionInvalida(t *testing.T) {
	bad := [][]fiscal.ActivityPresumption{
		nil,
		{{ActivityKey: "Comercio", PresumptionPercent: dec("8")}},
		{{ActivityKey: "comercio", PresumptionPercent: dec("0")}},
		{{ActivityKey: "comercio", PresumptionPercent: dec("101")}},
		{{ActivityKey: "comercio", PresumptionPercent: dec("8")}, {ActivityKey: "comercio", PresumptionPercent: dec("8")}},
	}
	for _, p := range bad {
		_, err := fiscal.NewCatalog(fiscal.DefaultBrackets(), p)
		requireCode(t, err, domain.ErrInternal, domain.CodeCorruptedCatalog)
	}
}

func TestAnnex_ParseYString(t *testing.T) {
	for _, a := range fiscal.Annexes() {
		parsed, err := fiscal.ParseAnnex(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
		assert.NotEmpty(t, a.Description())
	}
	assert.False(t, fiscal.Annex(6).Valid())
	assert.Equal(t, "", fiscal.Annex(6).String())
}
