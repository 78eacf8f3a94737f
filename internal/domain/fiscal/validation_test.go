package fiscal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
)

func requireCode(t *testing.T, err error, kind error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "categoría esperada %v, error %v", kind, err)
	fe, ok := domain.AsFiscalError(err)
	require.True(t, ok)
	assert.Equal(t, code, fe.Code)
}

func TestValidateDAS_Codigos(t *testing.T) {
	cases := []struct {
		name string
		req  fiscal.DASRequest
		kind error
		code string
	}{
		{"ingreso cero", fiscal.DASRequest{Annex: "I", Competence: "2024-01"}, domain.ErrValidation, domain.CodeInvalidRevenue},
		{"ingreso sobre techo", fiscal.DASRequest{GrossRevenue: dec("4800000.01"), Annex: "I", Competence: "2024-01"}, domain.ErrDomainLimit, domain.CodeRevenueExceedsLimit},
		{"anexo VI", fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "VI", Competence: "2024-01"}, domain.ErrLookup, domain.CodeUnknownAnnex},
		{"anexo vacío", fiscal.DASRequest{GrossRevenue: dec("1000"), Competence: "2024-01"}, domain.ErrLookup, domain.CodeUnknownAnnex},
		{"competência mes 13", fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "I", Competence: "2024-13"}, domain.ErrValidation, domain.CodeInvalidCompetence},
		{"Fator R negativo", fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "III", Competence: "2024-01", FactorR: decPtr("-0.1")}, domain.ErrValidation, domain.CodeInvalidFactorR},
		{"ingreso con exponente enorme", fiscal.DASRequest{GrossRevenue: dec("1e5000000"), Annex: "I", Competence: "2024-01"}, domain.ErrDomainLimit, domain.CodeRevenueExceedsLimit},
		{"ingreso con exponente diminuto", fiscal.DASRequest{GrossRevenue: dec("1e-5000000"), Annex: "I", Competence: "2024-01"}, domain.ErrValidation, domain.CodeInvalidRevenue},
		{"Fator R con exponente diminuto", fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "III", Competence: "2024-01", FactorR: decPtr("1e-5000000")}, domain.ErrValidation, domain.CodeInvalidFactorR},
		{"Fator R con exponente enorme", fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "III", Competence: "2024-01", FactorR: decPtr("1e5000000")}, domain.ErrValidation, domain.CodeInvalidFactorR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fiscal.ValidateDAS(tc.req)
			requireCode(t, err, tc.kind, tc.code)
		})
	}
}

func TestValidateDAS_DevuelveEntradaSinCambios(t *testing.T) {
	in, err := fiscal.ValidateDAS(fiscal.DASRequest{
		GrossRevenue: dec("1234.56"),
		Annex:        " iii ",
		Competence:   "2024-07",
		FactorR:      decPtr("0.15"),
	})
	require.NoError(t, err)
	assertDecimal(t, "1234.56", in.GrossRevenue)
	assert.Equal(t, fiscal.AnnexIII, in.Annex)
	assert.Equal(t, "2024-07", in.Competence.String())
	r, ok := in.FactorR.Get()
	require.True(t, ok)
	assertDecimal(t, "0.15", r)
}

// Un Fator R en anexo I/II se ignora; solo se rechaza si es negativo.
func TestValidateDAS_FatorREnAnexoINoEsError(t *testing.T) {
	_, err := fiscal.ValidateDAS(fiscal.DASRequest{GrossRevenue: dec("1000"), Annex: "I", Competence: "2024-01", FactorR: decPtr("0.9")})
	assert.NoError(t, err)
}

func TestValidateIRPJ_Codigos(t *testing.T) {
	cases := []struct {
		name string
		req  fiscal.IRPJRequest
		kind error
		code string
	}{
		{"ingreso negativo", fiscal.IRPJRequest{GrossRevenue: dec("-5"), ActivityKey: "comercio", Competence: "2024-01"}, domain.ErrValidation, domain.CodeInvalidRevenue},
		{"ingreso absurdo", fiscal.IRPJRequest{GrossRevenue: dec("1000000000000"), ActivityKey: "comercio", Competence: "2024-01"}, domain.ErrDomainLimit, domain.CodeRevenueExceedsLimit},
		{"sin actividad", fiscal.IRPJRequest{GrossRevenue: dec("1000"), ActivityKey: "  ", Competence: "2024-01"}, domain.ErrValidation, domain.CodeInvalidActivity},
		{"competência vacía", fiscal.IRPJRequest{GrossRevenue: dec("1000"), ActivityKey: "comercio"}, domain.ErrValidation, domain.CodeInvalidCompetence},
		{"ingreso con exponente enorme", fiscal.IRPJRequest{GrossRevenue: dec("1e5000000"), ActivityKey: "comercio", Competence: "2024-01"}, domain.ErrDomainLimit, domain.CodeRevenueExceedsLimit},
		{"ingreso con exponente diminuto", fiscal.IRPJRequest{GrossRevenue: dec("1e-5000000"), ActivityKey: "comercio", Competence: "2024-01"}, domain.ErrValidation, domain.CodeInvalidRevenue},
		{"período de 2 meses", fiscal.IRPJRequest{GrossRevenue: dec("1000"), ActivityKey: "comercio", Competence: "2024-01", PeriodMonths: 2}, domain.ErrValidation, domain.CodeInvalidPeriod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fiscal.ValidateIRPJ(tc.req, 3)
			requireCode(t, err, tc.kind, tc.code)
		})
	}
}

// Sin límite superior para el IRPJ más allá del techo del Simples Nacional.
func TestValidateIRPJ_SinTechoSimples(t *testing.T) {
	in, err := fiscal.ValidateIRPJ(fiscal.IRPJRequest{GrossRevenue: dec("10000000"), ActivityKey: "comercio", Competence: "2024-03"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, in.PeriodMonths)
}

// Doce decimales todavía se aceptan; un valor válido con ceros a la derecha
// y exponente negativo no debe rechazarse.
func TestValidateDAS_EscalaEnElLimite(t *testing.T) {
	_, err := fiscal.ValidateDAS(fiscal.DASRequest{GrossRevenue: dec("1000.000000000001"), Annex: "III", Competence: "2024-01", FactorR: decPtr("0.150000000000")})
	assert.NoError(t, err)
}
