package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiscal-api/internal/application/dto"
	"github.com/jhoicas/fiscal-api/internal/application/fiscal"
	domfiscal "github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	apphttp "github.com/jhoicas/fiscal-api/internal/interfaces/http"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// ── helpers ──

func buildFiscalApp(jwtSecret string) *fiber.App {
	log := logger.Nop()
	catalog := domfiscal.DefaultCatalog()
	return apphttp.NewApp(apphttp.RouterDeps{
		AppName:   "fiscal-api-test",
		DASUC:     fiscal.NewDASUseCase(domfiscal.NewDASCalculator(catalog), nil, log),
		IRPJUC:    fiscal.NewIRPJUseCase(domfiscal.NewPresumptionResolver(catalog), 3, nil, log),
		JWTSecret: jwtSecret,
		JWTIssuer: testIssuer,
		Logger:    log,
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, authHeader string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out.Code
}

// ── DAS ──

func TestFiscalHandler_DAS_AnexoI_SinFatorR(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/das",
		`{"grossRevenue": 100000, "annex": "I", "competence": "2024-03"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out dto.DASResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "4000", out.AmountDue.String())
	assert.Equal(t, "4", out.NominalRatePercent.String())
	assert.Equal(t, "4", out.EffectiveRatePercent.String())
	assert.Equal(t, "180000", out.BracketCeiling.String())
	assert.Equal(t, "2024-04-20", out.DueDate)
	assert.Nil(t, out.FactorRReductionPercent)

	// Los montos viajan como números JSON.
	assert.Contains(t, string(raw), `"amountDue":4000`)
	assert.NotContains(t, string(raw), "factorRReductionPercent")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestFiscalHandler_DAS_AnexoIII_FatorR(t *testing.T) {
	app := buildFiscalApp("")

	cases := []struct {
		name      string
		factorR   string
		effective string
		amount    string
		reduction string
	}{
		{name: "por debajo del umbral reduce 40%", factorR: "0.20", effective: "8.1", amount: "40500", reduction: "5.4"},
		{name: "por encima del umbral sin reducción", factorR: "0.30", effective: "13.5", amount: "67500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"grossRevenue": 500000, "annex": "III", "competence": "2024-06", "factorR": ` + tc.factorR + `}`
			resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/das", body, "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

			var out dto.DASResponse
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, "13.5", out.NominalRatePercent.String())
			assert.Equal(t, tc.effective, out.EffectiveRatePercent.String())
			assert.Equal(t, tc.amount, out.AmountDue.String())
			assert.Equal(t, "720000", out.BracketCeiling.String())
			if tc.reduction == "" {
				assert.Nil(t, out.FactorRReductionPercent)
			} else {
				require.NotNil(t, out.FactorRReductionPercent)
				assert.Equal(t, tc.reduction, out.FactorRReductionPercent.String())
			}
		})
	}
}

func TestFiscalHandler_DAS_Errores(t *testing.T) {
	app := buildFiscalApp("")

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"ingreso sobre el techo", `{"grossRevenue": 5000000, "annex": "I", "competence": "2024-01"}`, fiber.StatusUnprocessableEntity, "REVENUE_EXCEEDS_LIMIT"},
		{"ingreso cero", `{"grossRevenue": 0, "annex": "I", "competence": "2024-01"}`, fiber.StatusBadRequest, "INVALID_REVENUE"},
		{"anexo desconocido", `{"grossRevenue": 1000, "annex": "VI", "competence": "2024-01"}`, fiber.StatusBadRequest, "UNKNOWN_ANNEX"},
		{"competência inválida", `{"grossRevenue": 1000, "annex": "I", "competence": "2024/01"}`, fiber.StatusBadRequest, "INVALID_COMPETENCE"},
		{"fator R negativo", `{"grossRevenue": 1000, "annex": "V", "competence": "2024-01", "factorR": -0.1}`, fiber.StatusBadRequest, "INVALID_FACTOR_R"},
		{"cuerpo no JSON", `{grossRevenue`, fiber.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/das", tc.body, "")
			assert.Equal(t, tc.status, resp.StatusCode, string(raw))
			assert.Equal(t, tc.code, errorCode(t, raw))
		})
	}
}

func TestFiscalHandler_DAS_TopeExacto(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/das",
		`{"grossRevenue": 4800000.00, "annex": "II", "competence": "2024-12"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out dto.DASResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "4800000", out.BracketCeiling.String())
	assert.Equal(t, "1440000", out.AmountDue.String())
	assert.Equal(t, "2025-01-20", out.DueDate)
}

// Exponentes desmesurados se rechazan antes de comparar contra el techo.
func TestFiscalHandler_ExponenteExtremo_RespondeRapido(t *testing.T) {
	app := buildFiscalApp("")

	cases := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"DAS ingreso 1e5000000", "/api/fiscal/das", `{"grossRevenue": 1e5000000, "annex": "I", "competence": "2024-01"}`, fiber.StatusUnprocessableEntity, "REVENUE_EXCEEDS_LIMIT"},
		{"DAS ingreso 1e-5000000", "/api/fiscal/das", `{"grossRevenue": 1e-5000000, "annex": "I", "competence": "2024-01"}`, fiber.StatusBadRequest, "INVALID_REVENUE"},
		{"DAS fator R 1e-5000000", "/api/fiscal/das", `{"grossRevenue": 1000, "annex": "III", "competence": "2024-01", "factorR": 1e-5000000}`, fiber.StatusBadRequest, "INVALID_FACTOR_R"},
		{"DAS fator R 1e5000000", "/api/fiscal/das", `{"grossRevenue": 1000, "annex": "III", "competence": "2024-01", "factorR": 1e5000000}`, fiber.StatusBadRequest, "INVALID_FACTOR_R"},
		{"IRPJ ingreso 1e5000000", "/api/fiscal/irpj", `{"grossRevenue": 1e5000000, "activityKey": "comercio", "competence": "2024-01"}`, fiber.StatusUnprocessableEntity, "REVENUE_EXCEEDS_LIMIT"},
		{"IRPJ ingreso 1e-5000000", "/api/fiscal/irpj", `{"grossRevenue": 1e-5000000, "activityKey": "comercio", "competence": "2024-01"}`, fiber.StatusBadRequest, "INVALID_REVENUE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Now()
			resp, raw := doJSON(t, app, http.MethodPost, tc.path, tc.body, "")
			assert.Less(t, time.Since(start), time.Second)
			assert.Equal(t, tc.status, resp.StatusCode, string(raw))
			assert.Equal(t, tc.code, errorCode(t, raw))
		})
	}
}

func TestFiscalHandler_Brackets(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/fiscal/simples/brackets?annex=IV", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var tables []dto.BracketTableResponse
	require.NoError(t, json.Unmarshal(raw, &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, "IV", tables[0].Annex)
	assert.Len(t, tables[0].Brackets, 6)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/fiscal/simples/brackets?annex=X", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_ANNEX", errorCode(t, raw))
}

// ── IRPJ ──

func TestFiscalHandler_IRPJRates_Advocacia(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/fiscal/irpj/rates?activityKey=advocacia&year=2024", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out []dto.IRPJRateResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "32", out[0].PresumptionPercent.String())
	assert.Equal(t, "Advocacia, contabilidade, auditoria", out[0].Description)
	assert.Equal(t, "15", out[0].NormalIRPJRatePercent.String())
	assert.Equal(t, 2024, out[0].Year)
}

func TestFiscalHandler_IRPJRates_ActividadInexistente_404(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/fiscal/irpj/rates?activityKey=atividade-inexistente", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ACTIVITY_NOT_FOUND", errorCode(t, raw))
}

func TestFiscalHandler_IRPJRates_ListarTodo(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/fiscal/irpj/rates", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out []dto.IRPJRateResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, len(domfiscal.DefaultPresumptions()))
	for _, r := range out {
		if r.ActivityKey == "servicos_gerais" {
			assert.Equal(t, "Servicos Gerais", r.Title)
		}
	}
}

func TestFiscalHandler_IRPJRates_AnioNoNumerico_400(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/fiscal/irpj/rates?year=dosmil", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", errorCode(t, raw))
}

func TestFiscalHandler_IRPJ_Calcular(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/irpj",
		`{"grossRevenue": 300000, "activityKey": "advocacia", "competence": "2024-03", "periodMonths": 1}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out dto.IRPJResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "96000", out.TaxBase.String())
	assert.Equal(t, "14400", out.BaseTaxAmount.String())
	assert.Equal(t, "20000", out.SurtaxThreshold.String())
	assert.Equal(t, "7600", out.SurtaxAmount.String())
	assert.Equal(t, "22000", out.AmountDue.String())
	assert.Equal(t, "2024-04-20", out.DueDate)
	assert.Equal(t, 1, out.PeriodMonths)
}

func TestFiscalHandler_IRPJ_PeriodoInvalido_400(t *testing.T) {
	app := buildFiscalApp("")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/irpj",
		`{"grossRevenue": 300000, "activityKey": "advocacia", "competence": "2024-03", "periodMonths": 2}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PERIOD", errorCode(t, raw))
}

// ── auth y rutas ──

func TestFiscalHandler_ConJWT_RequiereToken(t *testing.T) {
	app := buildFiscalApp(testJWTSecret)
	body := `{"grossRevenue": 100000, "annex": "I", "competence": "2024-03"}`

	resp, _ := doJSON(t, app, http.MethodPost, "/api/fiscal/das", body, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/fiscal/das", body, bearer(t, testCompanyID))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
}

func TestFiscalHandler_HealthYRutaInexistente(t *testing.T) {
	app := buildFiscalApp(testJWTSecret)

	resp := doGet(t, app, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doGet(t, app, "/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, resp).Code)
}

func TestFiscalHandler_RequestIDDelCliente(t *testing.T) {
	app := buildFiscalApp("")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}
