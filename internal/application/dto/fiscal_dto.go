package dto

import "github.com/shopspring/decimal"

// DASCalculateRequest body para POST /api/fiscal/das.
type DASCalculateRequest struct {
	GrossRevenue decimal.Decimal  `json:"grossRevenue"`
	Annex        string           `json:"annex"`      // I | II | III | IV | V
	Competence   string           `json:"competence"` // YYYY-MM
	FactorR      *decimal.Decimal `json:"factorR,omitempty"`
}

// DASResponse resultado del DAS.
type DASResponse struct {
	AmountDue               decimal.Decimal  `json:"amountDue"`
	EffectiveRatePercent    decimal.Decimal  `json:"effectiveRatePercent"`
	NominalRatePercent      decimal.Decimal  `json:"nominalRatePercent"`
	Annex                   string           `json:"annex"`
	Competence              string           `json:"competence"`
	DueDate                 string           `json:"dueDate"` // YYYY-MM-DD
	FactorRReductionPercent *decimal.Decimal `json:"factorRReductionPercent,omitempty"`
	BracketCeiling          decimal.Decimal  `json:"bracketCeiling"`
}

// BracketResponse una faixa de la tabla del Simples Nacional.
type BracketResponse struct {
	Order              int             `json:"order"`
	RevenueCeiling     decimal.Decimal `json:"revenueCeiling"`
	NominalRatePercent decimal.Decimal `json:"nominalRatePercent"`
}

// BracketTableResponse tabla completa de un anexo para GET /api/fiscal/simples/brackets.
type BracketTableResponse struct {
	Annex           string            `json:"annex"`
	Description     string            `json:"description"`
	SupportsFactorR bool              `json:"supportsFactorR"`
	Brackets        []BracketResponse `json:"brackets"`
}

// IRPJRatesRequest query de GET /api/fiscal/irpj/rates. ActivityKey vacío = listar todo.
type IRPJRatesRequest struct {
	ActivityKey string `query:"activityKey"`
	Year        int    `query:"year"`
}

// IRPJRateResponse tasas del IRPJ para una actividad.
type IRPJRateResponse struct {
	ActivityKey            string          `json:"activityKey"`
	PresumptionPercent     decimal.Decimal `json:"presumptionPercent"`
	NormalIRPJRatePercent  decimal.Decimal `json:"normalIrpjRatePercent"`
	SurtaxRatePercent      decimal.Decimal `json:"surtaxRatePercent"`
	SurtaxMonthlyThreshold decimal.Decimal `json:"surtaxMonthlyThreshold"`
	Year                   int             `json:"year"`
	Description            string          `json:"description"`
	Title                  string          `json:"title,omitempty"` // solo en modo listar todo
}

// IRPJCalculateRequest body para POST /api/fiscal/irpj.
// PeriodMonths: 1 mensual, 3 trimestral, 12 anual; 0 = valor por defecto del servidor.
type IRPJCalculateRequest struct {
	GrossRevenue decimal.Decimal `json:"grossRevenue"`
	ActivityKey  string          `json:"activityKey"`
	Competence   string          `json:"competence"`
	PeriodMonths int             `json:"periodMonths,omitempty"`
}

// IRPJResponse resultado del IRPJ.
type IRPJResponse struct {
	ActivityKey        string          `json:"activityKey"`
	PresumptionPercent decimal.Decimal `json:"presumptionPercent"`
	TaxBase            decimal.Decimal `json:"taxBase"`
	BaseTaxAmount      decimal.Decimal `json:"baseTaxAmount"`
	SurtaxThreshold    decimal.Decimal `json:"surtaxThreshold"`
	SurtaxAmount       decimal.Decimal `json:"surtaxAmount"`
	AmountDue          decimal.Decimal `json:"amountDue"`
	DueDate            string          `json:"dueDate"`
	Competence         string          `json:"competence"`
	PeriodMonths       int             `json:"periodMonths"`
}
