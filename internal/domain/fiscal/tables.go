package fiscal

import "github.com/shopspring/decimal"

// Límites y tasas legales vigentes (LC 123/2006 con redacción de la LC 155/2016; Lei 9.249/1995).
var (
	// SimplesNacionalCeiling es el techo de ingreso bruto del Simples Nacional.
	SimplesNacionalCeiling = decimal.RequireFromString("4800000.00")

	// MaxIRPJRevenue límite numérico razonable para el ingreso del IRPJ.
	MaxIRPJRevenue = decimal.RequireFromString("999999999999.99")

	factorRThreshold  = decimal.RequireFromString("0.28")
	reductionAnnexIII = decimal.RequireFromString("0.40")
	reductionAnnexIV  = decimal.RequireFromString("0.32")
	reductionAnnexV   = decimal.RequireFromString("0.25")

	irpjNormalRatePercent      = decimal.NewFromInt(15)
	irpjSurtaxRatePercent      = decimal.NewFromInt(10)
	irpjSurtaxMonthlyThreshold = decimal.RequireFromString("20000.00")

	hundred = decimal.NewFromInt(100)
)

// FactorRThreshold devuelve el umbral del Fator R (0.28) por debajo del cual se aplica la reducción.
func FactorRThreshold() decimal.Decimal { return factorRThreshold }

// Techos de las seis faixas, comunes a los cinco anexos.
var bracketCeilings = [6]string{"180000.00", "360000.00", "720000.00", "1800000.00", "3600000.00", "4800000.00"}

// Alíquotas nominales (%) por anexo, en el orden de bracketCeilings.
var nominalRates = map[Annex][6]string{
	AnnexI:   {"4.0", "7.3", "9.5", "10.7", "14.3", "19.0"},
	AnnexII:  {"4.5", "7.8", "10.0", "11.2", "14.7", "30.0"},
	AnnexIII: {"6.0", "11.2", "13.5", "16.0", "21.0", "33.0"},
	AnnexIV:  {"4.5", "9.0", "10.2", "14.0", "22.0", "33.0"},
	AnnexV:   {"15.5", "18.0", "19.5", "20.5", "23.0", "30.5"},
}

// DefaultBrackets devuelve las tablas vigentes del Simples Nacional, ordenadas por anexo y techo.
func DefaultBrackets() []TaxBracket {
	out := make([]TaxBracket, 0, len(nominalRates)*len(bracketCeilings))
	for _, a := range Annexes() {
		rates := nominalRates[a]
		for i, ceiling := range bracketCeilings {
			out = append(out, TaxBracket{
				Annex:              a,
				RevenueCeiling:     decimal.RequireFromString(ceiling),
				NominalRatePercent: decimal.RequireFromString(rates[i]),
			})
		}
	}
	return out
}

// DefaultPresumptions devuelve la tabla de presunción del IRPJ (art. 15 da Lei 9.249/1995).
func DefaultPresumptions() []ActivityPresumption {
	p := func(key, percent, description string) ActivityPresumption {
		return ActivityPresumption{
			ActivityKey:        key,
			PresumptionPercent: decimal.RequireFromString(percent),
			Description:        description,
		}
	}
	return []ActivityPresumption{
		p("revenda_combustiveis", "1.6", "Revenda de combustíveis para consumo"),
		p("comercio", "8.0", "Comércio e indústria"),
		p("industria", "8.0", "Comércio e indústria"),
		p("transporte_cargas", "8.0", "Transporte de cargas"),
		p("servicos_hospitalares", "8.0", "Serviços hospitalares e de auxílio diagnóstico"),
		p("construcao_civil", "8.0", "Construção civil por empreitada com fornecimento de materiais"),
		p("atividade_rural", "8.0", "Atividade rural"),
		p("transporte_passageiros", "16.0", "Transporte de passageiros"),
		p("instituicoes_financeiras", "16.0", "Instituições financeiras e equiparadas"),
		p("servicos_pequeno_porte", "16.0", "Prestação de serviços com receita anual até R$ 120.000,00"),
		p("servicos_gerais", "32.0", "Prestação de serviços em geral"),
		p("advocacia", "32.0", "Advocacia, contabilidade, auditoria"),
		p("contabilidade", "32.0", "Advocacia, contabilidade, auditoria"),
		p("auditoria", "32.0", "Advocacia, contabilidade, auditoria"),
		p("consultoria", "32.0", "Consultoria e assessoria"),
		p("engenharia", "32.0", "Engenharia e arquitetura"),
		p("intermediacao_negocios", "32.0", "Intermediação de negócios"),
		p("administracao_imoveis", "32.0", "Administração, locação ou cessão de bens imóveis"),
		p("factoring", "32.0", "Factoring"),
	}
}
