// Package fiscal contiene el motor de cálculo de obligaciones fiscales brasileñas:
// DAS del Simples Nacional (tablas progresivas por anexo + Fator R) e IRPJ del
// Lucro Presumido (tabla de presunción). Todas las funciones son puras y las
// tablas son inmutables después de construir el Catalog, por lo que es seguro
// usarlas desde varias goroutines sin coordinación.
package fiscal

import (
	"strings"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Annex es el anexo del Simples Nacional (clase de actividad económica).
// Enumeración cerrada: todo switch sobre Annex debe cubrir los cinco valores
// y tratar el default como error.
type Annex uint8

const (
	AnnexI   Annex = iota + 1 // Comércio
	AnnexII                   // Indústria
	AnnexIII                  // Serviços (locação de bens móveis, instalação, contabilidade...)
	AnnexIV                   // Serviços (construção civil, vigilância, limpeza, advocacia)
	AnnexV                    // Serviços (auditoria, tecnologia, engenharia, publicidade...)
)

// Annexes devuelve los cinco anexos en orden.
func Annexes() []Annex {
	return []Annex{AnnexI, AnnexII, AnnexIII, AnnexIV, AnnexV}
}

// String devuelve el numeral romano usado en la API ("I".."V"); vacío si no es válido.
func (a Annex) String() string {
	switch a {
	case AnnexI:
		return "I"
	case AnnexII:
		return "II"
	case AnnexIII:
		return "III"
	case AnnexIV:
		return "IV"
	case AnnexV:
		return "V"
	default:
		return ""
	}
}

// Valid informa si a es uno de los cinco anexos.
func (a Annex) Valid() bool {
	return a.String() != ""
}

// Description devuelve la descripción de la clase de actividad del anexo.
func (a Annex) Description() string {
	switch a {
	case AnnexI:
		return "Comércio"
	case AnnexII:
		return "Indústria"
	case AnnexIII:
		return "Serviços - Anexo III"
	case AnnexIV:
		return "Serviços - Anexo IV"
	case AnnexV:
		return "Serviços - Anexo V"
	default:
		return ""
	}
}

// ParseAnnex convierte "I".."V" (sin distinguir mayúsculas) en Annex.
func ParseAnnex(s string) (Annex, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return AnnexI, nil
	case "II":
		return AnnexII, nil
	case "III":
		return AnnexIII, nil
	case "IV":
		return AnnexIV, nil
	case "V":
		return AnnexV, nil
	default:
		return 0, domain.NewLookupError(domain.CodeUnknownAnnex, "anexo %q desconocido: se espera I, II, III, IV o V", s)
	}
}

// factorRReduction devuelve el factor de redução del Fator R para el anexo.
// ok es false para los anexos que no admiten la reducción (I y II).
func (a Annex) factorRReduction() (factor decimal.Decimal, ok bool, err error) {
	switch a {
	case AnnexI, AnnexII:
		return decimal.Zero, false, nil
	case AnnexIII:
		return reductionAnnexIII, true, nil
	case AnnexIV:
		return reductionAnnexIV, true, nil
	case AnnexV:
		return reductionAnnexV, true, nil
	default:
		return decimal.Zero, false, domain.NewLookupError(domain.CodeUnknownAnnex, "anexo %d desconocido", uint8(a))
	}
}

// SupportsFactorR informa si el anexo admite la reducción por Fator R (III, IV y V).
func (a Annex) SupportsFactorR() bool {
	_, ok, err := a.factorRReduction()
	return err == nil && ok
}
