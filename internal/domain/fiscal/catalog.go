package fiscal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jhoicas/fiscal-api/internal/domain"
)

// Catalog agrupa las tablas estáticas del motor: faixas del Simples Nacional por
// anexo y tabla de presunción del IRPJ. Se construye una vez al arrancar y no se
// modifica después.
type Catalog struct {
	brackets     map[Annex][]TaxBracket
	presumptions map[string]ActivityPresumption
	keys         []string // claves de presumptions ordenadas
}

// NewCatalog valida y copia las tablas. Reglas:
//   - cada anexo tiene al menos una faixa, con techos estrictamente crecientes
//     y tasas nominales en [0,100);
//   - el último techo de cada anexo es exactamente SimplesNacionalCeiling;
//   - cada actividad tiene clave normalizada única y presunción en (0,100].
//
// Cualquier violación se considera tabla corrupta (domain.ErrInternal).
func NewCatalog(brackets []TaxBracket, presumptions []ActivityPresumption) (*Catalog, error) {
	c := &Catalog{
		brackets:     make(map[Annex][]TaxBracket, len(Annexes())),
		presumptions: make(map[string]ActivityPresumption, len(presumptions)),
	}
	var errs []error

	for _, b := range brackets {
		if !b.Annex.Valid() {
			errs = append(errs, fmt.Errorf("faixa con anexo desconocido %d", uint8(b.Annex)))
			continue
		}
		c.brackets[b.Annex] = append(c.brackets[b.Annex], b)
	}
	for _, a := range Annexes() {
		errs = append(errs, checkBrackets(a, c.brackets[a])...)
	}

	for _, p := range presumptions {
		switch {
		case p.ActivityKey == "" || NormalizeActivityKey(p.ActivityKey) != p.ActivityKey:
			errs = append(errs, fmt.Errorf("actividad %q: clave no normalizada", p.ActivityKey))
		case !p.PresumptionPercent.IsPositive() || p.PresumptionPercent.GreaterThan(hundred):
			errs = append(errs, fmt.Errorf("actividad %q: presunción %s fuera de (0,100]", p.ActivityKey, p.PresumptionPercent))
		default:
			if _, dup := c.presumptions[p.ActivityKey]; dup {
				errs = append(errs, fmt.Errorf("actividad %q duplicada", p.ActivityKey))
				continue
			}
			p.Title = ""
			c.presumptions[p.ActivityKey] = p
			c.keys = append(c.keys, p.ActivityKey)
		}
	}
	if len(c.presumptions) == 0 {
		errs = append(errs, errors.New("tabla de presunción vacía"))
	}
	sort.Strings(c.keys)

	if len(errs) > 0 {
		return nil, domain.NewInternalError(domain.CodeCorruptedCatalog, "catálogo fiscal inválido: %v", errors.Join(errs...))
	}
	return c, nil
}

func checkBrackets(a Annex, list []TaxBracket) []error {
	if len(list) == 0 {
		return []error{fmt.Errorf("anexo %s sin faixas", a)}
	}
	var errs []error
	for i, b := range list {
		if b.NominalRatePercent.IsNegative() || b.NominalRatePercent.GreaterThanOrEqual(hundred) {
			errs = append(errs, fmt.Errorf("anexo %s faixa %d: alíquota %s fuera de [0,100)", a, i+1, b.NominalRatePercent))
		}
		if i == 0 {
			if !b.RevenueCeiling.IsPositive() {
				errs = append(errs, fmt.Errorf("anexo %s faixa 1: techo %s no positivo", a, b.RevenueCeiling))
			}
			continue
		}
		if !b.RevenueCeiling.GreaterThan(list[i-1].RevenueCeiling) {
			errs = append(errs, fmt.Errorf("anexo %s faixa %d: techo %s no es mayor que %s", a, i+1, b.RevenueCeiling, list[i-1].RevenueCeiling))
		}
	}
	if last := list[len(list)-1].RevenueCeiling; !last.Equal(SimplesNacionalCeiling) {
		errs = append(errs, fmt.Errorf("anexo %s: último techo %s distinto de %s", a, last, SimplesNacionalCeiling))
	}
	return errs
}

// DefaultCatalog construye el catálogo con las tablas vigentes embebidas.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultBrackets(), DefaultPresumptions())
	if err != nil {
		panic("fiscal: tablas embebidas inválidas: " + err.Error())
	}
	return c
}

// Brackets devuelve una copia de la tabla del anexo en orden ascendente de techo.
func (c *Catalog) Brackets(annex Annex) ([]TaxBracket, error) {
	list, ok := c.brackets[annex]
	if !ok {
		return nil, domain.NewLookupError(domain.CodeUnknownAnnex, "anexo %d desconocido", uint8(annex))
	}
	out := make([]TaxBracket, len(list))
	copy(out, list)
	return out, nil
}
