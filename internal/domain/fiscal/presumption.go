package fiscal

import (
	"strings"
	"unicode"

	"github.com/jhoicas/fiscal-api/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ActivityPresumption porcentaje de presunción del lucro para una actividad.
// Title solo se completa en el modo "listar todo".
type ActivityPresumption struct {
	ActivityKey        string
	PresumptionPercent decimal.Decimal
	Description        string
	Title              string
}

// NormalizeActivityKey normaliza un identificador de actividad de forma
// independiente del locale: quita acentos ("serviços" → "servicos"), pasa
// A-Z a minúsculas y reemplaza cualquier carácter que no sea a-z por "_".
func NormalizeActivityKey(s string) string {
	// El Transformer guarda estado: se crea uno por llamada.
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ActivityTitle convierte una clave en título legible: "_" → espacio y cada palabra capitalizada.
func ActivityTitle(key string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(key, "_", " "))
}

// PresumptionResolver resuelve la presunción del IRPJ por actividad.
type PresumptionResolver struct {
	catalog *Catalog
}

// NewPresumptionResolver construye el resolver sobre el catálogo.
func NewPresumptionResolver(catalog *Catalog) *PresumptionResolver {
	return &PresumptionResolver{catalog: catalog}
}

// Resolve normaliza activityKey y lo busca en el catálogo.
func (r *PresumptionResolver) Resolve(activityKey string) (ActivityPresumption, error) {
	key := NormalizeActivityKey(activityKey)
	p, ok := r.catalog.presumptions[key]
	if !ok {
		return ActivityPresumption{}, domain.NewLookupError(domain.CodeActivityNotFound, "actividad %q no encontrada en la tabla de presunción", activityKey)
	}
	return p, nil
}

// List devuelve todas las actividades ordenadas por clave, con Title completo.
func (r *PresumptionResolver) List() []ActivityPresumption {
	out := make([]ActivityPresumption, 0, len(r.catalog.keys))
	for _, k := range r.catalog.keys {
		p := r.catalog.presumptions[k]
		p.Title = ActivityTitle(k)
		out = append(out, p)
	}
	return out
}
