package fiscal

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jhoicas/fiscal-api/internal/domain"
)

// DueDay es el día del mes siguiente a la competência en que vence la obligación.
const DueDay = 20

// DateLayout formato de fechas en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var competencePattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Competence es el período fiscal de referencia (año-mes) de una obligación.
type Competence struct {
	Year  int
	Month time.Month
}

// NewCompetence valida año y mes (1..12).
func NewCompetence(year int, month time.Month) (Competence, error) {
	if year < 1 || year > 9999 {
		return Competence{}, domain.NewValidationError(domain.CodeInvalidCompetence, "año %d fuera de rango", year)
	}
	if month < time.January || month > time.December {
		return Competence{}, domain.NewValidationError(domain.CodeInvalidCompetence, "mes %d fuera de rango [1,12]", int(month))
	}
	return Competence{Year: year, Month: month}, nil
}

// ParseCompetence interpreta "YYYY-MM".
func ParseCompetence(s string) (Competence, error) {
	m := competencePattern.FindStringSubmatch(s)
	if m == nil {
		return Competence{}, domain.NewValidationError(domain.CodeInvalidCompetence, "competência %q inválida: formato esperado YYYY-MM", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return NewCompetence(year, time.Month(month))
}

// String formatea la competência como "YYYY-MM".
func (c Competence) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// Valid informa si la competência tiene año y mes en rango.
func (c Competence) Valid() bool {
	_, err := NewCompetence(c.Year, c.Month)
	return err == nil
}

// DueDate devuelve el vencimiento: día 20 del mes siguiente (diciembre pasa a enero del año siguiente).
func (c Competence) DueDate() time.Time {
	// time.Date normaliza el mes 13 al enero del año siguiente.
	return time.Date(c.Year, c.Month+1, DueDay, 0, 0, 0, 0, time.UTC)
}

// DueDate es la forma funcional de Competence.DueDate.
func DueDate(c Competence) time.Time {
	return c.DueDate()
}
