package fiscal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/fiscal-api/internal/application/dto"
	"github.com/jhoicas/fiscal-api/internal/domain"
	domfiscal "github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// IRPJUseCase expone la consulta de tasas y el cálculo del IRPJ del Lucro Presumido.
type IRPJUseCase struct {
	calc          *domfiscal.IRPJCalculator
	presumptions  *domfiscal.PresumptionResolver
	defaultPeriod int
	cache         ResultCache
	group         singleflight.Group
	log           *logger.Logger
	now           func() time.Time
}

// NewIRPJUseCase construye el caso de uso. defaultPeriod (1, 3 o 12) se usa
// cuando la petición no trae periodMonths. cache puede ser nil.
func NewIRPJUseCase(
	presumptions *domfiscal.PresumptionResolver,
	defaultPeriod int,
	cache ResultCache,
	log *logger.Logger,
) *IRPJUseCase {
	return &IRPJUseCase{
		calc:          domfiscal.NewIRPJCalculator(presumptions),
		presumptions:  presumptions,
		defaultPeriod: defaultPeriod,
		cache:         cache,
		log:           log,
		now:           time.Now,
	}
}

// Rates devuelve las tasas para una actividad o, si ActivityKey está vacío,
// para todas las actividades del catálogo (con título legible).
func (uc *IRPJUseCase) Rates(req dto.IRPJRatesRequest) ([]dto.IRPJRateResponse, error) {
	year := req.Year
	if year == 0 {
		year = uc.now().Year()
	}
	if year < 1 || year > 9999 {
		return nil, domain.NewValidationError(domain.CodeInvalidYear, "año %d fuera de rango", year)
	}

	var list []domfiscal.ActivityPresumption
	if strings.TrimSpace(req.ActivityKey) == "" {
		list = uc.presumptions.List()
	} else {
		p, err := uc.presumptions.Resolve(req.ActivityKey)
		if err != nil {
			uc.log.Warn().Str("activity_key", req.ActivityKey).Err(err).Msg("actividad no encontrada")
			return nil, err
		}
		list = []domfiscal.ActivityPresumption{p}
	}

	rates := uc.calc.Rates()
	out := make([]dto.IRPJRateResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.IRPJRateResponse{
			ActivityKey:            p.ActivityKey,
			PresumptionPercent:     p.PresumptionPercent,
			NormalIRPJRatePercent:  rates.NormalRatePercent,
			SurtaxRatePercent:      rates.SurtaxRatePercent,
			SurtaxMonthlyThreshold: rates.SurtaxMonthlyThreshold,
			Year:                   year,
			Description:            p.Description,
			Title:                  p.Title,
		})
	}
	return out, nil
}

// Calculate valida la petición y calcula el IRPJ devido.
func (uc *IRPJUseCase) Calculate(ctx context.Context, companyID string, req dto.IRPJCalculateRequest) (*dto.IRPJResponse, error) {
	in, err := domfiscal.ValidateIRPJ(domfiscal.IRPJRequest{
		GrossRevenue: req.GrossRevenue,
		ActivityKey:  req.ActivityKey,
		Competence:   req.Competence,
		PeriodMonths: req.PeriodMonths,
	}, uc.defaultPeriod)
	if err != nil {
		uc.logRejected(companyID, err)
		return nil, err
	}

	key := fmt.Sprintf("fiscal:irpj:%s:%s:%s:%d:%s",
		tenantKey(companyID), in.Competence, domfiscal.NormalizeActivityKey(in.ActivityKey), in.PeriodMonths, in.GrossRevenue.String())

	return cachedCompute(ctx, uc.cache, &uc.group, uc.log, key, func() (*dto.IRPJResponse, error) {
		res, err := uc.calc.Calculate(in)
		if err != nil {
			uc.logRejected(companyID, err)
			return nil, err
		}
		uc.log.Debug().
			Str("company_id", companyID).
			Str("activity_key", res.ActivityKey).
			Str("competence", res.Competence.String()).
			Int("period_months", res.PeriodMonths).
			Str("amount_due", res.AmountDue.StringFixed(2)).
			Msg("IRPJ calculado")
		return &dto.IRPJResponse{
			ActivityKey:        res.ActivityKey,
			PresumptionPercent: res.PresumptionPercent,
			TaxBase:            res.TaxBase,
			BaseTaxAmount:      res.BaseTaxAmount,
			SurtaxThreshold:    res.SurtaxThreshold,
			SurtaxAmount:       res.SurtaxAmount,
			AmountDue:          res.AmountDue,
			DueDate:            res.DueDate.Format(domfiscal.DateLayout),
			Competence:         res.Competence.String(),
			PeriodMonths:       res.PeriodMonths,
		}, nil
	})
}

func (uc *IRPJUseCase) logRejected(companyID string, err error) {
	ev := uc.log.Warn().Str("company_id", companyID)
	if fe, ok := domain.AsFiscalError(err); ok {
		ev = ev.Str("code", fe.Code)
	}
	ev.Err(err).Msg("IRPJ rechazado")
}
