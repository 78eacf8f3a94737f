package fiscal

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/fiscal-api/internal/application/dto"
	"github.com/jhoicas/fiscal-api/internal/domain"
	domfiscal "github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// DASUseCase expone el cálculo del DAS y la consulta de tablas del Simples Nacional.
type DASUseCase struct {
	calc  *domfiscal.DASCalculator
	cache ResultCache // nil = sin caché
	group singleflight.Group
	log   *logger.Logger
}

// NewDASUseCase construye el caso de uso. cache puede ser nil.
func NewDASUseCase(calc *domfiscal.DASCalculator, cache ResultCache, log *logger.Logger) *DASUseCase {
	return &DASUseCase{calc: calc, cache: cache, log: log}
}

// Calculate valida la petición y calcula el DAS. Los errores del dominio se
// devuelven sin cambios (*domain.FiscalError).
func (uc *DASUseCase) Calculate(ctx context.Context, companyID string, req dto.DASCalculateRequest) (*dto.DASResponse, error) {
	in, err := domfiscal.ValidateDAS(domfiscal.DASRequest{
		GrossRevenue: req.GrossRevenue,
		Annex:        req.Annex,
		Competence:   req.Competence,
		FactorR:      req.FactorR,
	})
	if err != nil {
		uc.logRejected(companyID, err)
		return nil, err
	}

	return cachedCompute(ctx, uc.cache, &uc.group, uc.log, dasCacheKey(companyID, in), func() (*dto.DASResponse, error) {
		res, err := uc.calc.Calculate(in)
		if err != nil {
			uc.logRejected(companyID, err)
			return nil, err
		}
		uc.log.Debug().
			Str("company_id", companyID).
			Str("annex", res.Annex.String()).
			Str("competence", res.Competence.String()).
			Str("effective_rate", res.EffectiveRatePercent.String()).
			Str("amount_due", res.AmountDue.StringFixed(2)).
			Msg("DAS calculado")
		return toDASResponse(res), nil
	})
}

// Brackets devuelve la tabla de un anexo, o de los cinco si annex está vacío.
func (uc *DASUseCase) Brackets(annex string) ([]dto.BracketTableResponse, error) {
	annexes := domfiscal.Annexes()
	if annex != "" {
		a, err := domfiscal.ParseAnnex(annex)
		if err != nil {
			return nil, err
		}
		annexes = []domfiscal.Annex{a}
	}

	out := make([]dto.BracketTableResponse, 0, len(annexes))
	for _, a := range annexes {
		list, err := uc.calc.Catalog().Brackets(a)
		if err != nil {
			return nil, err
		}
		table := dto.BracketTableResponse{
			Annex:           a.String(),
			Description:     a.Description(),
			SupportsFactorR: a.SupportsFactorR(),
			Brackets:        make([]dto.BracketResponse, 0, len(list)),
		}
		for i, b := range list {
			table.Brackets = append(table.Brackets, dto.BracketResponse{
				Order:              i + 1,
				RevenueCeiling:     b.RevenueCeiling,
				NominalRatePercent: b.NominalRatePercent,
			})
		}
		out = append(out, table)
	}
	return out, nil
}

func (uc *DASUseCase) logRejected(companyID string, err error) {
	ev := uc.log.Warn().Str("company_id", companyID)
	if fe, ok := domain.AsFiscalError(err); ok {
		ev = ev.Str("code", fe.Code)
	}
	ev.Err(err).Msg("DAS rechazado")
}

func dasCacheKey(companyID string, in domfiscal.CalculationInput) string {
	factorR := "-"
	if r, ok := in.FactorR.Get(); ok {
		factorR = r.String()
	}
	return fmt.Sprintf("fiscal:das:%s:%s:%s:%s:%s",
		tenantKey(companyID), in.Competence, in.Annex, in.GrossRevenue.String(), factorR)
}

func toDASResponse(res domfiscal.DASResult) *dto.DASResponse {
	return &dto.DASResponse{
		AmountDue:               res.AmountDue,
		EffectiveRatePercent:    res.EffectiveRatePercent,
		NominalRatePercent:      res.NominalRatePercent,
		Annex:                   res.Annex.String(),
		Competence:              res.Competence.String(),
		DueDate:                 res.DueDate.Format(domfiscal.DateLayout),
		FactorRReductionPercent: res.FactorRReductionPercent,
		BracketCeiling:          res.Bracket.RevenueCeiling,
	}
}
