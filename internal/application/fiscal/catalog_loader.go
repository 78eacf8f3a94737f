package fiscal

import (
	"context"

	"github.com/jhoicas/fiscal-api/internal/domain"
	domfiscal "github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	"github.com/jhoicas/fiscal-api/internal/domain/repository"
	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// LoadCatalog construye el catálogo fiscal. Con repo nil se usan las tablas
// embebidas; si no, se leen de la base y se validan. Cualquier fallo es
// domain.ErrInternal: el servicio no debe arrancar con un catálogo dudoso.
func LoadCatalog(ctx context.Context, repo repository.FiscalCatalogRepository, log *logger.Logger) (*domfiscal.Catalog, error) {
	if repo == nil {
		log.Info().Str("source", "embedded").Msg("catálogo fiscal cargado")
		return domfiscal.DefaultCatalog(), nil
	}

	brackets, err := repo.ListBrackets(ctx)
	if err != nil {
		return nil, domain.NewInternalError(domain.CodeCorruptedCatalog, "leer faixas del Simples: %v", err)
	}
	presumptions, err := repo.ListPresumptions(ctx)
	if err != nil {
		return nil, domain.NewInternalError(domain.CodeCorruptedCatalog, "leer presunciones del IRPJ: %v", err)
	}

	catalog, err := domfiscal.NewCatalog(brackets, presumptions)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", "postgres").
		Int("brackets", len(brackets)).
		Int("activities", len(presumptions)).
		Msg("catálogo fiscal cargado")
	return catalog, nil
}
