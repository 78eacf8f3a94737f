package repository

import (
	"context"

	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
)

// FiscalCatalogRepository define el puerto de lectura del catálogo fiscal (DIP).
// La implementación vive en infrastructure. El catálogo se lee una vez al arrancar.
type FiscalCatalogRepository interface {
	// ListBrackets devuelve las faixas ordenadas por anexo y techo.
	ListBrackets(ctx context.Context) ([]fiscal.TaxBracket, error)
	// ListPresumptions devuelve los porcentajes de presunción del IRPJ.
	ListPresumptions(ctx context.Context) ([]fiscal.ActivityPresumption, error)
}
