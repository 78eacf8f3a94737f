package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fiscal-api/internal/domain/fiscal"
	"github.com/jhoicas/fiscal-api/internal/domain/repository"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Asegura que CatalogRepo implementa repository.FiscalCatalogRepository.
var _ repository.FiscalCatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lectura del catálogo fiscal (faixas del Simples y presunciones del IRPJ) sobre PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador de lectura del catálogo.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Migrate aplica en orden los scripts embebidos en migrations/. Son idempotentes.
func (r *CatalogRepo) Migrate(ctx context.Context) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("leer migraciones: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		// Sin argumentos pgx usa el protocolo simple: admite varias sentencias.
		if _, err := r.pool.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}

// ListBrackets devuelve las faixas ordenadas por anexo y orden.
func (r *CatalogRepo) ListBrackets(ctx context.Context) ([]fiscal.TaxBracket, error) {
	query := `
		SELECT annex, revenue_ceiling, nominal_rate_percent
		FROM simples_brackets
		ORDER BY annex, bracket_order`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("list brackets: tabla simples_brackets inexistente (migración no aplicada): %w", err)
		}
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	defer rows.Close()

	var list []fiscal.TaxBracket
	for rows.Next() {
		var (
			annex string
			b     fiscal.TaxBracket
		)
		if err := rows.Scan(&annex, &b.RevenueCeiling, &b.NominalRatePercent); err != nil {
			return nil, fmt.Errorf("scan bracket: %w", err)
		}
		b.Annex, err = fiscal.ParseAnnex(annex)
		if err != nil {
			return nil, fmt.Errorf("bracket con anexo %q: %w", annex, err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	return list, nil
}

// ListPresumptions devuelve los porcentajes de presunción ordenados por clave.
func (r *CatalogRepo) ListPresumptions(ctx context.Context) ([]fiscal.ActivityPresumption, error) {
	query := `
		SELECT activity_key, presumption_percent, description
		FROM irpj_presumptions
		ORDER BY activity_key`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("list presumptions: tabla irpj_presumptions inexistente (migración no aplicada): %w", err)
		}
		return nil, fmt.Errorf("list presumptions: %w", err)
	}
	defer rows.Close()

	var list []fiscal.ActivityPresumption
	for rows.Next() {
		var p fiscal.ActivityPresumption
		if err := rows.Scan(&p.ActivityKey, &p.PresumptionPercent, &p.Description); err != nil {
			return nil, fmt.Errorf("scan presumption: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presumptions: %w", err)
	}
	return list, nil
}
