package fiscal

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/fiscal-api/pkg/logger"
)

// ResultCache caché opcional de resultados ya calculados (implementación en infrastructure/cache).
// Get devuelve false sin error en caso de miss.
type ResultCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// cachedCompute devuelve el resultado de la caché o lo calcula una sola vez por clave
// aunque lleguen peticiones concurrentes. Un fallo de la caché no impide el cálculo.
// Los errores de cálculo no se guardan.
func cachedCompute[T any](
	ctx context.Context,
	cache ResultCache,
	group *singleflight.Group,
	log *logger.Logger,
	key string,
	compute func() (*T, error),
) (*T, error) {
	if cache == nil {
		return compute()
	}

	var hit T
	found, err := cache.Get(ctx, key, &hit)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("caché no disponible, calculando")
	} else if found {
		log.Debug().Str("key", key).Msg("resultado desde caché")
		return &hit, nil
	}

	v, err, _ := group.Do(key, func() (interface{}, error) {
		out, err := compute()
		if err != nil {
			return nil, err
		}
		if err := cache.Set(ctx, key, out); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func tenantKey(companyID string) string {
	if companyID == "" {
		return "anon"
	}
	return companyID
}
