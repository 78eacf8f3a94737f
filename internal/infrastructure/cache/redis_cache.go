package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/fiscal-api/pkg/config"
)

// ResultCache guarda en Redis resultados de cálculos fiscales serializados en JSON.
// Si Redis no responde al arrancar el cliente queda en nil y la caché se
// desactiva: Get siempre es miss y Set no hace nada.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache conecta con Redis y comprueba la conexión.
func NewResultCache(cfg config.RedisConfig) *ResultCache {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return &ResultCache{client: nil, ttl: ttl}
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get lee key y la decodifica en dst. Devuelve false sin error si no existe.
func (c *ResultCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// Entrada ilegible: se trata como miss y se descarta.
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// Set guarda value bajo key con el TTL configurado.
func (c *ResultCache) Set(ctx context.Context, key string, value any) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close cierra la conexión con Redis.
func (c *ResultCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsAvailable informa si la caché está activa.
func (c *ResultCache) IsAvailable() bool {
	return c.client != nil
}
