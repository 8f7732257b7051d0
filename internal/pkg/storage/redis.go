package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore persiste cada coleção como um valor simples no Redis, sem TTL.
// Útil quando o painel roda em container sem volume persistente próprio.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore cria o cliente e valida a conexão com um PING.
func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // Endereço do Redis (e.g., "localhost:6379")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", addr, err)
	}

	return &RedisStore{rdb: rdb}, nil
}

// Ler retorna o blob da coleção gravada sob a chave.
func (s *RedisStore) Ler(ctx context.Context, chave string) ([]byte, bool, error) {
	dados, err := s.rdb.Get(ctx, chave).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("falha ao ler a chave %q: %w", chave, err)
	}
	return dados, true, nil
}

// Gravar substitui o valor da chave, sem expiração.
func (s *RedisStore) Gravar(ctx context.Context, chave string, dados []byte) error {
	if err := s.rdb.Set(ctx, chave, dados, 0).Err(); err != nil {
		return fmt.Errorf("falha ao gravar a chave %q: %w", chave, err)
	}
	return nil
}

// Close encerra o cliente Redis.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
