package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Usamos o driver pq para PostgreSQL
	_ "github.com/lib/pq"
)

// PostgresStore persiste as coleções na tabela colecoes de um PostgreSQL.
// A tabela é criada pela migração goose em sql/ (ver cmd/migrate).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore inicializa e configura o pool de conexões com o PostgreSQL.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	// 1. Abrir a Conexão
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// 2. Testar a Conexão Imediatamente
	// Garante que as credenciais e o servidor estão corretos
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// 3. Configuração do Connection Pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Ler retorna o blob da coleção gravada sob a chave.
func (s *PostgresStore) Ler(ctx context.Context, chave string) ([]byte, bool, error) {
	var dados []byte
	row := s.db.QueryRowContext(ctx, `SELECT dados FROM colecoes WHERE chave = $1`, chave)
	err := row.Scan(&dados)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("falha ao ler a chave %q: %w", chave, err)
	}
	return dados, true, nil
}

// Gravar substitui o blob da chave (upsert).
func (s *PostgresStore) Gravar(ctx context.Context, chave string, dados []byte) error {
	const query = `
	INSERT INTO colecoes (chave, dados) VALUES ($1, $2)
	ON CONFLICT (chave) DO UPDATE SET dados = EXCLUDED.dados, atualizado_em = now()`
	if _, err := s.db.ExecContext(ctx, query, chave, dados); err != nil {
		return fmt.Errorf("falha ao gravar a chave %q: %w", chave, err)
	}
	return nil
}

// DB expõe a conexão subjacente (usada pelo runner de migrações).
func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// Close fecha o pool de conexões.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
