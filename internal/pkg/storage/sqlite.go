package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persiste as coleções em um único arquivo SQLite, na tabela
// colecoes (chave TEXT PRIMARY KEY, dados BLOB). É o driver padrão: um
// buffet com um único administrador não precisa de servidor de banco.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore abre (ou cria) o arquivo de banco e garante a tabela.
func NewSQLiteStore(caminho string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", caminho)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o arquivo SQLite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no SQLite: %w", err)
	}

	// O acesso é de escritor único; uma conexão evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS colecoes (
		chave TEXT PRIMARY KEY,
		dados BLOB NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao criar a tabela colecoes: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Ler retorna o blob da coleção gravada sob a chave.
func (s *SQLiteStore) Ler(ctx context.Context, chave string) ([]byte, bool, error) {
	var dados []byte
	err := s.db.GetContext(ctx, &dados, `SELECT dados FROM colecoes WHERE chave = ?`, chave)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("falha ao ler a chave %q: %w", chave, err)
	}
	return dados, true, nil
}

// Gravar substitui o blob da chave (upsert).
func (s *SQLiteStore) Gravar(ctx context.Context, chave string, dados []byte) error {
	const query = `
	INSERT INTO colecoes (chave, dados) VALUES (?, ?)
	ON CONFLICT (chave) DO UPDATE SET dados = excluded.dados`
	if _, err := s.db.ExecContext(ctx, query, chave, dados); err != nil {
		return fmt.Errorf("falha ao gravar a chave %q: %w", chave, err)
	}
	return nil
}

// Close fecha o arquivo de banco.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
