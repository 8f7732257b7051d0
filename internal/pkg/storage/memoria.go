package storage

import (
	"context"
	"sync"
)

// MemoriaStore é a implementação em memória da interface Store.
// É usada nos testes e no driver "memoria" (estado descartado ao encerrar).
type MemoriaStore struct {
	mu    sync.RWMutex
	dados map[string][]byte
}

// NewMemoriaStore cria um Store em memória vazio.
func NewMemoriaStore() *MemoriaStore {
	return &MemoriaStore{dados: make(map[string][]byte)}
}

// Ler retorna o blob gravado sob a chave, se existir.
func (s *MemoriaStore) Ler(_ context.Context, chave string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dados, ok := s.dados[chave]
	if !ok {
		return nil, false, nil
	}

	// O chamador não deve enxergar mutações posteriores ao slice interno.
	copia := make([]byte, len(dados))
	copy(copia, dados)
	return copia, true, nil
}

// Gravar substitui o conteúdo da chave.
func (s *MemoriaStore) Gravar(_ context.Context, chave string, dados []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copia := make([]byte, len(dados))
	copy(copia, dados)
	s.dados[chave] = copia
	return nil
}

// Semear grava um blob bruto diretamente, útil em testes para simular
// conteúdo corrompido ou pré-existente.
func (s *MemoriaStore) Semear(chave string, dados []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dados[chave] = dados
}
