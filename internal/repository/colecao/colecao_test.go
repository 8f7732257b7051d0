package colecao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// registro é o tipo mínimo usado para exercitar a coleção genérica.
type registro struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func novaColecao(store storage.Store) *colecao.Colecao[registro] {
	return colecao.New(store, "teste_registros", func(r registro) string { return r.ID }, logger.NewLogger("error"))
}

// TestTodos_ChaveAusente testa que uma chave nunca gravada resulta em coleção vazia, sem erro.
func TestTodos_ChaveAusente(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())

	registros, err := c.Todos(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, registros)
	assert.Len(t, registros, 0)
}

// TestAnexar_RoundTrip testa a gravação e releitura da coleção completa.
func TestAnexar_RoundTrip(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())
	ctx := context.Background()

	assert.NoError(t, c.Anexar(ctx, registro{ID: "a", Nome: "Primeiro"}))
	assert.NoError(t, c.Anexar(ctx, registro{ID: "b", Nome: "Segundo"}))

	registros, err := c.Todos(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []registro{{ID: "a", Nome: "Primeiro"}, {ID: "b", Nome: "Segundo"}}, registros)

	r, encontrado, err := c.PorID(ctx, "b")
	assert.NoError(t, err)
	assert.True(t, encontrado)
	assert.Equal(t, "Segundo", r.Nome)
}

// TestSubstituir_Existente testa a troca em posição do registro de mesmo ID.
func TestSubstituir_Existente(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())
	ctx := context.Background()

	assert.NoError(t, c.Anexar(ctx, registro{ID: "a", Nome: "Antes"}))
	assert.NoError(t, c.Anexar(ctx, registro{ID: "b", Nome: "Intacto"}))

	encontrado, err := c.Substituir(ctx, registro{ID: "a", Nome: "Depois"})
	assert.NoError(t, err)
	assert.True(t, encontrado)

	registros, err := c.Todos(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []registro{{ID: "a", Nome: "Depois"}, {ID: "b", Nome: "Intacto"}}, registros)
}

// TestSubstituir_NaoEncontrado testa que ID desconhecido não grava nada e retorna false.
func TestSubstituir_NaoEncontrado(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())
	ctx := context.Background()

	assert.NoError(t, c.Anexar(ctx, registro{ID: "a", Nome: "Único"}))

	encontrado, err := c.Substituir(ctx, registro{ID: "x", Nome: "Fantasma"})
	assert.NoError(t, err)
	assert.False(t, encontrado)

	registros, err := c.Todos(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []registro{{ID: "a", Nome: "Único"}}, registros)
}

// TestRemover_Sinal testa o booleano de remoção efetiva.
func TestRemover_Sinal(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())
	ctx := context.Background()

	assert.NoError(t, c.Anexar(ctx, registro{ID: "a"}))
	assert.NoError(t, c.Anexar(ctx, registro{ID: "b"}))

	removido, err := c.Remover(ctx, "a")
	assert.NoError(t, err)
	assert.True(t, removido)

	// Segunda remoção do mesmo ID: nada encolhe, sem erro.
	removido, err = c.Remover(ctx, "a")
	assert.NoError(t, err)
	assert.False(t, removido)

	registros, err := c.Todos(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []registro{{ID: "b"}}, registros)
}

// TestTodos_JSONCorrompido testa a leitura tolerante: conteúdo inválido vira
// coleção vazia e a próxima gravação restabelece a chave.
func TestTodos_JSONCorrompido(t *testing.T) {
	store := storage.NewMemoriaStore()
	store.Semear("teste_registros", []byte("{isto não é um array"))
	c := novaColecao(store)
	ctx := context.Background()

	registros, err := c.Todos(ctx)
	assert.NoError(t, err)
	assert.Len(t, registros, 0)

	assert.NoError(t, c.Anexar(ctx, registro{ID: "a", Nome: "Recomeço"}))

	registros, err = c.Todos(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []registro{{ID: "a", Nome: "Recomeço"}}, registros)
}

// TestFiltrar testa o predicado sobre a coleção completa.
func TestFiltrar(t *testing.T) {
	c := novaColecao(storage.NewMemoriaStore())
	ctx := context.Background()

	assert.NoError(t, c.Salvar(ctx, []registro{{ID: "a", Nome: "sim"}, {ID: "b", Nome: "não"}, {ID: "c", Nome: "sim"}}))

	filtrados, err := c.Filtrar(ctx, func(r registro) bool { return r.Nome == "sim" })
	assert.NoError(t, err)
	assert.Len(t, filtrados, 2)
}
