// Package colecao implementa o padrão de coleção persistente usado por
// todos os repositórios: uma coleção homogênea inteira serializada como um
// array JSON sob uma única chave de um storage.Store. Toda mutação reescreve
// a coleção completa — não há escrita parcial, índice nem transação.
package colecao

import (
	"context"
	"encoding/json"

	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
)

// Colecao é a coleção persistente genérica, parametrizada pelo tipo do
// registro. O acessor de identidade é injetado porque nem toda entidade usa
// o campo "id" (opções de catálogo usam o slug "value").
type Colecao[T any] struct {
	store  storage.Store
	chave  string
	idDe   func(T) string
	logger logger.Logger
}

// New cria uma coleção sobre a chave informada.
func New[T any](store storage.Store, chave string, idDe func(T) string, log logger.Logger) *Colecao[T] {
	return &Colecao[T]{
		store:  store,
		chave:  chave,
		idDe:   idDe,
		logger: log,
	}
}

// Chave retorna a chave de persistência da coleção.
func (c *Colecao[T]) Chave() string {
	return c.chave
}

// Todos desserializa a coleção completa. Chave ausente resulta em coleção
// vazia. JSON corrompido também: o defeito é logado e o chamador recebe uma
// coleção vazia, nunca um erro — falha de decodificação não se propaga.
// Apenas falhas de leitura do backend (infraestrutura) retornam erro.
func (c *Colecao[T]) Todos(ctx context.Context) ([]T, error) {
	dados, existe, err := c.store.Ler(ctx, c.chave)
	if err != nil {
		return nil, err
	}
	if !existe {
		return []T{}, nil
	}

	var registros []T
	if err := json.Unmarshal(dados, &registros); err != nil {
		c.logger.Warn("Coleção com JSON inválido, tratando como vazia.", map[string]interface{}{
			"chave": c.chave,
			"erro":  err.Error(),
		})
		return []T{}, nil
	}
	if registros == nil {
		registros = []T{}
	}
	return registros, nil
}

// PorID faz a varredura linear da coleção pelo identificador.
// O segundo retorno indica se o registro foi encontrado.
func (c *Colecao[T]) PorID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	registros, err := c.Todos(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, r := range registros {
		if c.idDe(r) == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Filtrar retorna os registros que satisfazem o predicado.
func (c *Colecao[T]) Filtrar(ctx context.Context, pred func(T) bool) ([]T, error) {
	registros, err := c.Todos(ctx)
	if err != nil {
		return nil, err
	}
	filtrados := []T{}
	for _, r := range registros {
		if pred(r) {
			filtrados = append(filtrados, r)
		}
	}
	return filtrados, nil
}

// Salvar substitui a coleção inteira pelo conteúdo informado.
func (c *Colecao[T]) Salvar(ctx context.Context, registros []T) error {
	if registros == nil {
		registros = []T{}
	}
	dados, err := json.Marshal(registros)
	if err != nil {
		return err
	}
	return c.store.Gravar(ctx, c.chave, dados)
}

// Anexar acrescenta um registro ao final e regrava a coleção.
func (c *Colecao[T]) Anexar(ctx context.Context, novo T) error {
	registros, err := c.Todos(ctx)
	if err != nil {
		return err
	}
	return c.Salvar(ctx, append(registros, novo))
}

// Substituir troca, no lugar, o registro de mesmo identificador.
// Retorna false quando nenhum registro casa (nada é gravado nesse caso).
func (c *Colecao[T]) Substituir(ctx context.Context, atualizado T) (bool, error) {
	registros, err := c.Todos(ctx)
	if err != nil {
		return false, err
	}

	id := c.idDe(atualizado)
	for i, r := range registros {
		if c.idDe(r) == id {
			registros[i] = atualizado
			if err := c.Salvar(ctx, registros); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Remover exclui o registro de identificador informado e regrava o
// restante. O booleano indica se a coleção de fato encolheu; a regravação
// acontece mesmo quando nada foi removido (conteúdo idêntico, sem efeito).
func (c *Colecao[T]) Remover(ctx context.Context, id string) (bool, error) {
	registros, err := c.Todos(ctx)
	if err != nil {
		return false, err
	}

	restantes := make([]T, 0, len(registros))
	for _, r := range registros {
		if c.idDe(r) != id {
			restantes = append(restantes, r)
		}
	}

	removido := len(restantes) < len(registros)
	if err := c.Salvar(ctx, restantes); err != nil {
		return false, err
	}
	return removido, nil
}
