package opcaorepo

import (
	"context"
	"fmt"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// Catálogos padrão, semeados no primeiro acesso de cada lista.
var (
	cardapioPadrao = []domain.Opcao{
		{Value: "churrasco", Label: "Churrasco"},
		{Value: "massas", Label: "Massas"},
		{Value: "coquetel", Label: "Coquetel"},
		{Value: "feijoada", Label: "Feijoada"},
		{Value: "jantar-completo", Label: "Jantar Completo"},
	}
	bebidasPadrao = []domain.Opcao{
		{Value: "nao-alcoolicas", Label: "Não Alcoólicas"},
		{Value: "cerveja", Label: "Cerveja"},
		{Value: "drinks", Label: "Drinks"},
		{Value: "pacote-completo", Label: "Pacote Completo"},
	}
)

// OpcaoRepository persiste os dois catálogos independentes de opções
// (buffet_opcoes_cardapio e buffet_opcoes_bebidas).
type OpcaoRepository struct {
	cardapio *colecao.Colecao[domain.Opcao]
	bebidas  *colecao.Colecao[domain.Opcao]
	logger   logger.Logger
}

// NewOpcaoRepository cria o repositório sobre o Store injetado.
func NewOpcaoRepository(store storage.Store, log logger.Logger) *OpcaoRepository {
	idDe := func(o domain.Opcao) string { return o.Value }
	return &OpcaoRepository{
		cardapio: colecao.New(store, storage.ChaveOpcoesCardapio, idDe, log),
		bebidas:  colecao.New(store, storage.ChaveOpcoesBebidas, idDe, log),
		logger:   log,
	}
}

func (r *OpcaoRepository) colecaoDe(lista domain.ListaOpcoes) (*colecao.Colecao[domain.Opcao], []domain.Opcao, error) {
	switch lista {
	case domain.ListaCardapio:
		return r.cardapio, cardapioPadrao, nil
	case domain.ListaBebidas:
		return r.bebidas, bebidasPadrao, nil
	}
	return nil, nil, apperror.NewValidationError(fmt.Sprintf("Lista de opções desconhecida: %q.", lista))
}

// Todas retorna o catálogo da lista. No primeiro acesso (coleção vazia) o
// catálogo padrão é semeado e persistido antes de ser retornado.
func (r *OpcaoRepository) Todas(ctx context.Context, lista domain.ListaOpcoes) ([]domain.Opcao, error) {
	col, padrao, err := r.colecaoDe(lista)
	if err != nil {
		return nil, err
	}

	opcoes, err := col.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler opções", err)
	}
	if len(opcoes) > 0 {
		return opcoes, nil
	}

	if err := col.Salvar(ctx, padrao); err != nil {
		return nil, apperror.NewStorageError("falha ao semear opções padrão", err)
	}
	r.logger.Info("Catálogo de opções semeado com os valores padrão.", map[string]interface{}{"lista": string(lista)})
	return padrao, nil
}

// Adicionar inclui uma opção na lista. O slug (value) é único dentro da
// sua lista; duplicata resulta em conflito.
func (r *OpcaoRepository) Adicionar(ctx context.Context, lista domain.ListaOpcoes, opcao domain.Opcao) (domain.Opcao, error) {
	col, _, err := r.colecaoDe(lista)
	if err != nil {
		return domain.Opcao{}, err
	}

	opcoes, err := r.Todas(ctx, lista)
	if err != nil {
		return domain.Opcao{}, err
	}
	for _, o := range opcoes {
		if o.Value == opcao.Value {
			return domain.Opcao{}, apperror.NewConflictError(fmt.Sprintf("A opção '%s' já existe na lista.", opcao.Value))
		}
	}

	if err := col.Salvar(ctx, append(opcoes, opcao)); err != nil {
		return domain.Opcao{}, apperror.NewStorageError("falha ao gravar opção", err)
	}
	return opcao, nil
}

// Remover exclui a opção de slug informado. Retorna false quando o slug
// não existia na lista.
func (r *OpcaoRepository) Remover(ctx context.Context, lista domain.ListaOpcoes, value string) (bool, error) {
	col, _, err := r.colecaoDe(lista)
	if err != nil {
		return false, err
	}

	removido, err := col.Remover(ctx, value)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover opção", err)
	}
	return removido, nil
}
