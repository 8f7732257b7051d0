package eventorepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/colecao"
)

// EventoRepository persiste a coleção de eventos (chave buffet_eventos).
type EventoRepository struct {
	colecao *colecao.Colecao[domain.Evento]
	logger  logger.Logger

	// Agora e NovoID são injetáveis para testes determinísticos.
	Agora  func() time.Time
	NovoID func() string
}

// NewEventoRepository cria o repositório sobre o Store injetado.
func NewEventoRepository(store storage.Store, log logger.Logger) *EventoRepository {
	return &EventoRepository{
		colecao: colecao.New(store, storage.ChaveEventos, func(e domain.Evento) string { return e.ID }, log),
		logger:  log,
		Agora:   time.Now,
		NovoID:  uuid.NewString,
	}
}

// Criar carimba identidade e timestamps e anexa o evento à coleção.
func (r *EventoRepository) Criar(ctx context.Context, form domain.EventoForm) (domain.Evento, error) {
	agora := r.Agora().Format(time.RFC3339)
	evento := domain.Evento{
		ID:              r.NovoID(),
		Motivo:          form.Motivo,
		NomeCliente:     form.NomeCliente,
		TelefoneCliente: form.TelefoneCliente,
		EmailCliente:    form.EmailCliente,
		Data:            form.Data,
		Convidados:      form.Convidados,
		Cardapio:        form.Cardapio,
		Bebidas:         form.Bebidas,
		HorarioInicio:   form.HorarioInicio,
		HorarioFim:      form.HorarioFim,
		Endereco:        form.Endereco,
		Valor:           form.Valor,
		ValorEntrada:    form.ValorEntrada,
		FormaPagamento:  form.FormaPagamento,
		StatusPagamento: form.StatusPagamento,
		Observacoes:     form.Observacoes,
		CriadoEm:        agora,
		AtualizadoEm:    agora,
	}

	if err := r.colecao.Anexar(ctx, evento); err != nil {
		return domain.Evento{}, apperror.NewStorageError("falha ao gravar evento", err)
	}
	return evento, nil
}

// Todos retorna a coleção completa de eventos.
func (r *EventoRepository) Todos(ctx context.Context) ([]domain.Evento, error) {
	eventos, err := r.colecao.Todos(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("falha ao ler eventos", err)
	}
	return eventos, nil
}

// TodosOrdenados retorna os eventos em ordem cronológica da data.
// A comparação de strings YYYY-MM-DD já é cronológica.
func (r *EventoRepository) TodosOrdenados(ctx context.Context) ([]domain.Evento, error) {
	eventos, err := r.Todos(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(eventos, func(i, j int) bool {
		return eventos[i].Data < eventos[j].Data
	})
	return eventos, nil
}

// PorID busca um evento pelo identificador.
func (r *EventoRepository) PorID(ctx context.Context, id string) (domain.Evento, error) {
	evento, encontrado, err := r.colecao.PorID(ctx, id)
	if err != nil {
		return domain.Evento{}, apperror.NewStorageError("falha ao ler eventos", err)
	}
	if !encontrado {
		return domain.Evento{}, apperror.NewNotFoundError(fmt.Sprintf("Evento com ID %s não existe.", id))
	}
	return evento, nil
}

// Atualizar aplica um patch campo a campo sobre o evento existente e
// recarimba o timestamp de atualização.
func (r *EventoRepository) Atualizar(ctx context.Context, id string, patch domain.EventoPatch) (domain.Evento, error) {
	evento, err := r.PorID(ctx, id)
	if err != nil {
		return domain.Evento{}, err
	}

	if patch.Motivo != nil {
		evento.Motivo = *patch.Motivo
	}
	if patch.NomeCliente != nil {
		evento.NomeCliente = *patch.NomeCliente
	}
	if patch.TelefoneCliente != nil {
		evento.TelefoneCliente = *patch.TelefoneCliente
	}
	if patch.EmailCliente != nil {
		evento.EmailCliente = *patch.EmailCliente
	}
	if patch.Data != nil {
		evento.Data = *patch.Data
	}
	if patch.Convidados != nil {
		evento.Convidados = *patch.Convidados
	}
	if patch.Cardapio != nil {
		evento.Cardapio = *patch.Cardapio
	}
	if patch.Bebidas != nil {
		evento.Bebidas = *patch.Bebidas
	}
	if patch.HorarioInicio != nil {
		evento.HorarioInicio = *patch.HorarioInicio
	}
	if patch.HorarioFim != nil {
		evento.HorarioFim = *patch.HorarioFim
	}
	if patch.Endereco != nil {
		evento.Endereco = *patch.Endereco
	}
	if patch.Valor != nil {
		evento.Valor = *patch.Valor
	}
	if patch.ValorEntrada != nil {
		evento.ValorEntrada = *patch.ValorEntrada
	}
	if patch.FormaPagamento != nil {
		evento.FormaPagamento = *patch.FormaPagamento
	}
	if patch.StatusPagamento != nil {
		evento.StatusPagamento = *patch.StatusPagamento
	}
	if patch.Observacoes != nil {
		evento.Observacoes = *patch.Observacoes
	}
	evento.AtualizadoEm = r.Agora().Format(time.RFC3339)

	encontrado, err := r.colecao.Substituir(ctx, evento)
	if err != nil {
		return domain.Evento{}, apperror.NewStorageError("falha ao gravar evento atualizado", err)
	}
	if !encontrado {
		return domain.Evento{}, apperror.NewNotFoundError(fmt.Sprintf("Evento com ID %s não existe.", id))
	}
	return evento, nil
}

// Remover exclui o evento. Retorna false quando o ID não existia.
// Custos, escala e nota fiscal vinculados não são excluídos em cascata:
// permanecem como linhas órfãs, e as junções de leitura simplesmente não
// encontram o evento.
func (r *EventoRepository) Remover(ctx context.Context, id string) (bool, error) {
	removido, err := r.colecao.Remover(ctx, id)
	if err != nil {
		return false, apperror.NewStorageError("falha ao remover evento", err)
	}
	return removido, nil
}
