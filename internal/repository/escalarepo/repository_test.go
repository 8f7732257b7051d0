package escalarepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gobuffet/internal/domain"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/repository/escalarepo"
)

func novoRepo() *escalarepo.EscalaRepository {
	repo := escalarepo.NewEscalaRepository(storage.NewMemoriaStore(), logger.NewLogger("error"))
	repo.Agora = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local) }
	return repo
}

// TestCriar_UmaEscalaPorEvento testa o invariante de escala única: definir
// uma nova escala para o mesmo evento substitui a anterior em vez de somar.
func TestCriar_UmaEscalaPorEvento(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	primeira, err := repo.Criar(ctx, domain.EscalaEventoForm{
		EventoID: "evento-1",
		Membros:  []domain.MembroEscalado{{MembroID: "m1", Funcao: "garcom"}},
	})
	assert.NoError(t, err)

	segunda, err := repo.Criar(ctx, domain.EscalaEventoForm{
		EventoID: "evento-1",
		Membros:  []domain.MembroEscalado{{MembroID: "m2", Funcao: "churrasqueiro"}},
		Extras:   []domain.ExtraEscalado{{Nome: "Avulso", Funcao: "copeiro"}},
	})
	assert.NoError(t, err)
	assert.NotEqual(t, primeira.ID, segunda.ID)

	escalas, err := repo.Todas(ctx)
	assert.NoError(t, err)
	assert.Len(t, escalas, 1)
	assert.Equal(t, segunda.ID, escalas[0].ID)
	assert.Equal(t, "m2", escalas[0].Membros[0].MembroID)
	assert.Len(t, escalas[0].Extras, 1)
}

// TestCriar_EventosDiferentesCoexistem testa que a substituição só atinge o mesmo evento.
func TestCriar_EventosDiferentesCoexistem(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	_, err := repo.Criar(ctx, domain.EscalaEventoForm{EventoID: "evento-1"})
	assert.NoError(t, err)
	_, err = repo.Criar(ctx, domain.EscalaEventoForm{EventoID: "evento-2"})
	assert.NoError(t, err)

	escalas, err := repo.Todas(ctx)
	assert.NoError(t, err)
	assert.Len(t, escalas, 2)
}

// TestCriar_ListasNulasViramVazias testa que membros/extras omitidos são
// serializados como arrays vazios, não null.
func TestCriar_ListasNulasViramVazias(t *testing.T) {
	repo := novoRepo()

	escala, err := repo.Criar(context.Background(), domain.EscalaEventoForm{EventoID: "evento-1"})

	assert.NoError(t, err)
	assert.NotNil(t, escala.Membros)
	assert.NotNil(t, escala.Extras)
	assert.Equal(t, repo.Agora().Format(time.RFC3339), escala.CriadoEm)
	assert.Equal(t, escala.CriadoEm, escala.AtualizadoEm)
}

// TestPorEvento testa a busca da escala pelo evento.
func TestPorEvento(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	criada, err := repo.Criar(ctx, domain.EscalaEventoForm{EventoID: "evento-1"})
	assert.NoError(t, err)

	escala, encontrada, err := repo.PorEvento(ctx, "evento-1")
	assert.NoError(t, err)
	assert.True(t, encontrada)
	assert.Equal(t, criada.ID, escala.ID)

	_, encontrada, err = repo.PorEvento(ctx, "evento-sem-escala")
	assert.NoError(t, err)
	assert.False(t, encontrada)
}

// TestRemover testa o sinal booleano da exclusão.
func TestRemover(t *testing.T) {
	repo := novoRepo()
	ctx := context.Background()

	criada, err := repo.Criar(ctx, domain.EscalaEventoForm{EventoID: "evento-1"})
	assert.NoError(t, err)

	removida, err := repo.Remover(ctx, criada.ID)
	assert.NoError(t, err)
	assert.True(t, removida)

	removida, err = repo.Remover(ctx, criada.ID)
	assert.NoError(t, err)
	assert.False(t, removida)
}
