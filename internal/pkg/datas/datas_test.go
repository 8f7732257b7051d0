package datas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gobuffet/internal/pkg/datas"
)

// TestMesDaData testa a derivação do mês de referência de uma data de evento.
func TestMesDaData(t *testing.T) {
	assert.Equal(t, "2025-01", datas.MesDaData("2025-01-15"))
	assert.Equal(t, "2024-12", datas.MesDaData("2024-12-31"))

	// Data fora do formato nunca casa com mês nenhum.
	assert.Equal(t, "", datas.MesDaData("15/01/2025"))
	assert.Equal(t, "", datas.MesDaData(""))
}

// TestMesAnterior testa o mês de calendário anterior, incluindo a virada de ano.
func TestMesAnterior(t *testing.T) {
	anterior, err := datas.MesAnterior("2025-03")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02", anterior)

	anterior, err = datas.MesAnterior("2025-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-12", anterior)

	_, err = datas.MesAnterior("março")
	assert.Error(t, err)
}

// TestUltimosMeses testa a janela de meses em ordem cronológica crescente.
func TestUltimosMeses(t *testing.T) {
	meses, err := datas.UltimosMeses("2025-02", 6)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}, meses)

	meses, err = datas.UltimosMeses("2025-02", 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-02"}, meses)

	_, err = datas.UltimosMeses("fevereiro", 6)
	assert.Error(t, err)
}

// TestMesAtual testa o formato do mês corrente.
func TestMesAtual(t *testing.T) {
	agora := time.Date(2025, 7, 4, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2025-07", datas.MesAtual(agora))
}

// TestParseData_FusoLocal testa que a data é interpretada no fuso local,
// sem o deslocamento de um dia da interpretação UTC.
func TestParseData_FusoLocal(t *testing.T) {
	dia, err := datas.ParseData("2025-01-15")
	assert.NoError(t, err)
	assert.Equal(t, 15, dia.Day())
	assert.Equal(t, time.Local, dia.Location())
}
