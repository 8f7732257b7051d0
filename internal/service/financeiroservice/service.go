// Package financeiroservice é o motor de agregação financeira do painel:
// fechamentos mensais, tendência sobre o mês anterior e séries de evolução.
// Cada chamada relê as coleções completas — não há cache nem atualização
// incremental.
package financeiroservice

import (
	"context"
	"time"

	"gobuffet/internal/domain"
	apperror "gobuffet/internal/errors"
	"gobuffet/internal/pkg/datas"
	"gobuffet/internal/pkg/logger"
)

// MesesEvolucao é o tamanho da janela das séries de evolução dos gráficos.
const MesesEvolucao = 6

// EventoReader define o contrato de leitura que o serviço espera do
// repositório de eventos.
type EventoReader interface {
	Todos(ctx context.Context) ([]domain.Evento, error)
}

// CustoReader define o contrato de leitura dos custos variáveis.
type CustoReader interface {
	Todos(ctx context.Context) ([]domain.Custo, error)
}

// CustoFixoReader define o contrato de leitura dos custos fixos.
type CustoFixoReader interface {
	PorMesReferencia(ctx context.Context, mes string) ([]domain.CustoFixo, error)
}

// NotaFiscalReader define o contrato de leitura das notas fiscais.
type NotaFiscalReader interface {
	Todas(ctx context.Context) ([]domain.NotaFiscal, error)
}

// Service implementa os fechamentos financeiros mensais.
type Service struct {
	eventos     EventoReader
	custos      CustoReader
	custosFixos CustoFixoReader
	notas       NotaFiscalReader
	logger      logger.Logger

	// Agora é injetável para testes determinísticos: define o que conta
	// como evento "executado" e qual é o mês corrente.
	Agora func() time.Time
}

// NewService cria o serviço financeiro sobre os leitores injetados.
func NewService(eventos EventoReader, custos CustoReader, custosFixos CustoFixoReader, notas NotaFiscalReader, log logger.Logger) *Service {
	return &Service{
		eventos:     eventos,
		custos:      custos,
		custosFixos: custosFixos,
		notas:       notas,
		logger:      log,
		Agora:       time.Now,
	}
}

// ResumoMensal calcula o fechamento financeiro do mês de referência
// ("YYYY-MM"): receita dos eventos executados, custos variáveis desses
// eventos, custos fixos do mês, impostos das notas dos eventos do mês,
// lucro líquido e margem.
func (s *Service) ResumoMensal(ctx context.Context, mes string) (domain.ResumoFinanceiro, error) {
	if _, err := datas.ParseMes(mes); err != nil {
		return domain.ResumoFinanceiro{}, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
	}
	return s.resumo(ctx, mes)
}

func (s *Service) resumo(ctx context.Context, mes string) (domain.ResumoFinanceiro, error) {
	eventos, err := s.eventos.Todos(ctx)
	if err != nil {
		return domain.ResumoFinanceiro{}, err
	}

	agora := s.Agora()

	// 1. Eventos executados do mês: data no mês E estritamente anterior a
	// "agora". Evento futuro no mesmo mês não entra na receita realizada.
	receita := 0.0
	executados := map[string]bool{}
	for _, e := range eventos {
		if datas.MesDaData(e.Data) != mes {
			continue
		}
		dia, err := datas.ParseData(e.Data)
		if err != nil || !dia.Before(agora) {
			continue
		}
		receita += e.Valor
		executados[e.ID] = true
	}

	// 2. Custos variáveis: soma dos custos cujo eventoId está no conjunto
	// de eventos executados. Custos órfãos (evento excluído) ficam de fora
	// naturalmente — a junção não encontra o evento.
	custos, err := s.custos.Todos(ctx)
	if err != nil {
		return domain.ResumoFinanceiro{}, err
	}
	custosVariaveis := 0.0
	for _, c := range custos {
		if executados[c.EventoID] {
			custosVariaveis += c.Valor
		}
	}

	// 3. Custos fixos: igualdade estrita do mês de referência, independente
	// de vínculo com evento.
	fixos, err := s.custosFixos.PorMesReferencia(ctx, mes)
	if err != nil {
		return domain.ResumoFinanceiro{}, err
	}
	custosFixos := 0.0
	for _, f := range fixos {
		custosFixos += f.Valor
	}

	// 4. Impostos: junção NotaFiscal -> Evento pelo eventoId, agrupada pelo
	// mês derivado da data do Evento — não pelo timestamp da própria nota.
	notas, err := s.notas.Todas(ctx)
	if err != nil {
		return domain.ResumoFinanceiro{}, err
	}
	mesPorEvento := map[string]string{}
	for _, e := range eventos {
		mesPorEvento[e.ID] = datas.MesDaData(e.Data)
	}
	impostos := 0.0
	for _, n := range notas {
		if mesPorEvento[n.EventoID] == mes {
			impostos += n.ValorImposto
		}
	}

	lucro := receita - custosVariaveis - custosFixos - impostos

	// 5. Margem: lucro/receita. Receita zero => margem 0, nunca NaN/Inf.
	margem := 0.0
	if receita != 0 {
		margem = lucro / receita * 100
	}

	return domain.ResumoFinanceiro{
		Mes:              mes,
		Receita:          receita,
		CustosVariaveis:  custosVariaveis,
		CustosFixos:      custosFixos,
		Impostos:         impostos,
		LucroLiquido:     lucro,
		MargemPercentual: margem,
	}, nil
}

// ResumoComTendencia calcula o fechamento do mês e a variação percentual
// sobre o mês de calendário imediatamente anterior (virada de ano tratada).
func (s *Service) ResumoComTendencia(ctx context.Context, mes string) (domain.ResumoComTendencia, error) {
	atual, err := s.ResumoMensal(ctx, mes)
	if err != nil {
		return domain.ResumoComTendencia{}, err
	}

	mesAnterior, err := datas.MesAnterior(mes)
	if err != nil {
		return domain.ResumoComTendencia{}, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
	}

	anterior, err := s.resumo(ctx, mesAnterior)
	if err != nil {
		return domain.ResumoComTendencia{}, err
	}

	return domain.ResumoComTendencia{
		Atual:            atual,
		Anterior:         anterior,
		TendenciaReceita: tendencia(atual.Receita, anterior.Receita),
		TendenciaCustos: tendencia(
			atual.CustosVariaveis+atual.CustosFixos+atual.Impostos,
			anterior.CustosVariaveis+anterior.CustosFixos+anterior.Impostos,
		),
		TendenciaLucro: tendencia(atual.LucroLiquido, anterior.LucroLiquido),
	}, nil
}

// tendencia calcula a variação percentual sobre a base do mês anterior.
// Base zero não tem percentual definido: a tendência sai como não aplicável
// (sentinela), com a direção sinalizada pela flag Positiva.
func tendencia(atual, anterior float64) domain.Tendencia {
	if anterior == 0 {
		return domain.Tendencia{
			Aplicavel: false,
			Positiva:  atual > 0,
		}
	}
	percentual := (atual - anterior) / anterior * 100
	return domain.Tendencia{
		Percentual: percentual,
		Aplicavel:  true,
		Positiva:   percentual > 0,
	}
}

// Evolucao produz as séries dos últimos MesesEvolucao meses terminando no
// mês informado, em ordem cronológica. Cada ponto é calculado de forma
// independente, idêntica ao fechamento de um mês isolado.
func (s *Service) Evolucao(ctx context.Context, mesFinal string) (domain.Evolucao, error) {
	meses, err := datas.UltimosMeses(mesFinal, MesesEvolucao)
	if err != nil {
		return domain.Evolucao{}, apperror.NewValidationError("O mês de referência deve estar no formato YYYY-MM.")
	}

	evolucao := domain.Evolucao{
		Receitas: make([]domain.PontoReceita, 0, len(meses)),
		Custos:   make([]domain.PontoCustos, 0, len(meses)),
	}
	for _, mes := range meses {
		resumo, err := s.resumo(ctx, mes)
		if err != nil {
			return domain.Evolucao{}, err
		}
		evolucao.Receitas = append(evolucao.Receitas, domain.PontoReceita{
			Mes:          mes,
			Receita:      resumo.Receita,
			LucroLiquido: resumo.LucroLiquido,
		})
		evolucao.Custos = append(evolucao.Custos, domain.PontoCustos{
			Mes:             mes,
			CustosFixos:     resumo.CustosFixos,
			CustosVariaveis: resumo.CustosVariaveis,
		})
	}
	return evolucao, nil
}
