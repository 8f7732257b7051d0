package domain

// ResumoFinanceiro é o fechamento financeiro de um mês de referência.
// Apenas eventos executados (data no mês e estritamente anterior a "agora")
// entram na receita realizada.
type ResumoFinanceiro struct {
	Mes             string  `json:"mes"` // YYYY-MM
	Receita         float64 `json:"receita"`
	CustosVariaveis float64 `json:"custosVariaveis"`
	CustosFixos     float64 `json:"custosFixos"`
	Impostos        float64 `json:"impostos"`
	LucroLiquido    float64 `json:"lucroLiquido"`
	// MargemPercentual é 0 quando a receita do mês é 0 (nunca NaN/Inf).
	MargemPercentual float64 `json:"margemPercentual"`
}

// Tendencia é a variação percentual de uma métrica sobre o mês anterior.
// Quando a base do mês anterior é 0 não existe percentual definido:
// Aplicavel fica false e Positiva sinaliza apenas a direção.
type Tendencia struct {
	Percentual float64 `json:"percentual"`
	Aplicavel  bool    `json:"aplicavel"`
	Positiva   bool    `json:"positiva"`
}

// ResumoComTendencia agrega o resumo do mês, o do mês anterior e as
// tendências métrica a métrica.
type ResumoComTendencia struct {
	Atual    ResumoFinanceiro `json:"atual"`
	Anterior ResumoFinanceiro `json:"anterior"`

	TendenciaReceita Tendencia `json:"tendenciaReceita"`
	TendenciaCustos  Tendencia `json:"tendenciaCustos"`
	TendenciaLucro   Tendencia `json:"tendenciaLucro"`
}

// PontoReceita é um ponto da série de evolução receita × lucro.
type PontoReceita struct {
	Mes          string  `json:"mes"`
	Receita      float64 `json:"receita"`
	LucroLiquido float64 `json:"lucroLiquido"`
}

// PontoCustos é um ponto da série de evolução de custos fixos × variáveis.
type PontoCustos struct {
	Mes             string  `json:"mes"`
	CustosFixos     float64 `json:"custosFixos"`
	CustosVariaveis float64 `json:"custosVariaveis"`
}

// Evolucao reúne as duas séries dos últimos meses, em ordem cronológica,
// no formato consumido pelos gráficos do painel.
type Evolucao struct {
	Receitas []PontoReceita `json:"receitas"`
	Custos   []PontoCustos  `json:"custos"`
}
