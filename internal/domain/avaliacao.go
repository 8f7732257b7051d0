package domain

// Qualidade é a nota de qualidade do trabalho de um membro em um evento.
type Qualidade string

const (
	QualidadeRuim      Qualidade = "ruim"
	QualidadeRazoavel  Qualidade = "razoavel"
	QualidadeBoa       Qualidade = "bom"
	QualidadeExcelente Qualidade = "excelente"
)

// Pontualidade é a classificação de pontualidade do membro no evento.
type Pontualidade string

const (
	PontualidadeAtrasado  Pontualidade = "atrasado"
	PontualidadeNoHorario Pontualidade = "no-horario"
	PontualidadeAdiantado Pontualidade = "adiantado"
)

// Avaliacao registra o desempenho de um membro em um evento e o valor a
// pagar já calculado (base + bônus). Invariante: existe no máximo uma
// avaliação por par (membroId, eventoId) — criar uma nova substitui a anterior.
type Avaliacao struct {
	ID           string       `json:"id"`
	EventoID     string       `json:"eventoId"`
	MembroID     string       `json:"membroId"`
	Qualidade    Qualidade    `json:"qualidade"`
	Pontualidade Pontualidade `json:"pontualidade"`
	ValorPago    float64      `json:"valorPago"`
	CriadoEm     string       `json:"criadoEm"`
	AtualizadoEm string       `json:"atualizadoEm"`
}

// AvaliacaoForm contém os campos do formulário de avaliação. ValorBase é o
// valor da diária da escala; o serviço calcula o bônus e o total a pagar.
type AvaliacaoForm struct {
	EventoID     string       `json:"eventoId"`
	MembroID     string       `json:"membroId"`
	Qualidade    Qualidade    `json:"qualidade"`
	Pontualidade Pontualidade `json:"pontualidade"`
	ValorBase    float64      `json:"valorBase"`
}
