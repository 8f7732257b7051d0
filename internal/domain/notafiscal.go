package domain

// SituacaoNota representa o estado de emissão da nota fiscal.
type SituacaoNota string

const (
	NotaNaoEmitida SituacaoNota = "nao-emitida"
	NotaAguardando SituacaoNota = "aguardando"
	NotaEmitida    SituacaoNota = "emitida"
)

// SituacaoImposto representa o estado de pagamento do imposto da nota.
type SituacaoImposto string

const (
	ImpostoPendente SituacaoImposto = "pendente"
	ImpostoPago     SituacaoImposto = "pago"
)

// StatusNota é a classificação de exibição derivada de uma nota fiscal.
// Não é persistida: é recalculada a cada leitura, em ordem de prioridade
// (nota não emitida > aguardando emissão > imposto pendente > emitida e paga).
type StatusNota string

const (
	StatusNotaNaoEmitida     StatusNota = "nota-nao-emitida"
	StatusAguardandoEmissao  StatusNota = "aguardando-emissao"
	StatusImpostoPendente    StatusNota = "imposto-pendente"
	StatusEmitidaPaga        StatusNota = "emitida-e-paga"
)

// NotaFiscal registra a nota fiscal e o imposto calculado de um evento.
type NotaFiscal struct {
	ID              string          `json:"id"`
	EventoID        string          `json:"eventoId"`
	EmitirNota      bool            `json:"emitirNota"`
	TipoNota        string          `json:"tipoNota"`
	ValorTributavel float64         `json:"valorTributavel"`
	TipoImposto     string          `json:"tipoImposto"`
	ValorImposto    float64         `json:"valorImposto"`
	SituacaoNota    SituacaoNota    `json:"situacaoNota"`
	SituacaoImposto SituacaoImposto `json:"situacaoImposto"`
	CriadoEm        string          `json:"criadoEm"`
	AtualizadoEm    string          `json:"atualizadoEm"`
}

// NotaFiscalForm contém os campos do formulário de nota fiscal.
type NotaFiscalForm struct {
	EventoID        string          `json:"eventoId"`
	EmitirNota      bool            `json:"emitirNota"`
	TipoNota        string          `json:"tipoNota"`
	ValorTributavel float64         `json:"valorTributavel"`
	TipoImposto     string          `json:"tipoImposto"`
	ValorImposto    float64         `json:"valorImposto"`
	SituacaoNota    SituacaoNota    `json:"situacaoNota"`
	SituacaoImposto SituacaoImposto `json:"situacaoImposto"`
}

// NotaFiscalPatch é a atualização parcial de uma nota fiscal.
type NotaFiscalPatch struct {
	EmitirNota      *bool            `json:"emitirNota,omitempty"`
	TipoNota        *string          `json:"tipoNota,omitempty"`
	ValorTributavel *float64         `json:"valorTributavel,omitempty"`
	TipoImposto     *string          `json:"tipoImposto,omitempty"`
	ValorImposto    *float64         `json:"valorImposto,omitempty"`
	SituacaoNota    *SituacaoNota    `json:"situacaoNota,omitempty"`
	SituacaoImposto *SituacaoImposto `json:"situacaoImposto,omitempty"`
}

// NotaFiscalComStatus é a projeção de leitura enviada à interface:
// a nota acrescida do status derivado.
type NotaFiscalComStatus struct {
	NotaFiscal
	Status StatusNota `json:"status"`
}
