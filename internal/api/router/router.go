package router

import (
	"net/http"

	"gobuffet/internal/api/avaliacao"
	"gobuffet/internal/api/custo"
	"gobuffet/internal/api/equipe"
	"gobuffet/internal/api/escala"
	"gobuffet/internal/api/evento"
	"gobuffet/internal/api/financeiro"
	"gobuffet/internal/api/notafiscal"
	"gobuffet/internal/api/opcao"
	"gobuffet/internal/api/usuario"
	"gobuffet/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Evento     *evento.Handler
	Custo      *custo.Handler
	Equipe     *equipe.Handler
	Escala     *escala.Handler
	Avaliacao  *avaliacao.Handler
	NotaFiscal *notafiscal.Handler
	Opcao      *opcao.Handler
	Financeiro *financeiro.Handler
	Usuario    *usuario.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// Todas as rotas /v1 exceto /v1/auth/registrar e /v1/auth/login exigem JWT.
func NewRouter(h Handlers, tokenSvc middleware.TokenService) http.Handler {

	// Usamos o ServeMux padrão do net/http para roteamento
	mux := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(tokenSvc)

	// --- 1. Health Check ---
	mux.HandleFunc("/ping", PingHandler)

	// --- 2. Autenticação ---
	mux.HandleFunc("/v1/auth/registrar", h.Usuario.RegistrarHandler)
	mux.HandleFunc("/v1/auth/login", h.Usuario.LoginHandler)
	mux.HandleFunc("/v1/auth/pendentes", auth(h.Usuario.PendentesHandler))
	mux.HandleFunc("/v1/auth/pendentes/", auth(h.Usuario.PendentesHandler))

	// --- 3. Eventos ---
	mux.HandleFunc("/v1/eventos", auth(h.Evento.EventosHandler))
	mux.HandleFunc("/v1/eventos/", auth(h.Evento.EventoPorIDHandler))

	// --- 4. Custos variáveis e fixos ---
	mux.HandleFunc("/v1/custos", auth(h.Custo.CustosHandler))
	mux.HandleFunc("/v1/custos/", auth(h.Custo.CustoPorIDHandler))
	mux.HandleFunc("/v1/custos-fixos", auth(h.Custo.CustosFixosHandler))
	mux.HandleFunc("/v1/custos-fixos/", auth(h.Custo.CustoFixoPorIDHandler))

	// --- 5. Equipe, escalas e avaliações ---
	mux.HandleFunc("/v1/equipe", auth(h.Equipe.EquipeHandler))
	mux.HandleFunc("/v1/equipe/", auth(h.Equipe.MembroPorIDHandler))
	mux.HandleFunc("/v1/escalas", auth(h.Escala.EscalasHandler))
	mux.HandleFunc("/v1/escalas/", auth(h.Escala.EscalaPorIDHandler))
	mux.HandleFunc("/v1/avaliacoes", auth(h.Avaliacao.AvaliacoesHandler))
	mux.HandleFunc("/v1/avaliacoes/", auth(h.Avaliacao.AvaliacaoPorIDHandler))

	// --- 6. Notas fiscais ---
	mux.HandleFunc("/v1/notas-fiscais", auth(h.NotaFiscal.NotasHandler))
	mux.HandleFunc("/v1/notas-fiscais/", auth(h.NotaFiscal.NotaPorIDHandler))

	// --- 7. Catálogos de opções ---
	mux.HandleFunc("/v1/opcoes/", auth(h.Opcao.OpcoesHandler))

	// --- 8. Painel financeiro ---
	mux.HandleFunc("/v1/financeiro/resumo", auth(h.Financeiro.ResumoHandler))
	mux.HandleFunc("/v1/financeiro/evolucao", auth(h.Financeiro.EvolucaoHandler))

	return mux
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
