package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gobuffet/config"
	"gobuffet/internal/pkg/cache"
	"gobuffet/internal/pkg/logger"
	"gobuffet/internal/pkg/middleware"
	"gobuffet/internal/pkg/storage"
	"gobuffet/internal/pkg/token"

	// Camadas por entidade para Injeção de Dependências
	"gobuffet/internal/api/avaliacao"
	"gobuffet/internal/api/custo"
	"gobuffet/internal/api/equipe"
	"gobuffet/internal/api/escala"
	"gobuffet/internal/api/evento"
	"gobuffet/internal/api/financeiro"
	"gobuffet/internal/api/notafiscal"
	"gobuffet/internal/api/opcao"
	"gobuffet/internal/api/router"
	"gobuffet/internal/api/usuario"
	"gobuffet/internal/repository/avaliacaorepo"
	"gobuffet/internal/repository/custofixorepo"
	"gobuffet/internal/repository/custorepo"
	"gobuffet/internal/repository/equiperepo"
	"gobuffet/internal/repository/escalarepo"
	"gobuffet/internal/repository/eventorepo"
	"gobuffet/internal/repository/notafiscalrepo"
	"gobuffet/internal/repository/opcaorepo"
	"gobuffet/internal/repository/usuariorepo"
	"gobuffet/internal/service/avaliacaoservice"
	"gobuffet/internal/service/custoservice"
	"gobuffet/internal/service/equipeservice"
	"gobuffet/internal/service/escalaservice"
	"gobuffet/internal/service/eventoservice"
	"gobuffet/internal/service/financeiroservice"
	"gobuffet/internal/service/notafiscalservice"
	"gobuffet/internal/service/opcaoservice"
	"gobuffet/internal/service/usuarioservice"
)

// novoStore abre o backend de persistência configurado em STORAGE_DRIVER.
func novoStore(cfg *config.Config, logg logger.Logger) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case "sqlite":
		st, err := storage.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logg.Info("Persistência SQLite aberta.", map[string]interface{}{"path": cfg.SQLitePath})
		return st, func() { st.Close() }, nil

	case "postgres":
		st, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logg.Info("Conexão PostgreSQL estabelecida.", nil)
		return st, func() { st.Close() }, nil

	case "redis":
		st, err := storage.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		logg.Info("Persistência Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		return st, func() {}, nil

	case "memoria":
		// Sem persistência entre execuções. Útil para demonstrações.
		logg.Warn("Persistência em memória: os dados serão perdidos no encerramento.", nil)
		return storage.NewMemoriaStore(), func() {}, nil

	default:
		logg.Fatal("STORAGE_DRIVER desconhecido: "+cfg.StorageDriver, nil)
		return nil, nil, nil
	}
}

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoBuffet...")
	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura
	store, fechar, err := novoStore(cfg, logg)
	if err != nil {
		logg.Fatal("Falha ao abrir a persistência.", err)
	}
	defer fechar()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	eventoRepo := eventorepo.NewEventoRepository(store, logg)
	custoRepo := custorepo.NewCustoRepository(store, logg)
	custoFixoRepo := custofixorepo.NewCustoFixoRepository(store, logg)
	equipeRepo := equiperepo.NewEquipeRepository(store, logg)
	escalaRepo := escalarepo.NewEscalaRepository(store, logg)
	avaliacaoRepo := avaliacaorepo.NewAvaliacaoRepository(store, logg)
	notaRepo := notafiscalrepo.NewNotaFiscalRepository(store, logg)
	opcaoRepo := opcaorepo.NewOpcaoRepository(store, logg)
	usuarioRepo := usuariorepo.NewUsuarioRepository(store, logg)
	logg.Debug("Repositórios inicializados.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	logg.Debug("Serviço de Tokens JWT inicializado.", nil)

	eventoSvc := eventoservice.NewService(eventoRepo, logg)
	custoSvc := custoservice.NewService(custoRepo, custoFixoRepo, logg)
	equipeSvc := equipeservice.NewService(equipeRepo, logg)
	escalaSvc := escalaservice.NewService(escalaRepo, logg)
	avaliacaoSvc := avaliacaoservice.NewService(avaliacaoRepo, logg)
	notaSvc := notafiscalservice.NewService(notaRepo, logg)
	opcaoSvc := opcaoservice.NewService(opcaoRepo, logg)
	financeiroSvc := financeiroservice.NewService(eventoRepo, custoRepo, custoFixoRepo, notaRepo, logg)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, tokenSvc, logg)
	logg.Debug("Serviços inicializados.", nil)

	// Semeia o administrador inicial, quando configurado.
	if cfg.AdminSenha != "" {
		if _, err := usuarioSvc.GarantirAdmin(context.Background(), cfg.AdminNome, cfg.AdminEmail, cfg.AdminSenha); err != nil {
			logg.Fatal("Falha ao semear o administrador inicial.", err)
		}
		logg.Info("Administrador inicial garantido.", map[string]interface{}{"email": cfg.AdminEmail})
	} else {
		logg.Warn("ADMIN_SENHA não definida. Nenhum administrador foi semeado.", nil)
	}

	handlers := router.Handlers{
		Evento:     evento.NewHandler(eventoSvc, logg),
		Custo:      custo.NewHandler(custoSvc, logg),
		Equipe:     equipe.NewHandler(equipeSvc, logg),
		Escala:     escala.NewHandler(escalaSvc, logg),
		Avaliacao:  avaliacao.NewHandler(avaliacaoSvc, logg),
		NotaFiscal: notafiscal.NewHandler(notaSvc, logg),
		Opcao:      opcao.NewHandler(opcaoSvc, logg),
		Financeiro: financeiro.NewHandler(financeiroSvc, logg),
		Usuario:    usuario.NewHandler(usuarioSvc, logg),
	}
	logg.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	var handler http.Handler = router.NewRouter(handlers, tokenSvc)

	// Rate limiting só quando há Redis disponível.
	if cfg.RedisAddr != "" {
		cacheClient := cache.NewRedisClient(cfg.RedisAddr)
		handler = middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)(handler)
		logg.Info("Rate limiting habilitado via Redis.", map[string]interface{}{"addr": cfg.RedisAddr})
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor GoBuffet ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}

	logg.Info("Servidor encerrado com sucesso.", nil)
}
