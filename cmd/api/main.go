package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/gemini"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/kommoclient"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/api"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/scheduler"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/evolution"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/integrating"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	metaAdAccountRepo := repository.NewMetaAdAccountRepository(pgConn)
	metaInsightRepo := repository.NewMetaInsightDailyRepository(pgConn)
	googleInsightRepo := repository.NewGoogleInsightDailyRepository(pgConn)
	integrationConfigRepo := repository.NewIntegrationConfigRepository(pgConn)

	authenticator := authenticating.NewService(clientRepo, cfg)

	kommoClient := kommoclient.NewClient(cfg)
	kommoIntegrator := kommo.New(cfg, kommoClient)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	geminiIntegrator := gemini.New(cfg)

	evolutionService := evolution.NewService(
		cfg,
		kommoIntegrator,
		metaInsightRepo,
		googleInsightRepo,
		integrationConfigRepo,
	)

	reportingService := reporting.NewService(
		cfg,
		metaIntegrator,
		metaAdAccountRepo,
		metaInsightRepo,
	)

	integratingService := integrating.NewService(integrationConfigRepo, kommoIntegrator)

	// Inicializa o agendador de sincronização noturna de insights do Meta
	metaInsightSyncService := scheduler.NewMetaInsightSyncService(
		reportingService,
		metaInsightRepo,
		cfg,
	)

	if err := metaInsightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights do Meta")
	} else {
		logrus.Info("Agendador de sincronização de insights do Meta iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		evolutionService,
		reportingService,
		integratingService,
		geminiIntegrator,
		authenticator,
		metaInsightSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
