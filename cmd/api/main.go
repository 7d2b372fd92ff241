package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/ga/gaclient"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/api"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/scheduler"
	"github.com/vfg2006/creative-manager-api/internal/usecases/account"
	"github.com/vfg2006/creative-manager-api/internal/usecases/alerting"
	"github.com/vfg2006/creative-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-manager-api/internal/usecases/deciding"
	"github.com/vfg2006/creative-manager-api/internal/usecases/gasync"
	"github.com/vfg2006/creative-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/creative-manager-api/internal/usecases/syncing"
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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	structureRepo := repository.NewStructureRepository(pgConn)
	metricRepo := repository.NewDailyMetricRepository(pgConn, cfg.FullSync.UpsertBatchSize)
	syncRunRepo := repository.NewSyncRunRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	sessionRepo := repository.NewGASessionRepository(pgConn, cfg.FullSync.UpsertBatchSize)

	authenticator := authenticating.NewService(userRepo, cfg)

	httpClient := &http.Client{Timeout: 30 * time.Second}

	metaClient := metaclient.NewClient(cfg, httpClient)

	// O repositório de contas é o armazenamento dos tokens renovados
	tokenManager, err := metaclient.NewTokenManager(cfg, metaClient, accountRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	gaClient := gaclient.NewClient(cfg, httpClient)

	accountService := account.NewService(accountRepo, metaClient, tokenManager, cfg)
	syncService := syncing.NewService(metaClient, tokenManager, accountRepo, structureRepo, metricRepo, syncRunRepo, cfg)
	gaSyncUsecase := gasync.NewService(gaClient, sessionRepo, syncRunRepo, cfg)
	alertService := alerting.NewService(metricRepo, alertRepo, cfg.AlertSync)

	decider := deciding.NewService(deciding.SettingsFromConfig(cfg.Decision))
	insightService := insighting.NewService(accountRepo, metricRepo, syncRunRepo, sessionRepo, decider)

	// Inicializa os agendadores de sincronização e detecção
	fullSyncService := scheduler.NewFullSyncService(accountRepo, syncService, cfg)
	alertDetectService := scheduler.NewAlertDetectService(accountRepo, alertService, cfg)
	gaSyncService := scheduler.NewGASyncService(accountRepo, gaSyncUsecase, cfg)

	// Inicia os agendadores em background
	if err := fullSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização completa")
	} else {
		logrus.Info("Agendador de sincronização completa iniciado com sucesso")
	}

	if err := alertDetectService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de detecção de alertas")
	} else {
		logrus.Info("Agendador de detecção de alertas iniciado com sucesso")
	}

	if err := gaSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Google Analytics")
	} else {
		logrus.Info("Agendador de sincronização do Google Analytics iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		accountService,
		alertService,
		authenticator,
		fullSyncService,
		alertDetectService,
		gaSyncService,
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
