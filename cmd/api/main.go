package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-performance-api/infrastructure/queue"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/api"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/scheduler"
	"github.com/vfg2006/ad-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-performance-api/internal/usecases/enrichment"
	"github.com/vfg2006/ad-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
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

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := queue.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()

	adRepo := repository.NewAdRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	brandRepo := repository.NewBrandRepository(pgConn)
	analysisCacheRepo := repository.NewAnalysisCacheRepository(pgConn)
	connectionRepo := repository.NewConnectionRepository(pgConn, cfg.SecretKey)

	authenticator := authenticating.NewService(cfg)

	// Cada token recebe seu próprio cliente e limitador de chamadas
	sources := meta.NewFactory(metaclient.NewFactory(cfg.Meta))

	syncService := syncing.NewService(adRepo, adInsightRepo, analysisCacheRepo)
	classificationService := ranking.NewClassificationService(brandRepo, adRepo, analysisCacheRepo)

	breakoutPublisher := queue.NewBreakoutPublisher(redisClient)
	enrichmentQueue := queue.NewEnrichmentQueue(redisClient)
	enrichmentService := enrichment.NewService(
		adRepo,
		enrichment.NewCommentCollector(cfg.PerformanceSync.CommentConcurrency),
		enrichmentQueue,
		cfg.PerformanceSync.EnrichmentBatch,
	)

	performanceSyncService, err := scheduler.NewPerformanceSyncService(
		connectionRepo,
		adRepo,
		sources,
		syncService,
		classificationService,
		breakoutPublisher,
		enrichmentService,
		cfg,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida do agendador de performance")
	}

	dailyInsightsSyncService := scheduler.NewDailyInsightsSyncService(
		connectionRepo,
		adInsightRepo,
		sources,
		syncService,
		cfg,
	)

	// Inicia os agendadores em background
	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de performance")
	} else {
		logrus.Info("Agendador de sincronização de performance iniciado com sucesso")
	}

	if err := dailyInsightsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de insights diários")
	} else {
		logrus.Info("Agendador de insights diários iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:     authenticator,
		Syncer:            performanceSyncService,
		Classifier:        classificationService,
		Enrichment:        enrichmentService,
		PerformanceSync:   performanceSyncService,
		DailyInsightsSync: dailyInsightsSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	performanceSyncService.Stop()
	dailyInsightsSyncService.Stop()
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

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
