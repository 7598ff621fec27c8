package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/classifier"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/infrastructure/dataset"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/api"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/scheduler"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/datasets"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insights-api/internal/usecases/querying"
	"github.com/vfg2006/sales-insights-api/internal/usecases/sentiment"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	sentimentRepo := repository.NewSentimentRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	textClassifier := newClassifier(cfg)
	sentimentService := sentiment.NewService(
		textClassifier,
		saleRepo,
		sentimentRepo,
		cfg.Classifier.MaxConcurrency,
	)

	aggregateService := aggregating.NewService(saleRepo)
	insightService := insighting.NewService(aggregateService, sentimentService)

	queryRouter, err := querying.NewRouter(aggregateService)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build query router")
	}

	datasetService := datasets.NewService(saleRepo, sentimentRepo)

	seedDataset(ctx, cfg, datasetService)

	sentimentSyncService := scheduler.NewSentimentSyncService(sentimentService, cfg)
	if err := sentimentSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start sentiment sync scheduler")
	}

	server, err := api.New(
		cfg,
		aggregateService,
		insightService,
		sentimentService,
		queryRouter,
		datasetService,
		authenticator,
		sentimentSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// newClassifier selects the classification capability from configuration:
// the remote inference endpoint or the in-process lexicon model.
func newClassifier(cfg *config.Config) sentiment.TextClassifier {
	if cfg.Classifier.Mode == "remote" {
		logrus.WithField("url", cfg.Classifier.URL).Info("using remote sentiment classifier")
		return classifier.NewClient(cfg)
	}

	logrus.Info("using lexicon sentiment classifier")
	return classifier.NewLexicon()
}

// seedDataset loads the configured CSV into an empty database so a fresh
// deployment answers queries without a manual upload.
func seedDataset(ctx context.Context, cfg *config.Config, service datasets.DatasetService) {
	if cfg.Dataset.SeedPath == "" {
		return
	}

	existing, err := service.List()
	if err != nil {
		logrus.WithError(err).Warn("seed: failed to check current dataset")
		return
	}
	if len(existing) > 0 {
		logrus.WithField("records", len(existing)).Info("seed: dataset already present, skipping")
		return
	}

	file, err := os.Open(cfg.Dataset.SeedPath)
	if err != nil {
		logrus.WithError(err).WithField("path", cfg.Dataset.SeedPath).Warn("seed: failed to open seed file")
		return
	}
	defer file.Close()

	records, err := dataset.Load(file)
	if err != nil {
		logrus.WithError(err).Warn("seed: failed to load seed dataset")
		return
	}

	if err := service.Replace(ctx, records); err != nil {
		logrus.WithError(err).Warn("seed: failed to store seed dataset")
		return
	}

	logrus.WithField("records", len(records)).Info("seed: dataset loaded")
}
