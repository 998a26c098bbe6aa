package main

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo"
	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo/openeoclient"
	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/api"
	"github.com/airqsat/airq-sat-api/internal/config"
	"github.com/airqsat/airq-sat-api/internal/scheduler"
	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/internal/usecases/configuring"
	"github.com/airqsat/airq-sat-api/internal/usecases/processing"
)

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()

	// Os dois documentos JSON são carregados uma única vez na inicialização
	store := repository.NewDataStore(cfg.Store.DataFile, cfg.Store.SettingsFile)

	airQualityRepo := repository.NewAirQualityRepository(store)
	regionRepo := repository.NewRegionRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	analysisService := analyzing.NewService(cfg, airQualityRepo, regionRepo, clock)
	settingsService := configuring.NewService(settingsRepo)

	openeoClient := openeoclient.NewSimulatedClient(clock)
	openeoIntegrator := openeo.New(openeoClient)
	processor := processing.NewService(settingsRepo, openeoIntegrator)

	// Agendador de backups do documento de dados
	backupService := scheduler.NewBackupService(store, clock, cfg)
	if err := backupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backups")
	}

	server, err := api.New(cfg, analysisService, settingsService, processor)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
