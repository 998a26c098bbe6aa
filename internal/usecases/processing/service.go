// Package processing dispara análises automáticas no serviço remoto de
// processamento de dados de satélite.
package processing

import (
	"context"

	"github.com/pkg/errors"

	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo"
	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/pkg/log"
)

type Processor interface {
	TriggerAutomatedAnalysis(ctx context.Context, params domain.AutomatedAnalysisParams) (string, error)
}

type Service struct {
	settingsRepo repository.SettingsRepository
	submitter    openeo.JobSubmitter
}

func NewService(settingsRepo repository.SettingsRepository, submitter openeo.JobSubmitter) Processor {
	return &Service{
		settingsRepo: settingsRepo,
		submitter:    submitter,
	}
}

// TriggerAutomatedAnalysis valida as credenciais persistidas e submete o job.
// Não há retentativa: qualquer falha é devolvida ao chamador.
func (s *Service) TriggerAutomatedAnalysis(ctx context.Context, params domain.AutomatedAnalysisParams) (string, error) {
	logger := log.ForContext(ctx)

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return "", errors.Wrap(ErrJobSubmission, err.Error())
	}

	if !settings.Complete() {
		return "", ErrConfigurationMissing
	}

	logger.WithFields(log.Fields{
		"nome_regiao": params.RegionName,
		"openeo_url":  settings.OpenEOURL,
	}).Info("Iniciando análise automática")

	jobID, err := s.submitter.SubmitBatchJob(ctx, params, settings)
	if err != nil {
		logger.WithError(err).Error("Erro na submissão do job openEO")
		return "", errors.Wrap(ErrJobSubmission, err.Error())
	}

	logger.WithField("job_id", jobID).Info("Análise automática iniciada")

	return jobID, nil
}
