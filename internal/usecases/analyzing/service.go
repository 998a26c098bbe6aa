// Package analyzing monta e consulta os registros de análise de qualidade do ar
package analyzing

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/config"
	"github.com/airqsat/airq-sat-api/internal/domain"
	"github.com/airqsat/airq-sat-api/internal/usecases/classifying"
	"github.com/airqsat/airq-sat-api/pkg/utils"
)

// ManualAnalysisInput são os dados brutos de uma análise submetida manualmente
type ManualAnalysisInput struct {
	RegionName string
	Source     string
	NO2        float64
}

type AnalysisService interface {
	CreateManualAnalysis(input ManualAnalysisInput) (*domain.Region, *domain.AnalysisRecord, error)
	GetAirQuality(regionID string) (*domain.AnalysisRecord, error)
	ListRegions() ([]domain.Region, error)
}

type Service struct {
	airQualityRepo repository.AirQualityRepository
	regionRepo     repository.RegionRepository
	clock          clockwork.Clock
	airQualityCfg  config.AirQuality
}

func NewService(
	cfg *config.Config,
	airQualityRepo repository.AirQualityRepository,
	regionRepo repository.RegionRepository,
	clock clockwork.Clock,
) AnalysisService {
	return &Service{
		airQualityRepo: airQualityRepo,
		regionRepo:     regionRepo,
		clock:          clock,
		airQualityCfg:  cfg.AirQuality,
	}
}

// CreateManualAnalysis classifica as leituras, agrega o risco geral e grava a
// região e o registro resultante em uma única escrita no store.
func (s *Service) CreateManualAnalysis(input ManualAnalysisInput) (*domain.Region, *domain.AnalysisRecord, error) {
	if input.RegionName == "" {
		return nil, nil, ErrRegionNameRequired
	}

	source := input.Source
	if source == "" {
		source = domain.DefaultSourceManual
	}

	now := s.clock.Now()

	// O sufixo de epoch garante ids distintos para submissões repetidas do
	// mesmo nome de região
	region := domain.Region{
		ID:   utils.Slugify(fmt.Sprintf("%s-%d", input.RegionName, now.Unix())),
		Name: input.RegionName,
	}

	pollutants := buildPollutants(input)
	overallRisk, overallAQI := classifying.Aggregate(pollutants)

	record := domain.AnalysisRecord{
		RegionName: input.RegionName,
		// O sufixo Z é aplicado ao horário local, sem conversão para UTC
		LastUpdated: now.Format("2006-01-02T15:04:05.000000") + "Z",
		Source:      source,
		OverallAQI:  overallAQI,
		OverallRisk: overallRisk,
		Pollutants:  pollutants,
	}

	if err := s.airQualityRepo.SaveAnalysis(region, record); err != nil {
		return nil, nil, errors.Wrap(ErrSaveAnalysis, err.Error())
	}

	return &region, &record, nil
}

// buildPollutants monta a sequência ordenada de leituras classificadas
func buildPollutants(input ManualAnalysisInput) []domain.Pollutant {
	return []domain.Pollutant{
		{
			Name:      domain.PollutantNO2Name,
			Formula:   domain.PollutantNO2Code,
			Value:     input.NO2,
			Unit:      domain.PollutantNO2Unit,
			RiskLevel: classifying.Classify(domain.PollutantNO2Code, input.NO2),
		},
		// Outros poluentes do formulário entram aqui quando ganharem regras
	}
}

// GetAirQuality retorna o registro da região aplicando o atraso artificial
// configurado antes de responder consultas bem-sucedidas.
func (s *Service) GetAirQuality(regionID string) (*domain.AnalysisRecord, error) {
	record, err := s.airQualityRepo.GetByRegionID(regionID)
	if err != nil {
		return nil, err
	}

	if record == nil {
		return nil, ErrRegionNotFound
	}

	if s.airQualityCfg.LookupDelay > 0 {
		s.clock.Sleep(s.airQualityCfg.LookupDelay)
	}

	return record, nil
}

func (s *Service) ListRegions() ([]domain.Region, error) {
	return s.regionRepo.List()
}
