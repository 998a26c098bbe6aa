package repository

import (
	"github.com/airqsat/airq-sat-api/internal/domain"
)

type AirQualityRepository interface {
	// GetByRegionID retorna nil quando não há registro para a região
	GetByRegionID(regionID string) (*domain.AnalysisRecord, error)
	SaveAnalysis(region domain.Region, record domain.AnalysisRecord) error
}

type airQualityRepository struct {
	store *DataStore
}

func NewAirQualityRepository(store *DataStore) AirQualityRepository {
	return &airQualityRepository{
		store: store,
	}
}

func (r *airQualityRepository) GetByRegionID(regionID string) (*domain.AnalysisRecord, error) {
	record, ok := r.store.GetAnalysis(regionID)
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *airQualityRepository) SaveAnalysis(region domain.Region, record domain.AnalysisRecord) error {
	return r.store.SaveAnalysis(region, record)
}
