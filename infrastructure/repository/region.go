package repository

import (
	"github.com/airqsat/airq-sat-api/internal/domain"
)

type RegionRepository interface {
	List() ([]domain.Region, error)
}

type regionRepository struct {
	store *DataStore
}

func NewRegionRepository(store *DataStore) RegionRepository {
	return &regionRepository{
		store: store,
	}
}

func (r *regionRepository) List() ([]domain.Region, error) {
	return r.store.ListRegions(), nil
}
