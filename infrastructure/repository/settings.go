package repository

import (
	"github.com/airqsat/airq-sat-api/internal/domain"
)

type SettingsRepository interface {
	Get() (domain.Settings, error)
	Replace(settings domain.Settings) error
}

type settingsRepository struct {
	store *DataStore
}

func NewSettingsRepository(store *DataStore) SettingsRepository {
	return &settingsRepository{
		store: store,
	}
}

func (r *settingsRepository) Get() (domain.Settings, error) {
	return r.store.GetSettings(), nil
}

func (r *settingsRepository) Replace(settings domain.Settings) error {
	return r.store.ReplaceSettings(settings)
}
