// Package configuring gerencia as credenciais da API externa de processamento
package configuring

import (
	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/domain"
)

type SettingsService interface {
	GetSettings() (domain.Settings, error)
	ReplaceSettings(settings domain.Settings) error
}

type Service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) SettingsService {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

func (s *Service) GetSettings() (domain.Settings, error) {
	return s.settingsRepo.Get()
}

// ReplaceSettings sobrescreve os três campos por inteiro; campos ausentes no
// corpo da requisição chegam aqui como string vazia.
func (s *Service) ReplaceSettings(settings domain.Settings) error {
	return s.settingsRepo.Replace(settings)
}
