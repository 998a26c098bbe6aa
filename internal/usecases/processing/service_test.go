package processing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	openeomocks "github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo/mocks"
	"github.com/airqsat/airq-sat-api/infrastructure/repository/mocks"
	"github.com/airqsat/airq-sat-api/internal/domain"
)

func TestService_TriggerAutomatedAnalysis(t *testing.T) {
	completeSettings := domain.Settings{
		OpenEOURL:    "https://openeo.dataspace.copernicus.eu",
		ClientID:     "cliente",
		ClientSecret: "segredo",
	}

	params := domain.AutomatedAnalysisParams{
		RegionName: "Centro",
		West:       -46.8,
		South:      -23.7,
		East:       -46.3,
		North:      -23.3,
		StartDate:  "2025-09-01",
		EndDate:    "2025-09-10",
	}

	tests := []struct {
		name        string
		settings    domain.Settings
		setup       func(submitter *openeomocks.MockJobSubmitter)
		expectedJob string
		expectedErr error
	}{
		{
			name:     "Credenciais completas submetem o job",
			settings: completeSettings,
			setup: func(submitter *openeomocks.MockJobSubmitter) {
				submitter.EXPECT().
					SubmitBatchJob(gomock.Any(), params, completeSettings).
					Return("job_1757500000", nil)
			},
			expectedJob: "job_1757500000",
		},
		{
			name:        "Configuração vazia é rejeitada sem submissão",
			settings:    domain.Settings{},
			expectedErr: ErrConfigurationMissing,
		},
		{
			name: "Configuração parcial é rejeitada sem submissão",
			settings: domain.Settings{
				OpenEOURL: "https://openeo.dataspace.copernicus.eu",
				ClientID:  "cliente",
			},
			expectedErr: ErrConfigurationMissing,
		},
		{
			name:     "Falha na submissão vira erro de job",
			settings: completeSettings,
			setup: func(submitter *openeomocks.MockJobSubmitter) {
				submitter.EXPECT().
					SubmitBatchJob(gomock.Any(), params, completeSettings).
					Return("", errors.New("backend indisponível"))
			},
			expectedErr: ErrJobSubmission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSettingsRepo := mocks.NewMockSettingsRepository(ctrl)
			mockSettingsRepo.EXPECT().Get().Return(tt.settings, nil)

			mockSubmitter := openeomocks.NewMockJobSubmitter(ctrl)
			if tt.setup != nil {
				tt.setup(mockSubmitter)
			}

			service := NewService(mockSettingsRepo, mockSubmitter)

			jobID, err := service.TriggerAutomatedAnalysis(context.Background(), params)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedJob, jobID)
		})
	}
}
