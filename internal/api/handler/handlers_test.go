package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo"
	openeomocks "github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo/mocks"
	"github.com/airqsat/airq-sat-api/infrastructure/integrator/openeo/openeoclient"
	"github.com/airqsat/airq-sat-api/infrastructure/repository"
	"github.com/airqsat/airq-sat-api/internal/api/handler/router"
	"github.com/airqsat/airq-sat-api/internal/config"
	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/internal/usecases/configuring"
	"github.com/airqsat/airq-sat-api/internal/usecases/processing"
)

var referenceTime = time.Date(2025, 9, 10, 9, 26, 40, 0, time.UTC)

// newTestAPI monta o router completo sobre um store em diretório temporário.
// Um submitter nulo usa o cliente openEO simulado.
func newTestAPI(t *testing.T, submitter openeo.JobSubmitter) http.Handler {
	t.Helper()

	dir := t.TempDir()
	store := repository.NewDataStore(
		filepath.Join(dir, "dados_mock.json"),
		filepath.Join(dir, "config.json"),
	)

	clock := clockwork.NewFakeClockAt(referenceTime)
	cfg := &config.Config{}

	airQualityRepo := repository.NewAirQualityRepository(store)
	regionRepo := repository.NewRegionRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	analysisService := analyzing.NewService(cfg, airQualityRepo, regionRepo, clock)
	settingsService := configuring.NewService(settingsRepo)

	if submitter == nil {
		submitter = openeo.New(openeoclient.NewSimulatedClient(clock))
	}
	processor := processing.NewService(settingsRepo, submitter)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Settings(settingsService)...),
		router.WithRoutes(Regions(analysisService)...),
		router.WithRoutes(AirQuality(analysisService)...),
		router.WithRoutes(Analyses(analysisService)...),
		router.WithRoutes(AutomatedAnalyses(processor)...),
	)

	return rt
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateManualAnalysis(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedRisk  string
		expectedAQI   int
		expectedNivel string
	}{
		{
			name:          "NO₂ baixo gera Bom com AQI 50",
			body:          `{"nome_regiao":"Centro","no2":"5"}`,
			expectedRisk:  "Bom",
			expectedAQI:   50,
			expectedNivel: "Bom",
		},
		{
			name:          "NO₂ alto gera Ruim com AQI 150",
			body:          `{"nome_regiao":"Centro","no2":"50"}`,
			expectedRisk:  "Ruim",
			expectedAQI:   150,
			expectedNivel: "Ruim",
		},
		{
			name:          "NO₂ como número JSON também é aceito",
			body:          `{"nome_regiao":"Centro","no2":50}`,
			expectedRisk:  "Ruim",
			expectedAQI:   150,
			expectedNivel: "Ruim",
		},
		{
			name:          "NO₂ ausente conta como zero",
			body:          `{"nome_regiao":"Centro"}`,
			expectedRisk:  "Bom",
			expectedAQI:   50,
			expectedNivel: "Bom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAPI(t, nil)

			rec := doRequest(t, h, http.MethodPost, "/api/nova_analise", tt.body)
			require.Equal(t, http.StatusCreated, rec.Code)

			var created struct {
				Status     string `json:"status"`
				Mensagem   string `json:"mensagem"`
				NovaRegiao struct {
					ID   string `json:"id"`
					Nome string `json:"nome"`
				} `json:"nova_regiao"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

			assert.Equal(t, "sucesso", created.Status)
			assert.Equal(t, "Análise salva.", created.Mensagem)
			assert.Equal(t, "Centro", created.NovaRegiao.Nome)
			assert.Equal(t, fmt.Sprintf("centro-%d", referenceTime.Unix()), created.NovaRegiao.ID)

			// O registro persistido é consultável pelo id retornado
			rec = doRequest(t, h, http.MethodGet, "/api/qualidade_ar?regiao_id="+created.NovaRegiao.ID, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var record struct {
				NomeRegiao string `json:"nome_regiao"`
				AQIGeral   int    `json:"aqi_geral"`
				NivelRisco string `json:"nivel_risco"`
				Satelite   string `json:"satelite"`
				Poluentes  []struct {
					Formula    string  `json:"formula"`
					Valor      float64 `json:"valor"`
					NivelRisco string  `json:"nivel_risco"`
				} `json:"poluentes"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))

			assert.Equal(t, "Centro", record.NomeRegiao)
			assert.Equal(t, tt.expectedAQI, record.AQIGeral)
			assert.Equal(t, tt.expectedRisk, record.NivelRisco)
			assert.Equal(t, "Manual", record.Satelite)
			require.Len(t, record.Poluentes, 1)
			assert.Equal(t, "NO₂", record.Poluentes[0].Formula)
			assert.Equal(t, tt.expectedNivel, record.Poluentes[0].NivelRisco)
		})
	}
}

func TestCreateManualAnalysis_NomeObrigatorio(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/nova_analise", `{"no2":"5"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Nome da região é obrigatório.", body["erro"])
}

func TestCreateManualAnalysis_NO2Invalido(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/nova_analise", `{"nome_regiao":"Centro","no2":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["erro"], "no2")
}

func TestGetAirQuality_ParametroAusente(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/qualidade_ar", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Parâmetro 'regiao_id' obrigatório.", body["erro"])
}

func TestGetAirQuality_RegiaoDesconhecida(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/qualidade_ar?regiao_id=desconhecida", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dados para 'desconhecida' não encontrados.", body["erro"])
}

func TestListRegions(t *testing.T) {
	h := newTestAPI(t, nil)

	// Sem análises a lista é vazia, nunca null
	rec := doRequest(t, h, http.MethodGet, "/api/regioes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/api/nova_analise", `{"nome_regiao":"Zona Norte","no2":"12"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/regioes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var regions []struct {
		ID   string `json:"id"`
		Nome string `json:"nome"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	require.Len(t, regions, 1)
	assert.Equal(t, "Zona Norte", regions[0].Nome)
	assert.True(t, strings.HasPrefix(regions[0].ID, "zona-norte-"))
}

func TestSettings_RoundTrip(t *testing.T) {
	h := newTestAPI(t, nil)

	// Configuração inicia vazia
	rec := doRequest(t, h, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"openeo_url":"","client_id":"","client_secret":""}`, rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/api/config",
		`{"openeo_url":"https://openeo.dataspace.copernicus.eu","client_id":"cliente","client_secret":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "sucesso", status["status"])
	assert.Equal(t, "Configurações salvas.", status["mensagem"])

	rec = doRequest(t, h, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"openeo_url":"https://openeo.dataspace.copernicus.eu","client_id":"cliente","client_secret":"segredo"}`,
		rec.Body.String())
}

func TestSettings_CamposAusentesFicamVazios(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/config",
		`{"openeo_url":"https://openeo.dataspace.copernicus.eu","client_id":"cliente","client_secret":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// O documento é sobrescrito por inteiro: campos omitidos voltam a vazio
	rec = doRequest(t, h, http.MethodPost, "/api/config", `{"client_id":"outro"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/config", "")
	assert.JSONEq(t, `{"openeo_url":"","client_id":"outro","client_secret":""}`, rec.Body.String())
}

func TestTriggerAutomatedAnalysis_ConfiguracaoAusente(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/automated_analysis",
		`{"nome_regiao":"Centro","west":-46.8,"south":-23.7,"east":-46.3,"north":-23.3,"start_date":"2025-09-01","end_date":"2025-09-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["erro"], "credenciais do Copernicus")
}

func TestTriggerAutomatedAnalysis_Sucesso(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/config",
		`{"openeo_url":"https://openeo.dataspace.copernicus.eu","client_id":"cliente","client_secret":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/automated_analysis",
		`{"nome_regiao":"Centro","west":-46.8,"south":-23.7,"east":-46.3,"north":-23.3,"start_date":"2025-09-01","end_date":"2025-09-10"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body struct {
		Status   string `json:"status"`
		Mensagem string `json:"mensagem"`
		JobID    string `json:"job_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "sucesso", body.Status)
	assert.Equal(t, "Análise automática para 'Centro' foi iniciada.", body.Mensagem)
	assert.Equal(t, fmt.Sprintf("job_%d", referenceTime.Unix()), body.JobID)
}

func TestTriggerAutomatedAnalysis_FalhaNaSubmissao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := openeomocks.NewMockJobSubmitter(ctrl)
	submitter.EXPECT().
		SubmitBatchJob(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("backend indisponível"))

	h := newTestAPI(t, submitter)

	rec := doRequest(t, h, http.MethodPost, "/api/config",
		`{"openeo_url":"https://openeo.dataspace.copernicus.eu","client_id":"cliente","client_secret":"segredo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/automated_analysis", `{"nome_regiao":"Centro"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["erro"], "Falha ao iniciar a tarefa de análise automática")
}

func TestHealthcheck(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := doRequest(t, h, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
