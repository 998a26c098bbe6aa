package handler

import (
	"net/http"

	"github.com/airqsat/airq-sat-api/internal/api/handler/router"
	"github.com/airqsat/airq-sat-api/internal/usecases/analyzing"
	"github.com/airqsat/airq-sat-api/internal/usecases/configuring"
	"github.com/airqsat/airq-sat-api/internal/usecases/processing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Settings(service configuring.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/config",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/api/config",
			Method:  http.MethodPost,
			Handler: UpdateSettings(service),
		},
	}
}

func Regions(service analyzing.AnalysisService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/regioes",
			Method:  http.MethodGet,
			Handler: ListRegions(service),
		},
	}
}

func AirQuality(service analyzing.AnalysisService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/qualidade_ar",
			Method:  http.MethodGet,
			Handler: GetAirQuality(service),
		},
	}
}

func Analyses(service analyzing.AnalysisService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/nova_analise",
			Method:  http.MethodPost,
			Handler: CreateManualAnalysis(service),
		},
	}
}

func AutomatedAnalyses(service processing.Processor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/automated_analysis",
			Method:  http.MethodPost,
			Handler: TriggerAutomatedAnalysis(service),
		},
	}
}
