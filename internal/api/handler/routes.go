package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-insights-api/internal/usecases/datasets"
	"github.com/vfg2006/sales-insights-api/internal/usecases/insighting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Views(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/views",
			Method:  http.MethodGet,
			Handler: ListViews(),
		},
		{
			Path:    "/v1/views/:name",
			Method:  http.MethodGet,
			Handler: GetAggregateView(service),
		},
	}
}

func Insights(service insighting.Insighter, sentiments insighting.SentimentDistributor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/report",
			Method:  http.MethodGet,
			Handler: GetInsightReport(service),
		},
		{
			Path:    "/v1/insights/sentiment",
			Method:  http.MethodGet,
			Handler: GetSentimentDistribution(sentiments),
		},
	}
}

func Query(answerer QueryAnswerer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/query",
			Method:  http.MethodPost,
			Handler: AskQuestion(answerer),
		},
	}
}

func Datasets(service datasets.DatasetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: ReplaceDataset(service),
		},
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: ListDataset(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
