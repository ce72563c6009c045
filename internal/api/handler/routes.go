package handler

import (
	"net/http"

	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/ad-performance-api/pkg/middleware"
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

func Brands(syncer BrandSyncer, classifier ranking.RankingService, enrichment EnrichmentLister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncBrand(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/cycle",
			Method:      http.MethodPost,
			Handler:     RunBrandCycle(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/classify",
			Method:      http.MethodPost,
			Handler:     ClassifyBrand(classifier),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/brands/:id/enrichment-queue",
			Method:      http.MethodGet,
			Handler:     GetEnrichmentQueue(enrichment),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
