package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
	"github.com/vfg2006/ad-performance-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePerformance   = "performance"
	CronJobTypeDailyInsights = "daily-insights"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	PerformanceSync   CronTrigger
	DailyInsightsSync CronTrigger
}

func (s CronJobServices) byType() map[string]CronTrigger {
	return map[string]CronTrigger{
		CronJobTypePerformance:   s.PerformanceSync,
		CronJobTypeDailyInsights: s.DailyInsightsSync,
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || !userClaims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		triggers := services.byType()
		var selected []string
		switch cronType {
		case CronJobTypeAll:
			selected = []string{CronJobTypePerformance, CronJobTypeDailyInsights}
		case CronJobTypePerformance, CronJobTypeDailyInsights:
			selected = []string{cronType}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: performance, daily-insights, all", nil)
			return
		}

		started := make(map[string]bool, len(selected))
		for _, name := range selected {
			trigger := triggers[name]
			if trigger == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível: "+name, nil)
				return
			}
			started[name] = trigger.TriggerManualSync(r.Context())
		}

		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, trigger := range services.byType() {
			if trigger != nil {
				status[name] = trigger.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
