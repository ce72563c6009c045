package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

const (
	defaultQueueLimit = 10
	maxQueueLimit     = 100
)

func brandParams(r *http.Request) (string, domain.DateWindow, error) {
	brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if brandID == "" {
		return "", "", errors.New("brand id obrigatório")
	}

	window, err := domain.ParseDateWindow(r.URL.Query().Get("window"))
	if err != nil {
		return "", "", errors.Wrap(err, "parâmetro window")
	}

	return brandID, window, nil
}

// SyncBrand sincroniza os anúncios da marca sem classificar
func SyncBrand(service BrandSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandID, window, err := brandParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{"brand_id": brandID, "window": window})
		logger.Info("sync: sincronização manual solicitada")

		summary, err := service.SyncBrand(r.Context(), brandID, window)
		if err != nil {
			writeServiceError(w, r, "sync_brand", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// RunBrandCycle executa o ciclo completo: sincroniza, classifica, detecta breakouts e enfileira enriquecimento
func RunBrandCycle(service BrandSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "brand id obrigatório", nil)
			return
		}

		summary, err := service.RunCycle(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, r, "run_cycle", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func ClassifyBrand(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandID, window, err := brandParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summary, err := service.Classify(r.Context(), brandID, window)
		if err != nil {
			writeServiceError(w, r, "classify", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// GetEnrichmentQueue lista os anúncios que ainda aguardam enriquecimento, na ordem de envio
func GetEnrichmentQueue(service EnrichmentLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := defaultQueueLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > maxQueueLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 100", nil)
				return
			}
			limit = parsed
		}

		ads, err := service.Pending(r.Context(), brandID, limit)
		if err != nil {
			writeServiceError(w, r, "enrichment_queue", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"brand_id": brandID,
			"count":    len(ads),
			"ads":      ads,
		})
	})
}
