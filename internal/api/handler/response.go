package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("http: falha ao serializar resposta")
	}
}

// errorCode traduz a categoria do erro de domínio para o código da API
func errorCode(err error) string {
	switch domain.KindOf(err) {
	case domain.KindAuth:
		return apiErrors.ErrConnectionExpired
	case domain.KindConfig:
		return apiErrors.ErrNotConfigured
	case domain.KindPermission, domain.KindData:
		return apiErrors.ErrExternalService
	case domain.KindRateLimit:
		return apiErrors.ErrRateLimited
	case domain.KindTransient:
		return apiErrors.ErrCommunication
	}

	if repository.IsDBError(err) {
		return apiErrors.ErrDatabaseOperation
	}
	return apiErrors.ErrInternalServer
}

func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := errorCode(err)
	log.ForContext(r.Context()).WithFields(log.Fields{
		"op":    op,
		"code":  code,
		"error": err.Error(),
	}).Error("http: falha ao executar operação")

	apiErrors.WriteError(w, code, err.Error(), map[string]string{"kind": string(domain.KindOf(err))})
}
