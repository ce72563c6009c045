package metaclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse lê o corpo e converte respostas de erro em *domain.Error
func HandleResponse(op string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewError(domain.KindTransient, op, 0, fmt.Errorf("erro ao ler resposta: %w", err))
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, classifyError(op, resp.StatusCode, body)
}

// classifyError decide entre falhar imediatamente ou permitir retry
func classifyError(op string, status int, body []byte) error {
	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil || errorResp.Error.Code == 0 {
		bodyStr := string(body)
		base := fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", status, truncate(bodyStr, 300))

		switch {
		case containsTokenExpirationMessage(bodyStr), status == http.StatusUnauthorized:
			return domain.NewError(domain.KindAuth, op, 0, base)
		case status == http.StatusForbidden:
			return domain.NewError(domain.KindPermission, op, 0, base)
		case status == http.StatusTooManyRequests:
			return domain.NewError(domain.KindRateLimit, op, 0, base)
		}
		return domain.NewError(domain.KindTransient, op, 0, base)
	}

	code := errorResp.Error.Code
	base := errors.New(errorResp.Error.Message)

	switch {
	case errorResp.IsRateLimited():
		return domain.NewError(domain.KindRateLimit, op, code, base)
	case errorResp.IsAuth():
		return domain.NewError(domain.KindAuth, op, code, base)
	case errorResp.IsInvalidField():
		return domain.NewError(domain.KindPermission, op, code, fmt.Errorf("campo inválido: %w", base))
	case errorResp.IsPermission():
		return domain.NewError(domain.KindPermission, op, code, base)
	}

	return domain.NewError(domain.KindTransient, op, code, base)
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
