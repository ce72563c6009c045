package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfAndRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      ErrorKind
		retryable bool
	}{
		{"Erro de autenticação", NewError(KindAuth, "request", 190, errors.New("token")), KindAuth, false},
		{"Erro de permissão", NewError(KindPermission, "request", 200, errors.New("scope")), KindPermission, false},
		{"Rate limit", NewError(KindRateLimit, "request", 17, errors.New("limit")), KindRateLimit, true},
		{"Transitório", NewError(KindTransient, "request", 0, errors.New("503")), KindTransient, true},
		{"Erro envolvido por fmt.Errorf", fmt.Errorf("sync: %w", NewError(KindRateLimit, "request", 4, errors.New("x"))), KindRateLimit, true},
		{"Sentinela de configuração", fmt.Errorf("ciclo: %w", ErrNoActiveConnection), KindConfig, false},
		{"Erro comum", errors.New("qualquer"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("pré-verificação: %w", ErrTokenExpired)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.True(t, IsAuth(err))
}
