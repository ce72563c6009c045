package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateWindow(t *testing.T) {
	w, err := ParseDateWindow("lifetime")
	require.NoError(t, err)
	assert.Equal(t, "maximum", w.DatePreset())

	w, err = ParseDateWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowLast30Days, w)

	_, err = ParseDateWindow("last_7d")
	assert.ErrorIs(t, err, ErrInvalidDateWindow)
	assert.Equal(t, KindConfig, KindOf(err))
}

func TestTierLimits(t *testing.T) {
	w, p := WindowLast30Days.TierLimits()
	assert.Equal(t, 5, w)
	assert.Equal(t, 15, p)

	w, p = WindowLifetime.TierLimits()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, p)
}

func TestConnection_IsExpiredAndHandle(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	account := "act_123"

	conn := &Connection{BrandID: "brand1", AccessToken: "tok", Status: ConnectionActive, TokenExpiresAt: &past}
	assert.True(t, conn.IsExpired(now))

	_, err := conn.Handle()
	assert.ErrorIs(t, err, ErrNoAccountSelected)

	future := now.Add(time.Hour)
	conn.TokenExpiresAt = &future
	conn.AdAccountID = &account
	assert.False(t, conn.IsExpired(now))

	handle, err := conn.Handle()
	require.NoError(t, err)
	assert.Equal(t, AccountHandle{BrandID: "brand1", AccountID: "act_123", AccessToken: "tok"}, handle)
}

func TestDecodeAnalysisPayload(t *testing.T) {
	snapshot := ClassificationSnapshot{
		Window:     WindowLast30Days,
		Benchmarks: Benchmark{MedianCPA: 18, AvgROAS: 2},
		Counts:     TierCounts{Winner: 2, Loser: 3},
	}

	data, err := EncodeAnalysisPayload(snapshot)
	require.NoError(t, err)

	decoded, err := DecodeAnalysisPayload(AnalysisClassification, data)
	require.NoError(t, err)
	assert.Equal(t, AnalysisClassification, decoded.AnalysisType())
	assert.Equal(t, 5, decoded.(ClassificationSnapshot).Counts.Total())

	_, err = DecodeAnalysisPayload("desconhecido", data)
	assert.Error(t, err)
}
