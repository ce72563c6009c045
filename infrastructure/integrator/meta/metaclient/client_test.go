package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

func testConfig(serverURL string) config.Meta {
	return config.Meta{
		URL:             serverURL + "/v22.0",
		MaxCallsPerHour: 180,
		MinCallDelay:    time.Second,
		MaxRetries:      3,
		RetryBaseDelay:  2 * time.Second,
		PageSize:        25,
		MaxPages:        10,
		HTTPTimeout:     5 * time.Second,
	}
}

func graphError(code int, message string) string {
	return fmt.Sprintf(`{"error":{"message":%q,"type":"OAuthException","code":%d,"fbtrace_id":"abc"}}`, message, code)
}

func TestMetaClient_RequestErrorHandling(t *testing.T) {
	tests := []struct {
		name          string
		responses     []func(w http.ResponseWriter)
		expectedHits  int32
		expectedKind  domain.ErrorKind
		expectedSleep []time.Duration
	}{
		{
			name: "Rate limit duas vezes e depois sucesso",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, graphError(17, "User request limit reached"))
				},
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, graphError(80004, "Too many calls"))
				},
				func(w http.ResponseWriter) { fmt.Fprint(w, `{"data":[]}`) },
			},
			expectedHits:  3,
			expectedSleep: []time.Duration{2 * time.Second, 4 * time.Second},
		},
		{
			name: "Rate limit até esgotar as tentativas",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, graphError(4, "Application request limit reached"))
				},
			},
			expectedHits:  4,
			expectedKind:  domain.KindRateLimit,
			expectedSleep: []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second},
		},
		{
			name: "Token expirado falha imediatamente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, graphError(190, "Error validating access token"))
				},
			},
			expectedHits: 1,
			expectedKind: domain.KindAuth,
		},
		{
			name: "Permissão ausente falha imediatamente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusForbidden)
					fmt.Fprint(w, graphError(200, "Permissions error"))
				},
			},
			expectedHits: 1,
			expectedKind: domain.KindPermission,
		},
		{
			name: "Campo inválido falha imediatamente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusBadRequest)
					fmt.Fprint(w, graphError(100, "Tried accessing nonexisting field"))
				},
			},
			expectedHits: 1,
			expectedKind: domain.KindPermission,
		},
		{
			name: "Erro 500 é transitório e repetido",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) {
					w.WriteHeader(http.StatusInternalServerError)
					fmt.Fprint(w, "upstream down")
				},
				func(w http.ResponseWriter) { fmt.Fprint(w, `{"data":[]}`) },
			},
			expectedHits:  2,
			expectedSleep: []time.Duration{2 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&hits, 1)
				idx := int(n) - 1
				if idx >= len(tt.responses) {
					idx = len(tt.responses) - 1
				}
				tt.responses[idx](w)
			}))
			defer server.Close()

			clock := newFakeClock()
			client := NewClient(testConfig(server.URL), "tok", WithClock(clock))

			_, err := client.Request(context.Background(), "act_1/ads", nil)

			assert.Equal(t, tt.expectedHits, atomic.LoadInt32(&hits))
			if tt.expectedKind == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
				assert.False(t, domain.IsRetryable(err) && tt.expectedKind != domain.KindRateLimit)
			}

			sleeps := make([]time.Duration, 0)
			for _, s := range clock.Sleeps() {
				if s >= 2*time.Second {
					sleeps = append(sleeps, s)
				}
			}
			if len(tt.expectedSleep) == 0 {
				assert.Empty(t, sleeps)
			} else {
				assert.Equal(t, tt.expectedSleep, sleeps)
			}
		})
	}
}

func TestMetaClient_AuthErrorCarriesProviderCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, graphError(102, "Session key invalid"))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "tok", WithClock(newFakeClock()))
	_, err := client.Request(context.Background(), "me", nil)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 102, domainErr.Code)
	assert.NotContains(t, err.Error(), "tok")
}

func TestMetaClient_GetAdsByAccountIDFollowsPaging(t *testing.T) {
	var hits int32
	var firstQuery string
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/v22.0/act_99/ads", r.URL.Path)

		if r.URL.Query().Get("after") == "" {
			firstQuery = r.URL.RawQuery
			next := server.URL + "/v22.0/act_99/ads?after=c1&access_token=tok&limit=25"
			fmt.Fprintf(w, `{"data":[{"id":"1","name":"a","status":"ACTIVE"},{"id":"2","name":"b","status":"PAUSED"}],"paging":{"next":%q}}`, next)
			return
		}

		fmt.Fprint(w, `{"data":[{"id":"3","name":"c","status":"ACTIVE","insights":{"data":[{"spend":"12.50","impressions":"1000"}]}}],"paging":{}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "tok", WithClock(newFakeClock()))
	ads, skipped, err := client.GetAdsByAccountID(context.Background(), "99", domain.WindowLifetime)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	require.Len(t, ads, 3)
	assert.Equal(t, "3", ads[2].ID)
	require.NotNil(t, ads[2].Insight())
	assert.Equal(t, 12.5, ads[2].Insight().Spend.Float())

	assert.Contains(t, firstQuery, "limit=25")
	assert.Contains(t, firstQuery, "access_token=tok")
	assert.True(t, strings.Contains(firstQuery, "date_preset%28maximum%29"), firstQuery)
}

func TestMetaClient_GetAdsByAccountIDReportsUndecodableAds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"1","name":"a","status":"ACTIVE"},{"id":2,"name":"b","status":"ACTIVE"}],"paging":{}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "tok", WithClock(newFakeClock()))
	ads, skipped, err := client.GetAdsByAccountID(context.Background(), "99", domain.WindowLast30Days)

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "1", ads[0].ID)
	require.Len(t, skipped, 1)
	assert.Equal(t, domain.KindData, skipped[0].Kind)
}

func TestMetaClient_FetchAllPagesStopsAtMaxPages(t *testing.T) {
	var hits int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		fmt.Fprintf(w, `{"data":[{"id":"%d"}],"paging":{"next":"%s/v22.0/act_1/ads?after=%d"}}`, n, server.URL, n)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "tok", WithClock(newFakeClock()))
	items, err := client.FetchAllPages(context.Background(), "act_1/ads", nil, 3)

	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestMetaClient_GetAdInsightsByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `{"since":"2025-03-09","until":"2025-03-09"}`, r.URL.Query().Get("time_range"))
		if strings.Contains(r.URL.Path, "empty") {
			fmt.Fprint(w, `{"data":[]}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"ad_id":"1","spend":"40","actions":[{"action_type":"purchase","value":"2"}]}]}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "tok", WithClock(newFakeClock()))
	day := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	insight, err := client.GetAdInsightsByDate(context.Background(), "1", day)
	require.NoError(t, err)
	require.NotNil(t, insight)
	assert.Equal(t, 40.0, insight.Spend.Float())

	insight, err = client.GetAdInsightsByDate(context.Background(), "empty", day)
	require.NoError(t, err)
	assert.Nil(t, insight)
}
