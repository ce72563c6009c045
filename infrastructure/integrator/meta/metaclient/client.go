package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Request(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
	FetchAllPages(ctx context.Context, endpoint string, params url.Values, maxPages int) ([]jsoniter.RawMessage, error)
	GetAdsByAccountID(ctx context.Context, accountID string, window domain.DateWindow) ([]metadomain.Ad, []*domain.Error, error)
	GetAdInsightsByDate(ctx context.Context, adID string, date time.Time) (*metadomain.AdInsight, error)
	GetAdComments(ctx context.Context, storyID string, limit int) ([]metadomain.Comment, error)
}

// Factory cria um cliente por token de acesso. Cada cliente tem seu próprio limitador.
type Factory interface {
	NewClient(accessToken string) Client
}

type Option func(*MetaClient)

func WithClock(clock Clock) Option {
	return func(c *MetaClient) {
		c.clock = clock
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.httpClient = httpClient
	}
}

type MetaClient struct {
	cfg         config.Meta
	accessToken string
	httpClient  *http.Client
	clock       Clock
	limiter     *RateLimiter
}

func NewClient(cfg config.Meta, accessToken string, opts ...Option) *MetaClient {
	client := &MetaClient{
		cfg:         cfg,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		clock:       systemClock{},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.limiter = NewRateLimiter(cfg.MaxCallsPerHour, cfg.MinCallDelay, client.clock)

	return client
}

type factory struct {
	cfg  config.Meta
	opts []Option
}

func NewFactory(cfg config.Meta, opts ...Option) Factory {
	return &factory{cfg: cfg, opts: opts}
}

func (f *factory) NewClient(accessToken string) Client {
	return NewClient(f.cfg, accessToken, f.opts...)
}

// Request executa um GET respeitando o limitador e a política de retry.
// endpoint pode ser relativo à versão da API ou uma URL absoluta retornada em paging.next.
func (c *MetaClient) Request(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		query := url.Values{}
		for k, v := range params {
			query[k] = append([]string(nil), v...)
		}
		query.Set("access_token", c.accessToken)

		requestURL = fmt.Sprintf("%s/%s?%s", c.cfg.URL, strings.TrimPrefix(endpoint, "/"), query.Encode())
	}

	return c.do(ctx, operationName(endpoint), requestURL)
}

type pageResponse struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging *metadomain.Paging    `json:"paging"`
}

// FetchAllPages percorre a paginação por cursor até acabar ou até maxPages
func (c *MetaClient) FetchAllPages(ctx context.Context, endpoint string, params url.Values, maxPages int) ([]jsoniter.RawMessage, error) {
	if maxPages <= 0 {
		maxPages = c.cfg.MaxPages
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = append([]string(nil), v...)
	}
	if query.Get("limit") == "" && c.cfg.PageSize > 0 {
		query.Set("limit", strconv.Itoa(c.cfg.PageSize))
	}

	items := make([]jsoniter.RawMessage, 0)
	next := endpoint
	nextParams := query

	for page := 1; page <= maxPages; page++ {
		body, err := c.Request(ctx, next, nextParams)
		if err != nil {
			return nil, err
		}

		var resp pageResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, domain.NewError(domain.KindData, operationName(endpoint), 0, fmt.Errorf("erro ao decodificar página: %w", err))
		}

		items = append(items, resp.Data...)

		if resp.Paging == nil || resp.Paging.Next == "" || len(resp.Data) == 0 {
			return items, nil
		}

		next = resp.Paging.Next
		nextParams = nil
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":  operationName(endpoint),
		"max_pages": maxPages,
		"items":     len(items),
	}).Warn("meta: pagination stopped at page limit")

	return items, nil
}

func (c *MetaClient) do(ctx context.Context, op, requestURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt - 1)
			logrus.WithFields(logrus.Fields{
				"endpoint": op,
				"attempt":  attempt,
				"delay":    delay.String(),
				"error":    lastErr.Error(),
			}).Warn("meta: retrying request")

			if err := c.clock.Sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.send(ctx, op, requestURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !domain.IsRetryable(err) {
			logrus.WithFields(logrus.Fields{
				"endpoint": op,
				"kind":     domain.KindOf(err),
				"error":    err.Error(),
			}).Error("meta: non-retryable error")
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": op,
		"retries":  c.cfg.MaxRetries,
		"error":    lastErr.Error(),
	}).Error("meta: retry budget exhausted")

	return nil, lastErr
}

// backoff calcula base × 2^attempt
func (c *MetaClient) backoff(attempt int) time.Duration {
	return c.cfg.RetryBaseDelay * time.Duration(1<<uint(attempt))
}

func (c *MetaClient) send(ctx context.Context, op, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, domain.NewError(domain.KindConfig, op, 0, fmt.Errorf("erro ao criar a requisição: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewError(domain.KindTransient, op, 0, fmt.Errorf("erro ao fazer a requisição: %w", stripToken(err)))
	}
	defer resp.Body.Close()

	return HandleResponse(op, resp)
}

// operationName remove query string e host para não vazar o token nos logs
func operationName(endpoint string) string {
	if u, err := url.Parse(endpoint); err == nil {
		return strings.TrimPrefix(u.Path, "/")
	}
	return endpoint
}

func stripToken(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
